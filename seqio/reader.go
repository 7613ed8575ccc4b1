// Copyright © 2023-2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package seqio reads FASTA/FASTQ files, plain or compressed, as a stream
// of contig records.
package seqio

import (
	"bytes"
	"errors"
	"io"

	pkgerrors "github.com/pkg/errors"
	"github.com/shenwei356/adjlist/contig"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// ErrInputStream means the input is broken, e.g., a truncated record.
var ErrInputStream = errors.New("seqio: broken input stream")

// Reader reads records from one file. "-" is the standard input.
type Reader struct {
	file   string
	reader *fastx.Reader
	n      int // records read
}

// Open opens a sequence file. Symbols are not validated here, as the
// alphabet of a run is decided by the contig table.
func Open(file string) (*Reader, error) {
	r, err := fastx.NewReader(seq.Unlimit, file, "")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "seqio: open %s", file)
	}
	return &Reader{file: file, reader: r}, nil
}

// Close closes the underlying file.
func (r *Reader) Close() {
	r.reader.Close()
}

// File returns the file name.
func (r *Reader) File() string { return r.file }

// Read returns the next record with its sequence in upper case,
// or io.EOF at the end of the file.
func (r *Reader) Read() (contig.Record, error) {
	record, err := r.reader.Read()
	if err != nil {
		if err == io.EOF {
			return contig.Record{}, io.EOF
		}
		return contig.Record{}, pkgerrors.Wrapf(ErrInputStream, "%s: record #%d: %s", r.file, r.n+1, err)
	}
	r.n++

	// the head line is "ID comment"
	comment := bytes.TrimSpace(bytes.TrimPrefix(record.Name, record.ID))

	return contig.Record{
		ID:      string(record.ID),
		Seq:     string(bytes.ToUpper(record.Seq.Seq)),
		Comment: string(comment),
	}, nil
}

// ReadAll reads all records of the files, in order.
func ReadAll(files ...string) ([]contig.Record, error) {
	recs := make([]contig.Record, 0, 1024)
	for _, file := range files {
		r, err := Open(file)
		if err != nil {
			return nil, err
		}
		recs, err = readAll(r, recs)
		r.Close()
		if err != nil {
			return nil, err
		}
	}
	return recs, nil
}

func readAll(r *Reader, recs []contig.Record) ([]contig.Record, error) {
	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				return recs, nil
			}
			return recs, err
		}
		recs = append(recs, rec)
	}
}
