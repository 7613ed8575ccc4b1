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

package seqio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestReadFasta(t *testing.T) {
	file := writeFile(t, "contigs.fa", ">0 6 12\nACGTac\n>1\nTACG\nGG\n>2 8 x\nnnnACGTA\n")

	recs, err := ReadAll(file)
	if err != nil {
		t.Error(err)
		return
	}
	if len(recs) != 3 {
		t.Errorf("number of records unmatched: %d vs %d", len(recs), 3)
		return
	}

	type Case struct {
		ID, Seq, Comment string
	}
	tests := []Case{
		{"0", "ACGTAC", "6 12"},
		{"1", "TACGGG", ""},
		{"2", "NNNACGTA", "8 x"},
	}
	for i, test := range tests {
		r := recs[i]
		if r.ID != test.ID || r.Seq != test.Seq || r.Comment != test.Comment {
			t.Errorf("[%d] expected: %+v, result: %+v", i+1, test, r)
		}
	}
}

func TestReadFastq(t *testing.T) {
	file := writeFile(t, "reads.fq", "@r1 10 3\nACGTA\n+\nIIIII\n@r2\n01230\n+\nIIIII\n")

	recs, err := ReadAll(file)
	if err != nil {
		t.Error(err)
		return
	}
	if len(recs) != 2 || recs[0].Comment != "10 3" || recs[1].Seq != "01230" {
		t.Errorf("unexpected records: %+v", recs)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.fa")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestReadBroken(t *testing.T) {
	type Case struct {
		Name, Content string
	}
	tests := []Case{
		{"truncated.fq", "@r1\nACGTA\n+\nIIIII\n@r2\nACGTA\n+\n"},
		{"short-quality.fq", "@r1\nACGTA\n+\nIII\n"},
	}
	for i, test := range tests {
		file := writeFile(t, test.Name, test.Content)
		if _, err := ReadAll(file); !errors.Is(err, ErrInputStream) {
			t.Errorf("[%d] %s, expected ErrInputStream, got %v", i+1, test.Name, err)
		}
	}
}

func TestReaderClose(t *testing.T) {
	file := writeFile(t, "contigs.fa", ">0\nACGTAC\n")
	r, err := Open(file)
	if err != nil {
		t.Error(err)
		return
	}
	rec, err := r.Read()
	if err != nil || rec.Seq != "ACGTAC" {
		t.Errorf("unexpected record: %+v, %v", rec, err)
	}
	r.Close()
	if r.File() != file {
		t.Errorf("file name unmatched: %s vs %s", r.File(), file)
	}
}
