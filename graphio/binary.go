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

package graphio

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/shenwei356/adjlist/contig"
	"github.com/shenwei356/adjlist/graph"
	"github.com/shenwei356/xopen"
)

var be = binary.BigEndian

// Magic number of the binary format.
var Magic = [8]byte{'a', 'd', 'j', 'g', 'r', 'a', 'p', 'h'}

// MainVersion is checked for compatibility.
var MainVersion uint8 = 0

// MinorVersion is not checked.
var MinorVersion uint8 = 1

// ErrInvalidFileFormat means invalid file format.
var ErrInvalidFileFormat = errors.New("graphio: invalid binary format")

// ErrBrokenFile means the file is not complete.
var ErrBrokenFile = errors.New("graphio: broken file")

// ErrNameTooLong means a contig name is longer than MaxNameLen.
var ErrNameTooLong = errors.New("graphio: contig name too long")

// MaxNameLen is the longest contig name accepted by ReadBinary.
const MaxNameLen = 1 << 20

// ErrVersionMismatch means version mismatch between files and program.
var ErrVersionMismatch = errors.New("graphio: version mismatch")

// WriteBinaryFile writes the graph to a file, ".gz" and other extensions
// of compression formats are recognized.
func WriteBinaryFile(file string, g *graph.Graph) (int, error) {
	outfh, err := xopen.Wopen(file)
	if err != nil {
		return 0, err
	}
	defer outfh.Close()

	return WriteBinary(outfh, g)
}

// ReadBinaryFile reads a graph written by WriteBinaryFile.
func ReadBinaryFile(file string) (*graph.Graph, error) {
	fh, err := xopen.Ropen(file)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return ReadBinary(fh)
}

// WriteBinary writes the graph and returns the number of bytes written.
//
//	8-byte magic number
//	8-byte meta: main version, minor version, 0..., k as the last 4 bytes
//	8-byte number of contigs
//	per contig: 4-byte name length, name, 8-byte length, 8-byte coverage
//	per oriented contig (0+, 0-, 1+, ...): 8-byte number of edges,
//	    and 8 bytes per edge: target id << 1 | sense
func WriteBinary(w io.Writer, g *graph.Graph) (int, error) {
	var N int // the number of bytes.
	var err error
	buf := make([]byte, 8)

	// 8-byte magic number
	err = binary.Write(w, be, Magic)
	if err != nil {
		return N, err
	}
	N += 8

	// 8-byte meta info
	meta := [8]uint8{MainVersion, MinorVersion}
	be.PutUint32(meta[4:], uint32(g.K()))
	err = binary.Write(w, be, meta)
	if err != nil {
		return N, err
	}
	N += 8

	// 8-byte the number of contigs
	err = binary.Write(w, be, uint64(g.NumVertices()))
	if err != nil {
		return N, err
	}
	N += 8

	var n int
	for _, v := range g.Vertices() {
		if len(v.Name) > MaxNameLen {
			return N, ErrNameTooLong
		}
		be.PutUint32(buf[:4], uint32(len(v.Name)))
		n, err = w.Write(buf[:4])
		N += n
		if err != nil {
			return N, err
		}
		n, err = io.WriteString(w, v.Name)
		N += n
		if err != nil {
			return N, err
		}
		err = binary.Write(w, be, [2]uint64{uint64(v.Length), uint64(v.Coverage)})
		if err != nil {
			return N, err
		}
		N += 16
	}

	for _, u := range g.Nodes() {
		es := g.Out(u)
		data := make([]byte, 8*(len(es)+1))
		be.PutUint64(data[:8], uint64(len(es)))
		for i, e := range es {
			be.PutUint64(data[8*(i+1):], uint64(e.To.ID)<<1|uint64(e.To.Sense))
		}
		n, err = w.Write(data)
		N += n
		if err != nil {
			return N, err
		}
	}

	return N, nil
}

// ReadBinary reads a graph written by WriteBinary. The graph is frozen.
func ReadBinary(r io.Reader) (*graph.Graph, error) {
	buf := make([]byte, 64)

	var err error

	// check the magic number
	_, err = io.ReadFull(r, buf[:8])
	if err != nil {
		return nil, brokenIfEOF(err)
	}
	same := true
	for i := 0; i < 8; i++ {
		if Magic[i] != buf[i] {
			same = false
			break
		}
	}
	if !same {
		return nil, ErrInvalidFileFormat
	}

	// read metadata
	_, err = io.ReadFull(r, buf[:8])
	if err != nil {
		return nil, brokenIfEOF(err)
	}
	// check compatibility
	if MainVersion != buf[0] {
		return nil, ErrVersionMismatch
	}
	k := int(be.Uint32(buf[4:8]))

	// the number of contigs
	_, err = io.ReadFull(r, buf[:8])
	if err != nil {
		return nil, brokenIfEOF(err)
	}
	nVertices := be.Uint64(buf[:8])

	// counts come from the file, vertices are appended as they are read
	vertices := make([]graph.Vertex, 0, min(nVertices, 1<<16))
	var name []byte
	var nameLen uint32
	for i := uint64(0); i < nVertices; i++ {
		_, err = io.ReadFull(r, buf[:4])
		if err != nil {
			return nil, brokenIfEOF(err)
		}
		nameLen = be.Uint32(buf[:4])
		if nameLen > MaxNameLen {
			return nil, ErrInvalidFileFormat
		}
		name = make([]byte, nameLen)
		_, err = io.ReadFull(r, name)
		if err != nil {
			return nil, brokenIfEOF(err)
		}
		_, err = io.ReadFull(r, buf[:16])
		if err != nil {
			return nil, brokenIfEOF(err)
		}
		vertices = append(vertices, graph.Vertex{
			Name:     string(name),
			Length:   int(be.Uint64(buf[:8])),
			Coverage: int(be.Uint64(buf[8:16])),
		})
	}

	g := graph.New(k, vertices)
	var nEdges, code uint64
	var v contig.Node
	for _, u := range g.Nodes() {
		_, err = io.ReadFull(r, buf[:8])
		if err != nil {
			return nil, brokenIfEOF(err)
		}
		nEdges = be.Uint64(buf[:8])
		for j := uint64(0); j < nEdges; j++ {
			_, err = io.ReadFull(r, buf[:8])
			if err != nil {
				return nil, brokenIfEOF(err)
			}
			code = be.Uint64(buf[:8])
			v = contig.Node{ID: int(code >> 1), Sense: contig.Sense(code & 1)}
			if v.ID >= len(vertices) {
				return nil, ErrInvalidFileFormat
			}
			g.AddEdge(u, v)
		}
	}
	g.Freeze()

	return g, nil
}

func brokenIfEOF(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrBrokenFile
	}
	return err
}
