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
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shenwei356/adjlist/contig"
	"github.com/shenwei356/adjlist/graph"
)

// the graph of ACGTAC and TACGGG with k=4
func testGraph() *graph.Graph {
	g := graph.New(4, []graph.Vertex{
		{Name: "a", Length: 6, Coverage: 10},
		{Name: "b", Length: 6, Coverage: 0},
	})
	a := contig.Node{ID: 0, Sense: contig.Forward}
	b := contig.Node{ID: 1, Sense: contig.Forward}
	g.AddEdge(a, b)
	g.AddEdge(b.Flip(), a.Flip())
	g.Freeze()
	return g
}

func TestWriteAdj(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAdj(&buf, testGraph()); err != nil {
		t.Error(err)
		return
	}
	expected := "a 6 10\tb+ ;\t;\n" +
		"b 6 0\t;\ta+ ;\n"
	if buf.String() != expected {
		t.Errorf("expected:\n%q\nresult:\n%q", expected, buf.String())
	}
}

func TestWriteDot(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDot(&buf, testGraph(), "adj"); err != nil {
		t.Error(err)
		return
	}
	s := buf.String()
	for _, sub := range []string{"digraph", `"a+"->"b+"`, `"b-"->"a-"`, `"k=4 d=-3"`, `"a+ l=6 C=10"`} {
		if !strings.Contains(s, sub) {
			t.Errorf("%q not found in:\n%s", sub, s)
		}
	}
}

func TestBinary(t *testing.T) {
	g := testGraph()
	file := filepath.Join(t.TempDir(), "graph.bin.gz")

	N, err := WriteBinaryFile(file, g)
	if err != nil {
		t.Errorf("writing the graph to file: %s", err)
		return
	}
	t.Logf("%d bytes of uncompressed data", N)

	g2, err := ReadBinaryFile(file)
	if err != nil {
		t.Errorf("reading the graph from file: %s", err)
		return
	}

	if g2.K() != g.K() {
		t.Errorf("Ks unmatched: %d vs %d", g.K(), g2.K())
	}
	if !reflect.DeepEqual(g2.Vertices(), g.Vertices()) {
		t.Errorf("vertices unmatched: %v vs %v", g.Vertices(), g2.Vertices())
	}
	for _, u := range g.Nodes() {
		if !reflect.DeepEqual(g2.Out(u), g.Out(u)) {
			t.Errorf("edges of %s unmatched: %v vs %v", u, g.Out(u), g2.Out(u))
		}
	}
}

func TestBinaryBroken(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteBinary(&buf, testGraph()); err != nil {
		t.Error(err)
		return
	}
	data := buf.Bytes()

	if _, err := ReadBinary(bytes.NewReader(data[:len(data)-3])); !errors.Is(err, ErrBrokenFile) {
		t.Errorf("expected ErrBrokenFile, got %v", err)
	}

	data[0] = 'x'
	if _, err := ReadBinary(bytes.NewReader(data)); !errors.Is(err, ErrInvalidFileFormat) {
		t.Errorf("expected ErrInvalidFileFormat, got %v", err)
	}
}

// header returns the magic number and meta info of a graph with k=4,
// followed by a vertex count.
func header(nVertices uint64) []byte {
	data := make([]byte, 24)
	copy(data, Magic[:])
	data[8] = MainVersion
	data[9] = MinorVersion
	be.PutUint32(data[12:16], 4)
	be.PutUint64(data[16:24], nVertices)
	return data
}

func TestBinaryCorruptHeader(t *testing.T) {
	// a huge vertex count with no vertex data
	if _, err := ReadBinary(bytes.NewReader(header(1 << 62))); !errors.Is(err, ErrBrokenFile) {
		t.Errorf("expected ErrBrokenFile, got %v", err)
	}

	// a name length out of range
	data := append(header(1), 0xff, 0xff, 0xff, 0xff)
	if _, err := ReadBinary(bytes.NewReader(data)); !errors.Is(err, ErrInvalidFileFormat) {
		t.Errorf("expected ErrInvalidFileFormat, got %v", err)
	}

	// a name longer than the rest of the file
	data = append(header(1), 0, 0, 1, 0, 'a')
	if _, err := ReadBinary(bytes.NewReader(data)); !errors.Is(err, ErrBrokenFile) {
		t.Errorf("expected ErrBrokenFile, got %v", err)
	}
}

func TestBinaryNameTooLong(t *testing.T) {
	g := graph.New(4, []graph.Vertex{{Name: strings.Repeat("a", MaxNameLen+1), Length: 6}})
	g.Freeze()
	var buf bytes.Buffer
	if _, err := WriteBinary(&buf, g); !errors.Is(err, ErrNameTooLong) {
		t.Errorf("expected ErrNameTooLong, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"adj", "dot", "bin"} {
		f, err := ParseFormat(s)
		if err != nil {
			t.Error(err)
			continue
		}
		if f.String() != s {
			t.Errorf("expected: %s, result: %s", s, f)
		}
	}
	if _, err := ParseFormat("sam"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
