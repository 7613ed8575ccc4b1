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

// Package graphio writes overlap graphs in the adjacency-list, Graphviz DOT
// and a binary format.
package graphio

import (
	"bufio"
	"errors"
	"io"
	"strconv"

	"github.com/shenwei356/adjlist/contig"
	"github.com/shenwei356/adjlist/graph"
)

// Format is an output format of graphs.
type Format int

const (
	// Adj is the adjacency-list format of ABySS.
	Adj Format = iota
	// Dot is the Graphviz DOT format.
	Dot
	// Binary is the binary format read by ReadBinary.
	Binary
)

// ErrUnknownFormat means an unsupported output format.
var ErrUnknownFormat = errors.New("graphio: unknown output format, available: adj, dot, bin")

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "adj":
		return Adj, nil
	case "dot":
		return Dot, nil
	case "bin":
		return Binary, nil
	}
	return Adj, ErrUnknownFormat
}

func (f Format) String() string {
	switch f {
	case Adj:
		return "adj"
	case Dot:
		return "dot"
	case Binary:
		return "bin"
	}
	return "unknown"
}

// Write writes the graph in the given format, name is used by the DOT format.
func Write(w io.Writer, g *graph.Graph, f Format, name string) error {
	switch f {
	case Adj:
		return WriteAdj(w, g)
	case Dot:
		return WriteDot(w, g, name)
	case Binary:
		_, err := WriteBinary(w, g)
		return err
	}
	return ErrUnknownFormat
}

// WriteAdj writes one line per contig:
//
//	name length coverage<TAB>out-edges of name+ ;<TAB>in-edges of name+ ;
//
// The second list is the out-edges of name- with targets complemented,
// i.e., the contigs preceding name+.
func WriteAdj(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 1024)
	var u contig.Node
	for id, v := range g.Vertices() {
		buf = buf[:0]
		buf = append(buf, v.Name...)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(v.Length), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(v.Coverage), 10)

		for _, s := range [2]contig.Sense{contig.Forward, contig.Reverse} {
			u = contig.Node{ID: id, Sense: s}
			buf = append(buf, '\t')
			for _, e := range g.Out(u) {
				buf = appendNode(buf, g, e.To.Xor(s))
				buf = append(buf, ' ')
			}
			buf = append(buf, ';')
		}
		buf = append(buf, '\n')

		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func appendNode(buf []byte, g *graph.Graph, u contig.Node) []byte {
	buf = append(buf, g.Vertex(u.ID).Name...)
	return append(buf, contig.Strands[u.Sense])
}

// nodeName returns the name of an oriented contig, e.g., "contig1+".
func nodeName(g *graph.Graph, u contig.Node) string {
	return g.Vertex(u.ID).Name + u.Sense.String()
}
