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
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/shenwei356/adjlist/contig"
	"github.com/shenwei356/adjlist/graph"
)

// WriteDot writes a Graphviz digraph with one node per oriented contig.
// The contig length and coverage are in node labels and the overlap
// distance, which is shared by all edges, is the label of the graph.
func WriteDot(w io.Writer, g *graph.Graph, name string) error {
	if name == "" {
		name = "adj"
	}
	gv := gographviz.NewGraph()
	graphName := strconv.Quote(name)
	if err := gv.SetName(graphName); err != nil {
		return err
	}
	if err := gv.SetDir(true); err != nil {
		return err
	}
	label := fmt.Sprintf("k=%d d=%d", g.K(), g.Distance())
	if err := gv.AddAttr(graphName, "label", strconv.Quote(label)); err != nil {
		return err
	}

	var attrs map[string]string
	var v graph.Vertex
	for _, u := range g.Nodes() {
		v = g.Vertex(u.ID)
		attrs = map[string]string{
			"label": strconv.Quote(fmt.Sprintf("%s l=%d C=%d", nodeName(g, u), v.Length, v.Coverage)),
		}
		if err := gv.AddNode(graphName, dotID(g, u), attrs); err != nil {
			return err
		}
	}

	for _, u := range g.Nodes() {
		for _, e := range g.Out(u) {
			if err := gv.AddEdge(dotID(g, u), dotID(g, e.To), true, nil); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, gv.String())
	return err
}

func dotID(g *graph.Graph, u contig.Node) string {
	return strconv.Quote(nodeName(g, u))
}
