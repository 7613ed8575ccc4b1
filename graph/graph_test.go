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

package graph

import (
	"testing"

	"github.com/shenwei356/adjlist/contig"
)

func node(id int, s contig.Sense) contig.Node {
	return contig.Node{ID: id, Sense: s}
}

func TestGraph(t *testing.T) {
	g := New(4, []Vertex{{"a", 6, 0}, {"b", 6, 3}, {"c", 5, 0}})

	if g.Distance() != -3 {
		t.Errorf("distance unmatched: %d vs %d", g.Distance(), -3)
	}
	if len(g.Nodes()) != 6 {
		t.Errorf("number of nodes unmatched: %d vs %d", len(g.Nodes()), 6)
	}

	a, b := node(0, contig.Forward), node(1, contig.Forward)
	g.AddEdge(a, b.Flip())
	g.AddEdge(a, b)
	g.AddEdge(a, b) // multi-edges are kept
	g.AddEdge(b.Flip(), a.Flip())
	g.AddEdge(a.Flip(), a.Flip())
	g.Freeze()

	if g.NumEdges() != 5 {
		t.Errorf("number of edges unmatched: %d vs %d", g.NumEdges(), 5)
	}
	if g.OutDegree(a) != 3 || g.OutDegree(b) != 0 {
		t.Errorf("unexpected degrees: %d %d", g.OutDegree(a), g.OutDegree(b))
	}

	g.SortEdges()
	es := g.Out(a)
	if es[0].To != b || es[1].To != b || es[2].To != b.Flip() {
		t.Errorf("unexpected edge order: %v", es)
	}

	s := g.Stats()
	if s.Nodes != 6 || s.Edges != 5 || s.Loops != 1 {
		t.Errorf("unexpected stats: %+v", s)
	}
	// c+ and c- have no edges at all
	if s.Island != 2 {
		t.Errorf("number of islands unmatched: %d vs %d", s.Island, 2)
	}
	if s.OutDegrees != [4]int{3, 2, 0, 1} || s.MaxOutDegree != 3 || s.MedianOutDegree != 1 {
		t.Errorf("unexpected degree distribution: %+v", s)
	}
	t.Logf("%s", s)
}

func TestFrozen(t *testing.T) {
	g := New(4, []Vertex{{"a", 6, 0}})
	g.Freeze()
	defer func() {
		if r := recover(); r != ErrFrozen {
			t.Errorf("expected panic with ErrFrozen, got %v", r)
		}
	}()
	g.AddEdge(node(0, contig.Forward), node(0, contig.Forward))
}

func TestOutOfRange(t *testing.T) {
	g := New(4, []Vertex{{"a", 6, 0}})
	defer func() {
		if r := recover(); r != ErrNodeOutOfRange {
			t.Errorf("expected panic with ErrNodeOutOfRange, got %v", r)
		}
	}()
	g.AddEdge(node(0, contig.Forward), node(1, contig.Forward))
}

func TestEmptyStats(t *testing.T) {
	g := New(4, nil)
	g.Freeze()
	if s := g.Stats(); s.Nodes != 0 || s.Edges != 0 {
		t.Errorf("unexpected stats: %+v", s)
	}
}
