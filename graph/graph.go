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
	"errors"
	"sort"

	"github.com/shenwei356/adjlist/contig"
	"github.com/twotwotwo/sorts"
)

// ErrFrozen means an edge is added to a frozen graph.
var ErrFrozen = errors.New("graph: adding edges to a frozen graph")

// ErrNodeOutOfRange means an edge refers to an unknown contig.
var ErrNodeOutOfRange = errors.New("graph: contig id out of range")

// Vertex holds the properties of a contig.
type Vertex struct {
	Name     string
	Length   int
	Coverage int
}

// Edge is an overlap of exactly k-1 bases to an oriented contig.
// All edges share the distance of the graph, see Distance.
type Edge struct {
	To contig.Node
}

// Graph is a directed graph of oriented contigs. Every contig has two
// nodes, one per orientation, and each node owns its out-edge list.
type Graph struct {
	k        int
	vertices []Vertex
	out      [][]Edge // indexed by slot()

	frozen bool
	nEdges int
}

// New creates a graph of the contigs, without any edge.
func New(k int, vertices []Vertex) *Graph {
	return &Graph{
		k:        k,
		vertices: vertices,
		out:      make([][]Edge, 2*len(vertices)),
	}
}

func slot(u contig.Node) int {
	return 2*u.ID + int(u.Sense)
}

func (g *Graph) check(u contig.Node) {
	if u.ID < 0 || u.ID >= len(g.vertices) {
		panic(ErrNodeOutOfRange)
	}
}

// AddEdge adds an edge u -> v. Multiple edges and self-loops are allowed.
// Calls with different u may run concurrently.
func (g *Graph) AddEdge(u, v contig.Node) {
	if g.frozen {
		panic(ErrFrozen)
	}
	g.check(u)
	g.check(v)
	i := slot(u)
	g.out[i] = append(g.out[i], Edge{To: v})
}

// Freeze ends the building phase, the graph is read-only afterwards.
func (g *Graph) Freeze() {
	if g.frozen {
		return
	}
	g.nEdges = 0
	for _, es := range g.out {
		g.nEdges += len(es)
	}
	g.frozen = true
}

// Frozen tells if the graph is read-only.
func (g *Graph) Frozen() bool { return g.frozen }

// K returns the k-mer size.
func (g *Graph) K() int { return g.k }

// Distance returns the distance of every edge, i.e., -(k-1),
// as adjacent contigs overlap by k-1 bases.
func (g *Graph) Distance() int { return 1 - g.k }

// NumVertices returns the number of contigs. The number of nodes is twice.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// Vertex returns the properties of a contig.
func (g *Graph) Vertex(id int) Vertex { return g.vertices[id] }

// Vertices returns the properties of all contigs, indexed by id.
// The slice must not be modified.
func (g *Graph) Vertices() []Vertex { return g.vertices }

// Nodes returns all oriented contigs, in the order of 0+, 0-, 1+, 1-, ...
func (g *Graph) Nodes() []contig.Node {
	nodes := make([]contig.Node, 0, len(g.out))
	for id := range g.vertices {
		nodes = append(nodes,
			contig.Node{ID: id, Sense: contig.Forward},
			contig.Node{ID: id, Sense: contig.Reverse})
	}
	return nodes
}

// Out returns the out-edges of u. The slice must not be modified.
func (g *Graph) Out(u contig.Node) []Edge {
	g.check(u)
	return g.out[slot(u)]
}

// OutDegree returns the number of out-edges of u.
func (g *Graph) OutDegree(u contig.Node) int {
	return len(g.Out(u))
}

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int {
	if g.frozen {
		return g.nEdges
	}
	var n int
	for _, es := range g.out {
		n += len(es)
	}
	return n
}

// SortEdges sorts every out-edge list by target, for output that does not
// depend on the input order of contigs sharing an end.
func (g *Graph) SortEdges() {
	for _, es := range g.out {
		if len(es) > 1 {
			sorts.Quicksort(byTarget(es))
		}
	}
}

type byTarget []Edge

func (s byTarget) Len() int { return len(s) }
func (s byTarget) Less(i, j int) bool {
	a, b := s[i].To, s[j].To
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	return a.Sense < b.Sense
}
func (s byTarget) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

var _ sort.Interface = byTarget(nil)
