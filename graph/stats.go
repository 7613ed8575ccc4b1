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
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/twotwotwo/sorts/sortutil"
)

// Stats summarizes the degrees of a graph.
type Stats struct {
	Nodes  int // oriented contigs, twice the number of contigs
	Edges  int
	Loops  int // self-loops, u -> u
	Island int // nodes without any in- or out-edge

	MaxOutDegree    int
	MedianOutDegree int
	// out-degree histogram: 0, 1, 2, >=3
	OutDegrees [4]int
}

// Stats computes the degree statistics of the graph.
func (g *Graph) Stats() Stats {
	s := Stats{Nodes: len(g.out), Edges: g.NumEdges()}
	if s.Nodes == 0 {
		return s
	}

	in := bitset.New(uint(len(g.out)))
	degrees := make([]int, len(g.out))
	var d int
	for i, es := range g.out {
		d = len(es)
		degrees[i] = d
		if d > 3 {
			d = 3
		}
		s.OutDegrees[d]++

		for _, e := range es {
			in.Set(uint(slot(e.To)))
			if slot(e.To) == i {
				s.Loops++
			}
		}
	}
	for i, es := range g.out {
		if len(es) == 0 && !in.Test(uint(i)) {
			s.Island++
		}
	}

	sortutil.Ints(degrees)
	s.MaxOutDegree = degrees[len(degrees)-1]
	s.MedianOutDegree = degrees[len(degrees)/2]
	return s
}

func (s Stats) String() string {
	var meanDegree float64
	if s.Nodes > 0 {
		meanDegree = float64(s.Edges) / float64(s.Nodes)
	}
	return fmt.Sprintf("V=%d E=%d E/V=%.3g loops=%d islands=%d\n"+
		"Degree: %d %d %d %d+ (0, 1, 2, 3+), median=%d max=%d",
		s.Nodes, s.Edges, meanDegree, s.Loops, s.Island,
		s.OutDegrees[0], s.OutDegrees[1], s.OutDegrees[2], s.OutDegrees[3],
		s.MedianOutDegree, s.MaxOutDegree)
}
