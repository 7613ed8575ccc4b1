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

package index

import (
	"errors"
	"runtime"

	"github.com/exascience/pargo/parallel"
	"github.com/shenwei356/adjlist/contig"
	"github.com/shenwei356/adjlist/kmer"
)

// ErrNotLocked means the index is built before the contig ids are locked.
var ErrNotLocked = errors.New("index: contig table not locked")

// ErrLengthMismatch means a probe k-mer has a different length from the
// indexed ones.
var ErrLengthMismatch = errors.New("index: k-mer length mismatch")

// End selects one of the two tables of an Index.
type End int

const (
	// RightEnds maps suffixes of oriented contigs to them.
	RightEnds End = 0
	// LeftEnds maps prefixes of oriented contigs to them.
	LeftEnds End = 1
)

func (e End) String() string {
	if e == RightEnds {
		return "right"
	}
	return "left"
}

// NumShards is the number of hash shards of each table. Shards are
// filled concurrently without locks.
const NumShards = 256

type shard map[kmer.Kmer][]contig.Node

// Index maps terminal k-mers to the oriented contigs owning them.
//
// Both orientations of every contig are indexed:
//
//	RightEnds:  r(u) -> u+,  rc(l(u)) -> u-
//	LeftEnds:   l(u) -> u+,  rc(r(u)) -> u-
//
// A key may map to many nodes, all of them are kept.
type Index struct {
	cfg  kmer.Config
	ends [2][]shard
}

// entry is a key waiting to be inserted.
type entry struct {
	key  kmer.Kmer
	hash uint64
	node contig.Node
}

// the tables of the four entries of a contig
var entryEnds = [4]End{RightEnds, LeftEnds, RightEnds, LeftEnds}

// Build indexes the terminal k-mers of all contigs of a locked table,
// using up to threads goroutines (<=0 for all CPUs).
// The lists are in contig order whatever the number of threads.
func Build(t *contig.Table, threads int) (*Index, error) {
	if !t.Locked() {
		return nil, ErrNotLocked
	}
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	contigs := t.Contigs()
	idx := &Index{cfg: t.Config()}
	capacity := 2*len(contigs)/NumShards + 1
	for e := range idx.ends {
		idx.ends[e] = make([]shard, NumShards)
		for s := range idx.ends[e] {
			idx.ends[e][s] = make(shard, capacity)
		}
	}
	if len(contigs) == 0 {
		return idx, nil
	}

	// ------------ keys and hashes ------------

	entries := make([][4]entry, len(contigs))
	parallel.Range(0, len(contigs), threads, func(low, high int) {
		var c *contig.Contig
		var u contig.Node
		for i := low; i < high; i++ {
			c = contigs[i]
			u = c.Node(contig.Forward)
			es := &entries[i]
			es[0] = newEntry(c.R, u)
			es[1] = newEntry(c.L, u)
			es[2] = newEntry(c.L.ReverseComplement(), u.Flip())
			es[3] = newEntry(c.R.ReverseComplement(), u.Flip())
		}
	})

	// ------------ fill shards ------------

	// each range owns the shards [low, high) of both tables
	parallel.Range(0, NumShards, threads, func(low, high int) {
		var s int
		var m shard
		for i := range entries {
			for j := range entries[i] {
				e := &entries[i][j]
				s = int(e.hash % NumShards)
				if s < low || s >= high {
					continue
				}
				m = idx.ends[entryEnds[j]][s]
				m[e.key] = append(m[e.key], e.node)
			}
		}
	})

	return idx, nil
}

func newEntry(key kmer.Kmer, node contig.Node) entry {
	return entry{key: key, hash: key.Hash(), node: node}
}

// Config returns the k-mer contract of the indexed contigs.
func (idx *Index) Config() kmer.Config {
	return idx.cfg
}

// Lookup returns the oriented contigs whose end equals x.
// The returned slice must not be modified.
func (idx *Index) Lookup(end End, x kmer.Kmer) []contig.Node {
	if x.Len() != idx.cfg.L {
		panic(ErrLengthMismatch)
	}
	return idx.ends[end][x.Hash()%NumShards][x]
}

// Len returns the number of distinct k-mers of a table.
func (idx *Index) Len(end End) int {
	var n int
	for _, m := range idx.ends[end] {
		n += len(m)
	}
	return n
}

// Walk calls f for every k-mer of a table until f returns true.
// The order of k-mers is undefined.
func (idx *Index) Walk(end End, f func(x kmer.Kmer, nodes []contig.Node) (stop bool)) {
	for _, m := range idx.ends[end] {
		for x, nodes := range m {
			if f(x, nodes) {
				return
			}
		}
	}
}

// RepeatStats describes the k-mers shared by more than one oriented contig,
// which fan out into many edges.
type RepeatStats struct {
	Kmers         int // k-mers with more than one node
	Nodes         int // nodes of these k-mers
	LowComplexity int // low-complexity ones among these k-mers
	MaxNodes      int // the largest number of nodes of a k-mer
}

// Repeats computes the RepeatStats of a table.
func (idx *Index) Repeats(end End) RepeatStats {
	var r RepeatStats
	idx.Walk(end, func(x kmer.Kmer, nodes []contig.Node) bool {
		if len(nodes) < 2 {
			return false
		}
		r.Kmers++
		r.Nodes += len(nodes)
		if len(nodes) > r.MaxNodes {
			r.MaxNodes = len(nodes)
		}
		if x.IsLowComplexity() {
			r.LowComplexity++
		}
		return false
	})
	return r
}
