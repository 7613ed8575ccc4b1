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

// Package adjlist finds overlaps of exactly k-1 bases between contigs and
// builds the directed graph of oriented contigs connected by them.
//
// A Builder goes through three phases, in order:
//
//	Ingest:  Add/AddFrom contigs, ids are assigned in input order
//	Lock:    the id space is frozen
//	Build:   terminal k-mers are indexed and edges are added
package adjlist

import (
	"errors"
	"io"

	"github.com/exascience/pargo/parallel"
	pkgerrors "github.com/pkg/errors"
	"github.com/shenwei356/adjlist/contig"
	"github.com/shenwei356/adjlist/graph"
	"github.com/shenwei356/adjlist/index"
)

// ErrNotLocked means Build is called before Lock.
var ErrNotLocked = errors.New("adjlist: contigs not locked before building")

// ErrAlreadyBuilt means Build is called twice.
var ErrAlreadyBuilt = errors.New("adjlist: graph already built")

// RecordReader is a stream of sequence records, Read returns io.EOF at
// the end of the stream.
type RecordReader interface {
	Read() (contig.Record, error)
}

type phase int

const (
	phaseIngest phase = iota
	phaseLocked
	phaseBuilt
)

// Builder builds an overlap graph from contigs.
type Builder struct {
	opts  Options
	table *contig.Table
	idx   *index.Index
	phase phase
}

// NewBuilder creates a Builder. A missing k is reported here, before
// any input is read.
func NewBuilder(opts Options) (*Builder, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	t, err := contig.NewTable(opts.K)
	if err != nil {
		return nil, err
	}
	return &Builder{opts: opts, table: t}, nil
}

// Table returns the contigs added so far.
func (b *Builder) Table() *contig.Table { return b.table }

// NumContigs returns the number of contigs.
func (b *Builder) NumContigs() int { return b.table.Len() }

// Add adds one contig.
func (b *Builder) Add(rec contig.Record) (*contig.Contig, error) {
	return b.table.Add(rec)
}

// AddFrom adds all records of a stream, source is used in error messages.
// It returns the number of contigs added from the stream.
func (b *Builder) AddFrom(r RecordReader, source string) (int, error) {
	var n int
	var rec contig.Record
	var err error
	for {
		rec, err = r.Read()
		if err != nil {
			if err == io.EOF {
				return n, nil
			}
			return n, pkgerrors.Wrapf(err, "reading %s", source)
		}

		if _, err = b.table.Add(rec); err != nil {
			return n, pkgerrors.Wrapf(err, "%s", source)
		}
		n++
	}
}

// Lock freezes the contig ids, no contig can be added afterwards.
func (b *Builder) Lock() {
	b.table.Lock()
	if b.phase == phaseIngest {
		b.phase = phaseLocked
	}
}

// Build indexes the contig ends and connects every oriented contig u to
// every oriented contig v whose prefix equals the suffix of u.
func (b *Builder) Build() (*graph.Graph, error) {
	if b.phase == phaseBuilt {
		return nil, ErrAlreadyBuilt
	}
	if !b.table.Locked() {
		return nil, ErrNotLocked
	}

	idx, err := index.Build(b.table, b.opts.Threads)
	if err != nil {
		return nil, err
	}
	b.idx = idx

	contigs := b.table.Contigs()
	vertices := make([]graph.Vertex, len(contigs))
	for i, c := range contigs {
		vertices[i] = graph.Vertex{Name: c.Name, Length: c.Length, Coverage: c.Coverage}
	}
	g := graph.New(b.opts.K, vertices)

	progress := b.opts.Progress
	n := 2 * len(contigs)
	if n > 0 {
		parallel.Range(0, n, b.opts.Threads, func(low, high int) {
			var u contig.Node
			var done int
			for i := low; i < high; i++ {
				u = contig.Node{ID: i / 2, Sense: contig.Sense(i % 2)}
				connect(g, idx, contigs[u.ID], u)

				if progress != nil {
					if done++; done == progressBatch {
						progress(done)
						done = 0
					}
				}
			}
			if progress != nil && done > 0 {
				progress(done)
			}
		})
	}
	g.Freeze()

	b.phase = phaseBuilt
	return g, nil
}

const progressBatch = 4096

// connect adds the out-edges of u. The suffix of u+ is r, the suffix of u-
// is rc(l), so u- probes l in the right-end table and re-orients the hits.
func connect(g *graph.Graph, idx *index.Index, c *contig.Contig, u contig.Node) {
	x, end := c.R, index.LeftEnds
	if u.Sense == contig.Reverse {
		x, end = c.L, index.RightEnds
	}
	for _, v := range idx.Lookup(end, x) {
		g.AddEdge(u, v.Xor(u.Sense))
	}
}

// Repeats reports the suffixes shared by several oriented contigs, which
// fan out into many edges. It's only available after Build.
func (b *Builder) Repeats() index.RepeatStats {
	if b.idx == nil {
		return index.RepeatStats{}
	}
	return b.idx.Repeats(index.RightEnds)
}
