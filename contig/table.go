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

package contig

import (
	"errors"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/shenwei356/adjlist/kmer"
)

// ErrSequenceTooShort means a contig is not longer than k-1.
var ErrSequenceTooShort = errors.New("contig: sequence not longer than k-1")

// ErrAlphabetMismatch means a sequence does not share the alphabet
// detected from the first sequence.
var ErrAlphabetMismatch = errors.New("contig: mixed nucleotide and colour-space sequences")

// ErrDuplicateName means two records share the same ID.
var ErrDuplicateName = errors.New("contig: duplicate contig ID")

// ErrLocked means contigs are added after the id space is locked.
var ErrLocked = errors.New("contig: id space locked")

// idAllocator hands out dense ids in call order until it's locked.
type idAllocator struct {
	next   int
	locked bool
}

func (a *idAllocator) allocate() (int, error) {
	if a.locked {
		return 0, ErrLocked
	}
	id := a.next
	a.next++
	return id, nil
}

// Table collects the contigs of all input sources of a run.
// It's safe for concurrent use, ids follow the order of Add calls.
type Table struct {
	k int

	mu       sync.RWMutex
	ids      idAllocator
	cfg      kmer.Config
	detected bool // alphabet detected from the first record

	contigs []*Contig
	names   map[string]int
}

// NewTable creates a table for overlaps of k-1 bases.
func NewTable(k int) (*Table, error) {
	cfg, err := kmer.NewConfig(k, kmer.Nucleotide)
	if err != nil {
		return nil, err
	}
	return &Table{
		k:       k,
		cfg:     cfg,
		contigs: make([]*Contig, 0, 1024),
		names:   make(map[string]int, 1024),
	}, nil
}

// K returns the k-mer size.
func (t *Table) K() int { return t.k }

// Add converts a record into a contig.
func (t *Table) Add(rec Record) (*Contig, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ids.locked {
		return nil, pkgerrors.Wrapf(ErrLocked, "contig %s", rec.ID)
	}

	s := rec.Seq
	if len(s) == 0 {
		return nil, pkgerrors.Wrapf(ErrSequenceTooShort, "contig %s: empty sequence", rec.ID)
	}

	// the alphabet of a run is decided by the first symbol of the first accepted record
	a, err := kmer.DetectAlphabet(s[0])
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "contig %s: first symbol %q", rec.ID, s[0])
	}
	if t.detected && a != t.cfg.Alphabet {
		return nil, pkgerrors.Wrapf(ErrAlphabetMismatch, "contig %s: %s sequence in %s input",
			rec.ID, a, t.cfg.Alphabet)
	}

	// the alphabet is committed only when the record is accepted
	cfg := t.cfg
	cfg.Alphabet = a
	L := cfg.L
	if len(s) <= L {
		return nil, pkgerrors.Wrapf(ErrSequenceTooShort, "contig %s: length %d, k-1 = %d",
			rec.ID, len(s), L)
	}

	if _, ok := t.names[rec.ID]; ok {
		return nil, pkgerrors.Wrapf(ErrDuplicateName, "contig %s", rec.ID)
	}

	l, err := cfg.New([]byte(s[:L]))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "contig %s: left end %s", rec.ID, s[:L])
	}
	r, err := cfg.New([]byte(s[len(s)-L:]))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "contig %s: right end %s", rec.ID, s[len(s)-L:])
	}

	id, err := t.ids.allocate()
	if err != nil {
		return nil, err
	}

	c := &Contig{
		ID:       id,
		Name:     rec.ID,
		Length:   len(s),
		Coverage: ParseCoverage(rec.Comment),
		L:        l,
		R:        r,
	}
	t.cfg = cfg
	t.detected = true
	t.contigs = append(t.contigs, c)
	t.names[rec.ID] = id
	return c, nil
}

// Lock freezes the id space, no contig can be added afterwards.
func (t *Table) Lock() {
	t.mu.Lock()
	t.ids.locked = true
	t.mu.Unlock()
}

// Locked tells if the id space is frozen.
func (t *Table) Locked() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ids.locked
}

// Config returns the k-mer contract of the run. Before the first record
// the alphabet defaults to nucleotides.
func (t *Table) Config() kmer.Config {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cfg
}

// Len returns the number of contigs.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.contigs)
}

// Contig returns the contig of the id.
func (t *Table) Contig(id int) *Contig {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.contigs[id]
}

// Contigs returns all contigs indexed by id. The slice must not be modified.
func (t *Table) Contigs() []*Contig {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.contigs
}

// Lookup returns the id of a contig name.
func (t *Table) Lookup(name string) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.names[name]
	return id, ok
}
