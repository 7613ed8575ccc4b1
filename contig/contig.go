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
	"strconv"
	"strings"

	"github.com/shenwei356/adjlist/kmer"
)

// Record is a sequence record of the input stream.
type Record struct {
	ID      string
	Seq     string
	Comment string // the rest of the header line, e.g., "1234 56" for length and coverage
}

// Contig is an input sequence reduced to what the overlap graph needs.
type Contig struct {
	ID       int    // dense id in input order
	Name     string // the record ID
	Length   int
	Coverage int

	L kmer.Kmer // the first k-1 bases
	R kmer.Kmer // the last k-1 bases
}

// Node returns the contig in the given orientation.
func (c *Contig) Node(s Sense) Node {
	return Node{ID: c.ID, Sense: s}
}

// Prefix returns the first k-1 bases of the contig in the given orientation.
func (c *Contig) Prefix(s Sense) kmer.Kmer {
	if s == Reverse {
		return c.R.ReverseComplement()
	}
	return c.L
}

// Suffix returns the last k-1 bases of the contig in the given orientation.
func (c *Contig) Suffix(s Sense) kmer.Kmer {
	if s == Reverse {
		return c.L.ReverseComplement()
	}
	return c.R
}

// ParseCoverage reads "length coverage" from a record comment.
// Coverage is only an annotation, so a missing or broken value is 0.
func ParseCoverage(comment string) int {
	fields := strings.Fields(comment)
	if len(fields) < 2 {
		return 0
	}
	if _, err := strconv.ParseUint(fields[0], 10, 64); err != nil {
		return 0
	}
	coverage, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return 0
	}
	return int(coverage)
}
