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

package kmer

import (
	"bytes"
	"errors"

	"github.com/shenwei356/bio/seq"
)

// ErrInvalidK means k is not positive.
var ErrInvalidK = errors.New("kmer: invalid k-mer size, k should be positive")

// ErrInvalidAlphabet means a symbol outside the active alphabet is found.
var ErrInvalidAlphabet = errors.New("kmer: invalid symbol for the alphabet")

// ErrLengthMismatch means the length of a sequence differs from the
// configured k-mer length.
var ErrLengthMismatch = errors.New("kmer: length mismatch")

// ErrAlphabetMismatch means two k-mers of different alphabets are mixed.
var ErrAlphabetMismatch = errors.New("kmer: alphabet mismatch")

// Config is the length and alphabet contract shared by all k-mers of a run.
// It is created once and passed by value, it is never changed afterwards.
type Config struct {
	L        int // k-mer length, i.e., k-1 of the overlap graph
	Alphabet Alphabet
}

// NewConfig returns the configuration for overlaps of k-1 bases.
func NewConfig(k int, a Alphabet) (Config, error) {
	if k < 1 {
		return Config{}, ErrInvalidK
	}
	if a != Nucleotide && a != Colour {
		return Config{}, ErrInvalidAlphabet
	}
	return Config{L: k - 1, Alphabet: a}, nil
}

// Kmer is an immutable fixed-length sequence over one alphabet.
// Kmers are comparable and can be used as map keys directly.
type Kmer struct {
	s string
	a Alphabet
}

// New creates a Kmer from s. Lower case letters are folded to upper case.
func (c Config) New(s []byte) (Kmer, error) {
	if len(s) != c.L {
		return Kmer{}, ErrLengthMismatch
	}
	b := bytes.ToUpper(s)
	if err := c.Alphabet.validate(b); err != nil {
		return Kmer{}, err
	}
	return Kmer{s: string(b), a: c.Alphabet}, nil
}

// MustNew is like New but panics on error. It's used for literals in tests
// and for slices already validated by the caller.
func (c Config) MustNew(s string) Kmer {
	x, err := c.New([]byte(s))
	if err != nil {
		panic(err)
	}
	return x
}

// Len returns the number of symbols.
func (x Kmer) Len() int { return len(x.s) }

// Alphabet returns the alphabet the k-mer was built with.
func (x Kmer) Alphabet() Alphabet { return x.a }

// String returns the symbols.
func (x Kmer) String() string { return x.s }

// Bytes returns a copy of the symbols.
func (x Kmer) Bytes() []byte { return []byte(x.s) }

// Equal tells if two k-mers have the same symbols.
// Comparing k-mers of different lengths or alphabets is a caller error.
func (x Kmer) Equal(y Kmer) bool {
	if len(x.s) != len(y.s) {
		panic(ErrLengthMismatch)
	}
	if x.a != y.a {
		panic(ErrAlphabetMismatch)
	}
	return x.s == y.s
}

// ReverseComplement returns the reverse complement k-mer.
// Colour-space codes are their own complements, so they are only reversed.
func (x Kmer) ReverseComplement() Kmer {
	if len(x.s) == 0 {
		return x
	}
	if x.a == Colour {
		b := []byte(x.s)
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		return Kmer{s: string(b), a: x.a}
	}

	s, err := seq.NewSeqWithoutValidation(seq.DNAredundant, []byte(x.s))
	if err != nil { // never happens, the symbols were validated
		panic(err)
	}
	s.RevComInplace()
	return Kmer{s: string(s.Seq), a: x.a}
}
