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
	"github.com/shenwei356/bio/seq"
)

// Alphabet is the symbol set of the sequences of a run.
type Alphabet uint8

const (
	// Nucleotide is the IUPAC nucleotide code, e.g., ACGT and N.
	Nucleotide Alphabet = iota
	// Colour is the colour-space code of SOLiD reads, digits 0-3 and '.'.
	Colour
)

func (a Alphabet) String() string {
	switch a {
	case Nucleotide:
		return "nucleotide"
	case Colour:
		return "colour-space"
	}
	return "unknown"
}

// DetectAlphabet guesses the alphabet from the first symbol of a sequence:
// a digit means colour space, a letter means nucleotides.
func DetectAlphabet(b byte) (Alphabet, error) {
	switch {
	case b >= '0' && b <= '9':
		return Colour, nil
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z':
		return Nucleotide, nil
	}
	return Nucleotide, ErrInvalidAlphabet
}

func (a Alphabet) validate(s []byte) error {
	switch a {
	case Colour:
		for _, b := range s {
			if !isColour[b] {
				return ErrInvalidAlphabet
			}
		}
		return nil
	case Nucleotide:
		for _, b := range s {
			// the gap letters of bio's alphabet are not bases
			if b == '-' || b == '.' || !seq.DNAredundant.IsValidLetter(b) {
				return ErrInvalidAlphabet
			}
		}
		return nil
	}
	return ErrInvalidAlphabet
}

var isColour = [256]bool{'0': true, '1': true, '2': true, '3': true, '.': true}
