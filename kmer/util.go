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
	"hash/fnv"

	"github.com/shenwei356/kmers"
)

// Hash returns a 64-bit hash value, equal k-mers always have the same value.
//
// Nucleotide k-mers no longer than 32 bases are 2-bit encoded first,
// degenerate bases share the code of one of their bases, which only
// causes collisions but never breaks the consistency with Equal.
func (x Kmer) Hash() uint64 {
	if x.a == Nucleotide && len(x.s) <= 32 {
		code, err := kmers.Encode([]byte(x.s))
		if err == nil {
			return hash64(code)
		}
	}

	h := fnv.New64a()
	h.Write([]byte(x.s))
	return h.Sum64()
}

// hash64 is Thomas Wang's 64-bit integer hash, it spreads 2-bit codes
// which differ in only a few low bits.
func hash64(key uint64) uint64 {
	key = (^key) + (key << 21)
	key = key ^ (key >> 24)
	key = (key + (key << 3)) + (key << 8)
	key = key ^ (key >> 14)
	key = (key + (key << 2)) + (key << 4)
	key = key ^ (key >> 28)
	key = key + (key << 31)
	return key
}

// IsLowComplexity checks if a k-mer is of low-complexity, e.g., a homopolymer
// or a short tandem repeat. Such end k-mers are expected to fan out into
// many overlaps.
func (x Kmer) IsLowComplexity() bool {
	k := len(x.s)

	count := make(map[string]int, k)
	_ke := k / 2
	var e, i, c int
	var s string
	for _k := 2; _k <= _ke; _k++ {
		clear(count)
		e = k - _k
		for i = 0; i <= e; i++ {
			s = x.s[i : i+_k]
			count[s]++
		}
		for s, c = range count {
			if c == 1 {
				continue
			}

			// c>=4:
			//   1. >=2mer * 4
			//   2. poly N longer longer than 4: like AAAAA
			// len(s)+c >= 6:
			//   1. 2mer for >=4 times
			//   2. 3mer for >=3 times
			//   3. 4+mer for >=2 times
			if c >= 4 || len(s)+c >= 6 {
				return true
			}
		}
	}

	return false
}
