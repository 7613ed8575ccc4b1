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

package adjlist

import (
	"errors"
	"runtime"
)

// ErrInvalidK means the k-mer size is missing or not positive.
var ErrInvalidK = errors.New("adjlist: invalid k-mer size, k should be positive")

// Options configures a Builder.
type Options struct {
	K int // k-mer size, adjacent contigs overlap by k-1 bases

	Threads int // number of goroutines for indexing and connecting, <=0 for all CPUs

	// Progress, if not nil, is called with the number of oriented contigs
	// connected since the last call. It may be called concurrently.
	Progress func(n int)
}

// DefaultOptions returns options with all CPUs used.
func DefaultOptions(k int) Options {
	return Options{K: k, Threads: runtime.NumCPU()}
}

func (o *Options) validate() error {
	if o.K < 1 {
		return ErrInvalidK
	}
	if o.Threads <= 0 {
		o.Threads = runtime.NumCPU()
	}
	return nil
}
