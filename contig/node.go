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
	"strconv"
)

// ErrInvalidNode means a string can not be parsed as an oriented contig.
var ErrInvalidNode = errors.New("contig: invalid oriented contig, e.g., 12+ or 12-")

// Sense is the orientation of a contig.
type Sense uint8

const (
	// Forward means the contig as read.
	Forward Sense = iota
	// Reverse means the reverse complement of the contig.
	Reverse
)

// Strands are the symbols of the two senses.
var Strands = [2]byte{'+', '-'}

// Flip returns the opposite sense.
func (s Sense) Flip() Sense {
	if s == Forward {
		return Reverse
	}
	return Forward
}

func (s Sense) String() string {
	return string(Strands[s])
}

// Node is a contig in one orientation. The two orientations of
// one contig are different nodes.
type Node struct {
	ID    int
	Sense Sense
}

// Flip returns the same contig in the opposite orientation.
func (n Node) Flip() Node {
	return Node{ID: n.ID, Sense: n.Sense.Flip()}
}

// Xor flips the node if s is Reverse, i.e., it re-orients n relative
// to a traversal in the direction s.
func (n Node) Xor(s Sense) Node {
	if s == Reverse {
		return n.Flip()
	}
	return n
}

func (n Node) String() string {
	return strconv.Itoa(n.ID) + string(Strands[n.Sense])
}

// ParseNode parses strings like "12+" and "12-".
func ParseNode(s string) (Node, error) {
	if len(s) < 2 {
		return Node{}, ErrInvalidNode
	}
	var sense Sense
	switch s[len(s)-1] {
	case '+':
		sense = Forward
	case '-':
		sense = Reverse
	default:
		return Node{}, ErrInvalidNode
	}
	id, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || id < 0 {
		return Node{}, ErrInvalidNode
	}
	return Node{ID: id, Sense: sense}, nil
}
