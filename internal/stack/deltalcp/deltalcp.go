// Package deltalcp implements DeltaLCPStack: the compressed open-node stack
// used by the XSS construction. It stores (index, lcp) pairs with indices
// telescoped (package internal/stack/telescope) and lcp values either
// stored exactly (delta == 0, using a sign bit plus unary-coded absolute
// difference) or delta-quantized with exact values recovered on pop by
// probing a handful of 8-byte windows of the original text (delta > 0).
//
// Grounded on the retrieved original C++ source (jonas-ellert/xss-real):
// include/data_structures/stacks/lcp_stack/lcp_stack_delta_0.hpp for the
// exact variant, and lcp_stack_delta_x.hpp for the quantized variant and
// its four-window reconstruction probe.
package deltalcp

import (
	"math/bits"

	"github.com/go-xss/nss/internal/bitword"
	"github.com/go-xss/nss/internal/stack/telescope"
	"github.com/go-xss/nss/internal/stack/unary"
)

// boolStack is the sign/type stack used by the exact (delta == 0) variant:
// one bit per push recording whether the stored lcp difference is relative
// (lcp decreased or stayed the same) or absolute (lcp increased).
// Grounded on bool_stack_dynamic.hpp.
type boolStack struct {
	words    []uint64
	word     uint64
	microIdx int
}

func (b *boolStack) push(v bool) {
	b.microIdx++
	if b.microIdx == 64 {
		b.words = append(b.words, b.word)
		b.word = 0
		b.microIdx = 0
	}
	if v {
		b.word |= bitword.MSBMask >> uint(b.microIdx)
	} else {
		b.word &^= bitword.MSBMask >> uint(b.microIdx)
	}
}

func (b *boolStack) top() bool {
	return b.word&(bitword.MSBMask>>uint(b.microIdx)) != 0
}

func (b *boolStack) pop() {
	if b.microIdx == 0 {
		b.word = b.words[len(b.words)-1]
		b.words = b.words[:len(b.words)-1]
		b.microIdx = 64
	}
	b.microIdx--
}

// Stack is the DeltaLCPStack: a stack of (idx, lcp) pairs with o(n)-bit
// auxiliary space when delta > 0.
type Stack struct {
	text  []byte
	delta uint64
	log2D uint64

	indices *telescope.Stack
	lcps    *unary.Stack
	types   *boolStack

	topLCP uint64
	depth  int
}

// New builds a DeltaLCPStack over text. delta == 0 selects the exact
// variant; delta must otherwise be a power of two (validated by the
// caller against the accepted set {1,2,4,8,16,32,64}).
func New(text []byte, delta uint64, sizeHint int) *Stack {
	s := &Stack{text: text, delta: delta}
	s.indices = telescope.New(sizeHint)
	s.lcps = unary.New(sizeHint)
	if delta == 0 {
		s.types = &boolStack{}
	} else {
		s.log2D = uint64(bits.TrailingZeros64(delta))
	}
	return s
}

func (s *Stack) isAbsolute(l1, l2 uint64) bool {
	return l1 < l2 && s.delta <= l1
}

func (s *Stack) isRelative(l1, l2 uint64) bool {
	return l1 >= l2 && s.delta <= (l1-l2)
}

func (s *Stack) isTransformable(l1, l2 uint64) bool {
	return s.isAbsolute(l1, l2) || s.isRelative(l1, l2)
}

// PushWithLCP pushes a new open node at idx whose LCE with its stack
// neighbor equals lcp.
func (s *Stack) PushWithLCP(idx, lcp uint64) {
	s.indices.Push(idx)

	if s.delta == 0 {
		if lcp <= s.topLCP {
			s.lcps.Push(s.topLCP - lcp + 1)
			s.types.push(true)
		} else {
			s.lcps.Push(s.topLCP + 1)
			s.types.push(false)
		}
	} else {
		switch {
		case s.isAbsolute(s.topLCP, lcp):
			s.lcps.Push(s.topLCP >> s.log2D)
		case s.isRelative(s.topLCP, lcp):
			s.lcps.Push((s.topLCP - lcp) >> s.log2D)
		}
	}

	s.topLCP = lcp
	s.depth++
}

// PushWithoutLCP pushes a node whose lcp annotation is not needed (used by
// the XSS run-extension/Lyndon-skip fast paths, which restore the stack
// shape without recomputing every lcp).
func (s *Stack) PushWithoutLCP(idx uint64) {
	s.indices.Push(idx)
	s.depth++
}

// PopWithLCP pops the top node and recomputes the lcp of the new top.
func (s *Stack) PopWithLCP() {
	s.indices.Pop()
	s.depth--

	if s.delta == 0 {
		if s.types.top() {
			s.topLCP += s.lcps.Top() - 1
		} else {
			s.topLCP = s.lcps.Top() - 1
		}
		s.lcps.Pop()
		s.types.pop()
		return
	}

	idx2 := s.indices.Top()
	if idx2 == 0 {
		if s.lcps.Len() > 0 {
			s.lcps.Pop()
		}
		s.topLCP = 0
		return
	}

	s.indices.Pop()
	idx1 := s.indices.Top()
	s.indices.Push(idx2)

	var transform uint64
	if s.lcps.Len() > 0 {
		transform = s.lcps.Top() << s.log2D
	} else {
		transform = s.topLCP + s.delta
	}

	result := s.probe(idx1, idx2, transform)

	if s.isTransformable(result, s.topLCP) {
		s.lcps.Pop()
	}
	s.topLCP = result
}

// probe reconstructs the exact lcp of (idx1, idx2) by scanning up to four
// delta-wide windows anchored at offsets {0, topLCP, transform,
// topLCP+transform}, the offsets at which the old and new lcp values could
// plausibly diverge.
func (s *Stack) probe(idx1, idx2, transform uint64) uint64 {
	n := uint64(len(s.text))
	result := ^uint64(0)

	scan := func(base uint64) {
		for k := uint64(0); k < s.delta; k++ {
			a, b := idx1+base+k, idx2+base+k
			if b >= n {
				return
			}
			if s.text[a] != s.text[b] {
				off := base + k
				if off < result {
					result = off
				}
				return
			}
		}
	}

	scan(0)
	if idx2+s.topLCP < n {
		scan(s.topLCP)
	}
	if idx2+transform < n {
		scan(transform)
	}
	if idx2+transform+s.topLCP < n {
		scan(transform + s.topLCP)
	}

	return result
}

// PopWithoutLCP pops a node that was pushed via PushWithoutLCP.
func (s *Stack) PopWithoutLCP() {
	s.indices.Pop()
	s.depth--
}

// TopIdx returns the index of the current top node.
func (s *Stack) TopIdx() uint64 { return s.indices.Top() }

// TopLCP returns the lcp annotation of the current top node.
func (s *Stack) TopLCP() uint64 { return s.topLCP }

// Len returns the number of nodes currently on the stack.
func (s *Stack) Len() int { return s.depth }
