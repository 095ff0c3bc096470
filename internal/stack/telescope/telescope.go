// Package telescope implements TelescopeStack: a stack of strictly
// increasing non-negative integers stored as unary gaps, with a spill path
// for gaps that would not fit in a single word's worth of unary coding.
//
// Grounded on telescope_stack_dynamic.hpp in the retrieved original C++
// source (jonas-ellert/xss-real, include/data_structures/stacks/
// telescope_stack/telescope_stack_dynamic.hpp): gaps up to 127 are coded in
// unary directly into a growable word buffer, using only two registers
// (the current word being filled and the absolute bit cursor) to recover
// the previous top on pop — the "telescoping" trick is that the *value*
// delta between consecutive pushes always equals the *bit-position* delta
// between consecutive unary terminators, so popping back to the previous
// terminator is enough to recover the previous value without storing it.
// Gaps above 127 spill to an explicit (value, bitPosition) checkpoint pair
// on a side stack instead of being unary-coded.
package telescope

import "github.com/go-xss/nss/internal/bitword"

const (
	maxUnaryGap = 127
	msb         = bitword.MSBMask
)

// Stack is a TelescopeStack of strictly increasing uint64 values, always
// starting conceptually below value 0 (the first push establishes the
// baseline).
type Stack struct {
	words []uint64 // completed unary words, append-only, popped from the end
	right []uint64 // spill checkpoints: pushed/popped in (value, bitPos) pairs

	topWord    uint64
	topBitMod  int
	topBit     int64
	topValue   uint64
	depth      int
}

// New returns an empty TelescopeStack. sizeHint is an optional capacity
// hint for the expected number of pushes.
func New(sizeHint int) *Stack {
	s := &Stack{topWord: msb} // bit 0 is the terminator of the first value
	if sizeHint > 0 {
		s.words = make([]uint64, 0, sizeHint/64+1)
	}
	s.right = append(s.right, ^uint64(0)>>1) // sentinel guard, never matched by a real bitPos
	return s
}

// Push pushes value, which must be strictly greater than the current Top
// (or this is the first push).
func (s *Stack) Push(value uint64) {
	if s.depth > 0 {
		offset := value - s.topValue
		if offset > maxUnaryGap {
			s.right = append(s.right, s.topValue, uint64(s.topBit))
		} else {
			s.topBit += int64(offset)
			s.topBitMod += int(offset)
			for s.topBitMod > 63 {
				s.topBitMod -= 64
				s.words = append(s.words, s.topWord)
				s.topWord = 0
			}
			s.topWord |= msb >> uint(s.topBitMod)
		}
	}
	s.topValue = value
	s.depth++
}

// Top returns the current top value. Panics if empty.
func (s *Stack) Top() uint64 {
	if s.depth == 0 {
		panic("telescope: top of empty stack")
	}
	return s.topValue
}

// Len returns the number of elements currently on the stack.
func (s *Stack) Len() int { return s.depth }

// Pop removes the top value.
func (s *Stack) Pop() {
	if s.depth == 0 {
		panic("telescope: pop of empty stack")
	}
	s.depth--
	if s.depth == 0 {
		s.topWord, s.topBitMod, s.topBit, s.topValue = msb, 0, 0, 0
		return
	}

	if uint64(s.topBit) == s.right[len(s.right)-1] {
		s.right = s.right[:len(s.right)-1]
		s.topValue = s.right[len(s.right)-1]
		s.right = s.right[:len(s.right)-1]
		return
	}

	prevTopBit := s.topBit
	s.topWord &^= msb >> uint(s.topBitMod)
	for s.topWord == 0 {
		s.topWord = s.words[len(s.words)-1]
		s.words = s.words[:len(s.words)-1]
	}
	s.topBitMod = 63 - bitword.TrailingZeros64(s.topWord)
	s.topBit = int64(len(s.words))*64 + int64(s.topBitMod)
	s.topValue -= uint64(prevTopBit - s.topBit)
}
