// Package unary implements UnaryStack: a stack of small positive
// integers (magnitude <= 127 on the fast path) stored directly in unary,
// with a checkpoint spill path for larger values.
//
// Grounded on unary_stack_dynamic.hpp in the retrieved original C++ source
// (jonas-ellert/xss-real, include/data_structures/stacks/unary_stack/
// unary_stack_dynamic.hpp). Unlike TelescopeStack (package
// internal/stack/telescope), which encodes the *delta* between strictly
// increasing values, UnaryStack encodes the *magnitude* of each value
// directly: pushing a new value commits the unary encoding of the value
// that was previously on top (a one-step lookahead), so popping recovers
// that committed value either from the unary run length or from a
// (value, bitPosition) checkpoint when the value exceeded the fast-path
// threshold.
package unary

import "github.com/go-xss/nss/internal/bitword"

const (
	fastPathMax = 127
	msb         = bitword.MSBMask
)

// Stack holds positive uint64 magnitudes. A value of 0 has no unary code
// (its terminator would coincide with the previous one) and is not supported.
type Stack struct {
	words []uint64
	right []uint64

	topWord   uint64
	topBitMod int
	topBit    int64
	topValue  uint64
	depth     int
}

// New returns an empty UnaryStack. sizeHint is an optional capacity hint.
func New(sizeHint int) *Stack {
	s := &Stack{topWord: msb, topValue: 1} // bit 0 is the base terminator
	if sizeHint > 0 {
		s.words = make([]uint64, 0, sizeHint/64+1)
	}
	s.right = append(s.right, ^uint64(0)>>1)
	return s
}

// Push pushes a new positive value.
func (s *Stack) Push(value uint64) {
	if s.depth > 0 {
		if s.topValue > fastPathMax {
			s.right = append(s.right, s.topValue, uint64(s.topBit))
		} else {
			s.topBit += int64(s.topValue)
			s.topBitMod += int(s.topValue)
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
		panic("unary: top of empty stack")
	}
	return s.topValue
}

// Len returns the number of elements on the stack.
func (s *Stack) Len() int { return s.depth }

// Pop removes the top value.
func (s *Stack) Pop() {
	if s.depth == 0 {
		panic("unary: pop of empty stack")
	}
	s.depth--
	if s.depth == 0 {
		s.topWord, s.topBitMod, s.topBit, s.topValue = msb, 0, 0, 1
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
	s.topValue = uint64(prevTopBit - s.topBit)
}
