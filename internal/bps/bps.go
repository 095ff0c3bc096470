// Package bps implements BPSupport: navigation over a balanced-parenthesis
// (BP) encoding of an ordered tree, as produced by the XSS construction's
// BP output mode.
//
// The specification permits either a naive per-query implementation or a
// constant-time succinct one; this is the naive variant (queries scan the
// bitstring directly), which is sufficient for the sizes this module is
// exercised at and keeps the navigation logic easy to read against the
// Cartesian-tree-of-suffixes definitions in the root package. A single
// O(n) preprocessing pass builds a preorder-rank lookup so that mapping a
// bit position to its node's preorder number is O(1) rather than a rescan.
package bps

import "github.com/go-xss/nss/internal/bitvector"

// Support wraps a BP bitstring (1 = open, 0 = close) with navigation
// operations.
type Support struct {
	bits   *bitvector.BitVector
	opens  []int // opens[k] = bit position of the k-th opening parenthesis
	rankAt []int // rankAt[p] = preorder rank of the open at position p, or -1
}

// New builds a Support over a balanced bitstring.
func New(bits *bitvector.BitVector) *Support {
	s := &Support{bits: bits, rankAt: make([]int, bits.Len())}
	for p := 0; p < bits.Len(); p++ {
		if bits.Get(p) {
			s.rankAt[p] = len(s.opens)
			s.opens = append(s.opens, p)
		} else {
			s.rankAt[p] = -1
		}
	}
	return s
}

// Len returns the length of the bitstring.
func (s *Support) Len() int { return s.bits.Len() }

// FindClose returns the position of the closing parenthesis matching the
// opening parenthesis at position p.
func (s *Support) FindClose(p int) int {
	balance := 0
	for q := p; q < s.bits.Len(); q++ {
		if s.bits.Get(q) {
			balance++
		} else {
			balance--
		}
		if balance == 0 {
			return q
		}
	}
	panic("bps: unbalanced bitstring: no matching close for open at position")
}

// Enclose returns the position of the opening parenthesis of p's parent
// node, or -1 if p is the root (has no enclosing pair).
func (s *Support) Enclose(p int) int {
	balance := 0
	for q := p - 1; q >= 0; q-- {
		if !s.bits.Get(q) {
			balance++
		} else {
			if balance == 0 {
				return q
			}
			balance--
		}
	}
	return -1
}

// SelectOpen returns the bit position of the k-th opening parenthesis
// (0-indexed).
func (s *Support) SelectOpen(k int) int {
	return s.opens[k]
}

// Preorder returns the preorder rank (0-indexed) of the node whose opening
// parenthesis is at bit position p.
func (s *Support) Preorder(p int) int {
	return s.rankAt[p]
}

// ParentDistance returns the difference in preorder rank between the node
// at p and its parent.
func (s *Support) ParentDistance(p int) int {
	parent := s.Enclose(p)
	if parent < 0 {
		return s.Preorder(p) + 1
	}
	return s.Preorder(p) - s.Preorder(parent)
}

// SubtreeSize returns the number of nodes in the subtree rooted at the
// node whose opening parenthesis is at bit position p.
func (s *Support) SubtreeSize(p int) int {
	return (s.FindClose(p) - p + 1) / 2
}

// PreviousValue returns preorder - parent_distance for the node at preorder
// rank preorder: the standard BP encoding of a Cartesian-tree predecessor
// link (PSS, when the tree is the Cartesian tree of suffixes).
func (s *Support) PreviousValue(preorder int) int {
	p := s.SelectOpen(preorder)
	return preorder - s.ParentDistance(p)
}

// NextValue returns preorder + subtree_size for the node at preorder rank
// preorder: the standard BP encoding of a Cartesian-tree successor link
// (NSS, when the tree is the Cartesian tree of suffixes).
func (s *Support) NextValue(preorder int) int {
	p := s.SelectOpen(preorder)
	return preorder + s.SubtreeSize(p)
}
