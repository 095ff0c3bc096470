// Package buffered implements BufferedStack: a small double-ended ring of
// raw (idx, lcp) pairs placed in front of a DeltaLCPStack (package
// internal/stack/deltalcp), so that the common "push then immediately pop"
// pattern of the XSS construction loop on mostly-aperiodic text never
// touches the compressed backing store at all.
//
// Grounded on buffer_stack.hpp in the retrieved original C++ source
// (jonas-ellert/xss-real, include/data_structures/stacks/buffer_stack/
// buffer_stack.hpp): a fixed-capacity two-half ring that spills its bottom
// half to the backing stack when full, and refills half its capacity from
// the backing stack when it empties. The original manages raw malloc'd
// 512KiB blocks in a doubly linked list; Go's growable slices make the
// block bookkeeping unnecessary, so this keeps the original's halving
// policy but implements the ring as a capped slice.
package buffered

import "github.com/go-xss/nss/internal/stack/deltalcp"

// ringHalf pairs of (idx, lcp), each a pair of uint64 (16 bytes), so each
// half occupies 64KiB -- matching the block size the original allocates.
const ringHalf = 4096

type pair struct{ idx, lcp uint64 }

// Stack is a BufferedStack wrapping a DeltaLCPStack backing store.
type Stack struct {
	backing *deltalcp.Stack
	buf     []pair
}

// New builds a BufferedStack over text, forwarding delta and the size hint
// to the backing DeltaLCPStack.
func New(text []byte, delta uint64, sizeHint int) *Stack {
	return &Stack{
		backing: deltalcp.New(text, delta, sizeHint),
		buf:     make([]pair, 0, 2*ringHalf),
	}
}

// PushWithLCP pushes (idx, lcp) onto the stack.
func (s *Stack) PushWithLCP(idx, lcp uint64) {
	if len(s.buf) == cap(s.buf) {
		bottom := append([]pair(nil), s.buf[:ringHalf]...)
		for _, p := range bottom {
			s.backing.PushWithLCP(p.idx, p.lcp)
		}
		copy(s.buf, s.buf[ringHalf:])
		s.buf = s.buf[:len(s.buf)-ringHalf]
	}
	s.buf = append(s.buf, pair{idx, lcp})
}

// PopWithLCP pops the top (idx, lcp) pair.
func (s *Stack) PopWithLCP() {
	if len(s.buf) == 0 {
		s.refill()
	}
	s.buf = s.buf[:len(s.buf)-1]
}

func (s *Stack) refill() {
	count := ringHalf
	if l := s.backing.Len(); l < count {
		count = l
	}
	refill := make([]pair, count)
	for i := count - 1; i >= 0; i-- {
		refill[i] = pair{s.backing.TopIdx(), s.backing.TopLCP()}
		s.backing.PopWithLCP()
	}
	s.buf = append(s.buf, refill...)
}

// PushWithoutLCP pushes idx without an lcp annotation. This is the rare
// path (run-extension / Lyndon-skip bookkeeping), so it simply flushes the
// ring to the backing store first and delegates: the backing
// DeltaLCPStack's lcp register is left untouched by its own
// PushWithoutLCP (lcp_stack_buffered.hpp: push_without_lcp/
// pop_without_lcp touch only the index deque, never the lcp one), which
// is exactly the point -- the node below keeps whatever lcp it already
// had, reused unchanged for the newly pushed index.
func (s *Stack) PushWithoutLCP(idx uint64) {
	s.flush()
	s.backing.PushWithoutLCP(idx)
}

// PopWithoutLCP pops a node that carries no lcp annotation. It must flush
// and delegate exactly like PushWithoutLCP rather than trimming the ring
// directly: the ring stores (idx, lcp) as one pair per slot, so popping a
// ring entry in place would discard the popped node's lcp along with its
// idx, leaving TopLCP() reporting the entry one level further down --
// not the popped entry's own lcp, which a decreasing-run collapse
// (PopWithoutLCP immediately followed by PushWithoutLCP) needs preserved
// and reused for the new top. Flushing first moves that bookkeeping onto
// the backing store, whose own PopWithoutLCP already leaves the lcp
// register untouched.
func (s *Stack) PopWithoutLCP() {
	s.flush()
	s.backing.PopWithoutLCP()
}

func (s *Stack) flush() {
	for _, p := range s.buf {
		s.backing.PushWithLCP(p.idx, p.lcp)
	}
	s.buf = s.buf[:0]
}

// TopIdx returns the index of the current top node.
func (s *Stack) TopIdx() uint64 {
	if len(s.buf) > 0 {
		return s.buf[len(s.buf)-1].idx
	}
	return s.backing.TopIdx()
}

// TopLCP returns the lcp annotation of the current top node.
func (s *Stack) TopLCP() uint64 {
	if len(s.buf) > 0 {
		return s.buf[len(s.buf)-1].lcp
	}
	return s.backing.TopLCP()
}

// Len returns the total number of nodes on the stack (buffered + backing).
func (s *Stack) Len() int {
	return len(s.buf) + s.backing.Len()
}
