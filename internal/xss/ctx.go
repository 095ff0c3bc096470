package xss

import (
	"github.com/go-xss/nss/internal/bitvector"
	"github.com/go-xss/nss/internal/stack/buffered"
)

// ctx bundles the BP output cursor with the open-node stack, mirroring
// xss_real_ctx.hpp from the retrieved original source: the construction
// loop only ever talks to a handful of open/close/push/pop primitives,
// never to the bitvector or stack directly.
type ctx struct {
	text   []byte
	bv     *bitvector.BitVector
	stack  *buffered.Stack
	cursor int
}

func newCtx(text []byte, delta uint64) *ctx {
	n := len(text)
	c := &ctx{
		text:  text,
		bv:    bitvector.New(2*n + 2),
		stack: buffered.New(text, delta, 1024),
	}
	c.stack.PushWithLCP(0, 0)
	return c
}

func (c *ctx) open() {
	c.bv.Set(c.cursor)
	c.cursor++
}

func (c *ctx) close() {
	c.cursor++
}

func (c *ctx) at(idx int) bool { return c.bv.Get(idx) }

func (c *ctx) currentLength() int { return c.cursor }

func (c *ctx) pushWithLCP(idx, lcp uint64) { c.stack.PushWithLCP(idx, lcp) }
func (c *ctx) pushWithoutLCP(idx uint64)   { c.stack.PushWithoutLCP(idx) }
func (c *ctx) popWithLCP()                 { c.stack.PopWithLCP() }
func (c *ctx) popWithoutLCP()              { c.stack.PopWithoutLCP() }
func (c *ctx) topIdx() uint64              { return c.stack.TopIdx() }
func (c *ctx) topLCP() uint64              { return c.stack.TopLCP() }
func (c *ctx) size() int                   { return c.stack.Len() }

// appendCopy reproduces the bits at [source, source+length) at the current
// cursor position. The original copies whole 64-bit words at a time; this
// reproduces the same final bitstring one bit at a time, which is simpler
// to state correctly and differs only in constant factor, not in the
// bits produced.
func (c *ctx) appendCopy(source, length int) {
	for k := 0; k < length; k++ {
		if c.at(source + k) {
			c.open()
		} else {
			c.close()
		}
	}
}

func (c *ctx) extendIncreasingRun(period, repetitions int) {
	perRep := 2*period - 1
	from := c.currentLength() - perRep
	c.appendCopy(from, perRep*repetitions)
}

func (c *ctx) extendDecreasingRun(period, repetitions int) {
	perRep := 2 * period
	from := c.currentLength() - perRep
	c.appendCopy(from, perRep*repetitions)
}
