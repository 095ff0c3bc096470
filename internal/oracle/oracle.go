// Package oracle implements the ISA-PSV reference construction used as the
// correctness ground truth in §8: a suffix array, inverted into an ISA
// (inverse suffix array), swept twice with a monotonic stack to recover
// PSS and NSS directly from the ISA's integer values.
//
// Grounded on the retrieved original C++ source (jonas-ellert/xss-real),
// include/algorithms/nss_isa.hpp: build an array of suffix ranks, then walk
// it once left-to-right with an open-node stack exactly like the XSS
// construction's own pop/push loop, except the comparison is a plain
// integer "<" on ranks instead of a byte/LCE comparison. This port builds
// its own suffix array (the original calls divsufsort, which this module
// deliberately does not depend on — no suffix-array construction is in
// scope per the distilled spec's Non-goals) and computes both PSS and NSS
// with two independent monotonic-stack sweeps rather than nss_isa.hpp's
// single chained-pop sweep, trading a constant factor for code that is
// easy to read against the PSV/NSV definitions directly.
package oracle

import (
	"bytes"
	"sort"
)

// suffixArray returns the permutation of [0, n) that lists every suffix of
// text in lexicographically increasing order. It exists purely to build
// the ISA below; the construction is the ordinary comparison sort, which
// is fine for a test oracle that is never on the hot path (§4.7: "any
// standard linear-time algorithm" — an O(n^2 log n) comparison sort meets
// every case this package is exercised at).
func suffixArray(text []byte) []int {
	n := len(text)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(a, b int) bool {
		return bytes.Compare(text[sa[a]:], text[sa[b]:]) < 0
	})
	return sa
}

// inverse returns the inverse permutation of sa: isa[p] is the rank (0-
// indexed) of the suffix starting at position p.
func inverse(sa []int) []int {
	isa := make([]int, len(sa))
	for rank, pos := range sa {
		isa[pos] = rank
	}
	return isa
}

// PSSNSS computes the ground-truth PSS and NSS arrays for text via suffix
// array inversion and two monotonic-stack PSV/NSV sweeps over the ISA, per
// §4.7. text must already carry the sentinel bytes at position 0 and
// position len(text)-1 (see the root package's Text type); n = len(text).
func PSSNSS(text []byte) (pss, nss []uint64) {
	n := len(text)
	isa := inverse(suffixArray(text))

	pss = make([]uint64, n)
	nss = make([]uint64, n)

	// PSV sweep: for each i, the largest j < i with isa[j] < isa[i].
	stack := make([]int, 0, n)
	for i := 0; i < n; i++ {
		for len(stack) > 0 && isa[stack[len(stack)-1]] > isa[i] {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			pss[i] = uint64(n)
		} else {
			pss[i] = uint64(stack[len(stack)-1])
		}
		stack = append(stack, i)
	}

	// NSV sweep: for each i, the smallest j > i with isa[j] < isa[i].
	stack = stack[:0]
	for i := n - 1; i >= 0; i-- {
		for len(stack) > 0 && isa[stack[len(stack)-1]] > isa[i] {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			nss[i] = uint64(n)
		} else {
			nss[i] = uint64(stack[len(stack)-1])
		}
		stack = append(stack, i)
	}

	return pss, nss
}
