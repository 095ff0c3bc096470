package nss

import (
	"github.com/go-xss/nss/internal/bitvector"
	"github.com/go-xss/nss/internal/bps"
)

// decodeBP recovers PSS and NSS from a BP bitstring using BPSupport's
// previous_value/next_value navigation (§4.6, §8 invariant 2). Preorder 0
// is the virtual super-root; preorder k+1 is text position k, since every
// construction path that can emit BP (the plain loop, run-extension, and
// the Lyndon-skip reconstruction) emits exactly one open bit per text
// position, in increasing position order.
func decodeBP(bv *bitvector.BitVector) (pss, nss []uint64, err error) {
	n := bv.Len()/2 - 1
	support := bps.New(bv)

	pss = make([]uint64, n)
	nss = make([]uint64, n)

	for i := 0; i < n; i++ {
		preorder := i + 1
		prev := support.PreviousValue(preorder)
		next := support.NextValue(preorder)

		if prev <= 0 {
			pss[i] = uint64(n)
		} else {
			pss[i] = uint64(prev - 1)
		}
		if next >= n+1 {
			nss[i] = uint64(n)
		} else {
			nss[i] = uint64(next - 1)
		}
	}
	return pss, nss, nil
}
