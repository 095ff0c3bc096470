package nss

import "github.com/go-xss/nss/internal/bitvector"

// Result holds whichever output Config.Algorithm requested. Exactly one of
// BP or (PSS and/or NSS, per Config.Mode) is populated.
type Result struct {
	// BP is the length 2n+2 balanced-parenthesis encoding of the
	// Cartesian tree of suffixes, set when Config.Algorithm == AlgorithmBP.
	BP *bitvector.BitVector

	// PSS and NSS are the length-n arrays described in §3, set when
	// Config.Algorithm is AlgorithmArrays or AlgorithmOracle, subject to
	// Config.Mode when AlgorithmArrays is used. Sentinel value n ("no
	// smaller suffix on that side") uses len(PSS) or len(NSS) as n.
	PSS []uint64
	NSS []uint64
}
