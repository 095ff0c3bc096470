// Package lce defines the LCE (longest common extension) provider contract
// shared by every XSS construction variant, and a naive O(lce) reference
// implementation of it.
//
// Grounded on the retrieved original C++ source (jonas-ellert/xss-real),
// include/data_structures/lce/lce_naive.hpp: a direct byte-by-byte scan
// starting from an optional known common prefix length.
package lce

// Provider answers longest-common-extension queries over a fixed text: the
// length of the longest common prefix of the suffixes starting at i and j.
// Implementations may assume 0 <= i, j < len(text) and may read one byte
// past either suffix's actual common extension (the text's trailing
// sentinel byte guarantees the scan always terminates when i != j; for
// i == j the result is len(text) - i).
type Provider interface {
	// LCE returns the length of the longest common prefix of text[i:] and
	// text[j:]. start, when non-zero, is a known common prefix length the
	// caller has already established; the result is never smaller than it.
	LCE(i, j uint64, start uint64) uint64

	// SuffixLess reports whether the suffix starting at i is
	// lexicographically smaller than the suffix starting at j.
	SuffixLess(i, j uint64) bool
}

// Naive is the reference LCE provider: a direct byte-by-byte scan. It needs
// no preprocessing and is the baseline that every other provider is tested
// against.
type Naive struct {
	text []byte
}

// NewNaive builds a Naive provider over text. text must carry a trailing
// sentinel byte strictly smaller than every other byte that occurs in it,
// so that the scan in LCE is guaranteed to terminate.
func NewNaive(text []byte) *Naive {
	return &Naive{text: text}
}

// LCE implements Provider.
func (p *Naive) LCE(i, j, start uint64) uint64 {
	lcp := start
	t := p.text
	if i == j {
		return uint64(len(t)) - i
	}
	for t[i+lcp] == t[j+lcp] {
		lcp++
	}
	return lcp
}

// SuffixLess implements Provider.
func (p *Naive) SuffixLess(i, j uint64) bool {
	lcp := p.LCE(i, j, 0)
	return p.text[i+lcp] < p.text[j+lcp]
}
