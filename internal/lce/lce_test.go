package lce

import (
	"math/rand/v2"
	"testing"
)

func lceSlow(text []byte, i, j uint64) uint64 {
	var l uint64
	for text[i+l] == text[j+l] {
		l++
	}
	return l
}

func TestNaiveLCEMatchesSlowScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	n := 2000
	text := make([]byte, n)
	for i := 1; i < n-1; i++ {
		text[i] = byte('a' + rng.IntN(3))
	}
	text[0], text[n-1] = 0, 0

	p := NewNaive(text)
	for k := 0; k < 5000; k++ {
		i := uint64(1 + rng.IntN(n-2))
		j := uint64(1 + rng.IntN(n-2))
		want := lceSlow(text, i, j)
		if got := p.LCE(i, j, 0); got != want {
			t.Fatalf("LCE(%d,%d)=%d want %d", i, j, got, want)
		}
	}
}

func TestNaiveLCEHonorsStart(t *testing.T) {
	text := []byte("\x00abcabd\x00")
	p := NewNaive(text)
	full := p.LCE(1, 4, 0)
	if full != 2 {
		t.Fatalf("LCE=%d want 2", full)
	}
	if got := p.LCE(1, 4, 1); got != full {
		t.Fatalf("LCE with start=1: got %d want %d", got, full)
	}
}

func TestSuffixLessAgreesWithLexicographicOrder(t *testing.T) {
	text := []byte("\x00banana\x00")
	p := NewNaive(text)

	// suffix at 2 is "anana\x00", suffix at 4 is "ana\x00": "anana..." > "ana..."
	if p.SuffixLess(2, 4) {
		t.Fatalf("suffix(2)=%q should not be less than suffix(4)=%q", text[2:], text[4:])
	}
	if !p.SuffixLess(4, 2) {
		t.Fatalf("suffix(4)=%q should be less than suffix(2)=%q", text[4:], text[2:])
	}
}
