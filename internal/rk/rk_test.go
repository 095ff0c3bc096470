package rk

import (
	"math/rand/v2"
	"testing"

	"github.com/go-xss/nss/internal/lce"
)

func randomText(rng *rand.Rand, n int) []byte {
	text := make([]byte, n)
	for i := 1; i < n-1; i++ {
		text[i] = byte('a' + rng.IntN(4))
	}
	text[0], text[n-1] = 0, 0
	return text
}

func TestCharAtReconstructsOriginalText(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	text := randomText(rng, 500)
	f := Build(text)

	for i := range text {
		if got := f.CharAt(uint64(i)); got != text[i] {
			t.Fatalf("CharAt(%d)=%d want %d", i, got, text[i])
		}
	}
}

func TestLCEAgreesWithNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	text := randomText(rng, 600)
	f := Build(text)
	naive := lce.NewNaive(text)

	for k := 0; k < 2000; k++ {
		i := uint64(1 + rng.IntN(len(text)-2))
		j := uint64(1 + rng.IntN(len(text)-2))
		want := naive.LCE(i, j, 0)
		if got := f.LCE(i, j, 0); got != want {
			t.Fatalf("LCE(%d,%d)=%d want %d", i, j, got, want)
		}
	}
}

func TestLCEIdempotenceAndSymmetry(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	text := randomText(rng, 300)
	f := Build(text)
	n := uint64(len(text))

	for k := 0; k < 500; k++ {
		i := uint64(1 + rng.IntN(len(text)-2))
		j := uint64(1 + rng.IntN(len(text)-2))

		if got, want := f.LCE(i, i, 0), n-i; got != want {
			t.Fatalf("LCE(%d,%d)=%d want %d", i, i, got, want)
		}
		if got, want := f.LCE(i, j, 0), f.LCE(j, i, 0); got != want {
			t.Fatalf("LCE not symmetric: LCE(%d,%d)=%d LCE(%d,%d)=%d", i, j, got, j, i, want)
		}
		maxPossible := n - i
		if n-j < maxPossible {
			maxPossible = n - j
		}
		if got := f.LCE(i, j, 0); got > maxPossible {
			t.Fatalf("LCE(%d,%d)=%d exceeds bound %d", i, j, got, maxPossible)
		}
	}
}

func TestSuffixLessAgreesWithNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	text := randomText(rng, 400)
	f := Build(text)
	naive := lce.NewNaive(text)

	for k := 0; k < 1000; k++ {
		i := uint64(1 + rng.IntN(len(text)-2))
		j := uint64(1 + rng.IntN(len(text)-2))
		if i == j {
			continue
		}
		if got, want := f.SuffixLess(i, j), naive.SuffixLess(i, j); got != want {
			t.Fatalf("SuffixLess(%d,%d)=%v want %v", i, j, got, want)
		}
	}
}
