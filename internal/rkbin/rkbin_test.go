package rkbin

import (
	"math/rand/v2"
	"testing"

	"github.com/go-xss/nss/internal/bitvector"
)

// buildPacked packs codes (each in [0, 1<<width)) into a bitvector,
// codeWidth bits per code, MSB first within each code.
func buildPacked(codes []uint64, width int) *bitvector.BitVector {
	bv := bitvector.New(len(codes) * width)
	for i, c := range codes {
		bv.WriteBits(i*width, width, c)
	}
	return bv
}

func lceCodesNaive(codes []uint64, i, j uint64) uint64 {
	n := uint64(len(codes))
	var l uint64
	for i+l < n && j+l < n && codes[i+l] == codes[j+l] {
		l++
	}
	return l
}

func TestCodeAtReconstructsOriginalCodes(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	const width = 3
	codes := make([]uint64, 400)
	for i := range codes {
		codes[i] = uint64(rng.IntN(1 << width))
	}

	bv := buildPacked(codes, width)
	r := Build(bv, width)

	for i, want := range codes {
		if got := r.CodeAt(uint64(i)); got != want {
			t.Fatalf("CodeAt(%d)=%d want %d", i, got, want)
		}
	}
}

func TestLCECharactersAgreesWithNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 24))
	const width = 2
	n := 500
	codes := make([]uint64, n)
	for i := 1; i < n-1; i++ {
		codes[i] = uint64(1 + rng.IntN(2)) // avoid the 0 sentinel code mid-text
	}
	codes[0], codes[n-1] = 0, 0

	bv := buildPacked(codes, width)
	r := Build(bv, width)

	for k := 0; k < 1000; k++ {
		i := uint64(1 + rng.IntN(n-2))
		j := uint64(1 + rng.IntN(n-2))
		want := lceCodesNaive(codes, i, j)
		if got := r.LCECharacters(i, j); got != want {
			t.Fatalf("LCECharacters(%d,%d)=%d want %d", i, j, got, want)
		}
	}
}
