package nss

import (
	"errors"
	"fmt"
)

// Algorithm selects which construction variant Build runs.
type Algorithm int

const (
	// AlgorithmBP runs the XSS construction producing a BP bitstring.
	AlgorithmBP Algorithm = iota
	// AlgorithmArrays runs the XSS construction producing PSS/NSS arrays
	// directly.
	AlgorithmArrays
	// AlgorithmOracle runs the ISA-PSV reference oracle (§4.7): suffix
	// array, inverse suffix array, two monotonic-stack sweeps. Used for
	// correctness checks, never for production output.
	AlgorithmOracle
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmBP:
		return "bp"
	case AlgorithmArrays:
		return "arrays"
	case AlgorithmOracle:
		return "oracle"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ArrayMode narrows AlgorithmArrays to the memory-reuse entry points §9
// asks for: pss-only, nss-only, or both.
type ArrayMode int

const (
	ModeBoth ArrayMode = iota
	ModePSSOnly
	ModeNSSOnly
)

// acceptedDeltas is the set of DeltaLCPStack quantization parameters §6
// accepts on the CLI surface.
var acceptedDeltas = map[uint64]bool{
	0: true, 1: true, 2: true, 4: true, 8: true,
	16: true, 32: true, 64: true,
}

// ErrInvalidDelta is returned by Build when Config.Delta is not one of the
// accepted quantization granularities.
var ErrInvalidDelta = errors.New("nss: delta must be one of 0,1,2,4,8,16,32,64")

// Config selects the construction variant and its parameters.
type Config struct {
	Algorithm Algorithm
	Mode      ArrayMode // only consulted when Algorithm == AlgorithmArrays
	UseRK     bool      // use the in-place Rabin-Karp LCE index instead of the naive scan
	Delta     uint64    // DeltaLCPStack quantization parameter; see acceptedDeltas
}
