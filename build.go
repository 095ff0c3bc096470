package nss

import (
	"errors"
	"fmt"

	"github.com/go-xss/nss/internal/lce"
	"github.com/go-xss/nss/internal/oracle"
	"github.com/go-xss/nss/internal/rk"
	"github.com/go-xss/nss/internal/xss"
)

// ErrTextTooShort is returned by Build when t has fewer than the three
// bytes required to hold both sentinels and at least one interior byte.
var ErrTextTooShort = errors.New("nss: text must have length >= 3")

// Build runs the construction variant selected by cfg over t and returns
// the result. It never starts a goroutine and runs to completion
// synchronously, per §5: there is no concurrency, no suspension point,
// and no partial result on error.
func Build(t Text, cfg Config) (Result, error) {
	if len(t) < 3 {
		return Result{}, ErrTextTooShort
	}
	if !acceptedDeltas[cfg.Delta] {
		return Result{}, ErrInvalidDelta
	}

	if cfg.Algorithm == AlgorithmOracle {
		pss, nss := oracle.PSSNSS(t)
		return Result{PSS: pss, NSS: nss}, nil
	}

	provider := lceProvider(t, cfg.UseRK)

	switch cfg.Algorithm {
	case AlgorithmBP:
		bv := xss.BuildBP(t, cfg.Delta, provider)
		return Result{BP: bv}, nil

	case AlgorithmArrays:
		switch cfg.Mode {
		case ModePSSOnly:
			pss := xss.BuildPSSOnly(t, cfg.Delta, provider)
			return Result{PSS: pss}, nil
		case ModeNSSOnly:
			nss := xss.BuildNSSOnly(t, cfg.Delta, provider)
			return Result{NSS: nss}, nil
		default:
			pss, nss := xss.BuildBoth(t, cfg.Delta, provider)
			return Result{PSS: pss, NSS: nss}, nil
		}

	default:
		return Result{}, fmt.Errorf("nss: unknown algorithm %s", cfg.Algorithm)
	}
}

// lceProvider selects the LCE provider per §9: the in-place Rabin-Karp
// index for O(log n) queries, or a direct byte-by-byte scan.
func lceProvider(t Text, useRK bool) lce.Provider {
	if useRK {
		return rk.Build(t)
	}
	return lce.NewNaive(t)
}

// ToArrays converts a BP-mode Result to PSS/NSS arrays via BPSupport
// navigation (§8 invariant 2: the two representations must agree). This
// is the path a caller who built BP should prefer over rerunning the
// arrays-mode construction (the CLI does not call it; its --mode=bp
// report prints only the BP length), since the arrays it yields are
// exact even in the amortized-look-ahead zone that the arrays-mode engine
// (internal/xss.BuildBoth) does not fast-path -- see that package's doc
// comment.
func (r Result) ToArrays() (pss, nss []uint64, err error) {
	if r.BP == nil {
		return nil, nil, errors.New("nss: ToArrays requires a BP result")
	}
	return decodeBP(r.BP)
}
