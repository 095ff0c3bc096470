package nss

import (
	"errors"
	"fmt"
	"log"
	"os"
)

// Text is a sentinel-padded byte string ready for construction: Text[0]
// and Text[len(Text)-1] are the reserved minimal sentinel (0x00), and no
// other position holds it.
type Text []byte

// ErrEmptyFile is returned by Load when the (possibly length-capped) input
// file has no bytes to pad with sentinels.
var ErrEmptyFile = errors.New("nss: input file is empty")

// ErrNegativeLengthCap is returned by Load when lengthCap is negative.
var ErrNegativeLengthCap = errors.New("nss: length cap must be >= 0")

// Load reads up to lengthCap bytes from path (0 meaning unbounded),
// standardizes the alphabet so that no byte in the body equals the
// reserved sentinel value, and returns a Text with a 0x00 sentinel
// prepended and appended: len(result) == len(body) + 2. Per §6, this is
// the only I/O the core performs; construction itself never touches a
// file.
func Load(path string, lengthCap int) (Text, error) {
	if lengthCap < 0 {
		return nil, ErrNegativeLengthCap
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nss: loading %s: %w", path, err)
	}
	if lengthCap > 0 && len(raw) > lengthCap {
		raw = raw[:lengthCap]
	}
	if len(raw) == 0 {
		return nil, ErrEmptyFile
	}

	body := standardize(raw)

	t := make(Text, 0, len(body)+2)
	t = append(t, 0)
	t = append(t, body...)
	t = append(t, 0)
	return t, nil
}

// standardize returns a copy of raw in which no byte equals 0x00, per §6
// step 2: if 0x00 occurs and 0xFF is unused, every byte is shifted up by
// one (0x00 becomes 0x01, and nothing can wrap past 0xFF since the
// maximum value was never used); otherwise only the offending 0x00 bytes
// are incremented to 0x01 directly, which can perturb relative order
// among bytes that were already 0x01, so a warning is logged.
func standardize(raw []byte) []byte {
	var hasZero, hasMax bool
	for _, b := range raw {
		switch b {
		case 0x00:
			hasZero = true
		case 0xFF:
			hasMax = true
		}
	}
	if !hasZero {
		return raw
	}

	out := make([]byte, len(raw))
	copy(out, raw)

	if !hasMax {
		for i := range out {
			out[i]++
		}
		return out
	}

	log.Printf("nss: input uses both 0x00 and 0xff; shifting 0x00 bytes to 0x01 in place, results may be perturbed")
	for i := range out {
		if out[i] == 0x00 {
			out[i] = 0x01
		}
	}
	return out
}
