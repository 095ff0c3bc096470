package oracle

import (
	"reflect"
	"testing"
)

func u64s(xs ...int) []uint64 {
	out := make([]uint64, len(xs))
	for i, x := range xs {
		out[i] = uint64(x)
	}
	return out
}

func TestPSSNSSLiteralScenarios(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		wantPSS []uint64
		wantNSS []uint64
	}{
		{
			name:    "ABABC",
			text:    "\x00ABABC\x00",
			wantPSS: u64s(7, 7, 2, 2, 4, 2, 7),
			wantNSS: u64s(6, 6, 3, 6, 5, 6, 7),
		},
		{
			name:    "AAAAA",
			text:    "\x00AAAAA\x00",
			wantPSS: u64s(7, 7, 1, 2, 3, 4, 7),
			wantNSS: u64s(6, 6, 6, 6, 6, 6, 7),
		},
		{
			name:    "CBA",
			text:    "\x00CBA\x00",
			wantPSS: u64s(5, 0, 0, 0, 5),
			wantNSS: u64s(4, 2, 3, 4, 5),
		},
		{
			name:    "ABC",
			text:    "\x00ABC\x00",
			wantPSS: u64s(5, 5, 1, 2, 5),
			wantNSS: u64s(4, 4, 4, 4, 5),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pss, nss := PSSNSS([]byte(c.text))
			if !reflect.DeepEqual(pss, c.wantPSS) {
				t.Fatalf("PSS = %v, want %v", pss, c.wantPSS)
			}
			if !reflect.DeepEqual(nss, c.wantNSS) {
				t.Fatalf("NSS = %v, want %v", nss, c.wantNSS)
			}
		})
	}
}

func TestPSSNSSBoundaryN3(t *testing.T) {
	pss, nss := PSSNSS([]byte("\x00a\x00"))
	if !reflect.DeepEqual(pss, u64s(3, 0, 3)) {
		t.Fatalf("PSS = %v, want [3 0 3]", pss)
	}
	if !reflect.DeepEqual(nss, u64s(2, 2, 3)) {
		t.Fatalf("NSS = %v, want [2 2 3]", nss)
	}
}

func TestPSSNSSStrictlyIncreasing(t *testing.T) {
	text := []byte("\x00abcdefghij\x00")
	n := len(text)
	pss, nss := PSSNSS(text)
	for i := 2; i < n-1; i++ {
		if pss[i] != uint64(i-1) {
			t.Fatalf("PSS[%d] = %d, want %d", i, pss[i], i-1)
		}
	}
	for i := 1; i < n-1; i++ {
		if nss[i] != uint64(n-1) {
			t.Fatalf("NSS[%d] = %d, want %d", i, nss[i], n-1)
		}
	}
}

func TestPSSNSSStrictlyDecreasing(t *testing.T) {
	text := []byte("\x00jihgfedcba\x00")
	n := len(text)
	pss, nss := PSSNSS(text)
	for i := 1; i < n-1; i++ {
		if pss[i] != 0 {
			t.Fatalf("PSS[%d] = %d, want 0", i, pss[i])
		}
	}
	for i := 1; i < n-2; i++ {
		if nss[i] != uint64(i+1) {
			t.Fatalf("NSS[%d] = %d, want %d", i, nss[i], i+1)
		}
	}
}
