package deltalcp

import (
	"math/rand/v2"
	"testing"
)

type model struct {
	idx []uint64
	lcp []uint64
}

func (m *model) pushWithLCP(idx, lcp uint64) {
	m.idx = append(m.idx, idx)
	m.lcp = append(m.lcp, lcp)
}

func (m *model) pop() {
	m.idx = m.idx[:len(m.idx)-1]
	m.lcp = m.lcp[:len(m.lcp)-1]
}

func (m *model) top() (uint64, uint64) {
	n := len(m.idx)
	return m.idx[n-1], m.lcp[n-1]
}

func randomText(rng *rand.Rand, n int) []byte {
	alphabet := []byte("ab")
	t := make([]byte, n)
	for i := range t {
		t[i] = alphabet[rng.IntN(len(alphabet))]
	}
	t[0] = 0
	t[len(t)-1] = 0
	return t
}

func lceNaive(text []byte, i, j uint64) uint64 {
	n := uint64(len(text))
	var l uint64
	for i+l < n && j+l < n && text[i+l] == text[j+l] {
		l++
	}
	return l
}

// driveRealDiscipline replays the same pop-until-<=, LCE-refine, push shape
// that the XSS construction loop uses, so that the (idx, lcp) sequence fed
// to the DeltaLCPStack has the monotonic-from-bottom-to-top structure the
// delta > 0 reconstruction probe depends on. Both the stack under test and
// a plain-slice model are driven in lockstep and cross-checked after every
// operation.
func driveRealDiscipline(t *testing.T, delta uint64) {
	rng := rand.New(rand.NewPCG(uint64(delta)+1, 99))
	text := randomText(rng, 3000)
	n := uint64(len(text))

	s := New(text, delta, 64)
	m := &model{}

	s.PushWithLCP(0, 0)
	m.pushWithLCP(0, 0)

	for i := uint64(1); i < n-1; i++ {
		for {
			topIdx, _ := m.top()
			if text[topIdx] <= text[i] {
				break
			}
			s.PopWithLCP()
			m.pop()
		}

		topIdx, _ := m.top()
		lcp := lceNaive(text, topIdx, i)

		for {
			topIdx, _ = m.top()
			if text[topIdx+lcp] <= text[i+lcp] {
				break
			}
			s.PopWithLCP()
			m.pop()
			topIdx, _ = m.top()
			lcp = lceNaive(text, topIdx, i)
		}

		s.PushWithLCP(i, lcp)
		m.pushWithLCP(i, lcp)

		wantIdx, wantLCP := m.top()
		if gotIdx := s.TopIdx(); gotIdx != wantIdx {
			t.Fatalf("delta=%d: i=%d TopIdx()=%d want %d", delta, i, gotIdx, wantIdx)
		}
		if gotLCP := s.TopLCP(); gotLCP != wantLCP {
			t.Fatalf("delta=%d: i=%d TopLCP()=%d want %d", delta, i, gotLCP, wantLCP)
		}
	}
}

func TestDeltaZeroExact(t *testing.T) {
	driveRealDiscipline(t, 0)
}

func TestDeltaQuantized(t *testing.T) {
	for _, d := range []uint64{1, 2, 4, 8, 16, 32, 64} {
		d := d
		t.Run("", func(t *testing.T) { driveRealDiscipline(t, d) })
	}
}
