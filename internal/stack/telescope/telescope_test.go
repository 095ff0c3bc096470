package telescope

import (
	"math/rand/v2"
	"testing"
)

func TestPushPopMirrorsSlice(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	s := New(0)
	var model []uint64
	var ops []string

	value := uint64(0)
	for i := 0; i < 20000; i++ {
		doPush := len(model) == 0 || rng.IntN(3) != 0
		if doPush {
			// keep strictly increasing, with a mix of small and huge gaps
			gap := uint64(1 + rng.IntN(5))
			if rng.IntN(10) == 0 {
				gap = uint64(200 + rng.IntN(10000))
			}
			value += gap
			s.Push(value)
			model = append(model, value)
			ops = append(ops, "push")
		} else {
			s.Pop()
			model = model[:len(model)-1]
			ops = append(ops, "pop")
		}

		if len(model) > 0 {
			if got, want := s.Top(), model[len(model)-1]; got != want {
				t.Fatalf("after %d ops (last=%s): Top()=%d want %d", i+1, ops[len(ops)-1], got, want)
			}
		}
		if got, want := s.Len(), len(model); got != want {
			t.Fatalf("after %d ops: Len()=%d want %d", i+1, got, want)
		}
	}
}

func TestFirstPushNoUnderflow(t *testing.T) {
	s := New(4)
	s.Push(0)
	if s.Top() != 0 {
		t.Fatalf("expected top 0, got %d", s.Top())
	}
	s.Push(5)
	if s.Top() != 5 {
		t.Fatalf("expected top 5, got %d", s.Top())
	}
	s.Pop()
	if s.Top() != 0 {
		t.Fatalf("expected top 0 after pop, got %d", s.Top())
	}
}

func TestLargeGapSpill(t *testing.T) {
	s := New(0)
	s.Push(0)
	s.Push(10000)
	s.Push(10001)
	if s.Top() != 10001 {
		t.Fatalf("top mismatch: %d", s.Top())
	}
	s.Pop()
	if s.Top() != 10000 {
		t.Fatalf("top mismatch after pop: %d", s.Top())
	}
	s.Pop()
	if s.Top() != 0 {
		t.Fatalf("top mismatch after second pop: %d", s.Top())
	}
}
