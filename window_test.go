package seqkmer

import "testing"

func TestMinimizerWindowCapacityOneEmitsEveryCandidate(t *testing.T) {
	w := NewMinimizerWindow(1)
	for _, c := range []uint64{7, 3, 9, 3} {
		got, changed := w.Next(c)
		if !changed || got != c {
			t.Fatalf("Next(%d) = (%d, %v), want (%d, true)", c, got, changed, c)
		}
	}
}

func TestMinimizerWindowStrictlyIncreasingSequence(t *testing.T) {
	w := NewMinimizerWindow(3)
	type step struct {
		candidate uint64
		wantVal   uint64
		wantOK    bool
	}
	steps := []step{
		{10, 0, false},
		{20, 0, false},
		{30, 0, false},
		{40, 10, true},
		{50, 20, true},
	}
	for i, s := range steps {
		got, ok := w.Next(s.candidate)
		if ok != s.wantOK || (ok && got != s.wantVal) {
			t.Errorf("step %d: Next(%d) = (%d, %v), want (%d, %v)", i, s.candidate, got, ok, s.wantVal, s.wantOK)
		}
	}
}

func TestMinimizerWindowTieBreakKeepsEarliest(t *testing.T) {
	w := NewMinimizerWindow(3)
	type step struct {
		wantVal uint64
		wantOK  bool
	}
	steps := []step{
		{0, false},
		{0, false},
		{0, false},
		{5, true},
		{5, true},
	}
	for i, s := range steps {
		got, ok := w.Next(5)
		if ok != s.wantOK || (ok && got != s.wantVal) {
			t.Errorf("step %d: Next(5) = (%d, %v), want (%d, %v)", i, got, ok, s.wantVal, s.wantOK)
		}
	}
}

func TestMinimizerWindowDisplacesOnSmallerCandidate(t *testing.T) {
	w := NewMinimizerWindow(3)
	w.Next(50)
	w.Next(40)
	w.Next(30)
	// Window is [50,40,30]; a new minimum candidate should immediately
	// displace the prior front and be reported.
	got, ok := w.Next(1)
	if !ok || got != 1 {
		t.Fatalf("Next(1) = (%d, %v), want (1, true)", got, ok)
	}
}

func TestMinimizerWindowClearResetsState(t *testing.T) {
	w := NewMinimizerWindow(3)
	w.Next(10)
	w.Next(20)
	w.Next(30)
	w.Clear()
	// After Clear, the window behaves as freshly constructed: the first
	// three candidates again produce no emission.
	if _, ok := w.Next(1); ok {
		t.Fatal("Next should not emit immediately after Clear")
	}
	if _, ok := w.Next(2); ok {
		t.Fatal("Next should not emit on the second candidate after Clear")
	}
}
