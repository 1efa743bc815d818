package seqkmer

import "testing"

func feedBases(c *Cursor, bases string) (last uint64, ready bool) {
	for i := 0; i < len(bases); i++ {
		code, _ := charToValue(bases[i])
		last, ready = c.Next(code)
	}
	return last, ready
}

func TestCursorNotReadyBeforeCapacity(t *testing.T) {
	meros, err := NewMeros(14, 4, 0, 0)
	if err != nil {
		t.Fatalf("NewMeros: %v", err)
	}
	c := NewCursor(meros)
	if _, ready := c.Next(0); ready {
		t.Fatal("cursor should not be ready after a single base with capacity 4")
	}
}

func TestCursorReadyAtCapacity(t *testing.T) {
	meros, err := NewMeros(14, 4, 0, 0)
	if err != nil {
		t.Fatalf("NewMeros: %v", err)
	}
	c := NewCursor(meros)
	lmer, ready := feedBases(&c, "ACGT")
	if !ready {
		t.Fatal("cursor should be ready after capacity bases")
	}
	if want := encodeLmer('A', 'C', 'G', 'T'); lmer != want {
		t.Errorf("lmer = %d, want %d", lmer, want)
	}
}

func TestCursorRollsOverAndMasks(t *testing.T) {
	meros, err := NewMeros(14, 3, 0, 0)
	if err != nil {
		t.Fatalf("NewMeros: %v", err)
	}
	c := NewCursor(meros)
	// feed "ACGT": window of 3 should roll to the last three bases "CGT"
	lmer, ready := feedBases(&c, "ACGT")
	if !ready {
		t.Fatal("cursor should be ready")
	}
	if want := encodeLmer('C', 'G', 'T'); lmer != want {
		t.Errorf("lmer = %d, want %d (CGT, rolled past A)", lmer, want)
	}
}

func TestCursorClearResetsState(t *testing.T) {
	meros, err := NewMeros(14, 4, 0, 0)
	if err != nil {
		t.Fatalf("NewMeros: %v", err)
	}
	c := NewCursor(meros)
	feedBases(&c, "ACGT")
	c.Clear()
	if _, ready := c.Next(0); ready {
		t.Fatal("cursor should require a full capacity of bases again after Clear")
	}
}
