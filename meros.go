package seqkmer

import "fmt"

// BitsPerChar is the number of bits used to pack one base into the rolling
// l-mer accumulator.
const BitsPerChar = 2

// Meros holds the immutable parameters of a minimizer scan. Build it once
// with NewMeros and share it by reference across workers; it carries no
// mutable state.
type Meros struct {
	KMer           int
	LMer           int
	SpacedSeedMask uint64
	ToggleMask     uint64

	// Mask clamps the rolling cursor to LMer*BitsPerChar bits.
	Mask uint64
	// WindowSize is the number of l-mers considered per k-mer window.
	WindowSize int
}

// NewMeros validates k_mer/l_mer and precomputes Mask and WindowSize.
// spacedSeedMask of 0 disables the spaced seed.
func NewMeros(kMer, lMer int, spacedSeedMask, toggleMask uint64) (*Meros, error) {
	if lMer <= 0 || lMer > 31 {
		return nil, fmt.Errorf("seqkmer: l_mer must be in (0, 31], got %d", lMer)
	}
	if kMer < lMer {
		return nil, fmt.Errorf("seqkmer: k_mer (%d) must be >= l_mer (%d)", kMer, lMer)
	}
	return &Meros{
		KMer:           kMer,
		LMer:           lMer,
		SpacedSeedMask: spacedSeedMask,
		ToggleMask:     toggleMask,
		Mask:           (uint64(1) << (BitsPerChar * uint(lMer))) - 1,
		WindowSize:     kMer - lMer + 1,
	}, nil
}
