package seqkmer

// MinimizerData is one entry in the monotonic deque. Pos is the l-mer
// ordinal, used only to evict entries once they fall out of the window.
type MinimizerData struct {
	CandidateLmer uint64
	Pos           uint
}

// MinimizerWindow maintains the sliding minimum of candidate l-mers over
// the last Capacity entries via a monotonic deque (front = minimum). It
// yields a value only when the identity of the minimum changes, so a
// stable run of the same minimum produces no repeated output.
type MinimizerWindow struct {
	queue    []MinimizerData
	count    uint
	capacity uint
}

// NewMinimizerWindow builds a window of the given capacity (k_mer -
// l_mer + 1 l-mers per k-mer).
func NewMinimizerWindow(capacity int) *MinimizerWindow {
	return &MinimizerWindow{
		queue:    make([]MinimizerData, 0, capacity),
		capacity: uint(capacity),
	}
}

// Next feeds one candidate l-mer into the window and reports the current
// minimum whenever its identity changes: the window first fills, or the
// previous minimum is evicted or displaced.
func (w *MinimizerWindow) Next(candidate uint64) (uint64, bool) {
	if w.capacity == 1 {
		return candidate, true
	}

	// Evict back entries that can no longer be the minimum. Strict ">"
	// keeps entries equal to candidate — the earliest among ties wins.
	for len(w.queue) > 0 && w.queue[len(w.queue)-1].CandidateLmer > candidate {
		w.queue = w.queue[:len(w.queue)-1]
	}

	changed := (len(w.queue) == 0 && w.count >= w.capacity) || w.count == w.capacity

	w.queue = append(w.queue, MinimizerData{CandidateLmer: candidate, Pos: w.count})

	for len(w.queue) > 0 && w.count >= w.capacity && w.queue[0].Pos < w.count-w.capacity {
		w.queue = w.queue[1:]
		changed = true
	}

	w.count++
	if changed {
		return w.queue[0].CandidateLmer, true
	}
	return 0, false
}

// Clear empties the window. Called in tandem with Cursor.Clear whenever
// an ambiguous base breaks the scan.
func (w *MinimizerWindow) Clear() {
	w.count = 0
	w.queue = w.queue[:0]
}
