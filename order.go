package seqkmer

import "github.com/twotwotwo/sorts"

// MinimizerRecord pairs one scanned minimizer's global ordinal with its
// hash, the unit a collector accumulates from ReadParallel's out-of-order
// worker output before restoring source order for output.
type MinimizerRecord struct {
	Ordinal uint
	Hash    uint64
}

// MinimizerRecordSlice sorts MinimizerRecords by ordinal, undoing the
// reordering introduced by concurrent workers finishing out of turn.
type MinimizerRecordSlice []MinimizerRecord

func (s MinimizerRecordSlice) Len() int           { return len(s) }
func (s MinimizerRecordSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s MinimizerRecordSlice) Less(i, j int) bool { return s[i].Ordinal < s[j].Ordinal }

// HashSlice sorts raw minimizer hashes, used when only the hash set (not
// the originating ordinal) matters, e.g. deduplication before a
// SpaceDist tally.
type HashSlice []uint64

func (s HashSlice) Len() int           { return len(s) }
func (s HashSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s HashSlice) Less(i, j int) bool { return s[i] < s[j] }

// SortByOrdinal restores source order to a batch of minimizer records
// collected from a parallel scan. It uses twotwotwo/sorts' parallel
// quicksort, which falls back to a sequential sort for small slices, so
// callers don't need to special-case short batches.
func SortByOrdinal(records []MinimizerRecord) {
	sorts.Quicksort(MinimizerRecordSlice(records))
}

// SortHashes sorts a slice of minimizer hashes ascending.
func SortHashes(hashes []uint64) {
	sorts.Quicksort(HashSlice(hashes))
}
