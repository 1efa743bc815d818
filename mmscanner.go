package seqkmer

import "strconv"

// MinimizerIterator produces a lazy, finite, non-restartable stream of
// (ordinal, hash) pairs over a sequence. It is single-pass: clone by
// reconstructing from the owning Base[[]byte] via ScanSequence.
type MinimizerIterator struct {
	seq    []byte
	meros  *Meros
	cursor Cursor
	window *MinimizerWindow
	pos    int
	end    int
	// Size is the count of minimizers emitted so far; it is the ordinal
	// of the next emission minus one, and the first minimizer has
	// ordinal 1.
	Size int
}

// NewMinimizerIterator builds an iterator over seq using cursor and
// window, both freshly constructed for this scan.
func NewMinimizerIterator(seq []byte, cursor Cursor, window *MinimizerWindow, meros *Meros) *MinimizerIterator {
	return &MinimizerIterator{
		seq:    seq,
		meros:  meros,
		cursor: cursor,
		window: window,
		end:    len(seq),
	}
}

// SeqSize returns the full byte length of the scanned sequence.
func (it *MinimizerIterator) SeqSize() int {
	return it.end
}

func (it *MinimizerIterator) clearState() {
	it.cursor.Clear()
	it.window.Clear()
}

// Next advances through the sequence and returns the next (ordinal, hash)
// pair, or ok=false once the sequence is exhausted. '\n'/'\r' are skipped
// without resetting state; any other byte that doesn't map to A/C/G/T
// clears both the cursor and the window so no minimizer spans the break.
func (it *MinimizerIterator) Next() (ord uint, hash uint64, ok bool) {
	for it.pos < it.end {
		ch := it.seq[it.pos]
		it.pos++
		if ch == '\n' || ch == '\r' {
			continue
		}
		code, isBase := charToValue(ch)
		if !isBase {
			it.clearState()
			continue
		}
		lmer, full := it.cursor.Next(code)
		if !full {
			continue
		}
		candidate := toCandidateLmer(it.meros, lmer)
		minimizer, changed := it.window.Next(candidate)
		if !changed {
			continue
		}
		it.Size++
		return uint(it.Size), fmix64(minimizer^it.meros.ToggleMask), true
	}
	return 0, 0, false
}

// ScanSequence lifts a Base[[]byte] into a Base[*MinimizerIterator],
// building a fresh Cursor and MinimizerWindow per body element (one for
// Single, two for Pair). The header is carried over unchanged.
func ScanSequence(sequence *Base[[]byte], meros *Meros) Base[*MinimizerIterator] {
	scanOne := func(seq []byte) *MinimizerIterator {
		cursor := NewCursor(meros)
		window := NewMinimizerWindow(meros.WindowSize)
		return NewMinimizerIterator(seq, cursor, window, meros)
	}
	body := Apply(sequence.Body, scanOne)
	return Base[*MinimizerIterator]{Header: sequence.Header, Body: body}
}

// SeqSizeStr projects SeqSize from each mate into a string.
func SeqSizeStr(b *Base[*MinimizerIterator]) OptionPair[string] {
	return Apply(b.Body, func(it *MinimizerIterator) string {
		return strconv.Itoa(it.SeqSize())
	})
}

// FmtSeqSize formats SeqSize across mates as "a" or "a|b".
func FmtSeqSize(b *Base[*MinimizerIterator]) string {
	return ReduceString(b.Body, "|", func(it *MinimizerIterator) string {
		return strconv.Itoa(it.SeqSize())
	})
}

// FmtSize formats the emitted-minimizer count across mates as "a" or
// "a|b".
func FmtSize(b *Base[*MinimizerIterator]) string {
	return ReduceString(b.Body, "|", func(it *MinimizerIterator) string {
		return strconv.Itoa(it.Size)
	})
}

// Fold drains one or both mates' iterators via f, which appends to acc
// and returns an offset. For Pair, the left fold's returned offset is
// passed into the right fold — callers use this to keep minimizer
// ordinals globally unique across mates.
func Fold[T any](b *Base[*MinimizerIterator], f func(acc *[]T, it *MinimizerIterator, offset uint) uint) []T {
	acc := make([]T, 0)
	if !b.Body.IsPair() {
		f(&acc, b.Body.First(), 0)
		return acc
	}
	offset := f(&acc, b.Body.First(), 0)
	f(&acc, b.Body.Second(), offset)
	return acc
}

// Range returns the [start, end) ordinal range of each mate: for Single,
// (0, size); for Pair, ((0, size1), (size1, size1+size2)).
func Range(b *Base[*MinimizerIterator]) OptionPair[[2]uint] {
	if !b.Body.IsPair() {
		size := uint(b.Body.First().Size)
		return Single([2]uint{0, size})
	}
	size1 := uint(b.Body.First().Size)
	size2 := uint(b.Body.Second().Size)
	return Pair([2]uint{0, size1}, [2]uint{size1, size1 + size2})
}

