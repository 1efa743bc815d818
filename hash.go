package seqkmer

// charToValue maps A/C/G/T (case-insensitive) to 2-bit codes. Every other
// byte — N, ambiguous IUPAC codes, whitespace, digits — returns ok=false.
func charToValue(b byte) (code uint64, ok bool) {
	switch b {
	case 'A', 'a':
		return 0, true
	case 'C', 'c':
		return 1, true
	case 'G', 'g':
		return 2, true
	case 'T', 't':
		return 3, true
	default:
		return 0, false
	}
}

// reverseComplement flips bit-pairs and reverses their order across the
// l-mer's l bases.
func reverseComplement(lmer uint64, l int) uint64 {
	var rc uint64
	for i := 0; i < l; i++ {
		rc <<= BitsPerChar
		rc |= (lmer & 3) ^ 3
		lmer >>= BitsPerChar
	}
	return rc
}

// canonicalRepresentation returns min(lmer, revcomp(lmer, l)), collapsing
// an l-mer and its reverse complement to one representative.
func canonicalRepresentation(lmer uint64, l int) uint64 {
	rc := reverseComplement(lmer, l)
	if rc < lmer {
		return rc
	}
	return lmer
}

// fmix64 is MurmurHash3's 64-bit finalizer, used as Kraken-2's minimizer
// hash. The constants and shifts are fixed by the algorithm; no
// third-party library in this corpus vendors murmur3, so this pure
// function is written out directly (see DESIGN.md).
func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

// toCandidateLmer folds an l-mer emitted by the cursor into the candidate
// fed to the minimizer window: canonicalize, apply the spaced-seed mask
// (if any), then XOR the toggle mask. The toggle is applied again before
// the final hash (see MinimizerIterator.Next) so the window's ordering key
// differs from the exposed hash — the Kraken-2 convention.
func toCandidateLmer(meros *Meros, lmer uint64) uint64 {
	canonical := canonicalRepresentation(lmer, meros.LMer)
	if meros.SpacedSeedMask != 0 {
		canonical &= meros.SpacedSeedMask
	}
	return canonical ^ meros.ToggleMask
}
