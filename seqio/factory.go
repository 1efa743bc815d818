package seqio

import (
	"bufio"
	"bytes"

	"github.com/eric9n/seqkmer"
	"github.com/pkg/errors"
)

// ErrUnsupportedFormat is returned by NewReader for a format combination
// the readers in this package can't produce: any paired input in which
// either mate is FASTA (pairing is supported for FASTQ only). Kraken-2-family tools never see paired FASTA in
// practice; a returned error here is strictly more usable to a library
// caller than an abort, without changing behavior for any input the core
// is expected to handle (see DESIGN.md).
var ErrUnsupportedFormat = errors.New("seqio: unsupported format combination (paired FASTA is not supported)")

// NewReader resolves paths to a seqkmer.Reader, probing each path's
// format and gzip-wrapping transparently. A Single path yields a
// FastaReader or FastqReader; a Pair requires both mates share the FASTQ
// format (ErrUnsupportedFormat otherwise).
func NewReader(paths seqkmer.OptionPair[string], fileIndex uint, batchSize int) (seqkmer.Reader, error) {
	if !paths.IsPair() {
		path := paths.First()
		return newSingleReader(path, fileIndex, batchSize)
	}

	path1, path2 := paths.First(), paths.Second()
	format1, peeked1, err := probeFormat(path1)
	if err != nil {
		return nil, err
	}
	format2, peeked2, err := probeFormat(path2)
	if err != nil {
		return nil, err
	}
	if format1 != FormatFastq || format2 != FormatFastq {
		return nil, ErrUnsupportedFormat
	}
	return NewPairedReader(peeked1, peeked2, fileIndex, batchSize), nil
}

func newSingleReader(path string, fileIndex uint, batchSize int) (seqkmer.Reader, error) {
	format, peeked, err := probeFormat(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatFasta:
		return NewFastaReader(peeked, fileIndex, batchSize), nil
	case FormatFastq:
		return NewFastqReader(peeked, fileIndex, batchSize), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// probeFormat opens path, detects its format from a peeked prefix, and
// returns a reader replaying that prefix so the caller can still read
// the whole stream from the start.
func probeFormat(path string) (SeqFormatName, *bufio.Reader, error) {
	r, err := OpenSeqFile(path)
	if err != nil {
		return "", nil, err
	}
	br := bufio.NewReaderSize(r, BUFSIZE)
	peek, _ := br.Peek(4096)
	format, err := DetectFileFormat(bytes.NewReader(peek))
	if err != nil {
		return "", nil, err
	}
	return format, br, nil
}
