package seqio

import (
	"bufio"
	"io"

	"github.com/eric9n/seqkmer"
	"github.com/pkg/errors"
)

// ErrInvalidFastq is returned when a FASTQ record doesn't follow the
// four-line @id / seq / +unk / qual shape.
var ErrInvalidFastq = errors.New("seqio: invalid FASTQ record")

// ErrShortFastq is returned when the stream ends mid-record.
var ErrShortFastq = errors.New("seqio: truncated FASTQ record")

// ErrDiscordantPair is returned when the two mate streams of a
// PairedReader produce a different number of records in a batch.
var ErrDiscordantPair = errors.New("seqio: discordant FASTQ pair")

// fastqRecord is one raw @id/seq/+/qual group. The quality line is read
// to complete the record but is not kept — the scanning core never looks
// at it.
type fastqRecord struct {
	id  string
	seq []byte
}

// FastqReader batches FASTQ records off an underlying stream into
// seqkmer.Base[[]byte] values, one unpaired record per Base. Modeled on
// grailbio-bio/encoding/fastq.Scanner's four-line validation, generalized
// to emit whole batches per Next() instead of one Read per Scan().
type FastqReader struct {
	scanner    *bufio.Scanner
	fileIndex  uint
	readsIndex uint
	batchSize  int
	done       bool
}

// NewFastqReader wraps r, tagging every emitted record's header with
// fileIndex.
func NewFastqReader(r io.Reader, fileIndex uint, batchSize int) *FastqReader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), BUFSIZE)
	return &FastqReader{scanner: scanner, fileIndex: fileIndex, batchSize: batchSize}
}

// next reads one raw four-line record, or ok=false at clean EOF.
func (fr *FastqReader) next() (fastqRecord, bool, error) {
	if !fr.scanner.Scan() {
		if err := fr.scanner.Err(); err != nil {
			return fastqRecord{}, false, err
		}
		return fastqRecord{}, false, nil
	}
	idLine := fr.scanner.Text()
	if len(idLine) == 0 || idLine[0] != '@' {
		return fastqRecord{}, false, ErrInvalidFastq
	}

	if !fr.scanner.Scan() {
		return fastqRecord{}, false, errOrShort(fr.scanner.Err())
	}
	seqLine := fr.scanner.Text()

	if !fr.scanner.Scan() {
		return fastqRecord{}, false, errOrShort(fr.scanner.Err())
	}
	plusLine := fr.scanner.Text()
	if len(plusLine) == 0 || plusLine[0] != '+' {
		return fastqRecord{}, false, ErrInvalidFastq
	}

	if !fr.scanner.Scan() {
		return fastqRecord{}, false, errOrShort(fr.scanner.Err())
	}

	return fastqRecord{id: idLine[1:], seq: []byte(seqLine)}, true, nil
}

func errOrShort(err error) error {
	if err != nil {
		return err
	}
	return ErrShortFastq
}

// Next returns up to batchSize records, or nil, nil on clean EOF.
func (fr *FastqReader) Next() ([]seqkmer.Base[[]byte], error) {
	if fr.done {
		return nil, nil
	}
	batch := make([]seqkmer.Base[[]byte], 0, fr.batchSize)
	for len(batch) < fr.batchSize {
		rec, ok, err := fr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			fr.done = true
			break
		}
		fr.readsIndex++
		header := seqkmer.SeqHeader{
			ID:         TrimPairInfo(rec.id),
			FileIndex:  fr.fileIndex,
			ReadsIndex: fr.readsIndex,
			Format:     seqkmer.Fastq,
		}
		batch = append(batch, seqkmer.NewBase(header, seqkmer.Single(rec.seq)))
	}
	if len(batch) == 0 {
		return nil, nil
	}
	return batch, nil
}

// PairedReader composes two FastqReaders, one per mate file, pairing
// records batch-for-batch. Modeled on
// grailbio-bio/encoding/fastq.PairScanner, generalized to whole-batch
// pairing instead of single-record pairing.
type PairedReader struct {
	r1, r2 *FastqReader
}

// NewPairedReader builds a PairedReader over two mate streams.
func NewPairedReader(r1, r2 io.Reader, fileIndex uint, batchSize int) *PairedReader {
	return &PairedReader{
		r1: NewFastqReader(r1, fileIndex, batchSize),
		r2: NewFastqReader(r2, fileIndex, batchSize),
	}
}

// Next returns up to batchSize paired records, or nil, nil on clean EOF
// of both streams. A record-count mismatch between the two batches is
// reported as ErrDiscordantPair.
func (pr *PairedReader) Next() ([]seqkmer.Base[[]byte], error) {
	b1, err := pr.r1.Next()
	if err != nil {
		return nil, err
	}
	b2, err := pr.r2.Next()
	if err != nil {
		return nil, err
	}
	if len(b1) != len(b2) {
		return nil, ErrDiscordantPair
	}
	if len(b1) == 0 {
		return nil, nil
	}
	paired := make([]seqkmer.Base[[]byte], len(b1))
	for i := range b1 {
		mate1, _ := b1[i].Body.TrySingle()
		mate2, _ := b2[i].Body.TrySingle()
		paired[i] = seqkmer.NewBase(b1[i].Header, seqkmer.Pair(mate1, mate2))
	}
	return paired, nil
}
