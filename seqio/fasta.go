package seqio

import (
	"bufio"
	"io"
	"strings"

	"github.com/eric9n/seqkmer"
	"github.com/shenwei356/bio/seq"
	logging "github.com/shenwei356/go-logging"
)

var log = logging.MustGetLogger("seqio")

// DefaultBatchSize is how many records FastaReader and FastqReader
// accumulate into one Base slice per Next() call.
const DefaultBatchSize = 1000

// FastaReader batches FASTA records off an underlying stream into
// seqkmer.Base[[]byte] values, one unpaired record per Base. It
// implements seqkmer.Reader.
type FastaReader struct {
	scanner    *bufio.Scanner
	fileIndex  uint
	readsIndex uint
	batchSize  int
	pendingID  string
	pendingSeq strings.Builder
	havePending bool
	done       bool
}

// NewFastaReader wraps r, tagging every emitted record's header with
// fileIndex.
func NewFastaReader(r io.Reader, fileIndex uint, batchSize int) *FastaReader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), BUFSIZE)
	return &FastaReader{scanner: scanner, fileIndex: fileIndex, batchSize: batchSize}
}

// Next returns up to batchSize records, or nil, nil on clean EOF.
func (fr *FastaReader) Next() ([]seqkmer.Base[[]byte], error) {
	if fr.done {
		return nil, nil
	}

	batch := make([]seqkmer.Base[[]byte], 0, fr.batchSize)
	flush := func() {
		if !fr.havePending {
			return
		}
		fr.readsIndex++
		body := []byte(fr.pendingSeq.String())
		header := seqkmer.SeqHeader{
			ID:         fr.pendingID,
			FileIndex:  fr.fileIndex,
			ReadsIndex: fr.readsIndex,
			Format:     seqkmer.Fasta,
		}
		warnIfAmbiguous(fr.pendingID, body)
		batch = append(batch, seqkmer.NewBase(header, seqkmer.Single(body)))
		fr.pendingSeq.Reset()
		fr.havePending = false
	}

	for len(batch) < fr.batchSize {
		if !fr.scanner.Scan() {
			if err := fr.scanner.Err(); err != nil {
				return nil, err
			}
			flush()
			fr.done = true
			break
		}
		line := fr.scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			fr.pendingID = strings.SplitN(line[1:], " ", 2)[0]
			fr.havePending = true
			continue
		}
		fr.pendingSeq.WriteString(line)
	}

	if len(batch) == 0 {
		return nil, nil
	}
	return batch, nil
}

// warnIfAmbiguous logs a non-fatal warning when a record contains bases
// outside strict ACGT. This never rejects the record: the scanning core
// (MinimizerIterator.Next) already handles ambiguous bases correctly by
// clearing cursor/window state, so this exists purely to surface a
// signal a caller might want — e.g. a suspiciously low-quality assembly.
func warnIfAmbiguous(id string, body []byte) {
	if _, err := seq.NewSeq(seq.DNA, body); err != nil {
		log.Warningf("seqio: record %q contains non-ACGT bases: %v", id, err)
	}
}
