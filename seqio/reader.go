// Package seqio provides the file-level collaborators the scanning core
// treats as external: path handling, gzip transparency, format
// detection, and batched FASTA/FASTQ readers that implement
// seqkmer.Reader.
package seqio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/pgzip"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// BUFSIZE is the default buffered-I/O size, matching spec.md's 16 MiB
// constant.
const BUFSIZE = 16 * 1024 * 1024

var gzipMagic = [2]byte{0x1F, 0x8B}

// OpenFile opens path for reading, expanding a leading "~" via
// go-homedir first.
func OpenFile(path string) (*os.File, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "expand path %s", path)
	}
	f, err := os.Open(expanded)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	if info, statErr := f.Stat(); statErr == nil {
		log.Debugf("opened %s (%s)", path, humanize.Bytes(uint64(info.Size())))
	}
	return f, nil
}

// DynReader wraps r in a parallel gzip reader when the stream starts
// with the gzip magic bytes, otherwise returns a plain buffered reader
// over the same bytes. The two-byte peek is non-destructive: callers
// get back a reader that replays the peeked bytes.
func DynReader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, BUFSIZE)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "peek magic bytes")
	}
	if len(magic) == 2 && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		gz, err := pgzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "open gzip stream")
		}
		return gz, nil
	}
	return br, nil
}

// OpenSeqFile opens path, expanding "~" and transparently unwrapping
// gzip.
func OpenSeqFile(path string) (io.Reader, error) {
	f, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	return DynReader(f)
}

// ErrUnrecognizedFormat is returned by DetectFileFormat when neither a
// FASTA nor a FASTQ header line is found.
var ErrUnrecognizedFormat = errors.New("seqio: unrecognized sequence file format")

// DetectFileFormat implements spec.md's probe rule: '>' starts a FASTA
// record; '@' followed (after one sequence line) by a line starting
// with '+' starts a FASTQ record; anything else is an error.
func DetectFileFormat(r io.Reader) (SeqFormatName, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), BUFSIZE)

	if !scanner.Scan() {
		return "", ErrUnrecognizedFormat
	}
	first := scanner.Text()
	if len(first) == 0 {
		return "", ErrUnrecognizedFormat
	}
	switch first[0] {
	case '>':
		return FormatFasta, nil
	case '@':
		if !scanner.Scan() { // sequence line
			return "", ErrUnrecognizedFormat
		}
		if !scanner.Scan() { // '+' line
			return "", ErrUnrecognizedFormat
		}
		third := scanner.Text()
		if len(third) == 0 || third[0] != '+' {
			return "", ErrUnrecognizedFormat
		}
		return FormatFastq, nil
	default:
		return "", ErrUnrecognizedFormat
	}
}

// SeqFormatName names a detected file format, kept distinct from
// seqkmer.SeqFormat so format detection has no import-cycle dependency
// on the scanning core.
type SeqFormatName string

const (
	FormatFasta SeqFormatName = "fasta"
	FormatFastq SeqFormatName = "fastq"
)

// TrimPairInfo strips a trailing "/1" or "/2" mate suffix from a read
// ID, the pairing rule spec.md requires before matching mates by ID.
func TrimPairInfo(id string) string {
	if strings.HasSuffix(id, "/1") || strings.HasSuffix(id, "/2") {
		return id[:len(id)-2]
	}
	return id
}
