package seqio

import (
	"strings"
	"testing"
)

func TestDetectFileFormatFasta(t *testing.T) {
	got, err := DetectFileFormat(strings.NewReader(">read1\nACGTACGT\n"))
	if err != nil {
		t.Fatalf("DetectFileFormat: %v", err)
	}
	if got != FormatFasta {
		t.Errorf("format = %q, want %q", got, FormatFasta)
	}
}

func TestDetectFileFormatFastq(t *testing.T) {
	got, err := DetectFileFormat(strings.NewReader("@read1\nACGT\n+\nIIII\n"))
	if err != nil {
		t.Fatalf("DetectFileFormat: %v", err)
	}
	if got != FormatFastq {
		t.Errorf("format = %q, want %q", got, FormatFastq)
	}
}

func TestDetectFileFormatRejectsUnrecognized(t *testing.T) {
	_, err := DetectFileFormat(strings.NewReader("ACGTACGT\n"))
	if err != ErrUnrecognizedFormat {
		t.Fatalf("err = %v, want %v", err, ErrUnrecognizedFormat)
	}
}

func TestDetectFileFormatRejectsFastqWithoutPlusLine(t *testing.T) {
	_, err := DetectFileFormat(strings.NewReader("@read1\nACGT\nNOTPLUS\nIIII\n"))
	if err != ErrUnrecognizedFormat {
		t.Fatalf("err = %v, want %v", err, ErrUnrecognizedFormat)
	}
}

func TestDetectFileFormatRejectsEmptyInput(t *testing.T) {
	_, err := DetectFileFormat(strings.NewReader(""))
	if err != ErrUnrecognizedFormat {
		t.Fatalf("err = %v, want %v", err, ErrUnrecognizedFormat)
	}
}

func TestTrimPairInfo(t *testing.T) {
	cases := map[string]string{
		"read1/1": "read1",
		"read1/2": "read1",
		"read1":   "read1",
		"read/1/2": "read/1",
	}
	for in, want := range cases {
		if got := TrimPairInfo(in); got != want {
			t.Errorf("TrimPairInfo(%q) = %q, want %q", in, got, want)
		}
	}
}
