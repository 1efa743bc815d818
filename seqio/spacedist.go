package seqio

import (
	"io"
	"strconv"
	"strings"

	"github.com/eric9n/seqkmer"
	"github.com/shenwei356/stable"
)

// PosData is one run-length entry of SpaceDist: ExtCode repeated Count
// consecutive times. ExtCode 0 denotes a gap (no hit recorded there).
type PosData struct {
	ExtCode uint64
	Count   uint
}

func (p PosData) String() string {
	return strconv.FormatUint(p.ExtCode, 10) + ":" + strconv.FormatUint(uint64(p.Count), 10)
}

// SpaceDist run-length-encodes a sequence of per-position hit codes over
// a half-open range (start, end]. Positions are added in increasing
// order; gaps between adds (and from the end of the last add to the
// range's end) are recorded as ExtCode-0 runs.
type SpaceDist struct {
	Value []PosData
	Range [2]uint
	pos   uint
}

// NewSpaceDist builds a SpaceDist over the half-open range (rng[0], rng[1]].
func NewSpaceDist(rng [2]uint) *SpaceDist {
	return &SpaceDist{Range: rng, pos: rng[0]}
}

func (d *SpaceDist) fillWithZeros(gap uint) {
	if gap > 0 {
		d.Value = append(d.Value, PosData{ExtCode: 0, Count: gap})
	}
}

// Add records a hit of extCode at pos. Calls with pos outside
// (d.pos, d.Range[1]] are ignored (out of order or past the range).
func (d *SpaceDist) Add(extCode uint64, pos uint) {
	if pos <= d.pos || pos > d.Range[1] {
		return
	}
	gap := pos - d.pos - 1
	if gap > 0 {
		d.fillWithZeros(gap)
	}
	if n := len(d.Value); n > 0 && d.Value[n-1].ExtCode == extCode {
		d.Value[n-1].Count++
	} else {
		d.Value = append(d.Value, PosData{ExtCode: extCode, Count: 1})
	}
	d.pos = pos
}

// FillTailWithZeros pads any unrecorded remainder of the range with an
// ExtCode-0 run.
func (d *SpaceDist) FillTailWithZeros() {
	if d.pos < d.Range[1] {
		d.fillWithZeros(d.Range[1] - d.pos)
		d.pos = d.Range[1]
	}
}

// String renders the run-length encoding as space-separated "code:count"
// pairs, e.g. "0:4 42:2 0:1 43:1 0:2".
func (d *SpaceDist) String() string {
	parts := make([]string, len(d.Value))
	for i, p := range d.Value {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// AddToPair records a hit into the correct half of a paired SpaceDist:
// the first mate's SpaceDist if pos falls within its range, otherwise
// the second's.
func AddToPair(dist seqkmer.OptionPair[*SpaceDist], extCode uint64, pos uint) {
	if !dist.IsPair() {
		dist.First().Add(extCode, pos)
		return
	}
	first := dist.First()
	if pos > first.Range[1] {
		dist.Second().Add(extCode, pos)
	} else {
		first.Add(extCode, pos)
	}
}

// FillTailWithZerosPair fills the tail of both (or the one) SpaceDist in
// an OptionPair.
func FillTailWithZerosPair(dist seqkmer.OptionPair[*SpaceDist]) {
	dist.First().FillTailWithZeros()
	if dist.IsPair() {
		dist.Second().FillTailWithZeros()
	}
}

// WriteTable renders a batch of per-record SpaceDist summaries as an
// aligned plain-text table via shenwei356/stable, styled after the
// teacher's own "info" table (plain header/data row separators, no
// border padding).
func WriteTable(w io.Writer, ids []string, dists []*SpaceDist) error {
	style := &stable.TableStyle{
		Name:      "plain",
		HeaderRow: stable.RowStyle{Begin: "", Sep: "  ", End: ""},
		DataRow:   stable.RowStyle{Begin: "", Sep: "  ", End: ""},
		Padding:   "",
	}
	columns := []stable.Column{
		{Header: "id"},
		{Header: "hits", Align: stable.AlignLeft},
	}
	tbl := stable.New()
	tbl.HeaderWithFormat(columns)
	for i, id := range ids {
		row := []interface{}{id, dists[i].String()}
		tbl.AddRow(row)
	}
	_, err := w.Write(tbl.Render(style))
	return err
}
