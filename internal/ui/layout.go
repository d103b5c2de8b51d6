package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/smartlisting/smartlisting/internal/model1"
)

const columnGap = "  "

type entryKind int

const (
	entryHeader entryKind = iota
	entryCell
	entryFooter
)

// entry is one displayed line of a list.
type entry struct {
	kind   entryKind
	at     model1.IndexPath
	kindID string
	row    model1.Row
}

func (e entry) selectable() bool {
	return e.kind == entryCell
}

// pull walks a data source in display order: per section the header when it
// has space, the rows, then the footer.
func pull(src model1.DataSource) []entry {
	if src == nil {
		return nil
	}

	var ee []entry
	for s := range src.NumberOfSections() {
		if src.HeaderHeight(s) != 0 {
			if v := src.ViewForHeader(s); v != nil {
				ee = append(ee, entry{kind: entryHeader, at: model1.IndexPath{Section: s}, kindID: v.Identifier(), row: v.Render()})
			}
		}
		for r := range src.NumberOfRows(s) {
			at := model1.IndexPath{Section: s, Row: r}
			v := src.CellForRow(at)
			ee = append(ee, entry{kind: entryCell, at: at, kindID: v.Identifier(), row: v.Render()})
		}
		if src.FooterHeight(s) != 0 {
			if v := src.ViewForFooter(s); v != nil {
				ee = append(ee, entry{kind: entryFooter, at: model1.IndexPath{Section: s}, kindID: v.Identifier(), row: v.Render()})
			}
		}
	}

	return ee
}

// align lays out entry fields in columns. Widths are computed per renderer
// kind so rows drawn by the same renderer line up.
func align(ee []entry) []string {
	widths := make(map[string][]int)
	for _, e := range ee {
		ww := widths[e.kindID]
		for i, f := range e.row.Fields {
			if i >= len(ww) {
				ww = append(ww, 0)
			}
			ww[i] = max(ww[i], runewidth.StringWidth(f))
		}
		widths[e.kindID] = ww
	}

	out := make([]string, len(ee))
	for i, e := range ee {
		ww, last := widths[e.kindID], lastField(e.row.Fields)
		var b strings.Builder
		for j := 0; j <= last; j++ {
			if j > 0 {
				b.WriteString(columnGap)
			}
			if j == last {
				b.WriteString(e.row.Fields[j])
				break
			}
			b.WriteString(runewidth.FillRight(e.row.Fields[j], ww[j]))
		}
		out[i] = b.String()
	}

	return out
}

func lastField(ff model1.Fields) int {
	for i := len(ff) - 1; i >= 0; i-- {
		if ff[i] != "" {
			return i
		}
	}
	return -1
}
