package ui

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/smartlisting/smartlisting/internal/model1"
)

const separatorRune = "─"

// TextList is a headless list host rendering rows as aligned text lines.
type TextList struct {
	source        model1.DataSource
	cells         *viewPool
	headerFooters *viewPool
	entries       []entry
	selected      map[model1.IndexPath]struct{}
	reloads       int
}

var _ model1.Host = (*TextList)(nil)

// NewTextList returns an empty headless list.
func NewTextList() *TextList {
	return &TextList{
		cells:         newViewPool(),
		headerFooters: newViewPool(),
		selected:      make(map[model1.IndexPath]struct{}),
	}
}

// SetDataSource wires the source the list pulls from.
func (t *TextList) SetDataSource(src model1.DataSource) {
	t.source = src
}

// RegisterCell prepares a pool of row views.
func (t *TextList) RegisterCell(id string, newCell func() model1.View) {
	t.cells.register(id, newCell)
}

// DequeueCell returns a pooled row view.
func (t *TextList) DequeueCell(id string, _ model1.IndexPath) model1.View {
	return t.cells.dequeue(id)
}

// RegisterHeaderFooter prepares a pool of header/footer views.
func (t *TextList) RegisterHeaderFooter(id string, newView func() model1.View) {
	t.headerFooters.register(id, newView)
}

// DequeueHeaderFooter returns a pooled header/footer view.
func (t *TextList) DequeueHeaderFooter(id string) model1.View {
	return t.headerFooters.dequeue(id)
}

// ReloadData pulls the data source again.
func (t *TextList) ReloadData() {
	t.cells.recycle()
	t.headerFooters.recycle()
	t.entries = pull(t.source)
	t.reloads++
	clear(t.selected)
}

// Reloads returns how many times the list pulled its source.
func (t *TextList) Reloads() int {
	return t.reloads
}

// PoolSize returns how many row views were built for a renderer kind.
func (t *TextList) PoolSize(id string) int {
	return t.cells.size(id)
}

// Select selects a row and notifies the data source.
func (t *TextList) Select(at model1.IndexPath) {
	t.selected[at] = struct{}{}
	if t.source != nil {
		t.source.DidSelectRow(at)
	}
}

// Deselect clears the selection of a row.
func (t *TextList) Deselect(at model1.IndexPath) {
	delete(t.selected, at)
}

// IsSelected returns true if a row is selected.
func (t *TextList) IsSelected(at model1.IndexPath) bool {
	_, ok := t.selected[at]
	return ok
}

// Rows returns the rendered rows in display order.
func (t *TextList) Rows() []model1.Row {
	rr := make([]model1.Row, 0, len(t.entries))
	for _, e := range t.entries {
		rr = append(rr, e.row)
	}
	return rr
}

// Lines returns the list as text. Rows showing a separator are followed by a
// rule as wide as the row.
func (t *TextList) Lines() []string {
	ll := make([]string, 0, len(t.entries))
	for i, line := range align(t.entries) {
		ll = append(ll, strings.TrimRight(line, " "))
		if t.entries[i].row.Separator {
			ll = append(ll, strings.Repeat(separatorRune, runewidth.StringWidth(line)))
		}
	}
	return ll
}

// WriteTo writes the list lines to w.
func (t *TextList) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, l := range t.Lines() {
		n, err := io.WriteString(w, l+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
