// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of smartlisting

package ui

import (
	"fmt"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	gcell "github.com/gdamore/tcell/v2"

	"github.com/smartlisting/smartlisting/internal/model1"
)

// ListTitleFmt formats the list title with its name and row count.
const ListTitleFmt = " <%s>[%d] "

// ListView is a sectioned list drawn in a tview table.
type ListView struct {
	*tview.Table

	name          string
	source        model1.DataSource
	cells         *viewPool
	headerFooters *viewPool
	entries       []entry
	palette       model1.Palette
	actions       *KeyActions
	deselected    bool
	mx            sync.RWMutex
}

var _ model1.Host = (*ListView)(nil)

// NewListView returns a new list.
func NewListView(name string) *ListView {
	return &ListView{
		Table:         tview.NewTable(),
		name:          name,
		cells:         newViewPool(),
		headerFooters: newViewPool(),
		palette:       model1.DefaultPalette(),
		actions:       NewKeyActions(),
	}
}

// Init styles the list and binds its keys.
func (l *ListView) Init() {
	l.SetBorder(true)
	l.SetBorderAttributes(tcell.AttrBold)
	l.SetBorderPadding(0, 0, 1, 1)
	l.SetSelectable(true, false)
	l.SetBackgroundColor(tcell.ColorDefault)
	l.SetBorderColor(tcell.ColorWhite)
	l.SetTitle(fmt.Sprintf(ListTitleFmt, l.name, 0))
	l.SetInputCapture(l.keyboard)
	l.bindKeys()
}

// Name returns the list name.
func (l *ListView) Name() string {
	return l.name
}

// Actions returns the key actions.
func (l *ListView) Actions() *KeyActions {
	return l.actions
}

// Hints returns menu hints for key bindings.
func (l *ListView) Hints() MenuHints {
	return l.actions.Hints()
}

// SetPalette changes the row colors. It applies on the next reload.
func (l *ListView) SetPalette(p model1.Palette) {
	l.mx.Lock()
	defer l.mx.Unlock()

	l.palette = p
}

// SetDataSource wires the source the list pulls from.
func (l *ListView) SetDataSource(src model1.DataSource) {
	l.mx.Lock()
	defer l.mx.Unlock()

	l.source = src
}

// RegisterCell prepares a pool of row views.
func (l *ListView) RegisterCell(id string, newCell func() model1.View) {
	l.mx.Lock()
	defer l.mx.Unlock()

	l.cells.register(id, newCell)
}

// DequeueCell returns a pooled row view.
func (l *ListView) DequeueCell(id string, _ model1.IndexPath) model1.View {
	return l.cells.dequeue(id)
}

// RegisterHeaderFooter prepares a pool of header/footer views.
func (l *ListView) RegisterHeaderFooter(id string, newView func() model1.View) {
	l.mx.Lock()
	defer l.mx.Unlock()

	l.headerFooters.register(id, newView)
}

// DequeueHeaderFooter returns a pooled header/footer view.
func (l *ListView) DequeueHeaderFooter(id string) model1.View {
	return l.headerFooters.dequeue(id)
}

// ReloadData pulls the data source again and redraws every row. The cursor
// stays on its row, deselected or not, when that row still exists.
func (l *ListView) ReloadData() {
	l.mx.Lock()
	defer l.mx.Unlock()

	prev, hadCursor := l.cursorLocked()
	l.cells.recycle()
	l.headerFooters.recycle()
	l.entries = pull(l.source)

	l.Clear()
	var count int
	for i, text := range align(l.entries) {
		e := l.entries[i]
		if e.selectable() {
			count++
		}
		l.SetCell(i, 0, l.buildCell(e, text))
	}
	l.SetTitle(fmt.Sprintf(ListTitleFmt, l.name, count))

	if hadCursor {
		if i := l.indexOf(prev); i >= 0 {
			l.Select(i, 0)
			return
		}
	}
	l.deselected = false
	l.SetSelectable(true, false)
	if len(l.entries) == 0 {
		l.showNoData("No items")
		return
	}
	l.selectFrom(0, 1)
}

// Deselect clears the selection of a row. The row stays unselected until
// the cursor moves.
func (l *ListView) Deselect(at model1.IndexPath) {
	l.mx.Lock()
	defer l.mx.Unlock()

	i := l.indexOf(at)
	if row, _ := l.GetSelection(); i < 0 || row != i {
		return
	}
	l.deselected = true
	l.SetSelectable(false, false)
}

// Selected returns the position of the selected row.
func (l *ListView) Selected() (model1.IndexPath, bool) {
	l.mx.RLock()
	defer l.mx.RUnlock()

	return l.selectedLocked()
}

// Rows returns the rendered rows in display order.
func (l *ListView) Rows() []model1.Row {
	l.mx.RLock()
	defer l.mx.RUnlock()

	rr := make([]model1.Row, 0, len(l.entries))
	for _, e := range l.entries {
		rr = append(rr, e.row)
	}
	return rr
}

func (l *ListView) buildCell(e entry, text string) *tview.TableCell {
	c := tview.NewTableCell(text)
	c.SetTextColor(toColor(l.palette.Color(e.row.Style)))
	c.SetBackgroundColor(tcell.ColorDefault)
	c.SetExpansion(1)
	c.SetSelectable(e.selectable())
	c.SetReference(e.at)

	var attrs tcell.AttrMask
	if e.row.Style == model1.StyleHeading {
		attrs |= tcell.AttrBold
	}
	if e.row.Separator {
		attrs |= tcell.AttrUnderline
	}
	c.SetAttributes(attrs)

	return c
}

// toColor bridges palette colors to the colors tview draws with.
func toColor(c gcell.Color) tcell.Color {
	h := model1.Hex(c)
	if h < 0 {
		return tcell.ColorDefault
	}
	return tcell.NewHexColor(h)
}

// showNoData displays a message when there's no data.
func (l *ListView) showNoData(msg string) {
	l.Clear()
	cell := tview.NewTableCell(msg)
	cell.SetTextColor(tcell.ColorGray)
	cell.SetAlign(tview.AlignCenter)
	cell.SetSelectable(false)
	l.SetCell(0, 0, cell)
}

func (l *ListView) selectedLocked() (model1.IndexPath, bool) {
	if l.deselected {
		return model1.IndexPath{}, false
	}
	return l.cursorLocked()
}

// cursorLocked returns the row under the cursor, selected or not.
func (l *ListView) cursorLocked() (model1.IndexPath, bool) {
	row, _ := l.GetSelection()
	if row < 0 || row >= len(l.entries) || !l.entries[row].selectable() {
		return model1.IndexPath{}, false
	}
	return l.entries[row].at, true
}

func (l *ListView) indexOf(at model1.IndexPath) int {
	for i, e := range l.entries {
		if e.selectable() && e.at == at {
			return i
		}
	}
	return -1
}

// selectFrom selects the first selectable row from index i walking by step.
func (l *ListView) selectFrom(i, step int) bool {
	for ; i >= 0 && i < len(l.entries); i += step {
		if l.entries[i].selectable() {
			l.Select(i, 0)
			return true
		}
	}
	return false
}

func (l *ListView) move(from, step int) {
	l.mx.Lock()
	defer l.mx.Unlock()

	l.deselected = false
	l.SetSelectable(true, false)
	l.selectFrom(from, step)
}

func (l *ListView) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if evt, ok := l.actions.Dispatch(evt); ok {
		return evt
	}

	row, _ := l.GetSelection()
	switch evt.Key() {
	case tcell.KeyDown:
		l.move(row+1, 1)
		return nil
	case tcell.KeyUp:
		l.move(row-1, -1)
		return nil
	case tcell.KeyHome:
		l.move(0, 1)
		return nil
	case tcell.KeyEnd:
		l.move(l.GetRowCount()-1, -1)
		return nil
	}

	return evt
}

func (l *ListView) bindKeys() {
	l.actions.Bulk(KeyMap{
		KeyJ: NewKeyAction("Down", func(*tcell.EventKey) *tcell.EventKey {
			row, _ := l.GetSelection()
			l.move(row+1, 1)
			return nil
		}, false),
		KeyK: NewKeyAction("Up", func(*tcell.EventKey) *tcell.EventKey {
			row, _ := l.GetSelection()
			l.move(row-1, -1)
			return nil
		}, false),
		KeyG: NewKeyAction("Top", func(*tcell.EventKey) *tcell.EventKey {
			l.move(0, 1)
			return nil
		}, false),
		KeyShiftG: NewKeyAction("Bottom", func(*tcell.EventKey) *tcell.EventKey {
			l.move(l.GetRowCount()-1, -1)
			return nil
		}, false),
		tcell.KeyEnter: NewKeyAction("Select", l.selectCmd, true),
	})
}

func (l *ListView) selectCmd(*tcell.EventKey) *tcell.EventKey {
	l.mx.RLock()
	at, ok := l.selectedLocked()
	src := l.source
	l.mx.RUnlock()

	if ok && src != nil {
		src.DidSelectRow(at)
	}
	return nil
}
