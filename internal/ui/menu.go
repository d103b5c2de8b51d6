// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of smartlisting

package ui

import (
	"fmt"
	"sort"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

const (
	menuFmt = " [yellow::b]<%s>[white::-] %s "
	maxRows = 4
)

// Menu presents the key hints of the top component.
type Menu struct {
	*tview.Table
}

// NewMenu returns a new menu.
func NewMenu() *Menu {
	m := Menu{Table: tview.NewTable()}
	m.SetBackgroundColor(tcell.ColorDefault)
	m.SetBorderPadding(0, 0, 1, 1)

	return &m
}

// HydrateMenu lays visible hints out in columns of maxRows.
func (m *Menu) HydrateMenu(hh MenuHints) {
	m.Clear()
	sort.Sort(hh)

	var row, col int
	for _, h := range hh {
		if !h.Visible || h.Mnemonic == "" || h.Description == "" {
			continue
		}
		c := tview.NewTableCell(fmt.Sprintf(menuFmt, h.Mnemonic, h.Description))
		c.SetBackgroundColor(tcell.ColorDefault)
		m.SetCell(row, col, c)
		if row++; row >= maxRows {
			row, col = 0, col+1
		}
	}
}

// StackPushed notifies a component was added.
func (m *Menu) StackPushed(c Component) {
	m.HydrateMenu(c.Hints())
}

// StackPopped notifies a component was removed.
func (m *Menu) StackPopped(_, top Component) {
	if top == nil {
		m.Clear()
		return
	}
	m.HydrateMenu(top.Hints())
}

// StackTop notifies the top component.
func (m *Menu) StackTop(t Component) {
	m.HydrateMenu(t.Hints())
}
