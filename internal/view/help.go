package view

import (
	"context"
	"fmt"
	"sort"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/ui"
)

const helpName = "help"

// HelpBind represents a single keybinding.
type HelpBind struct {
	Key  string
	Desc string
}

// Help lists the available screens and key bindings.
type Help struct {
	*tview.Table

	app     *App
	actions *ui.KeyActions
}

var _ ui.Component = (*Help)(nil)

// NewHelp creates a new help view.
func NewHelp(app *App) *Help {
	return &Help{
		Table:   tview.NewTable(),
		app:     app,
		actions: ui.NewKeyActions(),
	}
}

// Init builds the help table from the screen currently shown.
func (h *Help) Init(context.Context) error {
	h.SetBorder(true)
	h.SetTitle(" Help ")
	h.SetTitleAlign(tview.AlignCenter)
	h.SetBorderColor(tcell.ColorYellow)
	h.SetBackgroundColor(tcell.ColorDefault)
	h.SetSelectable(false, false)
	h.actions.Add(tcell.KeyEsc, ui.NewKeyAction("Back", h.closeCmd, true))
	h.SetInputCapture(func(evt *tcell.EventKey) *tcell.EventKey {
		evt, _ = h.actions.Dispatch(evt)
		return evt
	})

	var hh ui.MenuHints
	if top := h.app.Content.Top(); top != nil {
		hh = top.Hints()
	}
	h.build(screenBinds(h.app.aliases.Keys()), hintBinds(hh))

	return nil
}

// Name returns the component name.
func (*Help) Name() string { return helpName }

// Start does nothing.
func (*Help) Start() {}

// Stop does nothing.
func (*Help) Stop() {}

// Hints returns the help key hints.
func (h *Help) Hints() ui.MenuHints {
	return h.actions.Hints()
}

func (h *Help) closeCmd(*tcell.EventKey) *tcell.EventKey {
	h.app.back()
	return nil
}

func screenBinds(aliases []string) []HelpBind {
	bb := make([]HelpBind, 0, len(aliases)+2)
	for _, sid := range dao.ListAccessors() {
		bb = append(bb, HelpBind{Key: ":" + sid.String(), Desc: "Screen"})
	}
	sort.Strings(aliases)
	for _, a := range aliases {
		bb = append(bb, HelpBind{Key: ":" + a, Desc: "Alias"})
	}

	return bb
}

func hintBinds(hh ui.MenuHints) []HelpBind {
	sort.Sort(hh)
	bb := make([]HelpBind, 0, len(hh))
	for _, h := range hh {
		if !h.Visible || h.Mnemonic == "" {
			continue
		}
		bb = append(bb, HelpBind{Key: fmt.Sprintf("<%s>", h.Mnemonic), Desc: h.Description})
	}

	return bb
}

func generalBinds() []HelpBind {
	return []HelpBind{
		{"<:>", "Command"},
		{"<?>", "Help"},
		{"<esc>", "Back"},
		{"<q>", "Quit"},
		{"<ctrl-c>", "Quit"},
	}
}

func navigationBinds() []HelpBind {
	return []HelpBind{
		{"<j>", "Down"},
		{"<k>", "Up"},
		{"<g>", "Top"},
		{"<G>", "Bottom"},
		{"<enter>", "Select"},
	}
}

// build lays bindings out in titled column pairs.
func (h *Help) build(screens, current []HelpBind) {
	h.Clear()
	columns := [][]HelpBind{screens, generalBinds(), navigationBinds(), current}
	headers := []string{"SCREENS", "GENERAL", "NAVIGATION", "CURRENT"}

	var maxRows int
	for _, col := range columns {
		maxRows = max(maxRows, len(col))
	}

	const colWidth = 3
	for i, col := range columns {
		base := i * colWidth
		h.SetCell(0, base, tview.NewTableCell(headers[i]).
			SetTextColor(tcell.ColorAqua).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
		for r, b := range col {
			h.SetCell(r+1, base, tview.NewTableCell(b.Key).
				SetTextColor(tcell.ColorYellow).
				SetSelectable(false))
			h.SetCell(r+1, base+1, tview.NewTableCell(b.Desc).
				SetTextColor(tcell.ColorWhite).
				SetSelectable(false).
				SetExpansion(1))
		}
		if i == len(columns)-1 {
			continue
		}
		for r := 0; r <= maxRows; r++ {
			h.SetCell(r, base+2, tview.NewTableCell("").SetSelectable(false).SetExpansion(1))
		}
	}

	h.SetCell(maxRows+2, 0, tview.NewTableCell("<esc> to close").
		SetTextColor(tcell.ColorGray).
		SetSelectable(false))
}
