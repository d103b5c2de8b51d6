package ui_test

import (
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/smartlisting/smartlisting/internal/ui"
)

func TestKeyActionsHints(t *testing.T) {
	aa := ui.NewKeyActions()
	aa.Bulk(ui.KeyMap{
		tcell.KeyEnter: ui.NewKeyAction("Select", nil, true),
		ui.KeyJ:        ui.NewKeyAction("Down", nil, false),
		tcell.KeyCtrlR: ui.NewKeyAction("Reload", nil, true),
	})

	assert.Equal(t, 3, aa.Len())
	assert.ElementsMatch(t, ui.MenuHints{
		{Mnemonic: "Enter", Description: "Select", Visible: true},
		{Mnemonic: "j", Description: "Down"},
		{Mnemonic: "Ctrl-R", Description: "Reload", Visible: true},
	}, aa.Hints())

	aa.Delete(ui.KeyJ, tcell.KeyCtrlR)
	assert.Equal(t, 1, aa.Len())
	_, ok := aa.Get(ui.KeyJ)
	assert.False(t, ok)
}

func TestKeyActionsDispatch(t *testing.T) {
	var fired []string
	aa := ui.NewKeyActions()
	aa.Add(ui.KeyG, ui.NewKeyAction("Top", func(*tcell.EventKey) *tcell.EventKey {
		fired = append(fired, "g")
		return nil
	}, false))
	aa.Add(tcell.KeyEnter, ui.NewKeyAction("Select", func(evt *tcell.EventKey) *tcell.EventKey {
		fired = append(fired, "enter")
		return evt
	}, true))

	evt, ok := aa.Dispatch(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone))
	assert.True(t, ok)
	assert.Nil(t, evt)

	enter := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	evt, ok = aa.Dispatch(enter)
	assert.True(t, ok)
	assert.Same(t, enter, evt)

	x := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	evt, ok = aa.Dispatch(x)
	assert.False(t, ok)
	assert.Same(t, x, evt)

	assert.Equal(t, []string{"g", "enter"}, fired)
}
