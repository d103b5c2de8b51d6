package ui_test

import (
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/model1"
	"github.com/smartlisting/smartlisting/internal/render"
	"github.com/smartlisting/smartlisting/internal/ui"
)

func TestListViewDeselect(t *testing.T) {
	l := ui.NewListView("menu")
	l.Init()
	dishes := []string{"Soup", "Bread"}
	m := ui.NewTableManager(l, ui.Accessors{
		NumberOfRows: func(int) int { return len(dishes) },
		CellViewModel: func(at model1.IndexPath) model1.ViewModel {
			return model1.Loaded(dao.DishItem{Title: dishes[at.Row]})
		},
	})
	var picked []string
	ui.RegisterSelectableCell[model1.Loadable[dao.DishItem]](m, render.NewDish,
		func(host model1.Host, at model1.IndexPath, vm model1.Loadable[dao.DishItem]) {
			d, _ := vm.Value()
			picked = append(picked, d.Title)
			host.Deselect(at)
		},
	)
	m.ReloadData()

	at, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, model1.IndexPath{}, at)

	press(l, tcell.KeyEnter, 0)
	press(l, tcell.KeyEnter, 0)
	assert.Equal(t, []string{"Soup"}, picked)
	_, ok = l.Selected()
	assert.False(t, ok)

	m.ReloadData()
	_, ok = l.Selected()
	assert.False(t, ok)

	press(l, tcell.KeyRune, 'j')
	at, ok = l.Selected()
	require.True(t, ok)
	assert.Equal(t, model1.IndexPath{Row: 1}, at)

	press(l, tcell.KeyEnter, 0)
	assert.Equal(t, []string{"Soup", "Bread"}, picked)
}

func TestListViewReloadKeepsCursor(t *testing.T) {
	l := ui.NewListView("menu")
	l.Init()
	dishes := []string{"Soup", "Bread", "Cake"}
	m := ui.NewTableManager(l, ui.Accessors{
		NumberOfRows: func(int) int { return len(dishes) },
		CellViewModel: func(at model1.IndexPath) model1.ViewModel {
			return model1.Loaded(dao.DishItem{Title: dishes[at.Row]})
		},
	})
	ui.RegisterCell[model1.Loadable[dao.DishItem]](m, render.NewDish)
	m.ReloadData()

	press(l, tcell.KeyRune, 'G')
	at, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, model1.IndexPath{Row: 2}, at)

	dishes = dishes[:1]
	m.ReloadData()
	at, ok = l.Selected()
	require.True(t, ok)
	assert.Equal(t, model1.IndexPath{}, at)
}

// Helpers...

func press(l *ui.ListView, k tcell.Key, r rune) {
	l.GetInputCapture()(tcell.NewEventKey(k, r, tcell.ModNone))
}
