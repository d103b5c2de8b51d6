package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/model1"
	"github.com/smartlisting/smartlisting/internal/render"
	"github.com/smartlisting/smartlisting/internal/ui"
)

type section struct {
	header model1.ViewModel
	footer model1.ViewModel
	items  []model1.ViewModel
}

func newMenuList(ss []section) (*ui.TextList, *ui.TableManager) {
	l := ui.NewTextList()
	m := ui.NewTableManager(l, ui.Accessors{
		NumberOfSections: func() int { return len(ss) },
		NumberOfRows:     func(s int) int { return len(ss[s].items) },
		CellViewModel:    func(at model1.IndexPath) model1.ViewModel { return ss[at.Section].items[at.Row] },
		HeaderViewModel:  func(s int) model1.ViewModel { return ss[s].header },
		FooterViewModel:  func(s int) model1.ViewModel { return ss[s].footer },
	})
	ui.RegisterCell[model1.Loadable[dao.DishItem]](m, render.NewDish)
	ui.RegisterCell[model1.Loadable[dao.ExperienceItem]](m, render.NewExperience)
	ui.RegisterHeaderFooter[model1.Loadable[dao.HeadingItem]](m, render.NewHeading)
	ui.RegisterHeaderFooter[dao.FooterItem](m, render.NewFooter)

	return l, m
}

func TestTextListLines(t *testing.T) {
	l, m := newMenuList([]section{
		{
			header: model1.Loaded(dao.HeadingItem{Heading: "Mains"}),
			footer: dao.FooterItem{Note: "Served daily"},
			items: []model1.ViewModel{
				model1.Loaded(dao.DishItem{Title: "Soup", Price: "4.50"}),
				model1.Loaded(dao.DishItem{Title: "Bread", Price: "12.00"}),
			},
		},
	})
	m.ReloadData()

	assert.Equal(t, []string{
		"Mains",
		"Soup   4.50",
		"Bread  12.00",
		"Served daily",
	}, l.Lines())
}

func TestTextListSeparators(t *testing.T) {
	exp := func(title string, last bool) model1.ViewModel {
		return model1.Loaded(dao.ExperienceItem{
			Experience: dao.Experience{JobTitle: title, Company: "Acme", Duration: "1y"},
			IsLast:     last,
		})
	}
	l, m := newMenuList([]section{
		{items: []model1.ViewModel{exp("Dev", false), exp("Lead", true)}},
	})
	m.ReloadData()

	ll := l.Lines()
	require.Len(t, ll, 3)
	assert.Equal(t, "Dev   Acme  1y", ll[0])
	assert.NotEmpty(t, ll[1])
	assert.Empty(t, strings.Trim(ll[1], "─"))
	assert.Equal(t, "Lead  Acme  1y", ll[2])
}

func TestTextListSkeleton(t *testing.T) {
	l, m := newMenuList([]section{
		{
			header: model1.Loading[dao.HeadingItem](),
			items:  []model1.ViewModel{model1.Loading[dao.DishItem](), model1.Loading[dao.DishItem]()},
		},
	})
	m.ReloadData()

	rr := l.Rows()
	require.Len(t, rr, 3)
	assert.Equal(t, model1.StyleHeading, rr[0].Style)
	for _, r := range rr[1:] {
		assert.Equal(t, model1.StylePlaceholder, r.Style)
		assert.True(t, model1.IsSkeleton(r.Fields[0]))
	}
}

func TestTextListRecyclesViews(t *testing.T) {
	items := make([]model1.ViewModel, 4)
	for i := range items {
		items[i] = model1.Loading[dao.DishItem]()
	}
	l, m := newMenuList([]section{{items: items}})

	for range 3 {
		m.ReloadData()
	}

	assert.Equal(t, 3, l.Reloads())
	assert.Equal(t, 4, l.PoolSize(render.DishCellID))
}

func TestTextListReloadClearsSelection(t *testing.T) {
	l, m := newMenuList([]section{{items: []model1.ViewModel{model1.Loaded(dao.ExperienceItem{})}}})
	m.ReloadData()
	at := model1.IndexPath{}

	l.Select(at)
	assert.True(t, l.IsSelected(at))
	m.ReloadData()
	assert.False(t, l.IsSelected(at))
}

func TestTextListWriteTo(t *testing.T) {
	l, m := newMenuList([]section{
		{items: []model1.ViewModel{model1.Loaded(dao.DishItem{Title: "Soup", Price: "4.50"})}},
	})
	m.ReloadData()

	var buff bytes.Buffer
	n, err := l.WriteTo(&buff)
	require.NoError(t, err)
	assert.Equal(t, "Soup  4.50\n", buff.String())
	assert.Equal(t, int64(buff.Len()), n)
}
