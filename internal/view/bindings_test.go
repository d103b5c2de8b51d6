package view_test

import (
	"bytes"
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/model1"
	"github.com/smartlisting/smartlisting/internal/ui"
	"github.com/smartlisting/smartlisting/internal/view"
)

func TestBindUnknownScreen(t *testing.T) {
	m := ui.NewTableManager(ui.NewTextList(), ui.Accessors{})

	err := view.Bind(m, &dao.ScreenID{Name: "fred"}, new(env))
	assert.ErrorIs(t, err, dao.ErrUnknownScreen)
}

func TestBindProfile(t *testing.T) {
	m := ui.NewTableManager(ui.NewTextList(), ui.Accessors{})
	require.NoError(t, view.Bind(m, &dao.ProfileSID, new(env)))

	assert.Equal(t, []string{
		model1.IdentifierOf[model1.Loadable[dao.EducationItem]](),
		model1.IdentifierOf[model1.Loadable[dao.ExperienceItem]](),
		model1.IdentifierOf[model1.Loadable[dao.ProfileHeaderItem]](),
		model1.IdentifierOf[model1.Loadable[dao.SkillItem]](),
	}, sorted(m.Cells().Identifiers()))
	assert.Len(t, m.HeaderFooters().Identifiers(), 2)
}

func TestDishSelected(t *testing.T) {
	e, list := new(env), ui.NewTextList()
	m := ui.NewTableManager(list, ui.Accessors{
		NumberOfRows: func(int) int { return 2 },
		CellViewModel: func(at model1.IndexPath) model1.ViewModel {
			if at.Row == 0 {
				return model1.Loaded(dao.DishItem{Title: "Soup", Price: "4.50"})
			}
			return model1.Loading[dao.DishItem]()
		},
	})
	require.NoError(t, view.Bind(m, &dao.MenuSID, e))
	m.ReloadData()

	loaded, loading := model1.IndexPath{Row: 0}, model1.IndexPath{Row: 1}
	list.Select(loaded)
	assert.Equal(t, []string{"Selected item: Soup"}, e.infos)

	list.Select(loading)
	assert.Equal(t, []string{"Selected item: Soup"}, e.infos)
	assert.False(t, list.IsSelected(loaded))
	assert.False(t, list.IsSelected(loading))
}

func TestRenderScreen(t *testing.T) {
	uu := map[string]struct {
		sid *dao.ScreenID
		ee  []string
	}{
		"menu": {
			sid: &dao.MenuSID,
			ee:  []string{"Mains", "Burger", "9.75", "Desserts", "Tiramisu"},
		},
		"profile": {
			sid: &dao.ProfileSID,
			ee:  []string{"Tayyab Akram", "Experience", "SadaPay", "Skills", "MVVM"},
		},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			var buff bytes.Buffer
			require.NoError(t, view.RenderScreen(context.Background(), dao.NewFactory(nil), u.sid, &buff))
			for _, e := range u.ee {
				assert.Contains(t, buff.String(), e)
			}
		})
	}
}

func TestRenderScreenFailed(t *testing.T) {
	f := dao.NewFactory(nil)
	f.SetSource(&dao.MenuSID, filepath.Join(t.TempDir(), "nope.ini"))

	var buff bytes.Buffer
	err := view.RenderScreen(context.Background(), f, &dao.MenuSID, &buff)
	assert.Error(t, err)
	assert.Empty(t, buff.String())

	err = view.RenderScreen(context.Background(), f, &dao.ScreenID{Name: "fred"}, &buff)
	assert.ErrorIs(t, err, dao.ErrUnknownScreen)
}

// Helpers...

func sorted(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}
