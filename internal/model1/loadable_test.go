package model1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartlisting/smartlisting/internal/model1"
)

type fruit struct {
	Name string
}

func (fruit) Identifier() string { return "fruit" }

func TestLoadableIdentifier(t *testing.T) {
	uu := map[string]struct {
		l model1.Loadable[fruit]
	}{
		"loading": {l: model1.Loading[fruit]()},
		"loaded":  {l: model1.Loaded(fruit{Name: "fig"})},
		"zero":    {},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, "fruit", u.l.Identifier())
		})
	}
	assert.Equal(t, "fruit", model1.IdentifierOf[model1.Loadable[fruit]]())
}

func TestLoadableValue(t *testing.T) {
	l := model1.Loading[fruit]()
	assert.True(t, l.IsLoading())
	_, ok := l.Value()
	assert.False(t, ok)
	assert.Equal(t, "Loading", l.String())

	l = model1.Loaded(fruit{Name: "fig"})
	assert.False(t, l.IsLoading())
	v, ok := l.Value()
	assert.True(t, ok)
	assert.Equal(t, "fig", v.Name)
	assert.Equal(t, "Loaded({fig})", l.String())
}

func TestIndexPathString(t *testing.T) {
	assert.Equal(t, "1/3", model1.IndexPath{Section: 1, Row: 3}.String())
}

func TestEmpty(t *testing.T) {
	var vm model1.ViewModel = model1.Empty{}
	assert.Equal(t, model1.EmptyIdentifier, vm.Identifier())
}
