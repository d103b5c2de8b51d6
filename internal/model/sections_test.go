package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartlisting/smartlisting/internal/model"
	"github.com/smartlisting/smartlisting/internal/model1"
)

type item string

func (item) Identifier() string { return "item" }

func TestSectionsSet(t *testing.T) {
	s := model.NewSections([]model.Section{{Items: []model1.ViewModel{item("a")}}})
	l := &listener{}
	s.AddListener(l)

	assert.True(t, s.IsLoading())
	assert.Equal(t, 1, s.NumberOfSections())

	s.Set([]model.Section{
		{Header: item("h"), Items: []model1.ViewModel{item("a"), item("b")}},
		{Footer: item("f"), Items: []model1.ViewModel{item("c")}},
	})

	assert.False(t, s.IsLoading())
	assert.Equal(t, 1, l.changed)
	assert.Equal(t, 2, s.NumberOfSections())
	assert.Equal(t, 2, s.NumberOfItems(0))
	assert.Equal(t, 1, s.NumberOfItems(1))
	assert.Equal(t, item("c"), s.Item(model1.IndexPath{Section: 1}))
	assert.Equal(t, item("h"), s.Header(0))
	assert.Nil(t, s.Header(1))
	assert.Nil(t, s.Footer(0))
	assert.Equal(t, item("f"), s.Footer(1))
}

func TestSectionsReset(t *testing.T) {
	s := model.NewSections(nil)
	l := &listener{}
	s.AddListener(l)
	s.Set([]model.Section{{Items: []model1.ViewModel{item("a")}}})

	s.Reset(nil)

	assert.True(t, s.IsLoading())
	assert.Equal(t, 0, s.NumberOfSections())
	assert.Equal(t, 2, l.changed)
}

func TestSectionsFail(t *testing.T) {
	s := model.NewSections([]model.Section{{}})
	l := &listener{}
	s.AddListener(l)

	s.Fail(errors.New("boom"))

	assert.Equal(t, []string{"boom"}, l.errs)
	assert.Equal(t, 0, l.changed)
	assert.True(t, s.IsLoading())
	assert.Equal(t, 1, s.NumberOfSections())
}

func TestSectionsRemoveListener(t *testing.T) {
	s := model.NewSections(nil)
	l1, l2 := &listener{}, &listener{}
	s.AddListener(l1)
	s.AddListener(l2)

	s.RemoveListener(l1)
	s.RemoveListener(&listener{})
	s.Set(nil)

	assert.Equal(t, 0, l1.changed)
	assert.Equal(t, 1, l2.changed)
}

// Helpers...

type listener struct {
	changed int
	errs    []string
}

func (l *listener) SectionsChanged() {
	l.changed++
}

func (l *listener) SectionsLoadFailed(err error) {
	l.errs = append(l.errs, err.Error())
}
