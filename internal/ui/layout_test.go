package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartlisting/smartlisting/internal/model1"
)

func TestAlign(t *testing.T) {
	uu := map[string]struct {
		ee []entry
		e  []string
	}{
		"empty": {
			e: []string{},
		},
		"same-kind": {
			ee: []entry{
				{kindID: "a", row: model1.Row{Fields: model1.Fields{"x", "yyy", "z"}}},
				{kindID: "a", row: model1.Row{Fields: model1.Fields{"xxx", "y", "z"}}},
			},
			e: []string{
				"x    yyy  z",
				"xxx  y    z",
			},
		},
		"per-kind": {
			ee: []entry{
				{kindID: "a", row: model1.Row{Fields: model1.Fields{"x", "1"}}},
				{kindID: "b", row: model1.Row{Fields: model1.Fields{"xxxx", "2"}}},
			},
			e: []string{
				"x  1",
				"xxxx  2",
			},
		},
		"trailing-blanks": {
			ee: []entry{
				{kindID: "a", row: model1.Row{Fields: model1.Fields{"x", "", ""}}},
				{kindID: "a", row: model1.Row{Fields: model1.Fields{"", "", ""}}},
			},
			e: []string{"x", ""},
		},
		"wide-runes": {
			ee: []entry{
				{kindID: "a", row: model1.Row{Fields: model1.Fields{"寿司", "1"}}},
				{kindID: "a", row: model1.Row{Fields: model1.Fields{"tea", "2"}}},
			},
			e: []string{
				"寿司  1",
				"tea   2",
			},
		},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, align(u.ee))
		})
	}
}

func TestEntrySelectable(t *testing.T) {
	assert.True(t, entry{kind: entryCell}.selectable())
	assert.False(t, entry{kind: entryHeader}.selectable())
	assert.False(t, entry{kind: entryFooter}.selectable())
}

func TestPullNilSource(t *testing.T) {
	assert.Nil(t, pull(nil))
}
