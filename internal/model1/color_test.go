package model1_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlisting/smartlisting/internal/model1"
)

func TestPaletteColor(t *testing.T) {
	p := model1.DefaultPalette()

	assert.Equal(t, model1.HeadingColor, p.Color(model1.StyleHeading))
	assert.Equal(t, model1.PlaceholderColor, p.Color(model1.StylePlaceholder))
	assert.Equal(t, model1.StdColor, model1.Palette{}.Color(model1.StyleFooter))
}

func TestPaletteOverride(t *testing.T) {
	uu := map[string]struct {
		skin map[string]string
		err  bool
		s    model1.RowStyle
		e    tcell.Color
	}{
		"none": {
			s: model1.StyleHeading,
			e: model1.HeadingColor,
		},
		"named": {
			skin: map[string]string{"Heading": "orange"},
			s:    model1.StyleHeading,
			e:    tcell.ColorOrange,
		},
		"default": {
			skin: map[string]string{"normal": "default"},
			s:    model1.StyleNormal,
			e:    tcell.ColorDefault,
		},
		"bad-style": {
			skin: map[string]string{"banner": "red"},
			err:  true,
		},
		"bad-color": {
			skin: map[string]string{"footer": "nocolor"},
			err:  true,
		},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			p := model1.DefaultPalette()
			err := p.Override(u.skin)
			if u.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, u.e, p.Color(u.s))
		})
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, int32(-1), model1.Hex(tcell.ColorDefault))
	assert.Equal(t, int32(0xff0000), model1.Hex(tcell.ColorRed))
}
