package model1

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var (
	// StdColor row default color
	StdColor tcell.Color = tcell.ColorWhite

	// PlaceholderColor loading skeleton color
	PlaceholderColor tcell.Color = tcell.ColorGray

	// HeadingColor section header color
	HeadingColor tcell.Color = tcell.ColorYellow

	// FooterColor section footer color
	FooterColor tcell.Color = tcell.ColorDarkCyan

	// BlankColor inert row color
	BlankColor tcell.Color = tcell.ColorDefault
)

// Palette maps row styles to colors.
type Palette map[RowStyle]tcell.Color

// DefaultPalette returns the stock row colors.
func DefaultPalette() Palette {
	return Palette{
		StyleNormal:      StdColor,
		StylePlaceholder: PlaceholderColor,
		StyleHeading:     HeadingColor,
		StyleFooter:      FooterColor,
		StyleBlank:       BlankColor,
	}
}

// Color returns the color for a style.
func (p Palette) Color(s RowStyle) tcell.Color {
	if c, ok := p[s]; ok {
		return c
	}
	return StdColor
}

// Override replaces style colors from named colors, e.g. {"heading": "orange"}.
func (p Palette) Override(names map[string]string) error {
	for style, name := range names {
		s, ok := parseStyle(style)
		if !ok {
			return fmt.Errorf("unknown row style %q", style)
		}
		c := tcell.GetColor(strings.ToLower(name))
		if c == tcell.ColorDefault && !strings.EqualFold(name, "default") {
			return fmt.Errorf("unknown color %q for style %q", name, style)
		}
		p[s] = c
	}
	return nil
}

// Hex returns the RGB value of a color, or -1 for the terminal default.
func Hex(c tcell.Color) int32 {
	if c == tcell.ColorDefault {
		return -1
	}
	return c.Hex()
}

func parseStyle(s string) (RowStyle, bool) {
	for _, st := range []RowStyle{StyleNormal, StylePlaceholder, StyleHeading, StyleFooter, StyleBlank} {
		if st.String() == strings.ToLower(s) {
			return st, true
		}
	}
	return StyleNormal, false
}
