package render

import (
	"github.com/smartlisting/smartlisting/internal/model1"
)

// Base provides the row storage shared by renderers.
type Base struct {
	row model1.Row
}

// Render returns the last configured row.
func (b *Base) Render() model1.Row {
	return b.row
}

// Loading reports whether the view currently shows a placeholder.
func (b *Base) Loading() bool {
	return b.row.Style == model1.StylePlaceholder
}

// setRow replaces the view content.
func (b *Base) setRow(id string, style model1.RowStyle, fields ...string) {
	b.row = model1.Row{
		ID:     id,
		Fields: model1.Fields(fields),
		Style:  style,
	}
}

// setSkeleton replaces the view content with placeholder bars.
func (b *Base) setSkeleton(widths ...int) {
	b.row = model1.Row{
		Fields: model1.Skeleton(widths...),
		Style:  model1.StylePlaceholder,
	}
}

// Blank is the inert row drawn for unregistered view-model kinds.
type Blank struct {
	Base
}

// NewBlank returns a blank row.
func NewBlank() *Blank {
	b := Blank{}
	b.setRow("", model1.StyleBlank)
	return &b
}

// Identifier returns the renderer kind.
func (*Blank) Identifier() string {
	return BlankCellID
}
