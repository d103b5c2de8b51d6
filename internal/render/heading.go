package render

import (
	"strings"

	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/model1"
)

// Heading renders a section header.
type Heading struct {
	Base
}

// NewHeading returns a new section header view.
func NewHeading() *Heading {
	return &Heading{}
}

// Identifier returns the renderer kind.
func (*Heading) Identifier() string {
	return HeadingViewID
}

// Configure draws the heading or its placeholder.
func (v *Heading) Configure(vm model1.Loadable[dao.HeadingItem]) {
	item, ok := vm.Value()
	if !ok {
		v.setSkeleton(12)
		v.row.Style = model1.StyleHeading
		return
	}

	v.setRow(strings.ToLower(item.Heading), model1.StyleHeading, item.Heading)
}

// Footer renders a section footer.
type Footer struct {
	Base
}

// NewFooter returns a new section footer view.
func NewFooter() *Footer {
	return &Footer{}
}

// Identifier returns the renderer kind.
func (*Footer) Identifier() string {
	return FooterViewID
}

// Configure draws the footer note, or a spacer when there is none.
func (v *Footer) Configure(vm dao.FooterItem) {
	v.setRow("", model1.StyleFooter, vm.Note)
}
