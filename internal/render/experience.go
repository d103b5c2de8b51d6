package render

import (
	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/model1"
)

// Experience renders a past position.
type Experience struct {
	Base
}

// NewExperience returns a new experience cell.
func NewExperience() *Experience {
	return &Experience{}
}

// Identifier returns the renderer kind.
func (*Experience) Identifier() string {
	return ExperienceCellID
}

// Configure draws the position or its placeholder.
func (c *Experience) Configure(vm model1.Loadable[dao.ExperienceItem]) {
	item, ok := vm.Value()
	if !ok {
		c.setSkeleton(26, 14, 30)
		return
	}

	c.setRow(item.Company+"/"+item.JobTitle, model1.StyleNormal,
		item.JobTitle,
		item.Company,
		item.Duration,
	)
	c.row.Separator = !item.IsSeparatorHidden()
}
