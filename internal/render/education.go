package render

import (
	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/model1"
)

// Education renders a past study.
type Education struct {
	Base
}

// NewEducation returns a new education cell.
func NewEducation() *Education {
	return &Education{}
}

// Identifier returns the renderer kind.
func (*Education) Identifier() string {
	return EducationCellID
}

// Configure draws the study or its placeholder.
func (c *Education) Configure(vm model1.Loadable[dao.EducationItem]) {
	item, ok := vm.Value()
	if !ok {
		c.setSkeleton(26, 18, 20)
		return
	}

	c.setRow(item.Institution+"/"+item.Field, model1.StyleNormal,
		item.Institution,
		model1.NA(item.Field),
		item.Duration,
	)
	c.row.Separator = !item.IsSeparatorHidden()
}
