package render

import (
	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/model1"
)

// ProfileHeader renders the profile banner.
type ProfileHeader struct {
	Base
}

// NewProfileHeader returns a new banner cell.
func NewProfileHeader() *ProfileHeader {
	return &ProfileHeader{}
}

// Identifier returns the renderer kind.
func (*ProfileHeader) Identifier() string {
	return ProfileHeaderCellID
}

// Configure draws the banner or its placeholder.
func (c *ProfileHeader) Configure(vm model1.Loadable[dao.ProfileHeaderItem]) {
	item, ok := vm.Value()
	if !ok {
		c.setSkeleton(18, 34, 10)
		return
	}

	info := item.Info
	c.setRow(info.Name, model1.StyleNormal,
		info.Name,
		model1.NA(info.Headline),
		model1.NA(info.Location),
	)
}
