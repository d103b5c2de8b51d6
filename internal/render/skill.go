package render

import (
	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/model1"
)

// Skill renders a skill.
type Skill struct {
	Base
}

// NewSkill returns a new skill cell.
func NewSkill() *Skill {
	return &Skill{}
}

// Identifier returns the renderer kind.
func (*Skill) Identifier() string {
	return SkillCellID
}

// Configure draws the skill or its placeholder.
func (c *Skill) Configure(vm model1.Loadable[dao.SkillItem]) {
	item, ok := vm.Value()
	if !ok {
		c.setSkeleton(1, 16)
		return
	}

	c.setRow(item.Name, model1.StyleNormal, Bullet, item.Name)
	c.row.Separator = !item.IsSeparatorHidden()
}
