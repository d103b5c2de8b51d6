// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of smartlisting

package view

import (
	"fmt"

	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/model"
	"github.com/smartlisting/smartlisting/internal/model1"
	"github.com/smartlisting/smartlisting/internal/render"
	"github.com/smartlisting/smartlisting/internal/ui"
)

type binder func(m *ui.TableManager, env Env)

var binders = map[string]binder{
	dao.ProfileSID.Name: bindProfile,
	dao.MenuSID.Name:    bindMenu,
}

// Bind registers the renderers of a screen.
func Bind(m *ui.TableManager, sid *dao.ScreenID, env Env) error {
	bind, ok := binders[sid.String()]
	if !ok {
		return fmt.Errorf("%w: no renderers for %s", dao.ErrUnknownScreen, sid)
	}
	bind(m, env)

	return nil
}

// accessorsFor exposes a sections store to a TableManager.
func accessorsFor(ss *model.Sections) ui.Accessors {
	return ui.Accessors{
		NumberOfSections: ss.NumberOfSections,
		NumberOfRows:     ss.NumberOfItems,
		CellViewModel:    ss.Item,
		HeaderViewModel:  ss.Header,
		FooterViewModel:  ss.Footer,
	}
}

func bindProfile(m *ui.TableManager, _ Env) {
	ui.RegisterCell[model1.Loadable[dao.ProfileHeaderItem]](m, render.NewProfileHeader)
	ui.RegisterCell[model1.Loadable[dao.ExperienceItem]](m, render.NewExperience)
	ui.RegisterCell[model1.Loadable[dao.EducationItem]](m, render.NewEducation)
	ui.RegisterCell[model1.Loadable[dao.SkillItem]](m, render.NewSkill)
	ui.RegisterHeaderFooter[model1.Loadable[dao.HeadingItem]](m, render.NewHeading)
	ui.RegisterHeaderFooter[dao.FooterItem](m, render.NewFooter)
}

func bindMenu(m *ui.TableManager, env Env) {
	ui.RegisterSelectableCell[model1.Loadable[dao.DishItem]](m, render.NewDish, dishSelected(env))
	ui.RegisterHeaderFooter[model1.Loadable[dao.HeadingItem]](m, render.NewHeading)
}

func dishSelected(env Env) render.SelectFunc[model1.Loadable[dao.DishItem]] {
	return func(host model1.Host, at model1.IndexPath, vm model1.Loadable[dao.DishItem]) {
		if dish, ok := vm.Value(); ok {
			env.Infof("Selected item: %s", dish.Title)
		}
		host.Deselect(at)
	}
}
