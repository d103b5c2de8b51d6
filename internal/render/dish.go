package render

import (
	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/model1"
)

// Dish renders a dining menu entry.
type Dish struct {
	Base
}

// NewDish returns a new dish cell.
func NewDish() *Dish {
	return &Dish{}
}

// Identifier returns the renderer kind.
func (*Dish) Identifier() string {
	return DishCellID
}

// Configure draws the dish or its placeholder.
func (c *Dish) Configure(vm model1.Loadable[dao.DishItem]) {
	item, ok := vm.Value()
	if !ok {
		c.setSkeleton(12, 6)
		return
	}

	price := item.Price
	if price == "" {
		price = MissingValue
	}
	c.setRow(item.Title, model1.StyleNormal, item.Title, price)
}
