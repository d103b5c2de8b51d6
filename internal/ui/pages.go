package ui

import (
	"fmt"

	"github.com/derailed/tview"
)

// Pages shows the top component of a stack.
type Pages struct {
	*tview.Pages
	*Stack
}

// NewPages returns a new pages manager.
func NewPages() *Pages {
	p := Pages{
		Pages: tview.NewPages(),
		Stack: NewStack(),
	}
	p.Stack.AddListener(&p)

	return &p
}

// Current returns the displayed component.
func (p *Pages) Current() Component {
	return p.Stack.Top()
}

// StackSize returns the stack depth.
func (p *Pages) StackSize() int {
	return len(p.Flatten())
}

// StackPushed adds and shows the new component.
func (p *Pages) StackPushed(c Component) {
	p.AddPage(componentID(c), c, true, true)
	p.SwitchToPage(componentID(c))
}

// StackPopped removes the old component and shows the new top.
func (p *Pages) StackPopped(o, top Component) {
	p.RemovePage(componentID(o))
	if top != nil {
		p.SwitchToPage(componentID(top))
	}
}

// StackTop notifies the top component.
func (*Pages) StackTop(Component) {}

func componentID(c Component) string {
	return fmt.Sprintf("%s-%p", c.Name(), c)
}
