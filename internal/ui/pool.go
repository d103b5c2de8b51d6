package ui

import (
	"fmt"

	"github.com/smartlisting/smartlisting/internal/model1"
)

type pooled struct {
	view model1.View
	gen  int
}

// viewPool recycles views by renderer identifier.
type viewPool struct {
	factories map[string]func() model1.View
	gens      map[string]int
	free      map[string][]model1.View
	inUse     []pooled
}

func newViewPool() *viewPool {
	return &viewPool{
		factories: make(map[string]func() model1.View),
		gens:      make(map[string]int),
		free:      make(map[string][]model1.View),
	}
}

// register sets the factory of an identifier. Views built by a previous
// factory are never handed out again.
func (p *viewPool) register(id string, newView func() model1.View) {
	p.factories[id] = newView
	p.gens[id]++
	delete(p.free, id)
}

// dequeue returns a free view or builds a new one. Asking for an identifier
// nothing registered is a programming error.
func (p *viewPool) dequeue(id string) model1.View {
	var v model1.View
	if ff := p.free[id]; len(ff) > 0 {
		v, p.free[id] = ff[len(ff)-1], ff[:len(ff)-1]
	} else {
		newView, ok := p.factories[id]
		if !ok {
			panic(fmt.Sprintf("no view registered for identifier %q", id))
		}
		v = newView()
	}
	p.inUse = append(p.inUse, pooled{view: v, gen: p.gens[id]})

	return v
}

// recycle returns every view in use to its free list.
func (p *viewPool) recycle() {
	for _, u := range p.inUse {
		id := u.view.Identifier()
		if u.gen != p.gens[id] {
			continue
		}
		p.free[id] = append(p.free[id], u.view)
	}
	p.inUse = p.inUse[:0]
}

// size returns the number of live views for an identifier.
func (p *viewPool) size(id string) int {
	n := len(p.free[id])
	for _, u := range p.inUse {
		if u.view.Identifier() == id {
			n++
		}
	}
	return n
}
