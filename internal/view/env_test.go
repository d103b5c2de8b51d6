package view_test

import (
	"fmt"
	"sync"
)

type env struct {
	infos []string
	errs  []error
	mx    sync.Mutex
}

func (e *env) QueueUpdateDraw(fn func()) {
	e.mx.Lock()
	defer e.mx.Unlock()

	fn()
}

func (e *env) Infof(format string, args ...any) {
	e.infos = append(e.infos, fmt.Sprintf(format, args...))
}

func (e *env) Err(err error) {
	e.errs = append(e.errs, err)
}

func (e *env) errors() int {
	e.mx.Lock()
	defer e.mx.Unlock()

	return len(e.errs)
}
