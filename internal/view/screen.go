package view

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/derailed/tcell/v2"

	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/model"
	"github.com/smartlisting/smartlisting/internal/ui"
)

// Screen is a list page: placeholders first, then the accessor data once
// loaded.
type Screen struct {
	*ui.ListView

	env       Env
	accessor  dao.Accessor
	sections  *model.Sections
	manager   *ui.TableManager
	loadDelay time.Duration
	cancelFn  context.CancelFunc
	mx        sync.Mutex
}

var (
	_ ui.Component       = (*Screen)(nil)
	_ model.DataListener = (*Screen)(nil)
)

// NewScreen returns a screen listing what an accessor provides.
func NewScreen(env Env, acc dao.Accessor, loadDelay time.Duration) (*Screen, error) {
	s := Screen{
		ListView:  ui.NewListView(acc.ScreenID().String()),
		env:       env,
		accessor:  acc,
		sections:  model.NewSections(acc.Skeleton()),
		loadDelay: loadDelay,
	}
	s.manager = ui.NewTableManager(s.ListView, accessorsFor(s.sections))
	if err := Bind(s.manager, acc.ScreenID(), env); err != nil {
		return nil, err
	}
	s.sections.AddListener(&s)

	return &s, nil
}

// Init initializes the screen and draws the placeholders.
func (s *Screen) Init(context.Context) error {
	s.ListView.Init()
	s.Actions().Add(tcell.KeyCtrlR, ui.NewKeyAction("Reload", s.reloadCmd, true))
	s.manager.ReloadData()

	return nil
}

// Manager returns the list coordinator.
func (s *Screen) Manager() *ui.TableManager {
	return s.manager
}

// Sections returns the backing store.
func (s *Screen) Sections() *model.Sections {
	return s.sections
}

// Start shows the placeholders again and loads the data after the load delay.
func (s *Screen) Start() {
	ctx := s.prepareContext()
	if !s.sections.IsLoading() {
		s.sections.Reset(s.accessor.Skeleton())
	}

	go s.load(ctx)
}

// Stop cancels a pending load.
func (s *Screen) Stop() {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.cancelFn != nil {
		s.cancelFn()
		s.cancelFn = nil
	}
}

func (s *Screen) load(ctx context.Context) {
	if s.loadDelay > 0 {
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.loadDelay):
		}
	}

	ss, err := s.accessor.Load(ctx)
	if ctx.Err() != nil {
		return
	}
	s.env.QueueUpdateDraw(func() {
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			s.sections.Fail(err)
			return
		}
		s.sections.Set(ss)
	})
}

// SectionsChanged reloads the list. Sections only change on the UI goroutine.
func (s *Screen) SectionsChanged() {
	s.manager.ReloadData()
}

// SectionsLoadFailed reports the failure, keeping the placeholders on screen.
func (s *Screen) SectionsLoadFailed(err error) {
	slog.Error("Screen load failed", "screen", s.Name(), "error", err)
	s.env.Err(err)
}

func (s *Screen) prepareContext() context.Context {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.cancelFn != nil {
		s.cancelFn()
	}
	var ctx context.Context
	ctx, s.cancelFn = context.WithCancel(context.Background())

	return ctx
}

func (s *Screen) reloadCmd(*tcell.EventKey) *tcell.EventKey {
	s.env.Infof("Reloading %s...", s.Name())
	s.Start()
	return nil
}
