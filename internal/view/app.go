// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of smartlisting

package view

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/smartlisting/smartlisting/internal/config"
	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/ui"
)

const (
	// FlashDelay sets the flash auto-clear delay.
	FlashDelay = 5 * time.Second

	mainPage = "main"
)

// FlashLevel represents flash message severity.
type FlashLevel int

const (
	// FlashInfo represents an info message.
	FlashInfo FlashLevel = iota
	// FlashWarn represents a warning message.
	FlashWarn
	// FlashErr represents an error message.
	FlashErr
)

// Flash shows transient status messages.
type Flash struct {
	*tview.TextView

	app    *App
	cancel context.CancelFunc
	mx     sync.Mutex
}

// NewFlash creates a new Flash instance.
func NewFlash(app *App) *Flash {
	f := Flash{
		TextView: tview.NewTextView(),
		app:      app,
	}
	f.SetDynamicColors(true)
	f.SetTextAlign(tview.AlignLeft)
	f.SetBorderPadding(0, 0, 1, 1)

	return &f
}

// Info displays an informational message.
func (f *Flash) Info(msg string) {
	f.setMessage(FlashInfo, msg)
}

// Infof displays a formatted informational message.
func (f *Flash) Infof(format string, args ...any) {
	f.Info(fmt.Sprintf(format, args...))
}

// Warn displays a warning message.
func (f *Flash) Warn(msg string) {
	f.setMessage(FlashWarn, msg)
}

// Err displays an error message.
func (f *Flash) Err(err error) {
	if err != nil {
		f.setMessage(FlashErr, err.Error())
	}
}

// Errf displays a formatted error message.
func (f *Flash) Errf(format string, args ...any) {
	f.setMessage(FlashErr, fmt.Sprintf(format, args...))
}

// Clear clears the flash message.
func (f *Flash) Clear() {
	f.stopTimer()
	f.update(func() { f.TextView.Clear() })
}

func (f *Flash) setMessage(level FlashLevel, msg string) {
	if msg == "" {
		f.Clear()
		return
	}

	f.stopTimer()
	f.update(func() {
		f.TextView.Clear()
		f.SetTextColor(flashColor(level))
		_, _ = fmt.Fprintf(f.TextView, "%s %s", flashPrefix(level), msg)
	})

	ctx, cancel := context.WithCancel(context.Background())
	f.mx.Lock()
	f.cancel = cancel
	f.mx.Unlock()

	go f.autoClear(ctx)
}

func (f *Flash) stopTimer() {
	f.mx.Lock()
	defer f.mx.Unlock()

	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func (f *Flash) update(fn func()) {
	if f.app != nil {
		f.app.QueueUpdateDraw(fn)
		return
	}
	fn()
}

func (f *Flash) autoClear(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(FlashDelay):
		f.update(func() { f.TextView.Clear() })
	}
}

func flashColor(level FlashLevel) tcell.Color {
	switch level {
	case FlashWarn:
		return tcell.ColorYellow
	case FlashErr:
		return tcell.ColorRed
	default:
		return tcell.ColorGreen
	}
}

func flashPrefix(level FlashLevel) string {
	switch level {
	case FlashWarn:
		return "[WARN]"
	case FlashErr:
		return "[ERROR]"
	default:
		return "[INFO]"
	}
}

// App represents the main application container.
type App struct {
	*tview.Application

	version string
	Main    *tview.Pages
	Content *ui.Pages
	command *Command
	factory dao.Factory
	cfg     *config.Config
	aliases *config.Aliases
	cmdBar  *ui.CmdBar
	menu    *ui.Menu
	crumbs  *ui.Crumbs
	flash   *Flash
	running bool
	mx      sync.RWMutex
}

var _ Env = (*App)(nil)

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, aliases *config.Aliases, f dao.Factory, version string) *App {
	if aliases == nil {
		aliases = config.NewAliases()
	}
	a := App{
		Application: tview.NewApplication(),
		version:     version,
		Main:        tview.NewPages(),
		Content:     ui.NewPages(),
		factory:     f,
		cfg:         cfg,
		aliases:     aliases,
		menu:        ui.NewMenu(),
		crumbs:      ui.NewCrumbs(),
		cmdBar:      ui.NewCmdBar(),
	}
	a.flash = NewFlash(&a)
	a.command = NewCommand(&a)

	a.Application.SetInputCapture(a.keyboard)
	a.cmdBar.SetActiveFn(func(active bool) {
		if active {
			a.SetFocus(a.cmdBar)
			return
		}
		a.focusTop()
	})
	a.cmdBar.SetCommandFn(func(cmd string) {
		if err := a.command.Run(cmd); err != nil {
			a.flash.Err(err)
		}
	})

	return &a
}

// Init builds the application layout.
func (a *App) Init() error {
	a.Content.AddListener(a.menu)
	if !a.cfg.Smartlisting.UI.Crumbsless {
		a.Content.AddListener(a.crumbs)
	}
	a.cmdBar.SetCommands(a.command.Names())
	a.EnableMouse(a.cfg.Smartlisting.UI.EnableMouse)

	a.Main.AddPage(mainPage, a.buildLayout(), true, true)
	a.SetRoot(a.Main, true)

	return nil
}

// Run shows the startup screen and runs the event loop.
func (a *App) Run() error {
	a.mx.Lock()
	a.running = true
	a.mx.Unlock()

	if err := a.command.Run(""); err != nil {
		slog.Error("Startup screen failed", "error", err)
		a.flash.Err(err)
	}

	return a.Application.Run()
}

// Stop stops the current screen and the application.
func (a *App) Stop() {
	a.mx.Lock()
	a.running = false
	a.mx.Unlock()

	if top := a.Content.Top(); top != nil {
		top.Stop()
	}
	a.Application.Stop()
}

// IsRunning returns whether the event loop runs.
func (a *App) IsRunning() bool {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return a.running
}

// Flash returns the flash message handler.
func (a *App) Flash() *Flash {
	return a.flash
}

// Factory returns the screen data factory.
func (a *App) Factory() dao.Factory {
	return a.factory
}

// Config returns the application settings.
func (a *App) Config() *config.Config {
	return a.cfg
}

// QueueUpdateDraw queues a function to be executed on the UI thread.
func (a *App) QueueUpdateDraw(fn func()) {
	go a.Application.QueueUpdateDraw(fn)
}

// Infof flashes an informational message.
func (a *App) Infof(format string, args ...any) {
	a.flash.Infof(format, args...)
}

// Err flashes an error.
func (a *App) Err(err error) {
	a.flash.Err(err)
}

// inject shows a new component on top of the stack.
func (a *App) inject(c ui.Component) error {
	if err := c.Init(context.Background()); err != nil {
		return fmt.Errorf("failed to initialize %s: %w", c.Name(), err)
	}
	a.Content.Push(c)
	a.SetFocus(c)
	c.Start()

	return nil
}

func (a *App) buildLayout() *tview.Flex {
	rows, bottom := 1, tview.NewFlex().SetDirection(tview.FlexRow)
	if !a.cfg.Smartlisting.UI.Crumbsless {
		bottom.AddItem(a.crumbs, 1, 0, false)
		rows++
	}
	bottom.AddItem(a.flash, 1, 0, false)

	header := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(a.cmdBar, 0, 1, false).
		AddItem(a.menu, 0, 1, false)

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 4, 0, false).
		AddItem(a.Content, 0, 1, true).
		AddItem(bottom, rows, 0, false)
}

func (a *App) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if a.cmdBar.IsActive() {
		return evt
	}

	switch evt.Key() {
	case tcell.KeyCtrlC:
		a.Stop()
		return nil
	case tcell.KeyEsc:
		a.back()
		return nil
	case tcell.KeyRune:
		switch evt.Rune() {
		case ':':
			a.cmdBar.Activate()
			return nil
		case '?':
			a.helpCmd()
			return nil
		case 'q':
			a.Stop()
			return nil
		}
	}

	return evt
}

func (a *App) helpCmd() {
	if _, ok := a.Content.Top().(*Help); ok {
		a.back()
		return
	}
	if err := a.inject(NewHelp(a)); err != nil {
		a.flash.Err(err)
	}
}

// back pops the top component, keeping the last one.
func (a *App) back() {
	if a.Content.IsLast() {
		return
	}
	a.Content.Pop()
	if top := a.Content.Top(); top != nil {
		a.SetFocus(top)
		top.Start()
	}
}

func (a *App) focusTop() {
	if top := a.Content.Top(); top != nil {
		a.SetFocus(top)
		return
	}
	a.SetFocus(a.Content)
}
