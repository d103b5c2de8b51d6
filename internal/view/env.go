package view

import (
	"fmt"
	"log/slog"
)

// Env is what screens need from their hosting application.
type Env interface {
	// QueueUpdateDraw runs fn on the UI goroutine and redraws.
	QueueUpdateDraw(fn func())

	// Infof reports a user facing message.
	Infof(format string, args ...any)

	// Err reports a user facing error.
	Err(err error)
}

// logEnv runs updates inline and logs messages. Used when no terminal UI runs.
type logEnv struct {
	log *slog.Logger
}

func newLogEnv(l *slog.Logger) logEnv {
	if l == nil {
		l = slog.Default()
	}
	return logEnv{log: l}
}

func (logEnv) QueueUpdateDraw(fn func()) {
	fn()
}

func (e logEnv) Infof(format string, args ...any) {
	e.log.Info(fmt.Sprintf(format, args...))
}

func (e logEnv) Err(err error) {
	e.log.Error("Screen failed", "error", err)
}
