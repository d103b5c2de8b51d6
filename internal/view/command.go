// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of smartlisting

package view

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/smartlisting/smartlisting/internal/dao"
)

// Command interprets command bar input.
type Command struct {
	app *App
}

// NewCommand creates a new command interpreter.
func NewCommand(app *App) *Command {
	return &Command{app: app}
}

// Names returns the screen names and aliases the command bar completes.
func (c *Command) Names() []string {
	nn := c.app.aliases.Keys()
	for _, sid := range dao.ListAccessors() {
		nn = append(nn, sid.String())
	}

	return nn
}

// Run resolves a command and shows its screen. An empty command shows the
// configured startup screen.
func (c *Command) Run(cmd string) error {
	cmd = strings.TrimSpace(strings.TrimPrefix(cmd, ":"))
	if cmd == "" {
		cmd = c.app.cfg.Smartlisting.Screen()
	}
	switch cmd {
	case "q", "quit", "q!":
		c.app.Stop()
		return nil
	case "help", "?":
		c.app.helpCmd()
		return nil
	}

	var sid dao.ScreenID
	if err := sid.Parse(c.app.aliases.Get(cmd)); err != nil {
		return err
	}

	return c.screenCmd(&sid)
}

func (c *Command) screenCmd(sid *dao.ScreenID) error {
	if top, ok := c.app.Content.Top().(*Screen); ok && top.Name() == sid.String() {
		top.Start()
		return nil
	}

	s, err := c.newScreen(sid)
	if err != nil {
		return err
	}
	slog.Debug("Showing screen", "screen", sid)

	return c.app.inject(s)
}

func (c *Command) newScreen(sid *dao.ScreenID) (*Screen, error) {
	acc, err := dao.AccessorFor(c.app.factory, sid)
	if err != nil {
		return nil, err
	}
	delay, err := c.app.cfg.Smartlisting.GetLoadDelay()
	if err != nil {
		return nil, err
	}
	s, err := NewScreen(c.app, acc, delay)
	if err != nil {
		return nil, fmt.Errorf("failed to create screen %s: %w", sid, err)
	}
	p, err := c.app.cfg.Smartlisting.Palette()
	if err != nil {
		return nil, err
	}
	s.SetPalette(p)

	return s, nil
}
