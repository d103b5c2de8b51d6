// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of smartlisting

package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/smartlisting/smartlisting/internal/model1"
)

const (
	cmdPrompt = "📋"
	cmdPrefix = ":"
)

// CmdBar is a bordered command input bar with ghost-text completion of
// screen names.
type CmdBar struct {
	*tview.TextView

	cmdFn      func(string)
	activeFn   func(bool)
	active     bool
	text       []rune
	commands   []string
	suggestion string
	mx         sync.RWMutex
}

// NewCmdBar creates a new command bar.
func NewCmdBar() *CmdBar {
	c := CmdBar{TextView: tview.NewTextView()}
	c.SetBorder(true)
	c.SetBorderColor(tcell.ColorDarkCyan)
	c.SetBackgroundColor(tcell.ColorDefault)
	c.SetTextColor(tcell.ColorWhite)
	c.SetDynamicColors(true)
	c.SetWrap(false)
	c.SetInputCapture(c.keyboard)
	c.render()

	return &c
}

func (c *CmdBar) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if !c.IsActive() {
		return evt
	}

	switch evt.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		c.mx.Lock()
		if len(c.text) > 0 {
			c.text = c.text[:len(c.text)-1]
		}
		c.mx.Unlock()
	case tcell.KeyCtrlU, tcell.KeyCtrlW:
		c.mx.Lock()
		c.text = c.text[:0]
		c.mx.Unlock()
	case tcell.KeyTab, tcell.KeyRight:
		c.mx.Lock()
		if c.suggestion != "" {
			c.text = []rune(c.suggestion)
		}
		c.mx.Unlock()
	case tcell.KeyEnter:
		c.execute()
		return nil
	case tcell.KeyEsc:
		c.Deactivate()
		return nil
	case tcell.KeyRune:
		c.mx.Lock()
		c.text = append(c.text, evt.Rune())
		c.mx.Unlock()
	default:
		return evt
	}
	c.suggest()
	c.render()

	return nil
}

func (c *CmdBar) render() {
	c.mx.RLock()
	text, suggestion, active := string(c.text), c.suggestion, c.active
	c.mx.RUnlock()

	c.Clear()
	if !active {
		_, _ = fmt.Fprintf(c, "%s [gray::]type %s for screens, ? for help", cmdPrompt, cmdPrefix)
		return
	}
	ghost := ""
	if strings.HasPrefix(suggestion, text) {
		ghost = suggestion[len(text):]
	}
	_, _ = fmt.Fprintf(c, "%s%s [::b]%s[gray::]%s[-::]", cmdPrompt, cmdPrefix, text, ghost)
}

// suggest picks the first command completing the current text.
func (c *CmdBar) suggest() {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.suggestion = ""
	text := strings.ToLower(string(c.text))
	if text == "" {
		return
	}
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, text) {
			c.suggestion = cmd
			return
		}
	}
}

// SetCommands sets the commands offered as completions.
func (c *CmdBar) SetCommands(cmds []string) {
	cc := make([]string, len(cmds))
	copy(cc, cmds)
	model1.SortNatural(cc)

	c.mx.Lock()
	defer c.mx.Unlock()
	c.commands = cc
}

// Text returns the current input text.
func (c *CmdBar) Text() string {
	c.mx.RLock()
	defer c.mx.RUnlock()

	return string(c.text)
}

// Activate enters command mode.
func (c *CmdBar) Activate() {
	c.mx.Lock()
	c.active = true
	c.text, c.suggestion = c.text[:0], ""
	c.mx.Unlock()
	c.render()

	if c.activeFn != nil {
		c.activeFn(true)
	}
}

// Deactivate leaves command mode.
func (c *CmdBar) Deactivate() {
	c.mx.Lock()
	c.active = false
	c.text, c.suggestion = c.text[:0], ""
	c.mx.Unlock()
	c.render()

	if c.activeFn != nil {
		c.activeFn(false)
	}
}

func (c *CmdBar) execute() {
	text := strings.TrimSpace(c.Text())
	if text != "" && c.cmdFn != nil {
		c.cmdFn(text)
	}
	c.Deactivate()
}

// IsActive returns whether the command bar is accepting input.
func (c *CmdBar) IsActive() bool {
	c.mx.RLock()
	defer c.mx.RUnlock()

	return c.active
}

// SetCommandFn sets the callback for command execution.
func (c *CmdBar) SetCommandFn(fn func(string)) {
	c.cmdFn = fn
}

// SetActiveFn sets the callback for when active state changes.
func (c *CmdBar) SetActiveFn(fn func(bool)) {
	c.activeFn = fn
}
