// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of smartlisting

package ui

import (
	"sort"
	"sync"

	"github.com/derailed/tcell/v2"
)

// Rune keys bound by list views and screens.
const (
	KeyG      = tcell.Key('g')
	KeyShiftG = tcell.Key('G')
	KeyJ      = tcell.Key('j')
	KeyK      = tcell.Key('k')
	KeyQ      = tcell.Key('q')
	KeyR      = tcell.Key('r')
	KeyColon  = tcell.Key(':')
	KeyHelp   = tcell.Key('?')
)

// ActionHandler handles a keyboard command.
type ActionHandler func(*tcell.EventKey) *tcell.EventKey

// KeyAction represents a keyboard action.
type KeyAction struct {
	Description string
	Action      ActionHandler
	Visible     bool
}

// KeyMap tracks key to action mappings.
type KeyMap map[tcell.Key]KeyAction

// NewKeyAction returns a new keyboard action.
func NewKeyAction(d string, a ActionHandler, display bool) KeyAction {
	return KeyAction{Description: d, Action: a, Visible: display}
}

// KeyActions tracks the actions bound to a component.
type KeyActions struct {
	actions KeyMap
	mx      sync.RWMutex
}

// NewKeyActions returns a new instance.
func NewKeyActions() *KeyActions {
	return &KeyActions{actions: make(KeyMap)}
}

// Add binds a key.
func (a *KeyActions) Add(k tcell.Key, ka KeyAction) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.actions[k] = ka
}

// Bulk binds several keys at once.
func (a *KeyActions) Bulk(km KeyMap) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for k, ka := range km {
		a.actions[k] = ka
	}
}

// Delete unbinds keys.
func (a *KeyActions) Delete(kk ...tcell.Key) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for _, k := range kk {
		delete(a.actions, k)
	}
}

// Get returns the action bound to a key.
func (a *KeyActions) Get(k tcell.Key) (KeyAction, bool) {
	a.mx.RLock()
	defer a.mx.RUnlock()

	ka, ok := a.actions[k]
	return ka, ok
}

// Len returns the number of bound keys.
func (a *KeyActions) Len() int {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return len(a.actions)
}

// Hints returns the menu hints of the bound keys.
func (a *KeyActions) Hints() MenuHints {
	a.mx.RLock()
	defer a.mx.RUnlock()

	kk := make([]tcell.Key, 0, len(a.actions))
	for k := range a.actions {
		kk = append(kk, k)
	}
	sort.Slice(kk, func(i, j int) bool { return kk[i] < kk[j] })

	hh := make(MenuHints, 0, len(kk))
	for _, k := range kk {
		hh = append(hh, MenuHint{
			Mnemonic:    keyName(k),
			Description: a.actions[k].Description,
			Visible:     a.actions[k].Visible,
		})
	}
	return hh
}

// Dispatch runs the action bound to the event key, if any. Rune events are
// looked up by rune.
func (a *KeyActions) Dispatch(evt *tcell.EventKey) (*tcell.EventKey, bool) {
	k := evt.Key()
	if k == tcell.KeyRune {
		k = tcell.Key(evt.Rune())
	}
	ka, ok := a.Get(k)
	if !ok || ka.Action == nil {
		return evt, false
	}
	return ka.Action(evt), true
}

func keyName(k tcell.Key) string {
	if name, ok := tcell.KeyNames[k]; ok {
		return name
	}
	return string(rune(k))
}
