package config

import (
	"os"
	"sync"

	"github.com/smartlisting/smartlisting/internal/config/data"
)

// Aliases maps command shortcuts to screen names.
type Aliases struct {
	Alias map[string]string `yaml:"aliases"`
	mx    sync.RWMutex
}

// DefaultAliases are the built-in screen shortcuts.
var DefaultAliases = map[string]string{
	"p":      "profile",
	"cv":     "profile",
	"resume": "profile",
	"m":      "menu",
	"dining": "menu",
	"dishes": "menu",
}

// NewAliases creates an Aliases with default aliases loaded.
func NewAliases() *Aliases {
	a := Aliases{Alias: make(map[string]string, len(DefaultAliases))}
	for k, v := range DefaultAliases {
		a.Alias[k] = v
	}
	return &a
}

// Load loads aliases from the default config file.
func (a *Aliases) Load() error {
	return a.LoadFrom(AppAliasesFile)
}

// LoadFrom merges aliases from a file over the current ones. A missing file
// is not an error.
func (a *Aliases) LoadFrom(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var loaded Aliases
	if err := data.LoadYAML(path, &loaded); err != nil {
		return err
	}

	a.mx.Lock()
	defer a.mx.Unlock()
	for k, v := range loaded.Alias {
		a.Alias[k] = v
	}

	return nil
}

// Get returns the screen for an alias, or the alias itself if not found.
func (a *Aliases) Get(alias string) string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	if screen, ok := a.Alias[alias]; ok {
		return screen
	}
	return alias
}

// Keys returns every alias.
func (a *Aliases) Keys() []string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	kk := make([]string, 0, len(a.Alias))
	for k := range a.Alias {
		kk = append(kk, k)
	}
	return kk
}
