package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/wI2L/jsondiff"

	"github.com/smartlisting/smartlisting/internal/config/data"
)

// Config is the root configuration for the application.
type Config struct {
	Smartlisting *Smartlisting `yaml:"smartlisting"`
	mx           sync.RWMutex
}

// NewConfig creates a Config with default settings.
func NewConfig() *Config {
	return &Config{
		Smartlisting: NewSmartlisting(),
	}
}

// Load loads the configuration from the given path.
// If the file doesn't exist, the current config is kept.
func (c *Config) Load(path string, force bool) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if !force {
			return nil
		}
		return fmt.Errorf("config file does not exist: %s", path)
	}

	if err := data.LoadYAML(path, c); err != nil {
		return fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if c.Smartlisting == nil {
		c.Smartlisting = NewSmartlisting()
	}
	c.Smartlisting.Validate()

	return nil
}

// Refine applies CLI flags on top of the loaded configuration.
func (c *Config) Refine(flags *data.Flags) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.Smartlisting == nil {
		return fmt.Errorf("config.Smartlisting is nil")
	}
	c.Smartlisting.Override(flags)
	c.Smartlisting.Validate()

	return nil
}

// Save writes the configuration to path when it differs from what is on
// disk, and returns the applied changes. Unless force is set, a missing file
// is not created.
func (c *Config) Save(path string, force bool) (jsondiff.Patch, error) {
	c.mx.RLock()
	defer c.mx.RUnlock()

	if path == "" {
		return nil, fmt.Errorf("no config file path configured")
	}
	_, err := os.Stat(path)
	exists := err == nil
	if !force && !exists {
		return nil, nil
	}

	patch, err := c.diff(path, exists)
	if err != nil {
		return nil, err
	}
	if exists && len(patch) == 0 {
		return nil, nil
	}
	if bb, err := json.Marshal(patch); err == nil {
		slog.Debug("Saving config", "path", path, "changes", string(bb))
	}

	if err := data.SaveYAML(path, c); err != nil {
		return nil, fmt.Errorf("failed to save config to %s: %w", path, err)
	}

	return patch, nil
}

func (c *Config) diff(path string, exists bool) (jsondiff.Patch, error) {
	onDisk := make(map[string]any)
	if exists {
		if err := data.LoadYAML(path, &onDisk); err != nil {
			return nil, err
		}
	}
	current, err := data.ToMap(c)
	if err != nil {
		return nil, err
	}

	patch, err := jsondiff.Compare(onDisk, current)
	if err != nil {
		return nil, fmt.Errorf("failed to compare config: %w", err)
	}

	return patch, nil
}
