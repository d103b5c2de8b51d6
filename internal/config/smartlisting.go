package config

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/smartlisting/smartlisting/internal/config/data"
	"github.com/smartlisting/smartlisting/internal/model1"
)

// Default values
const (
	DefaultLoadDelay  = 2 * time.Second
	DefaultCacheTTL   = 5 * time.Minute
	DefaultAPITimeout = 30 * time.Second
	DefaultScreen     = "profile"
)

// Smartlisting represents the application settings.
type Smartlisting struct {
	LoadDelay     string       `yaml:"loadDelay"`
	DefaultScreen string       `yaml:"defaultScreen"`
	CacheTTL      string       `yaml:"cacheTTL"`
	UI            data.UI      `yaml:"ui"`
	Sources       data.Sources `yaml:"sources"`
	AWS           data.AWS     `yaml:"aws"`
	mx            sync.RWMutex
}

// NewSmartlisting creates settings with default values.
func NewSmartlisting() *Smartlisting {
	return &Smartlisting{
		LoadDelay:     DefaultLoadDelay.String(),
		DefaultScreen: DefaultScreen,
		CacheTTL:      DefaultCacheTTL.String(),
		AWS:           data.AWS{APITimeout: DefaultAPITimeout.String()},
	}
}

// Validate resets missing or malformed settings to their defaults.
func (s *Smartlisting) Validate() {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.LoadDelay = validDuration("loadDelay", s.LoadDelay, DefaultLoadDelay)
	s.CacheTTL = validDuration("cacheTTL", s.CacheTTL, DefaultCacheTTL)
	s.AWS.APITimeout = validDuration("aws.apiTimeout", s.AWS.APITimeout, DefaultAPITimeout)
	if s.DefaultScreen == "" {
		s.DefaultScreen = DefaultScreen
	}
	if len(s.UI.Skin) > 0 {
		if err := model1.DefaultPalette().Override(s.UI.Skin); err != nil {
			slog.Warn("Ignoring invalid skin", "error", err)
			s.UI.Skin = nil
		}
	}
}

// Override applies CLI flag overrides to the configuration.
func (s *Smartlisting) Override(flags *data.Flags) {
	if flags == nil {
		return
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	if IsStringSet(flags.LoadDelay) {
		s.LoadDelay = *flags.LoadDelay
	}
	if IsStringSet(flags.Command) {
		s.DefaultScreen = *flags.Command
	}
	if IsStringSet(flags.ProfileData) {
		s.Sources.Profile = *flags.ProfileData
	}
	if IsStringSet(flags.MenuData) {
		s.Sources.Menu = *flags.MenuData
	}
}

// GetLoadDelay returns how long screens show their placeholders.
func (s *Smartlisting) GetLoadDelay() (time.Duration, error) {
	return s.duration(func() string { return s.LoadDelay }, "load delay")
}

// GetCacheTTL returns how long fetched documents stay cached.
func (s *Smartlisting) GetCacheTTL() (time.Duration, error) {
	return s.duration(func() string { return s.CacheTTL }, "cache TTL")
}

// GetAPITimeout returns the parsed API timeout duration.
func (s *Smartlisting) GetAPITimeout() (time.Duration, error) {
	return s.duration(func() string { return s.AWS.APITimeout }, "API timeout")
}

// Palette returns the row colors with the skin applied.
func (s *Smartlisting) Palette() (model1.Palette, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	p := model1.DefaultPalette()
	if err := p.Override(s.UI.Skin); err != nil {
		return nil, err
	}
	return p, nil
}

// Screen returns the startup screen.
func (s *Smartlisting) Screen() string {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return s.DefaultScreen
}

// SourceFor returns the document location configured for a screen.
func (s *Smartlisting) SourceFor(screen string) string {
	s.mx.RLock()
	defer s.mx.RUnlock()

	switch screen {
	case "profile":
		return s.Sources.Profile
	case "menu":
		return s.Sources.Menu
	default:
		return ""
	}
}

func (s *Smartlisting) duration(get func() string, name string) (time.Duration, error) {
	s.mx.RLock()
	raw := get()
	s.mx.RUnlock()

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return d, nil
}

func validDuration(key, raw string, def time.Duration) string {
	if raw == "" {
		return def.String()
	}
	if d, err := time.ParseDuration(raw); err != nil || d < 0 {
		slog.Warn("Invalid duration, using default", "key", key, "value", raw, "default", def)
		return def.String()
	}
	return raw
}
