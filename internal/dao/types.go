package dao

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smartlisting/smartlisting/internal/model"
)

var (
	// ErrNoSource is returned when a screen has no data source configured.
	ErrNoSource = errors.New("no data source configured")

	// ErrUnknownScreen is returned for screens nothing registered.
	ErrUnknownScreen = errors.New("unknown screen")
)

// ScreenID identifies a list screen.
type ScreenID struct {
	Name string // e.g., "profile", "menu"
}

// String returns the screen name.
func (s ScreenID) String() string {
	return s.Name
}

// Parse parses a screen name, ignoring case and surrounding blanks.
func (s *ScreenID) Parse(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || strings.ContainsAny(name, " /") {
		return fmt.Errorf("invalid screen name: %q", name)
	}
	s.Name = name
	return nil
}

// Predefined screens.
var (
	ProfileSID = ScreenID{Name: "profile"}
	MenuSID    = ScreenID{Name: "menu"}
)

// Factory provides data source configuration to accessors.
type Factory interface {
	// Source returns the location of a screen document: a path, an s3:// URL,
	// or "" for the embedded default.
	Source(sid *ScreenID) string

	// Fetcher returns the document fetcher.
	Fetcher() Fetcher
}

// Fetcher reads a document from a location.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// Accessor provides the sections of a screen.
type Accessor interface {
	// Init binds the accessor to a factory.
	Init(Factory, *ScreenID)

	// ScreenID returns the screen the accessor serves.
	ScreenID() *ScreenID

	// Skeleton returns the placeholder sections shown while loading.
	Skeleton() []model.Section

	// Load returns the real sections.
	Load(ctx context.Context) ([]model.Section, error)
}
