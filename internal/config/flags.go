package config

import (
	"github.com/smartlisting/smartlisting/internal/config/data"
)

// DefaultLogLevel is the default logging level.
const DefaultLogLevel = "info"

// NewFlags creates a new Flags instance with default values set.
func NewFlags() *data.Flags {
	logLevel := DefaultLogLevel
	logFile := AppLogFile
	headless := false
	command := ""
	loadDelay := ""
	profileData := ""
	menuData := ""

	return &data.Flags{
		LogLevel:    &logLevel,
		LogFile:     &logFile,
		Headless:    &headless,
		Command:     &command,
		LoadDelay:   &loadDelay,
		ProfileData: &profileData,
		MenuData:    &menuData,
	}
}

// IsBoolSet returns true if a bool pointer is non-nil and true.
func IsBoolSet(b *bool) bool {
	return b != nil && *b
}

// IsStringSet returns true if a string pointer is non-nil and non-empty.
func IsStringSet(s *string) bool {
	return s != nil && *s != ""
}
