// Package data provides configuration data types for the smartlisting application.
package data

// Flags represents CLI command-line flags.
type Flags struct {
	LogLevel    *string // Log level (e.g., debug, info, warn, error)
	LogFile     *string // Path to log file
	Headless    *bool   // Print the screen to stdout instead of running the TUI
	Command     *string // Startup screen
	LoadDelay   *string // Delay before screen data loads
	ProfileData *string // Profile document location
	MenuData    *string // Menu document location
}

// NewFlags creates a new Flags instance with all pointer fields initialized.
func NewFlags() *Flags {
	return &Flags{
		LogLevel:    new(string),
		LogFile:     new(string),
		Headless:    new(bool),
		Command:     new(string),
		LoadDelay:   new(string),
		ProfileData: new(string),
		MenuData:    new(string),
	}
}

// UI represents user interface configuration settings.
type UI struct {
	EnableMouse bool              `yaml:"enableMouse"`
	Crumbsless  bool              `yaml:"crumbsless"`
	Skin        map[string]string `yaml:"skin,omitempty"`
}

// Sources holds screen document locations: a path, an s3:// URL, or empty
// for the embedded demo data.
type Sources struct {
	Profile string `yaml:"profile,omitempty"`
	Menu    string `yaml:"menu,omitempty"`
}

// AWS holds the settings used to reach s3:// sources.
type AWS struct {
	Profile    string `yaml:"profile,omitempty"`
	Region     string `yaml:"region,omitempty"`
	APITimeout string `yaml:"apiTimeout"`
}
