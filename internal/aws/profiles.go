package aws

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// SharedFiles locates the AWS shared credentials and config files.
type SharedFiles struct {
	CredentialsPath string
	ConfigPath      string
}

// DefaultSharedFiles honours AWS_SHARED_CREDENTIALS_FILE and AWS_CONFIG_FILE,
// falling back to ~/.aws.
func DefaultSharedFiles() SharedFiles {
	home, _ := os.UserHomeDir()
	files := SharedFiles{
		CredentialsPath: filepath.Join(home, ".aws", "credentials"),
		ConfigPath:      filepath.Join(home, ".aws", "config"),
	}
	if p := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); p != "" {
		files.CredentialsPath = p
	}
	if p := os.Getenv("AWS_CONFIG_FILE"); p != "" {
		files.ConfigPath = p
	}
	return files
}

// ProfileNames returns the profiles declared in the shared files, sorted.
// Missing files yield no profiles.
func (f SharedFiles) ProfileNames() ([]string, error) {
	names := make(map[string]struct{})

	if err := eachSection(f.CredentialsPath, func(name string) {
		if name != ini.DefaultSection {
			names[name] = struct{}{}
		}
	}); err != nil {
		return nil, err
	}

	if err := eachSection(f.ConfigPath, func(name string) {
		switch {
		case name == "default":
			names[name] = struct{}{}
		case strings.HasPrefix(name, "profile "):
			names[strings.TrimPrefix(name, "profile ")] = struct{}{}
		}
	}); err != nil {
		return nil, err
	}

	pp := make([]string, 0, len(names))
	for n := range names {
		pp = append(pp, n)
	}
	sort.Strings(pp)

	return pp, nil
}

// HasProfile returns true if a profile is declared.
func (f SharedFiles) HasProfile(name string) (bool, error) {
	pp, err := f.ProfileNames()
	if err != nil {
		return false, err
	}
	i := sort.SearchStrings(pp, name)
	return i < len(pp) && pp[i] == name, nil
}

func eachSection(path string, fn func(string)) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	for _, s := range f.Sections() {
		fn(s.Name())
	}
	return nil
}
