package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlisting/smartlisting/internal/config"
	"github.com/smartlisting/smartlisting/internal/model1"
)

func TestConfigLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	cfg := config.NewConfig()

	require.NoError(t, cfg.Load(path, false))
	assert.Equal(t, config.DefaultScreen, cfg.Smartlisting.Screen())
	assert.Error(t, cfg.Load(path, true))
}

func TestConfigLoad(t *testing.T) {
	path := writeFile(t, "smartlisting.yaml", `
smartlisting:
  loadDelay: 500ms
  defaultScreen: menu
  ui:
    crumbsless: true
    skin:
      heading: orange
  sources:
    menu: s3://docs/menu.ini
  aws:
    region: eu-west-1
`)
	cfg := config.NewConfig()
	require.NoError(t, cfg.Load(path, true))

	d, err := cfg.Smartlisting.GetLoadDelay()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, d)
	assert.Equal(t, "menu", cfg.Smartlisting.Screen())
	assert.True(t, cfg.Smartlisting.UI.Crumbsless)
	assert.Equal(t, "s3://docs/menu.ini", cfg.Smartlisting.SourceFor("menu"))
	assert.Empty(t, cfg.Smartlisting.SourceFor("profile"))
	assert.Empty(t, cfg.Smartlisting.SourceFor("fred"))
	assert.Equal(t, "eu-west-1", cfg.Smartlisting.AWS.Region)

	ttl, err := cfg.Smartlisting.GetCacheTTL()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultCacheTTL, ttl)
	timeout, err := cfg.Smartlisting.GetAPITimeout()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAPITimeout, timeout)

	p, err := cfg.Smartlisting.Palette()
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorOrange, p.Color(model1.StyleHeading))
}

func TestConfigValidate(t *testing.T) {
	path := writeFile(t, "smartlisting.yaml", `
smartlisting:
  loadDelay: soon
  cacheTTL: -1s
  defaultScreen: ""
  ui:
    skin:
      heading: nocolor
`)
	cfg := config.NewConfig()
	require.NoError(t, cfg.Load(path, true))

	assert.Equal(t, config.DefaultLoadDelay.String(), cfg.Smartlisting.LoadDelay)
	assert.Equal(t, config.DefaultCacheTTL.String(), cfg.Smartlisting.CacheTTL)
	assert.Equal(t, config.DefaultScreen, cfg.Smartlisting.Screen())
	assert.Nil(t, cfg.Smartlisting.UI.Skin)
}

func TestConfigRefine(t *testing.T) {
	cfg := config.NewConfig()
	flags := config.NewFlags()
	*flags.LoadDelay = "0s"
	*flags.Command = "menu"
	*flags.MenuData = "/tmp/menu.ini"

	require.NoError(t, cfg.Refine(flags))

	d, err := cfg.Smartlisting.GetLoadDelay()
	require.NoError(t, err)
	assert.Zero(t, d)
	assert.Equal(t, "menu", cfg.Smartlisting.Screen())
	assert.Equal(t, "/tmp/menu.ini", cfg.Smartlisting.SourceFor("menu"))
	assert.Empty(t, cfg.Smartlisting.SourceFor("profile"))
}

func TestConfigSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smartlisting.yaml")
	cfg := config.NewConfig()

	patch, err := cfg.Save(path, false)
	require.NoError(t, err)
	assert.Nil(t, patch)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	patch, err = cfg.Save(path, true)
	require.NoError(t, err)
	assert.NotEmpty(t, patch)
	assert.FileExists(t, path)

	patch, err = cfg.Save(path, false)
	require.NoError(t, err)
	assert.Empty(t, patch)

	cfg.Smartlisting.LoadDelay = "3s"
	patch, err = cfg.Save(path, false)
	require.NoError(t, err)
	require.Len(t, patch, 1)
	assert.Equal(t, "replace", patch[0].Type)
	assert.Equal(t, "/smartlisting/loadDelay", patch[0].Path)

	reloaded := config.NewConfig()
	require.NoError(t, reloaded.Load(path, true))
	assert.Equal(t, "3s", reloaded.Smartlisting.LoadDelay)
}

func TestConfigSaveNoPath(t *testing.T) {
	_, err := config.NewConfig().Save("", true)
	assert.Error(t, err)
}

// Helpers...

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
