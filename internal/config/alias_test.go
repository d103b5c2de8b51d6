package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlisting/smartlisting/internal/config"
)

func TestAliasesDefaults(t *testing.T) {
	a := config.NewAliases()

	assert.Equal(t, "profile", a.Get("cv"))
	assert.Equal(t, "menu", a.Get("m"))
	assert.Equal(t, "fred", a.Get("fred"))
	assert.Len(t, a.Keys(), len(config.DefaultAliases))
}

func TestAliasesLoadFrom(t *testing.T) {
	path := writeFile(t, "aliases.yaml", `
aliases:
  food: menu
  m: profile
`)
	a := config.NewAliases()
	require.NoError(t, a.LoadFrom(path))

	assert.Equal(t, "menu", a.Get("food"))
	assert.Equal(t, "profile", a.Get("m"))
	assert.Equal(t, "profile", a.Get("cv"))
	assert.Equal(t, "menu", config.DefaultAliases["m"])
}

func TestAliasesLoadFromMissing(t *testing.T) {
	a := config.NewAliases()

	assert.NoError(t, a.LoadFrom(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, a.LoadFrom(writeFile(t, "bad.yaml", "aliases: [")))
}
