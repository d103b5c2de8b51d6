package view_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/view"
)

func TestScreenLoad(t *testing.T) {
	s := newScreen(t, dao.NewFactory(nil), &dao.MenuSID, new(env))
	require.True(t, s.Sections().IsLoading())
	assert.Equal(t, 1, s.Sections().NumberOfSections())
	assert.Len(t, s.Rows(), 3)

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return !s.Sections().IsLoading()
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 2, s.Sections().NumberOfSections())
	assert.Equal(t, 3, s.Sections().NumberOfItems(0))
}

func TestScreenLoadFailed(t *testing.T) {
	f := dao.NewFactory(nil)
	f.SetSource(&dao.ProfileSID, filepath.Join(t.TempDir(), "nope.yaml"))
	e := new(env)
	s := newScreen(t, f, &dao.ProfileSID, e)

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return e.errors() == 1
	}, time.Second, 10*time.Millisecond)
	assert.True(t, s.Sections().IsLoading())
	assert.Equal(t, 2, s.Sections().NumberOfSections())
}

func TestScreenStop(t *testing.T) {
	e := new(env)
	acc, err := dao.AccessorFor(dao.NewFactory(nil), &dao.MenuSID)
	require.NoError(t, err)
	s, err := view.NewScreen(e, acc, time.Hour)
	require.NoError(t, err)
	require.NoError(t, s.Init(context.Background()))

	s.Start()
	s.Stop()

	assert.True(t, s.Sections().IsLoading())
	assert.Empty(t, e.infos)
}

// Helpers...

func newScreen(t *testing.T, f dao.Factory, sid *dao.ScreenID, e view.Env) *view.Screen {
	t.Helper()

	acc, err := dao.AccessorFor(f, sid)
	require.NoError(t, err)
	s, err := view.NewScreen(e, acc, 0)
	require.NoError(t, err)
	require.NoError(t, s.Init(context.Background()))

	return s
}
