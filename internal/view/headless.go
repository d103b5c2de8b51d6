package view

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/smartlisting/smartlisting/internal/dao"
	"github.com/smartlisting/smartlisting/internal/model"
	"github.com/smartlisting/smartlisting/internal/ui"
)

// RenderScreen loads a screen and writes it once as text.
func RenderScreen(ctx context.Context, f dao.Factory, sid *dao.ScreenID, w io.Writer) error {
	acc, err := dao.AccessorFor(f, sid)
	if err != nil {
		return err
	}
	ss, err := acc.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", sid, err)
	}

	sections := model.NewSections(nil)
	sections.Set(ss)
	list := ui.NewTextList()
	m := ui.NewTableManager(list, accessorsFor(sections))
	if err := Bind(m, sid, newLogEnv(slog.Default())); err != nil {
		return err
	}
	slog.Debug("Rendering screen", "screen", sid, "kinds", m.Cells().Identifiers())
	m.ReloadData()

	_, err = list.WriteTo(w)
	return err
}
