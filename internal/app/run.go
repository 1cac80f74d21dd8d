package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/specialistvlad/pluginregistrant/internal/ctxlog"
	"github.com/specialistvlad/pluginregistrant/internal/manifest"
	"github.com/specialistvlad/pluginregistrant/internal/render"
)

// ErrDrift is returned in check mode when the file on disk does not match
// what the manifest renders to.
var ErrDrift = errors.New("generated registrant is out of date")

// Run loads the manifest, renders the registrant and writes it out, or in
// check mode compares it with the existing output file.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "manifests", a.config.ManifestPaths, "out", a.config.OutputPath)

	m, err := manifest.Load(ctx, a.config.Vars, a.config.ManifestPaths...)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	src, err := render.Registrant(m)
	if err != nil {
		return fmt.Errorf("failed to render registrant: %w", err)
	}
	a.logger.Debug("Registrant rendered.", "registrant", m.Registrant, "bytes", len(src))

	if a.config.Check {
		return a.check(ctx, src)
	}
	return a.write(ctx, src)
}

func (a *App) write(ctx context.Context, src []byte) error {
	logger := ctxlog.FromContext(ctx)
	out := a.config.OutputPath

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		return fmt.Errorf("failed to write registrant: %w", err)
	}

	logger.Info("Registrant written.", "path", out, "bytes", len(src))
	return nil
}

func (a *App) check(ctx context.Context, src []byte) error {
	logger := ctxlog.FromContext(ctx)
	out := a.config.OutputPath

	existing, err := os.ReadFile(out)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Registrant has not been generated yet.", "path", out)
			return fmt.Errorf("%w: %s does not exist", ErrDrift, out)
		}
		return fmt.Errorf("failed to read registrant: %w", err)
	}

	if !bytes.Equal(existing, src) {
		logger.Warn("Registrant differs from its manifest.", "path", out)
		return fmt.Errorf("%w: %s", ErrDrift, out)
	}

	logger.Info("Registrant is up to date.", "path", out)
	return nil
}
