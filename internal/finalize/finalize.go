// Package finalize provides the backends a completed series can be handed to.
package finalize

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/renameio/v2"

	"github.com/mmcdole/showcraft/internal/config"
	"github.com/mmcdole/showcraft/internal/domain"
)

// New returns the finalizer selected by cfg.Backend.
// catalog is only required for the bolt backend.
func New(cfg config.CatalogConfig, catalog domain.Catalog, logger *slog.Logger) (domain.Finalizer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Backend {
	case config.BackendEcho, "":
		return &Echo{logger: logger}, nil
	case config.BackendBolt:
		if catalog == nil {
			return nil, fmt.Errorf("bolt backend requires a catalog")
		}
		return &Catalog{catalog: catalog, logger: logger}, nil
	case config.BackendFile:
		return &Export{dir: cfg.ExportDir, logger: logger}, nil
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", cfg.Backend)
	}
}

// Echo reports the record back unchanged
type Echo struct {
	logger *slog.Logger
}

func (e *Echo) Finalize(ctx context.Context, series domain.Series) (domain.Series, error) {
	if err := ctx.Err(); err != nil {
		return domain.Series{}, err
	}
	e.logger.Debug("finalize", "backend", config.BackendEcho, "title", series.Title)
	return series, nil
}

// Catalog saves the record and reports the stored copy
type Catalog struct {
	catalog domain.Catalog
	logger  *slog.Logger
}

func (c *Catalog) Finalize(ctx context.Context, series domain.Series) (domain.Series, error) {
	if err := ctx.Err(); err != nil {
		return domain.Series{}, err
	}

	id, err := c.catalog.Save(series)
	if err != nil {
		return domain.Series{}, err
	}
	c.logger.Debug("finalize", "backend", config.BackendBolt, "title", series.Title, "id", id)

	return c.catalog.Get(id)
}

// Export writes the record as JSON into a directory
type Export struct {
	dir    string
	logger *slog.Logger
}

// Path returns the file a series with this title is exported to
func (e *Export) Path(title string) string {
	return filepath.Join(e.dir, Slug(title)+".json")
}

func (e *Export) Finalize(ctx context.Context, series domain.Series) (domain.Series, error) {
	if err := ctx.Err(); err != nil {
		return domain.Series{}, err
	}

	data, err := json.MarshalIndent(series, "", "  ")
	if err != nil {
		return domain.Series{}, fmt.Errorf("encode series: %w", err)
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return domain.Series{}, fmt.Errorf("create export directory: %w", err)
	}

	path := e.Path(series.Title)

	// renameio handles: temp file creation, fsync, atomic rename, cleanup on error
	pendingFile, err := renameio.NewPendingFile(path)
	if err != nil {
		return domain.Series{}, fmt.Errorf("create pending export file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			e.logger.Debug("cleanup pending export file", "error", err)
		}
	}()

	if _, err := pendingFile.Write(append(data, '\n')); err != nil {
		return domain.Series{}, fmt.Errorf("write export data: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return domain.Series{}, fmt.Errorf("atomically replace export file: %w", err)
	}

	e.logger.Debug("finalize", "backend", config.BackendFile, "title", series.Title, "path", path)
	return series, nil
}

// Slug turns a title into a lowercase file-name-safe string
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "untitled"
	}
	return slug
}
