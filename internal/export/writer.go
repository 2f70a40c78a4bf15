package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/student360/internal/seed"
)

// FileStore creates and removes files relative to an output root
type FileStore interface {
	WriteFile(relPath string, write func(w io.Writer) error) error
	Remove(relPath string) error
}

// Writer serializes a dataset as one CSV file per table plus a manifest
type Writer struct {
	store  FileStore
	logger zerolog.Logger
	// maxParallel bounds concurrent file writes
	maxParallel int
}

// NewWriter creates a new Writer
func NewWriter(store FileStore, logger zerolog.Logger) *Writer {
	return &Writer{store: store, logger: logger, maxParallel: 4}
}

// Write writes every table, then the manifest. Tables are independent files
// and are written concurrently; the first failure cancels the rest and every
// file already written by this call is removed.
func (w *Writer) Write(ctx context.Context, ds *seed.Dataset) (*Manifest, error) {
	tables := Tables(ds)

	var (
		mu      sync.Mutex
		written []string
	)
	record := func(path string) {
		mu.Lock()
		written = append(written, path)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.maxParallel)
	for _, t := range tables {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := w.store.WriteFile(t.Path(), func(out io.Writer) error {
				return WriteCSV(out, t)
			}); err != nil {
				return fmt.Errorf("write %s: %w", t.Path(), err)
			}
			record(t.Path())
			w.logger.Debug().Str("file", t.Path()).Int("rows", len(t.Rows)).Msg("Table written")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, w.discard(written, err)
	}

	manifest := NewManifest(ds.Options.Students, ds.Options.Seed, tables)
	body, err := manifest.Marshal()
	if err != nil {
		return nil, w.discard(written, fmt.Errorf("encode manifest: %w", err))
	}
	if err := w.store.WriteFile(ManifestFile, func(out io.Writer) error {
		_, err := out.Write(body)
		return err
	}); err != nil {
		return nil, w.discard(written, fmt.Errorf("write %s: %w", ManifestFile, err))
	}

	w.logger.Info().Int("files", len(tables)).Str("runId", manifest.RunID).Msg("Dataset written")
	return manifest, nil
}

// discard removes the files of a failed run and returns cause joined with any
// removal errors.
func (w *Writer) discard(paths []string, cause error) error {
	errs := []error{cause}
	for _, p := range paths {
		if err := w.store.Remove(p); err != nil {
			errs = append(errs, err)
		}
	}
	w.logger.Warn().Err(cause).Int("removed", len(paths)).Msg("Partial output discarded")
	return errors.Join(errs...)
}

// WriteCSV writes the header row and every row of t
func WriteCSV(out io.Writer, t Table) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(t.Header()); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d has %d values, want %d", i, len(row), len(t.Columns))
		}
		for j, col := range t.Columns {
			s, err := FormatValue(col.Kind, row[j])
			if err != nil {
				return fmt.Errorf("row %d column %s: %w", i, col.Name, err)
			}
			record[j] = s
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
