package filestorage

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/yigit/student360/internal/pkg/apperrors"
)

// LocalStorage writes files under a root directory on the local filesystem.
type LocalStorage struct {
	basePath string
	logger   zerolog.Logger
}

// NewLocalStorage creates the root directory if needed. A root that cannot be
// created fails with ErrIO.
func NewLocalStorage(basePath string, logger zerolog.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create output directory")
		return nil, apperrors.NewIOError("failed to create output directory "+basePath, err)
	}
	logger.Debug().Str("path", basePath).Msg("Output directory ensured")

	return &LocalStorage{basePath: basePath, logger: logger}, nil
}

// BasePath returns the root directory
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// WriteFile creates or truncates relPath under the root, creating parent
// directories, and hands a buffered writer to write. A partially written file
// is removed on failure.
func (ls *LocalStorage) WriteFile(relPath string, write func(w io.Writer) error) error {
	dstPath := filepath.Join(ls.basePath, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		ls.logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create subdirectory")
		return apperrors.NewIOError("failed to create directory for "+relPath, err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		ls.logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create file")
		return apperrors.NewIOError("failed to create "+relPath, err)
	}

	bw := bufio.NewWriter(dst)
	werr := write(bw)
	if werr == nil {
		werr = bw.Flush()
	}
	cerr := dst.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(dstPath)
		ls.logger.Error().Err(werr).Str("path", dstPath).Msg("Failed to write file")
		return apperrors.NewIOError("failed to write "+relPath, werr)
	}
	return nil
}

// Remove deletes relPath under the root and then its parent directory if that
// is left empty. A missing file is not an error.
func (ls *LocalStorage) Remove(relPath string) error {
	dstPath := filepath.Join(ls.basePath, filepath.FromSlash(relPath))
	if err := os.Remove(dstPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		ls.logger.Error().Err(err).Str("path", dstPath).Msg("Failed to remove file")
		return apperrors.NewIOError("failed to remove "+relPath, err)
	}
	if dir := filepath.Dir(dstPath); dir != filepath.Clean(ls.basePath) {
		// fails while the directory still holds other files
		_ = os.Remove(dir)
	}
	return nil
}
