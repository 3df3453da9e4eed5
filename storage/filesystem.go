package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hupe1980/agentchain/core"
	"github.com/hupe1980/agentchain/logging"
)

// Filesystem persists the registry document as a single file under an
// application-scoped directory. Writes go through a temp file and rename so
// a crash mid-write never leaves a truncated document behind. Each call
// opens and releases its own handle; nothing stays open between calls.
type Filesystem struct {
	path   string
	logger logging.Logger
}

// FilesystemOptions configures a Filesystem store.
type FilesystemOptions struct {
	Logger logging.Logger
}

// NewFilesystem creates a filesystem-backed snapshot store writing to path.
// The path is resolved to an absolute path during construction; parent
// directories are created lazily on first write.
func NewFilesystem(path string, optFns ...func(o *FilesystemOptions)) (*Filesystem, error) {
	opts := FilesystemOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	if path == "" {
		return nil, fmt.Errorf("storage: path required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve path: %w", err)
	}

	return &Filesystem{path: abs, logger: opts.Logger}, nil
}

// Path returns the absolute location of the persisted document.
func (f *Filesystem) Path() string { return f.path }

// Read implements core.SnapshotStore.
func (f *Filesystem) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("storage: read %s: %w", f.path, err)
	}
	return data, nil
}

// Write implements core.SnapshotStore. The document is written to a temp
// file in the target directory and atomically renamed into place.
func (f *Filesystem) Write(_ context.Context, data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: create directory: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: write temp file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("storage: rename temp file: %w", err)
	}

	f.logger.Debug("snapshot written", "path", f.path, "bytes", len(data))
	return nil
}
