package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Local stores files in a single directory. A later upload with the same
// sanitized name replaces the earlier file.
type Local struct {
	dir string
}

var _ Store = (*Local)(nil)

// NewLocal creates dir if needed.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

// Dir returns the upload directory.
func (l *Local) Dir() string { return l.dir }

func (l *Local) Save(ctx context.Context, name string, r io.Reader, _ int64) (string, error) {
	key := SanitizeFilename(name)
	if key == "" {
		return "", ErrEmptyName
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dst := filepath.Join(l.dir, key)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create %q: %w", dst, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write %q: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %q: %w", dst, err)
	}
	return key, nil
}

// Remove deletes the file; a missing file is not an error.
func (l *Local) Remove(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(l.dir, SanitizeFilename(key)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}
