// Package localstore persists independent key-value entries as files
// in a data directory, one file per key. It stands in for the
// browser-local storage of the original storefront.
package localstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/hovixy/storefront/internal/core/port"
)

var _ port.KVStore = (*FileStore)(nil)

type FileStore struct {
	fs  afero.Fs
	dir string
}

// New returns a store rooted at dir on the given filesystem.
// The directory is created on first write.
func New(fs afero.Fs, dir string) FileStore {
	return FileStore{fs: fs, dir: dir}
}

// Read returns the entry for key. An absent key yields an error
// satisfying errors.Is(err, fs.ErrNotExist).
func (s FileStore) Read(key string) ([]byte, error) {
	const op = "FileStore.Read"

	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		return nil, fmt.Errorf("%s: %q: %w", op, key, err)
	}
	return data, nil
}

func (s FileStore) Write(key string, data []byte) error {
	const op = "FileStore.Write"

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%s: %q: %w", op, key, err)
	}
	if err := afero.WriteFile(s.fs, s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("%s: %q: %w", op, key, err)
	}
	return nil
}

// Delete removes the entry for key, a no-op when absent.
func (s FileStore) Delete(key string) error {
	const op = "FileStore.Delete"

	err := s.fs.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%s: %q: %w", op, key, err)
	}
	return nil
}

func (s FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
