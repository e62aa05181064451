// Package upload keeps uploaded statement files on local disk.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes uploads under a single directory.
type Store struct {
	basePath string
}

// New creates the directory if needed and returns a Store rooted there.
func New(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{basePath: basePath}, nil
}

// Save copies r to a new file named after a fresh uuid, keeping the
// extension of filename, and returns the stored name.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filepath.Base(filename)))
	path := filepath.Join(s.basePath, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close file: %w", err)
	}
	return name, nil
}

// Delete removes a stored file. Missing files are not an error.
func (s *Store) Delete(name string) error {
	if name == "" {
		return nil
	}
	if err := os.Remove(s.Path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// Path returns the filesystem path of a stored name. Directory components
// in name are ignored.
func (s *Store) Path(name string) string {
	return filepath.Join(s.basePath, filepath.Base(name))
}
