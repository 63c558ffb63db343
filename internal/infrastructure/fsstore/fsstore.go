// Package fsstore implements the application file capabilities on top of an afero filesystem.
package fsstore

import (
	"errors"
	"io/fs"

	"github.com/spf13/afero"
)

type Store struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOS returns a Store backed by the operating system filesystem
func NewOS() *Store {
	return New(afero.NewOsFs())
}

func (s *Store) ReadFile(filename string) ([]byte, error) {
	return afero.ReadFile(s.fs, filename)
}

func (s *Store) WriteFile(filename string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(s.fs, filename, data, perm)
}

func (s *Store) MkdirAll(path string, perm fs.FileMode) error {
	return s.fs.MkdirAll(path, perm)
}

// Exists reports whether any entry exists at path. Symlinks are not
// followed when the filesystem supports it, so a dangling link exists.
func (s *Store) Exists(path string) (bool, error) {
	var err error
	if lstater, ok := s.fs.(afero.Lstater); ok {
		_, _, err = lstater.LstatIfPossible(path)
	} else {
		_, err = s.fs.Stat(path)
	}
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
