package application

import "io/fs"

// DataDirProvider yields the per-user application data directory supplied by the host
type DataDirProvider interface {
	AppDataDir() (string, error)
}

// FileWriter interface for abstracting file operations
type FileWriter interface {
	WriteFile(filename string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}

// FileReader interface for abstracting file operations
type FileReader interface {
	ReadFile(filename string) ([]byte, error)
	Exists(path string) (bool, error)
}
