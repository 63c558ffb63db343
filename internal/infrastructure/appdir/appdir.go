// Package appdir resolves the per-user application data directory.
//
// The layout matches what desktop hosts hand to their native backends:
//
//   - Linux:   $XDG_DATA_HOME/<identifier>, falling back to ~/.local/share/<identifier>
//   - macOS:   ~/Library/Application Support/<identifier>
//   - Windows: %APPDATA%\<identifier>
package appdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/iwat/profiledesk/internal/domain"
	"github.com/mitchellh/go-homedir"
)

// Fixed is a data directory given explicitly, e.g. from a flag or environment variable
type Fixed string

func (f Fixed) AppDataDir() (string, error) {
	if f == "" {
		return "", domain.ErrEmptyDataDir
	}
	return string(f), nil
}

// Platform resolves the data directory from the platform conventions and the application identifier
type Platform struct {
	Identifier string

	goos   string
	getenv func(string) string
	home   func() (string, error)
}

func NewPlatform(identifier string) *Platform {
	return &Platform{
		Identifier: identifier,
		goos:       runtime.GOOS,
		getenv:     os.Getenv,
		home:       homedir.Dir,
	}
}

func (p *Platform) AppDataDir() (string, error) {
	if p.Identifier == "" {
		return "", errors.New("application identifier is empty")
	}
	base, err := p.dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, p.Identifier), nil
}

func (p *Platform) dataDir() (string, error) {
	switch p.goos {
	case "windows":
		if v := p.getenv("APPDATA"); v != "" {
			return v, nil
		}
		return "", errors.New("%APPDATA% is not defined")
	case "darwin", "ios":
		home, err := p.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if v := p.getenv("XDG_DATA_HOME"); filepath.IsAbs(v) {
			return v, nil
		}
		home, err := p.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

func (p *Platform) homeDir() (string, error) {
	home, err := p.home()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if home == "" {
		return "", errors.New("resolve home directory: empty path")
	}
	return home, nil
}
