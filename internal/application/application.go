package application

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"unicode/utf8"

	"github.com/iwat/profiledesk/internal/domain"
)

const (
	dataDirPerm   = 0o700
	parentDirPerm = 0o755
	profilePerm   = 0o644
)

type App struct {
	dataDirs   DataDirProvider
	fileReader FileReader
	fileWriter FileWriter
}

func NewApp(dataDirs DataDirProvider, fileReader FileReader, fileWriter FileWriter) *App {
	return &App{
		dataDirs:   dataDirs,
		fileReader: fileReader,
		fileWriter: fileWriter,
	}
}

// Greet returns the greeting shown by the front-end scaffold
func (app *App) Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}

// ProfilePath returns the standard profile path, creating the application
// data directory if it does not exist yet. The profile file itself is not created.
func (app *App) ProfilePath(ctx context.Context) (string, error) {
	dir, err := app.dataDirs.AppDataDir()
	if err == nil && dir == "" {
		err = domain.ErrEmptyDataDir
	}
	if err != nil {
		return "", domain.NewError(domain.ErrDirectoryResolution, "failed to get app data directory", "", err)
	}

	if err := app.fileWriter.MkdirAll(dir, dataDirPerm); err != nil {
		return "", domain.NewError(domain.ErrDirectoryCreation, "failed to create app data directory", dir, err)
	}

	path := filepath.Join(dir, domain.ProfileFileName)
	slog.DebugContext(ctx, "resolved profile path", "path", path)
	return path, nil
}

// ProfileExists reports whether an entry exists at the standard profile path.
// Any failure to resolve the path is reported as false.
func (app *App) ProfileExists(ctx context.Context) bool {
	path, err := app.ProfilePath(ctx)
	if err != nil {
		slog.DebugContext(ctx, "profile path unavailable", "error", err)
		return false
	}

	exists, err := app.fileReader.Exists(path)
	if err != nil {
		slog.DebugContext(ctx, "failed to stat profile", "path", path, "error", err)
		return false
	}
	return exists
}

// LoadDocument reads the file at path as UTF-8 text
func (app *App) LoadDocument(ctx context.Context, path string) (string, error) {
	return app.readText(ctx, path)
}

// SaveProfile writes content to the given location, creating missing parent
// directories. An existing file is truncated.
func (app *App) SaveProfile(ctx context.Context, content string, loc domain.Location) error {
	path, explicit := loc.Path()
	if !explicit {
		var err error
		path, err = app.ProfilePath(ctx)
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := app.fileWriter.MkdirAll(dir, parentDirPerm); err != nil {
		return domain.NewError(domain.ErrDirectoryCreation, "failed to create directory", dir, err)
	}

	if err := app.fileWriter.WriteFile(path, []byte(content), profilePerm); err != nil {
		return domain.NewError(domain.ErrWrite, "failed to write file", path, err)
	}

	slog.DebugContext(ctx, "saved profile", "location", loc, "path", path, "bytes", len(content))
	return nil
}

// LoadProfile reads the profile at the given location
func (app *App) LoadProfile(ctx context.Context, loc domain.Location) (string, error) {
	path, explicit := loc.Path()
	if !explicit {
		var err error
		path, err = app.ProfilePath(ctx)
		if err != nil {
			return "", domain.NewError(domain.ErrPathResolution, "failed to resolve profile path", "", err)
		}
	}

	return app.readText(ctx, path)
}

func (app *App) readText(ctx context.Context, path string) (string, error) {
	data, err := app.fileReader.ReadFile(path)
	if err != nil {
		return "", domain.NewError(domain.ErrRead, "failed to read file", path, err)
	}
	if !utf8.Valid(data) {
		return "", domain.NewError(domain.ErrRead, "failed to read file", path, domain.ErrInvalidUTF8)
	}

	slog.DebugContext(ctx, "read file", "path", path, "bytes", len(data))
	return string(data), nil
}
