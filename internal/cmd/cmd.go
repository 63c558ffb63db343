package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/iwat/profiledesk/internal/application"
	"github.com/iwat/profiledesk/internal/config"
	"github.com/iwat/profiledesk/internal/infrastructure/appdir"
	"github.com/iwat/profiledesk/internal/infrastructure/fsstore"
	"github.com/iwat/profiledesk/internal/infrastructure/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type AppBuilder struct {
	dataDir    string
	identifier string
	logLevel   string
	noColor    bool
	logOutput  io.Writer
	fs         afero.Fs
	dataDirs   application.DataDirProvider
	app        *application.App
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{
		logLevel:  "warn",
		logOutput: os.Stderr,
		fs:        afero.NewOsFs(),
	}
}

func (b *AppBuilder) WithDataDir(dir string) *AppBuilder {
	b.dataDir = dir
	return b
}

func (b *AppBuilder) WithIdentifier(identifier string) *AppBuilder {
	b.identifier = identifier
	return b
}

func (b *AppBuilder) WithLogLevel(level string, noColor bool) *AppBuilder {
	b.logLevel = level
	b.noColor = noColor
	return b
}

func (b *AppBuilder) WithLogOutput(w io.Writer) *AppBuilder {
	b.logOutput = w
	return b
}

func (b *AppBuilder) WithFs(fs afero.Fs) *AppBuilder {
	b.fs = fs
	return b
}

// WithDataDirProvider replaces the data directory resolution entirely,
// ignoring the data dir and identifier settings.
func (b *AppBuilder) WithDataDirProvider(provider application.DataDirProvider) *AppBuilder {
	b.dataDirs = provider
	return b
}

func (b *AppBuilder) Build() error {
	if err := logging.Setup(b.logOutput, b.logLevel, b.noColor); err != nil {
		return err
	}

	dataDirs := b.dataDirs
	if dataDirs == nil {
		if b.dataDir != "" {
			dataDirs = appdir.Fixed(b.dataDir)
		} else {
			dataDirs = appdir.NewPlatform(b.identifier)
		}
	}

	store := fsstore.New(b.fs)
	b.app = application.NewApp(dataDirs, store, store)
	return nil
}

func (b *AppBuilder) App(ctx context.Context) *application.App {
	return b.app
}

func RootCmd(appBuilder *AppBuilder) *cobra.Command {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Config{Identifier: config.DefaultIdentifier, LogLevel: "warn"}
	}

	rootCmd := &cobra.Command{
		Use:           "profiledesk",
		Short:         "profiledesk stores the user profile and reads documents",
		Long:          "profiledesk is the native backend of the profile desktop application",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			flags := cmd.Flags()
			noColor, err := flags.GetBool("no-color")
			if err != nil {
				return err
			}
			appBuilder.
				WithDataDir(flags.Lookup("data-dir").Value.String()).
				WithIdentifier(flags.Lookup("identifier").Value.String()).
				WithLogLevel(flags.Lookup("log-level").Value.String(), noColor)
			if err := appBuilder.Build(); err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			return nil
		},
	}
	rootFlags := pflag.NewFlagSet("root", pflag.ContinueOnError)
	rootFlags.String("data-dir", cfg.DataDir, "Application data directory (default: platform data directory)")
	rootFlags.String("identifier", cfg.Identifier, "Application identifier used below the platform data directory")
	rootFlags.String("log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	rootFlags.Bool("no-color", cfg.ColorDisabled(), "Disable colored log output")
	rootCmd.PersistentFlags().AddFlagSet(rootFlags)

	rootCmd.AddCommand(profileCmd(appBuilder))
	rootCmd.AddCommand(documentCmd(appBuilder))
	rootCmd.AddCommand(greetCmd(appBuilder))

	return rootCmd
}
