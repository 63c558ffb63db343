package cmd

import (
	"fmt"
	"strings"

	"github.com/iwat/profiledesk/internal/domain"
	"github.com/iwat/profiledesk/internal/infrastructure/tui"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

func profileCmd(appBuilder *AppBuilder) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the user profile",
		Long:  "Manage the user profile",
	}

	profileCmd.AddCommand(profilePathCmd(appBuilder))
	profileCmd.AddCommand(profileExistsCmd(appBuilder))
	profileCmd.AddCommand(profileSaveCmd(appBuilder))
	profileCmd.AddCommand(profileLoadCmd(appBuilder))

	return profileCmd
}

// locationFlag maps the optional --path flag to a profile location
func locationFlag(cmd *cobra.Command, path string) domain.Location {
	if cmd.Flags().Changed("path") {
		return domain.Explicit(path)
	}
	return domain.Standard()
}

func profilePathCmd(appBuilder *AppBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the standard profile path",
		Long:  "Print the standard profile path, creating the application data directory if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			path, err := appBuilder.App(cmd.Context()).ProfilePath(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func profileExistsCmd(appBuilder *AppBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "exists",
		Short: "Report whether a profile exists at the standard path",
		Long:  "Report whether a profile exists at the standard path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exists := appBuilder.App(cmd.Context()).ProfileExists(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), exists)
			return nil
		},
	}
}

func profileSaveCmd(appBuilder *AppBuilder) *cobra.Command {
	var path string
	saveCmd := &cobra.Command{
		Use:   "save [file]",
		Short: "Save the profile",
		Long:  "Save the profile content read from file, or from standard input when file is omitted or '-'",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			app := appBuilder.App(cmd.Context())

			var (
				content string
				err     error
			)
			if len(args) == 0 || args[0] == "-" {
				content, err = tui.ReadContent(cmd.InOrStdin(), cmd.ErrOrStderr(), "Enter profile content, finish with Ctrl-D:")
				if err != nil {
					return fmt.Errorf("failed to read standard input: %w", err)
				}
			} else {
				content, err = app.LoadDocument(cmd.Context(), args[0])
				if err != nil {
					return err
				}
			}

			return app.SaveProfile(cmd.Context(), content, locationFlag(cmd, path))
		},
	}
	saveCmd.Flags().StringVar(&path, "path", "", "Explicit profile path (default: standard path)")

	return saveCmd
}

func profileLoadCmd(appBuilder *AppBuilder) *cobra.Command {
	var (
		path   string
		field  string
		indent bool
	)
	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Print the profile",
		Long:  "Print the profile, optionally selecting a JSON field or reformatting it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			content, err := appBuilder.App(cmd.Context()).LoadProfile(cmd.Context(), locationFlag(cmd, path))
			if err != nil {
				return err
			}

			if field == "" && !indent {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}
			if !gjson.Valid(content) {
				return fmt.Errorf("profile is not valid JSON")
			}
			if field != "" {
				result := gjson.Get(content, field)
				if !result.Exists() {
					return fmt.Errorf("field %q not found in profile", field)
				}
				content = result.Raw
				if result.Type == gjson.String {
					content = result.String()
				}
			}
			if indent && gjson.Valid(content) {
				content = string(pretty.Pretty([]byte(content)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(content, "\n"))
			return nil
		},
	}
	loadCmd.Flags().StringVar(&path, "path", "", "Explicit profile path (default: standard path)")
	loadCmd.Flags().StringVar(&field, "field", "", "Print only this field, e.g. personalInfo.name or skills.#")
	loadCmd.Flags().BoolVar(&indent, "pretty", false, "Reformat JSON output")

	return loadCmd
}
