package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func documentCmd(appBuilder *AppBuilder) *cobra.Command {
	documentCmd := &cobra.Command{
		Use:   "document",
		Short: "Read documents",
		Long:  "Read documents",
	}

	documentCmd.AddCommand(documentLoadCmd(appBuilder))

	return documentCmd
}

func documentLoadCmd(appBuilder *AppBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "load <path>",
		Short: "Print a document",
		Long:  "Print the content of a UTF-8 text document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			content, err := appBuilder.App(cmd.Context()).LoadDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

func greetCmd(appBuilder *AppBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "greet <name>",
		Short: "Print a greeting",
		Long:  "Print a greeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), appBuilder.App(cmd.Context()).Greet(args[0]))
			return nil
		},
	}
}
