package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove the persisted session and theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootFlags, "reset session", func(ctx context.Context, app *App) error {
				if err := app.Persister.Purge(ctx); err != nil {
					return newCommandError("reset session", "removing stored snapshot", err, "Check that the state directory is writable.")
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Local session data removed")
				return nil
			})
		},
	}
}
