package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storefront/internal/state"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the color theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootFlags, "show theme", func(_ context.Context, app *App) error {
				printTheme(cmd, app.Store.State())
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootFlags, "toggle theme", func(_ context.Context, app *App) error {
				printTheme(cmd, app.Store.ToggleTheme())
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Choose the theme explicitly",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var dark bool
			switch args[0] {
			case "light":
			case "dark":
				dark = true
			default:
				return newCommandError("set theme", fmt.Sprintf("parsing %q", args[0]), fmt.Errorf("unknown theme %q", args[0]), "Use 'light' or 'dark'.")
			}

			return withApp(cmd, rootFlags, "set theme", func(_ context.Context, app *App) error {
				printTheme(cmd, app.Store.SetDarkMode(dark))
				return nil
			})
		},
	})

	return cmd
}

func printTheme(cmd *cobra.Command, st state.State) {
	fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", st.Theme.Palette.Name)
}
