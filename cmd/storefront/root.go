package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	apiURL     string
	stateDir   string
	storage    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront browses the product catalog from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the interactive client
			if len(args) == 0 {
				return runTUI(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to config file (default ~/.storefront/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "Override the gateway base URL")
	cmd.PersistentFlags().StringVar(&flags.stateDir, "state-dir", "", "Directory holding the persisted session")
	cmd.PersistentFlags().StringVar(&flags.storage, "storage", "", "Storage backend (file or sqlite)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newLoginCmd(flags))
	cmd.AddCommand(newSkipCmd(flags))
	cmd.AddCommand(newLogoutCmd(flags))
	cmd.AddCommand(newWhoamiCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newProductsCmd(flags))
	cmd.AddCommand(newResetCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
