package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	envFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gamjatokki",
		Short:         "감자토끼 가계부: the couple's ledger web front-end and its test tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Optional dotenv file loaded before reading the environment")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newPrepareTestsCmd(flags))
	cmd.AddCommand(newLaunchConfigCmd())

	return cmd
}
