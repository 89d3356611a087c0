package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gamjatokki/internal/cli"
	"gamjatokki/internal/harness"
)

func newPrepareTestsCmd(flags *rootFlags) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "prepare-tests",
		Short: "Create the screenshot and report directories used by the browser tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := flags.logLevel
			if level == "" {
				level = "warn"
			}
			logger, err := cli.SetupLogger(cmd.ErrOrStderr(), level)
			if err != nil {
				return err
			}

			cfg := harness.DefaultLaunchConfig(harness.IsCI())
			// Nothing is started, so there is nothing to wait for.
			cfg.Server.ReadyDelay = 0

			s, err := harness.Setup(cmd.Context(), harness.Options{
				Root:   root,
				Config: cfg,
				Logger: logger,
			})
			if err != nil {
				return err
			}
			defer harness.Teardown(cmd.Context(), s)

			for _, dir := range s.Directories {
				fmt.Fprintln(cmd.OutOrStdout(), dir)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Directory the test layout is created under")
	return cmd
}
