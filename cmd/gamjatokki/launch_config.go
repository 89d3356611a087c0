package main

import (
	"github.com/spf13/cobra"

	"gamjatokki/internal/harness"
)

func newLaunchConfigCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "launch-config",
		Short: "Print the effective browser launch configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := harness.LoadLaunchConfig(file, harness.IsCI())
			if err != nil {
				return err
			}
			out, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML file overriding the defaults")
	return cmd
}
