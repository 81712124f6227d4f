package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_plagiarism/internal/config"
)

func newConfigCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load(path)
			if err != nil {
				return err
			}
			text, err := cfg.Encode()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "Configuration file path (TOML)")
	return cmd
}
