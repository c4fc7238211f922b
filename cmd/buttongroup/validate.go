package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every button group in the configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig(nil)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s is invalid:\n%v\n", path, err)
			return fmt.Errorf("invalid configuration")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d widget(s) ok\n", path, len(cfg.Widgets))
		return nil
	},
}
