package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hima/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			p, err := config.Path()
			if err != nil {
				return err
			}
			path = p
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out, err := cfg.YAML()
		if err != nil {
			return err
		}
		fmt.Printf("# %s\n%s", path, out)
		return nil
	},
}
