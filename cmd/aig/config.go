package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"aigcore/pkg/config"
)

var configFile string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the tool's configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration that would be used, after defaults and ~/.aigcore.yaml are applied",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile, log)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	configCmd.PersistentFlags().StringVar(&configFile, "config-file", "", "path to an explicit config file, overriding ~/.aigcore.yaml")
	configCmd.AddCommand(configShowCmd)
}
