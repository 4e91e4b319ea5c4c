package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fontsized/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema for config.toml",
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}
