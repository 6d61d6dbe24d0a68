// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active classification rules as YAML",
	Long: `Rules prints the exclusion and inclusion keyword lists in effect. The output
is a valid rules file: save it, edit it, and pass it back with --rules or the
classifier.rules_file config key.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := screenConfig(cmd)
		if err != nil {
			return err
		}
		rules, source, err := loadRules(cfg.Classifier)
		if err != nil {
			return err
		}
		data, err := rules.Marshal()
		if err != nil {
			return fmt.Errorf("marshaling rules: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# source: %s\n", source)
		_, err = out.Write(data)
		return err
	},
}

func init() {
	rulesCmd.Flags().String("rules", "", "YAML rules file to print instead of the built-in lists")

	rootCmd.AddCommand(rulesCmd)
}
