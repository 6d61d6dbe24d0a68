// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [keywords...]",
	Short: "Clean semicolon-delimited keyword strings",
	Long: `Normalize applies keyword cleaning to each argument, or to each line of
standard input when no arguments are given: hyphens become spaces, non-letters
are dropped, short words and stop words are removed, words are lemmatized, and
the distinct phrases are sorted and joined with "; ".`,
	RunE: runNormalize,
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, err := screenConfig(cmd)
	if err != nil {
		return err
	}
	norm, err := newNormalizer(cfg.Normalizer)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) > 0 {
		for _, a := range args {
			fmt.Fprintln(out, norm.Normalize(a))
		}
		return nil
	}

	sc := bufio.NewScanner(cmd.InOrStdin())
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		fmt.Fprintln(out, norm.Normalize(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}

func init() {
	normalizeCmd.Flags().StringSlice("stop-words", nil, "additional stop words")
	normalizeCmd.Flags().Bool("no-lemmatize", false, "keep words in their original form")

	rootCmd.AddCommand(normalizeCmd)
}
