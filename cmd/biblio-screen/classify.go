// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/biblio-screen/internal/classify"
	"github.com/pdiddy/biblio-screen/internal/screen"
	"github.com/pdiddy/biblio-screen/internal/wos"
	"github.com/pdiddy/biblio-screen/pkg/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <export-file>",
	Short: "Label records without writing an export",
	Long: `Classify reads an export file and prints the label of every record along
with the keyword that decided it. Exclusion keywords take precedence over
inclusion keywords; records matching neither are labeled Review.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := screenConfig(cmd)
	if err != nil {
		return err
	}
	rules, _, err := loadRules(cfg.Classifier)
	if err != nil {
		return err
	}

	reader, err := wos.NewReader(cfg.Reader, logger)
	if err != nil {
		return err
	}
	tbl, err := reader.ReadFile(args[0])
	if err != nil {
		return err
	}

	s := screen.New(classify.New(rules), nil, cfg.Workers, logger)
	matches, err := s.Explain(context.Background(), tbl)
	if err != nil {
		return err
	}

	if only, _ := cmd.Flags().GetString("label"); only != "" {
		want, err := types.ParseLabel(only)
		if err != nil {
			return err
		}
		tbl.Records, matches = filterLabel(tbl.Records, matches, want)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	rows := screen.PreviewRows(tbl.Records, matches, limit)

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return screen.FormatJSON(rows, out)
	}
	screen.FormatTable(rows, out)

	counts := make(map[types.Label]int)
	for _, m := range matches {
		counts[m.Label]++
	}
	fmt.Fprintf(out, "\n%d records: %d include, %d exclude, %d review\n",
		len(matches), counts[types.LabelInclude], counts[types.LabelExclude], counts[types.LabelReview])
	return nil
}

// filterLabel keeps the records whose match carries label.
func filterLabel(recs []types.Record, matches []classify.Match, label types.Label) ([]types.Record, []classify.Match) {
	var outRecs []types.Record
	var outMatches []classify.Match
	for i, m := range matches {
		if m.Label == label {
			outRecs = append(outRecs, recs[i])
			outMatches = append(outMatches, m)
		}
	}
	return outRecs, outMatches
}

func init() {
	classifyCmd.Flags().String("rules", "", "YAML rules file replacing the built-in keyword lists")
	classifyCmd.Flags().StringSlice("encodings", nil, "encodings to try, in order")
	classifyCmd.Flags().Int("workers", 1, "records processed in parallel")
	classifyCmd.Flags().String("label", "", "show only records with this label")
	classifyCmd.Flags().Int("limit", 0, "maximum rows to print (0 = all)")
	classifyCmd.Flags().Bool("json", false, "output rows as JSON")

	rootCmd.AddCommand(classifyCmd)
}
