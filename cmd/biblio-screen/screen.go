// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/biblio-screen/internal/classify"
	"github.com/pdiddy/biblio-screen/internal/screen"
	"github.com/pdiddy/biblio-screen/internal/wos"
	"github.com/pdiddy/biblio-screen/pkg/types"
)

var screenCmd = &cobra.Command{
	Use:   "screen <export-file>",
	Short: "Classify, clean, and export a bibliographic export",
	Long: `Screen reads an export file, labels every record Include, Exclude, or
Review, normalizes the author keywords (DE) and keywords plus (ID) of included
records, drops excluded records, and writes the standardized fields that exist
in the source as a UTF-8 tab-delimited file.

The input encoding and delimiter are detected automatically. If no attempt
yields more than two columns the file is rejected and nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runScreen,
}

func runScreen(cmd *cobra.Command, args []string) error {
	input := args[0]
	cfg, err := screenConfig(cmd)
	if err != nil {
		return err
	}

	rules, rulesSource, err := loadRules(cfg.Classifier)
	if err != nil {
		return err
	}
	norm, err := newNormalizer(cfg.Normalizer)
	if err != nil {
		return err
	}

	reader, err := wos.NewReader(cfg.Reader, logger)
	if err != nil {
		return err
	}
	tbl, err := reader.ReadFile(input)
	if err != nil {
		return err
	}

	s := screen.New(classify.New(rules), norm, cfg.Workers, logger)
	res, err := s.Run(context.Background(), tbl)
	if err != nil {
		return err
	}

	output := cfg.Export.Output
	if output == "" {
		output = defaultOutputPath(input, cfg.Export.Format)
	}
	if err := writeExport(output, cfg.Export.Format, res.Export); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if n, _ := cmd.Flags().GetInt("preview"); n > 0 {
		matches := make([]classify.Match, len(res.Labels))
		for i, l := range res.Labels {
			matches[i] = classify.Match{Label: l}
		}
		screen.FormatTable(screen.PreviewRows(tbl.Records, matches, n), out)
		fmt.Fprintln(out)
	}
	screen.FormatSummary(res.Summary, out)
	fmt.Fprintf(out, "Wrote %s\n", output)

	if cfg.Export.SummaryFile != "" {
		rf := screen.RunFile{
			Input:     input,
			Output:    output,
			Encoding:  tbl.Encoding,
			Delimiter: screen.DelimiterName(tbl.Delimiter),
			Rules: screen.RunRules{
				Source:  rulesSource,
				Exclude: len(rules.Exclude),
				Include: len(rules.Include),
			},
			Summary: res.Summary,
		}
		if err := screen.WriteRunFile(cfg.Export.SummaryFile, rf); err != nil {
			return err
		}
	}
	return nil
}

// defaultOutputPath derives "<input>_screened.txt" (or .yaml for CSL)
// next to the input file.
func defaultOutputPath(input string, format types.ExportFormat) string {
	ext := ".txt"
	if format == types.FormatCSL {
		ext = ".yaml"
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "_screened" + ext
}

// writeExport writes t to path in format. The file is written to a
// temporary name first so a failed run leaves no partial export behind.
func writeExport(path string, format types.ExportFormat, t *types.Table) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".biblio-screen-*")
	if err != nil {
		return fmt.Errorf("creating export: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encodeExport(tmp, format, t); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing export: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting export permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func encodeExport(w io.Writer, format types.ExportFormat, t *types.Table) error {
	switch format {
	case types.FormatCSL:
		return wos.WriteCSL(w, t)
	default:
		tags := make([]types.Tag, len(t.Columns))
		for i, c := range t.Columns {
			tags[i] = types.Tag(c)
		}
		return wos.WriteTSV(w, t, tags)
	}
}

func init() {
	screenCmd.Flags().StringP("output", "o", "", "export path (default: <input>_screened.txt)")
	screenCmd.Flags().String("format", "tsv", "export format: tsv or csl")
	screenCmd.Flags().String("rules", "", "YAML rules file replacing the built-in keyword lists")
	screenCmd.Flags().StringSlice("stop-words", nil, "additional stop words for keyword cleaning")
	screenCmd.Flags().Bool("no-lemmatize", false, "keep keyword words in their original form")
	screenCmd.Flags().StringSlice("encodings", nil, "encodings to try, in order (default utf-8,utf-16,latin-1,cp1252)")
	screenCmd.Flags().Int("workers", 1, "records processed in parallel")
	screenCmd.Flags().String("summary", "", "write a YAML run summary to this path")
	screenCmd.Flags().Int("preview", 0, "print the first N records with their labels")

	rootCmd.AddCommand(screenCmd)
}
