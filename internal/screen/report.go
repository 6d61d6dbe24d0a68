// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/biblio-screen/internal/classify"
	"github.com/pdiddy/biblio-screen/pkg/types"
)

const titleWidth = 60

// FormatSummary writes the label counts and export shape to w.
func FormatSummary(sum Summary, w io.Writer) {
	fmt.Fprintf(w, "%-8s  %6s\n", "Label", "Count")
	fmt.Fprintln(w, strings.Repeat("-", 16))
	fmt.Fprintf(w, "%-8s  %6d\n", types.LabelInclude, sum.Include)
	fmt.Fprintf(w, "%-8s  %6d\n", types.LabelExclude, sum.Exclude)
	fmt.Fprintf(w, "%-8s  %6d\n", types.LabelReview, sum.Review)
	fmt.Fprintf(w, "\n%d of %d records exported", sum.Exported, sum.Total)
	if len(sum.Columns) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(sum.Columns, ", "))
	}
	fmt.Fprintln(w)
}

// PreviewRow is one line of a classification listing.
type PreviewRow struct {
	Index   int         `json:"index"`
	Year    string      `json:"year,omitempty"`
	Title   string      `json:"title"`
	Label   types.Label `json:"label"`
	Pattern string      `json:"pattern,omitempty"`
}

// PreviewRows pairs records with their matches. limit <= 0 keeps every row.
func PreviewRows(records []types.Record, matches []classify.Match, limit int) []PreviewRow {
	n := len(records)
	if limit > 0 && limit < n {
		n = limit
	}
	rows := make([]PreviewRow, n)
	for i := 0; i < n; i++ {
		rows[i] = PreviewRow{
			Index:   i + 1,
			Year:    strings.TrimSpace(records[i].Get(types.TagYear)),
			Title:   strings.Join(strings.Fields(records[i].Get(types.TagTitle)), " "),
			Label:   matches[i].Label,
			Pattern: matches[i].Pattern,
		}
	}
	return rows
}

// FormatTable writes rows as a human-readable table to w. Titles are
// truncated by display width so wide characters keep columns aligned.
func FormatTable(rows []PreviewRow, w io.Writer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No records.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-7s  %-4s  %s  %s\n",
		"#", "Label", "Year", runewidth.FillRight("Title", titleWidth), "Matched")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range rows {
		title := runewidth.Truncate(r.Title, titleWidth, "...")
		fmt.Fprintf(w, "%-5d  %-7s  %-4s  %s  %s\n",
			r.Index, r.Label, r.Year, runewidth.FillRight(title, titleWidth), r.Pattern)
	}
}

// FormatJSON writes rows as indented JSON to w.
func FormatJSON(rows []PreviewRow, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// RunFile is the on-disk record of a screening run, written next to the
// export so the reviewer can see how the file was read and what was dropped.
type RunFile struct {
	Input     string    `yaml:"input"`
	Output    string    `yaml:"output"`
	Encoding  string    `yaml:"encoding"`
	Delimiter string    `yaml:"delimiter"`
	Rules     RunRules  `yaml:"rules"`
	Summary   Summary   `yaml:"summary"`
	Timestamp time.Time `yaml:"timestamp"`
}

// RunRules records the size and origin of the rule set used.
type RunRules struct {
	Source  string `yaml:"source"`
	Exclude int    `yaml:"exclude"`
	Include int    `yaml:"include"`
}

// WriteRunFile saves a run record as YAML.
func WriteRunFile(path string, rf RunFile) error {
	if rf.Timestamp.IsZero() {
		rf.Timestamp = time.Now()
	}
	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run file: %w", err)
	}
	return nil
}

// ReadRunFile loads a run record from disk.
func ReadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	return &rf, nil
}

// DelimiterName returns a readable name for a field separator.
func DelimiterName(r rune) string {
	switch r {
	case '\t':
		return "tab"
	case ',':
		return "comma"
	case ';':
		return "semicolon"
	case 0:
		return ""
	}
	return string(r)
}
