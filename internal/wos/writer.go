// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wos

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/biblio-screen/pkg/types"
)

// utf8BOM marks the export as UTF-8 for spreadsheet and bibliometric tools.
const utf8BOM = "\ufeff"

// WriteTSV writes the tags columns of t as UTF-8 (with BOM) tab-delimited
// text: one header row of tag names, then one row per record. Absent fields
// are written as empty cells. Cells are trimmed, since the tab writer quotes
// any field that starts with a space.
func WriteTSV(w io.Writer, t *types.Table, tags []types.Tag) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	header := make([]string, len(tags))
	for i, tag := range tags {
		header[i] = string(tag)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := make([]string, len(tags))
	for n, rec := range t.Records {
		for i, tag := range tags {
			row[i] = strings.TrimSpace(rec.Get(tag))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record %d: %w", n+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing export: %w", err)
	}
	return nil
}
