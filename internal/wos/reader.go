// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wos reads and writes tabular bibliographic exports in the layout
// produced by Web of Science: one record per row, with either long-form
// column names ("Article Title") or two-letter field tags ("TI").
package wos

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/pdiddy/biblio-screen/pkg/types"
)

// ErrUnreadable is returned when no encoding and delimiter combination
// yields a table with enough columns.
var ErrUnreadable = errors.New("cannot read file")

// Reader parses exports using an ordered list of encodings and delimiters.
type Reader struct {
	cfg types.ReaderConfig
	log zerolog.Logger
}

// NewReader returns a Reader for cfg. Empty lists fall back to the defaults
// from types.DefaultScreenConfig.
func NewReader(cfg types.ReaderConfig, log zerolog.Logger) (*Reader, error) {
	def := types.DefaultScreenConfig().Reader
	if len(cfg.Encodings) == 0 {
		cfg.Encodings = def.Encodings
	}
	if len(cfg.Delimiters) == 0 {
		cfg.Delimiters = def.Delimiters
	}
	if cfg.MinColumns <= 0 {
		cfg.MinColumns = def.MinColumns
	}

	encs := make([]string, len(cfg.Encodings))
	for i, e := range cfg.Encodings {
		n, err := CanonicalEncoding(e)
		if err != nil {
			return nil, err
		}
		encs[i] = n
	}
	cfg.Encodings = encs

	for _, d := range cfg.Delimiters {
		if _, err := parseDelimiter(d); err != nil {
			return nil, err
		}
	}
	return &Reader{cfg: cfg, log: log}, nil
}

// ReadFile opens path and parses it with Read.
func (rd *Reader) ReadFile(path string) (*types.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := rd.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read tries each encoding in order and, within an encoding, each delimiter
// in order. The first attempt whose header has more than MinColumns columns
// is returned. If none qualifies Read returns ErrUnreadable and no table.
func (rd *Reader) Read(r io.Reader) (*types.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	for _, enc := range rd.cfg.Encodings {
		text, err := Decode(data, enc)
		if err != nil {
			rd.log.Debug().Str("encoding", enc).Err(err).Msg("decode failed")
			continue
		}
		for _, d := range rd.cfg.Delimiters {
			delim, _ := parseDelimiter(d)
			t, err := parseTable(text, delim)
			if err != nil {
				rd.log.Debug().Str("encoding", enc).Str("delimiter", d).Err(err).Msg("parse failed")
				continue
			}
			if len(t.Columns) <= rd.cfg.MinColumns {
				rd.log.Debug().Str("encoding", enc).Str("delimiter", d).
					Int("columns", len(t.Columns)).Msg("too few columns")
				continue
			}
			t.Encoding = enc
			t.Delimiter = delim
			rd.log.Info().Str("encoding", enc).Str("delimiter", d).
				Int("columns", len(t.Columns)).Int("records", len(t.Records)).Msg("parsed export")
			return t, nil
		}
	}
	return nil, ErrUnreadable
}

// parseDelimiter accepts a single character or one of the names "tab",
// "comma", "semicolon".
func parseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q: use a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}

func parseTable(text string, delim rune) (*types.Table, error) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = delim
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("no header row")
		}
		return nil, err
	}

	// index maps a header position to its column name; blank and repeated
	// names are not addressable and are skipped.
	index := make([]string, len(header))
	t := &types.Table{}
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" || t.HasColumn(name) {
			continue
		}
		index[i] = name
		t.Columns = append(t.Columns, name)
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rec := make(types.Record, len(t.Columns))
		for i, v := range row {
			if i >= len(index) || index[i] == "" {
				continue
			}
			rec[index[i]] = v
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}
