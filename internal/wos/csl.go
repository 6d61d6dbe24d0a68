// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wos

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/biblio-screen/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format so screened records can be loaded into Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	Keyword        string    `yaml:"keyword,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// WriteCSL writes the records of t as a CSL-YAML list to w.
func WriteCSL(w io.Writer, t *types.Table) error {
	items := make([]CSLItem, len(t.Records))
	ids := make(map[string]int)
	for i, rec := range t.Records {
		items[i] = toCSLItem(rec)
		items[i].ID = uniqueID(ids, items[i])
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encoding CSL: %w", err)
	}
	return nil
}

// toCSLItem converts a standardized record to a CSLItem. The ID is filled
// in by WriteCSL.
func toCSLItem(rec types.Record) CSLItem {
	item := CSLItem{
		Type:           "article-journal",
		Title:          strings.TrimSpace(rec.Get(types.TagTitle)),
		ContainerTitle: strings.TrimSpace(rec.Get(types.TagSource)),
		Abstract:       strings.TrimSpace(rec.Get(types.TagAbstract)),
	}

	for _, a := range strings.Split(rec.Get(types.TagAuthors), ";") {
		if n := parseAuthorName(a); n != (CSLName{}) {
			item.Author = append(item.Author, n)
		}
	}

	var kw []string
	for _, tag := range types.KeywordTags {
		if v := strings.TrimSpace(rec.Get(tag)); v != "" {
			kw = append(kw, v)
		}
	}
	item.Keyword = strings.Join(kw, "; ")

	if year, err := strconv.Atoi(strings.TrimSpace(rec.Get(types.TagYear))); err == nil && year > 0 {
		item.Issued = &CSLDate{DateParts: [][]int{{year}}}
	}
	return item
}

// parseAuthorName splits an export author ("Family, Given") into CSL parts.
// Names without a comma fall back to splitting on the last space, and
// single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	if family, given, ok := strings.Cut(name, ","); ok {
		return CSLName{
			Family: strings.TrimSpace(family),
			Given:  strings.TrimSpace(given),
		}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}

// uniqueID builds a citation key from the first author's family name and
// the year, suffixing repeats with a letter (smith2021, smith2021b, ...).
func uniqueID(seen map[string]int, item CSLItem) string {
	base := "anon"
	if len(item.Author) > 0 {
		a := item.Author[0]
		name := a.Family
		if name == "" {
			name = a.Literal
		}
		if k := citationKey(name); k != "" {
			base = k
		}
	}
	if item.Issued != nil {
		base += strconv.Itoa(item.Issued.DateParts[0][0])
	}

	seen[base]++
	n := seen[base]
	if n == 1 {
		return base
	}
	if n <= 26 {
		return base + string(rune('a'+n-1))
	}
	return fmt.Sprintf("%s-%d", base, n)
}

func citationKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
