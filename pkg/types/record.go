// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the biblio-screen pipeline.
// Records, field tags, and screening labels flow from the reader through the
// classifier and keyword normalizer to the exporter.
package types

import (
	"fmt"
	"strings"
)

// Tag is a standardized two-letter bibliographic field tag.
type Tag string

const (
	TagAuthors        Tag = "AU"
	TagTitle          Tag = "TI"
	TagSource         Tag = "SO"
	TagAuthorKeywords Tag = "DE"
	TagKeywordsPlus   Tag = "ID"
	TagAbstract       Tag = "AB"
	TagCitedRefs      Tag = "CR"
	TagYear           Tag = "PY"
	TagTimesCited     Tag = "TC"
)

// ExportTags lists the standardized fields in export order.
var ExportTags = []Tag{
	TagAuthors,
	TagTitle,
	TagSource,
	TagAuthorKeywords,
	TagKeywordsPlus,
	TagAbstract,
	TagCitedRefs,
	TagYear,
	TagTimesCited,
}

// KeywordTags are the fields rewritten by keyword normalization.
var KeywordTags = []Tag{TagAuthorKeywords, TagKeywordsPlus}

// Label is the screening decision attached to a record.
type Label string

const (
	LabelInclude Label = "Include"
	LabelExclude Label = "Exclude"
	LabelReview  Label = "Review"
)

// Labels lists every label in report order.
var Labels = []Label{LabelInclude, LabelExclude, LabelReview}

// ParseLabel accepts a label name in any letter case.
func ParseLabel(s string) (Label, error) {
	for _, l := range Labels {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown label %q: use Include, Exclude, or Review", s)
}

// Retained reports whether records with this label survive into the export.
func (l Label) Retained() bool {
	return l == LabelInclude || l == LabelReview
}

// Record is one bibliographic entry keyed by column name. After column
// standardization the known fields are keyed by their Tag.
type Record map[string]string

// Get returns the value stored under tag, or "" when the field is absent.
func (r Record) Get(tag Tag) string {
	return r[string(tag)]
}

// Set stores value under tag.
func (r Record) Set(tag Tag, value string) {
	r[string(tag)] = value
}

// Table is a parsed export: the ordered column header plus one Record per row.
type Table struct {
	// Columns holds the header in source order.
	Columns []string `json:"columns" yaml:"columns"`

	// Records holds the rows in source order.
	Records []Record `json:"records" yaml:"records"`

	// Encoding names the character encoding the source was decoded with.
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`

	// Delimiter is the field separator detected in the source.
	Delimiter rune `json:"-" yaml:"-"`
}

// HasColumn reports whether name is part of the header.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// PresentTags returns the export tags that exist in the header, in export order.
func (t *Table) PresentTags() []Tag {
	var tags []Tag
	for _, tag := range ExportTags {
		if t.HasColumn(string(tag)) {
			tags = append(tags, tag)
		}
	}
	return tags
}
