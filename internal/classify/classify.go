// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify labels bibliographic records as Include, Exclude, or
// Review using two ordered lists of substring patterns. An exclusion match
// always takes precedence over an inclusion match.
package classify

import (
	"strings"

	"github.com/pdiddy/biblio-screen/internal/wos"
	"github.com/pdiddy/biblio-screen/pkg/types"
)

// searchFields are concatenated, in this order, into the text the patterns
// are matched against.
var searchFields = []types.Tag{
	types.TagTitle,
	types.TagSource,
	types.TagAuthorKeywords,
	types.TagKeywordsPlus,
	types.TagAbstract,
}

// Classifier applies a fixed Rules set. It holds no mutable state and is
// safe for concurrent use.
type Classifier struct {
	rules Rules
}

// New returns a Classifier for rules. Patterns are expected in the form
// produced by ParseRules (lowercase, trimmed).
func New(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Rules returns the pattern lists in use.
func (c *Classifier) Rules() Rules {
	return c.rules
}

// Match records the label chosen for a record and the pattern that decided
// it. Pattern is empty for Review.
type Match struct {
	Label   types.Label `json:"label" yaml:"label"`
	Pattern string      `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Classify returns exactly one label for rec.
func (c *Classifier) Classify(rec types.Record) types.Label {
	return c.Explain(rec).Label
}

// Explain classifies rec and reports the first pattern that matched.
func (c *Classifier) Explain(rec types.Record) Match {
	text := SearchText(rec)
	for _, p := range c.rules.Exclude {
		if strings.Contains(text, p) {
			return Match{Label: types.LabelExclude, Pattern: p}
		}
	}
	for _, p := range c.rules.Include {
		if strings.Contains(text, p) {
			return Match{Label: types.LabelInclude, Pattern: p}
		}
	}
	return Match{Label: types.LabelReview}
}

// SearchText lowercases and space-joins the title, source, author keywords,
// keywords plus, and abstract of rec. Each field is read by tag and then by
// its long-form column name, so unstandardized records classify the same.
// Absent fields contribute "".
func SearchText(rec types.Record) string {
	parts := make([]string, len(searchFields))
	for i, tag := range searchFields {
		parts[i] = strings.ToLower(wos.Lookup(rec, tag))
	}
	return strings.Join(parts, " ")
}
