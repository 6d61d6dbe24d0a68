// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package screen runs the screening pipeline over a parsed export:
// standardize columns, classify every record, normalize the keyword fields
// of included records, drop excluded records, and project onto the
// standardized export fields.
package screen

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/biblio-screen/internal/classify"
	"github.com/pdiddy/biblio-screen/internal/keywords"
	"github.com/pdiddy/biblio-screen/internal/wos"
	"github.com/pdiddy/biblio-screen/pkg/types"
)

// Screener holds the classifier and normalizer for a run. Both are pure, so
// records can be processed on a bounded worker pool without changing output.
type Screener struct {
	classifier *classify.Classifier
	normalizer *keywords.Normalizer
	workers    int
	log        zerolog.Logger
}

// New returns a Screener. workers below 2 processes records serially.
func New(c *classify.Classifier, n *keywords.Normalizer, workers int, log zerolog.Logger) *Screener {
	if workers < 1 {
		workers = 1
	}
	return &Screener{classifier: c, normalizer: n, workers: workers, log: log}
}

// Result holds the export table and the per-record decisions of a run.
type Result struct {
	// Export holds the retained records projected onto the present export tags.
	Export *types.Table

	// Labels holds one label per input record, in input order.
	Labels []types.Label

	Summary Summary
}

// Summary counts records per label and describes the export.
type Summary struct {
	Total    int      `json:"total" yaml:"total"`
	Include  int      `json:"include" yaml:"include"`
	Exclude  int      `json:"exclude" yaml:"exclude"`
	Review   int      `json:"review" yaml:"review"`
	Exported int      `json:"exported" yaml:"exported"`
	Columns  []string `json:"columns" yaml:"columns"`
}

// Run screens t. The records of t are modified in place: columns are
// renamed to tags and the keyword fields of Include records are rewritten.
// Run returns an error only when ctx is cancelled.
func (s *Screener) Run(ctx context.Context, t *types.Table) (*Result, error) {
	wos.Standardize(t)

	kwTags := make([]types.Tag, 0, len(types.KeywordTags))
	for _, tag := range types.KeywordTags {
		if t.HasColumn(string(tag)) {
			kwTags = append(kwTags, tag)
		}
	}

	labels := make([]types.Label, len(t.Records))
	err := s.each(ctx, len(t.Records), func(i int) {
		rec := t.Records[i]
		labels[i] = s.classifier.Classify(rec)
		if labels[i] != types.LabelInclude {
			return
		}
		for _, tag := range kwTags {
			rec.Set(tag, s.normalizer.Normalize(rec.Get(tag)))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("screening records: %w", err)
	}

	export := Project(t, labels)
	sum := Summary{
		Total:    len(t.Records),
		Exported: len(export.Records),
		Columns:  export.Columns,
	}
	for _, l := range labels {
		switch l {
		case types.LabelInclude:
			sum.Include++
		case types.LabelExclude:
			sum.Exclude++
		case types.LabelReview:
			sum.Review++
		}
	}
	s.log.Info().Int("total", sum.Total).Int("include", sum.Include).
		Int("exclude", sum.Exclude).Int("review", sum.Review).Msg("screened records")

	return &Result{Export: export, Labels: labels, Summary: sum}, nil
}

// Explain standardizes t and reports the label and deciding pattern of
// every record without modifying any field values.
func (s *Screener) Explain(ctx context.Context, t *types.Table) ([]classify.Match, error) {
	wos.Standardize(t)
	matches := make([]classify.Match, len(t.Records))
	err := s.each(ctx, len(t.Records), func(i int) {
		matches[i] = s.classifier.Explain(t.Records[i])
	})
	if err != nil {
		return nil, fmt.Errorf("classifying records: %w", err)
	}
	return matches, nil
}

// Project keeps the records whose label is retained and copies only the
// export tags present in t, in export order. The label itself is not
// carried into the result.
func Project(t *types.Table, labels []types.Label) *types.Table {
	tags := t.PresentTags()
	out := &types.Table{
		Columns:   make([]string, len(tags)),
		Encoding:  t.Encoding,
		Delimiter: t.Delimiter,
	}
	for i, tag := range tags {
		out.Columns[i] = string(tag)
	}

	for i, rec := range t.Records {
		if !labels[i].Retained() {
			continue
		}
		p := make(types.Record, len(tags))
		for _, tag := range tags {
			if v, ok := rec[string(tag)]; ok {
				p[string(tag)] = v
			}
		}
		out.Records = append(out.Records, p)
	}
	return out
}

// each calls fn for every index in [0, n), serially or on the worker pool.
func (s *Screener) each(ctx context.Context, n int, fn func(i int)) error {
	if s.workers == 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
