// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/biblio-screen/pkg/types"
)

func testRules() Rules {
	return Rules{
		Exclude: []string{"tcp", "mac layer", "ldpc"},
		Include: []string{"user", "engagement", "marketing", "community", "social"},
	}
}

func TestClassify(t *testing.T) {
	c := New(testRules())

	tests := []struct {
		name string
		rec  types.Record
		want types.Label
	}{
		{
			name: "exclusion keyword in abstract",
			rec:  types.Record{"TI": "Scheduling flows", "AB": "We tune TCP congestion control."},
			want: types.LabelExclude,
		},
		{
			name: "exclusion takes precedence over inclusion",
			rec:  types.Record{"TI": "Improving user experience", "AB": "A TCP-friendly design."},
			want: types.LabelExclude,
		},
		{
			name: "exclusion keyword in keywords plus",
			rec:  types.Record{"TI": "Community streams", "ID": "LDPC codes"},
			want: types.LabelExclude,
		},
		{
			name: "inclusion keyword in source title",
			rec:  types.Record{"TI": "Live commerce", "SO": "Journal of Marketing"},
			want: types.LabelInclude,
		},
		{
			name: "inclusion keyword in author keywords",
			rec:  types.Record{"DE": "Viewer Engagement; Live streaming"},
			want: types.LabelInclude,
		},
		{
			name: "substring match inside a longer word",
			rec:  types.Record{"TI": "Antisocial comment detection"},
			want: types.LabelInclude,
		},
		{
			name: "no keyword matches",
			rec:  types.Record{"TI": "Graph partitioning heuristics", "AB": "We evaluate solvers."},
			want: types.LabelReview,
		},
		{
			name: "empty record",
			rec:  types.Record{},
			want: types.LabelReview,
		},
		{
			name: "fields outside the search text are ignored",
			rec:  types.Record{"AU": "User, A", "CR": "TCP/IP Illustrated", "TI": "Ranking"},
			want: types.LabelReview,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.rec))
		})
	}
}

func TestExplainReportsDecidingPattern(t *testing.T) {
	c := New(testRules())

	m := c.Explain(types.Record{"TI": "User engagement", "AB": "mac layer scheduling"})
	assert.Equal(t, Match{Label: types.LabelExclude, Pattern: "mac layer"}, m)

	m = c.Explain(types.Record{"TI": "Brand community"})
	assert.Equal(t, Match{Label: types.LabelInclude, Pattern: "community"}, m)

	m = c.Explain(types.Record{"TI": "Nothing relevant"})
	assert.Equal(t, Match{Label: types.LabelReview}, m)
}

func TestSearchTextFieldOrder(t *testing.T) {
	rec := types.Record{"AB": "Abs", "TI": "Title", "SO": "Src", "DE": "Kw", "ID": "Kp", "AU": "Author"}
	assert.Equal(t, "title src kw kp abs", SearchText(rec))
}

func TestSearchTextSpansFieldBoundary(t *testing.T) {
	// Fields are joined with a space, so a pattern containing a space can
	// match across the end of one field and the start of the next.
	c := New(Rules{Include: []string{"streaming user"}})
	rec := types.Record{"TI": "Live streaming", "SO": "User Studies"}
	assert.Equal(t, types.LabelInclude, c.Classify(rec))
}

func TestClassifyUnstandardizedRecord(t *testing.T) {
	c := New(testRules())

	rec := types.Record{"Article Title": "Viewer gifting", "Abstract": "We model user loyalty."}
	assert.Equal(t, "viewer gifting    we model user loyalty.", SearchText(rec))
	assert.Equal(t, Match{Label: types.LabelInclude, Pattern: "user"}, c.Explain(rec))

	rec = types.Record{"Source Title": "Comput Netw", "Author Keywords": "TCP; QoE"}
	assert.Equal(t, types.LabelExclude, c.Classify(rec))
}

func TestSearchTextPrefersTagOverLongForm(t *testing.T) {
	rec := types.Record{"TI": "Tagged", "Article Title": "Long"}
	assert.Equal(t, "tagged    ", SearchText(rec))
}
