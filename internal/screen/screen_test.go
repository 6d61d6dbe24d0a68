// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/biblio-screen/internal/classify"
	"github.com/pdiddy/biblio-screen/internal/keywords"
	"github.com/pdiddy/biblio-screen/pkg/types"
)

func testScreener(workers int) *Screener {
	c := classify.New(classify.Rules{
		Exclude: []string{"tcp", "mac layer"},
		Include: []string{"user", "engagement", "marketing", "community"},
	})
	n := keywords.NewNormalizer(keywords.EnglishStopWords(), keywords.IdentityLemmatizer{})
	return New(c, n, workers, zerolog.Nop())
}

func longFormTable() *types.Table {
	return &types.Table{
		Columns: []string{
			"Authors", "Article Title", "Source Title", "Author Keywords", "Keywords Plus",
			"Abstract", "Publication Year", "DOI",
		},
		Records: []types.Record{
			{
				"Authors": "Smith, J", "Article Title": "User engagement in live streams",
				"Source Title": "J Interact Mark", "Author Keywords": "Live-Streaming; User Engagement; user engagement; Study Methods",
				"Keywords Plus": "SOCIAL PRESENCE; Trust", "Abstract": "We survey viewers.",
				"Publication Year": "2021", "DOI": "10.1/a",
			},
			{
				"Authors": "Doe, A", "Article Title": "User experience of video delivery",
				"Source Title": "Comput Netw", "Author Keywords": "QoE; Study",
				"Abstract": "A TCP-based scheme.", "Publication Year": "2020", "DOI": "10.1/b",
			},
			{
				"Authors": "Lee, K", "Article Title": "Graph partitioning",
				"Source Title": "Algorithmica", "Author Keywords": "Graphs; Study",
				"Abstract": "We evaluate solvers.", "Publication Year": "2019", "DOI": "10.1/c",
			},
		},
	}
}

func TestRun(t *testing.T) {
	res, err := testScreener(1).Run(context.Background(), longFormTable())
	require.NoError(t, err)

	assert.Equal(t, []types.Label{types.LabelInclude, types.LabelExclude, types.LabelReview}, res.Labels)
	assert.Equal(t, Summary{
		Total: 3, Include: 1, Exclude: 1, Review: 1, Exported: 2,
		Columns: []string{"AU", "TI", "SO", "DE", "ID", "AB", "PY"},
	}, res.Summary)

	require.Len(t, res.Export.Records, 2)
	assert.Equal(t, []string{"AU", "TI", "SO", "DE", "ID", "AB", "PY"}, res.Export.Columns)

	inc := res.Export.Records[0]
	assert.Equal(t, "live streaming; methods; user engagement", inc.Get(types.TagAuthorKeywords))
	assert.Equal(t, "social presence; trust", inc.Get(types.TagKeywordsPlus))
	_, hasDOI := inc["DOI"]
	assert.False(t, hasDOI, "unrecognized columns must not be exported")

	rev := res.Export.Records[1]
	assert.Equal(t, "Graphs; Study", rev.Get(types.TagAuthorKeywords), "review records keep raw keywords")
	_, hasID := rev[string(types.TagKeywordsPlus)]
	assert.False(t, hasID, "absent fields stay absent")
}

func TestRunMissingKeywordColumns(t *testing.T) {
	tbl := &types.Table{
		Columns: []string{"TI", "AB", "PY"},
		Records: []types.Record{{"TI": "Marketing via streams", "AB": "", "PY": "2022"}},
	}
	res, err := testScreener(1).Run(context.Background(), tbl)
	require.NoError(t, err)

	assert.Equal(t, []string{"TI", "AB", "PY"}, res.Export.Columns)
	assert.Equal(t, types.Record{"TI": "Marketing via streams", "AB": "", "PY": "2022"}, res.Export.Records[0])
}

func TestRunEndToEndRowCount(t *testing.T) {
	tbl := &types.Table{Columns: []string{"TI", "AB", "SO"}}
	want := 0
	for i := 0; i < 50; i++ {
		var title string
		switch i % 3 {
		case 0:
			title = fmt.Sprintf("Community study %d", i)
			want++
		case 1:
			title = fmt.Sprintf("TCP study %d", i)
		default:
			title = fmt.Sprintf("Sorting study %d", i)
			want++
		}
		tbl.Records = append(tbl.Records, types.Record{"TI": title, "AB": "", "SO": "J"})
	}

	res, err := testScreener(1).Run(context.Background(), tbl)
	require.NoError(t, err)
	assert.Len(t, res.Export.Records, want)
	assert.Equal(t, want, res.Summary.Exported)
}

func TestRunParallelMatchesSerial(t *testing.T) {
	serial, err := testScreener(1).Run(context.Background(), longFormTable())
	require.NoError(t, err)
	parallel, err := testScreener(8).Run(context.Background(), longFormTable())
	require.NoError(t, err)

	assert.Equal(t, serial.Labels, parallel.Labels)
	assert.Equal(t, serial.Export, parallel.Export)
	assert.Equal(t, serial.Summary, parallel.Summary)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		_, err := testScreener(workers).Run(ctx, longFormTable())
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
	}
}

func TestRunEmptyTable(t *testing.T) {
	res, err := testScreener(4).Run(context.Background(), &types.Table{Columns: []string{"TI", "AB", "SO"}})
	require.NoError(t, err)
	assert.Empty(t, res.Export.Records)
	assert.Equal(t, 0, res.Summary.Total)
}

func TestExplainDoesNotNormalize(t *testing.T) {
	tbl := longFormTable()
	matches, err := testScreener(2).Explain(context.Background(), tbl)
	require.NoError(t, err)

	assert.Equal(t, []classify.Match{
		{Label: types.LabelInclude, Pattern: "user"},
		{Label: types.LabelExclude, Pattern: "tcp"},
		{Label: types.LabelReview},
	}, matches)
	assert.Equal(t, "SOCIAL PRESENCE; Trust", tbl.Records[0].Get(types.TagKeywordsPlus))
}

func TestProject(t *testing.T) {
	tbl := &types.Table{
		Columns: []string{"X", "TC", "AU"},
		Records: []types.Record{
			{"X": "1", "TC": "5", "AU": "A"},
			{"X": "2", "TC": "6", "AU": "B"},
		},
	}
	out := Project(tbl, []types.Label{types.LabelExclude, types.LabelReview})

	assert.Equal(t, []string{"AU", "TC"}, out.Columns)
	assert.Equal(t, []types.Record{{"TC": "6", "AU": "B"}}, out.Records)
}
