// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wos

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/biblio-screen/pkg/types"
)

func TestWriteTSV(t *testing.T) {
	tbl := &types.Table{
		Columns: []string{"AU", "TI", "PY"},
		Records: []types.Record{
			{"AU": "Smith, J", "TI": "Live commerce", "PY": "2021"},
			{"AU": "Doe, A", "PY": "2020"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, tbl, []types.Tag{types.TagAuthors, types.TagTitle, types.TagYear}))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\ufeff"), "export must start with a UTF-8 BOM")
	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, "\ufeff"), "\n"), "\n")
	assert.Equal(t, []string{
		"AU\tTI\tPY",
		"Smith, J\tLive commerce\t2021",
		"Doe, A\t\t2020",
	}, lines)
}

func TestWriteTSVQuotesEmbeddedTabs(t *testing.T) {
	tbl := &types.Table{Records: []types.Record{{"AB": "first\tsecond"}}}

	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, tbl, []types.Tag{types.TagAbstract}))
	assert.Contains(t, buf.String(), "\"first\tsecond\"")
}

func TestWriteTSVReadsBack(t *testing.T) {
	tbl := &types.Table{
		Columns: []string{"AU", "TI", "SO"},
		Records: []types.Record{{"AU": "Smith, J", "TI": "A \"quoted\" title", "SO": "J Mark"}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, tbl, []types.Tag{types.TagAuthors, types.TagTitle, types.TagSource}))

	back, err := newTestReader(t).Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns, back.Columns)
	assert.Equal(t, tbl.Records, back.Records)
}

func TestWriteTSVTrimsCells(t *testing.T) {
	tbl := &types.Table{Records: []types.Record{{"AU": "  Smith, J", "TI": "\tLive commerce \n"}}}

	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, tbl, []types.Tag{types.TagAuthors, types.TagTitle}))
	assert.Equal(t, "\ufeffAU\tTI\nSmith, J\tLive commerce\n", buf.String())
}
