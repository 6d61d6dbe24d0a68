// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in      string
		want    Label
		wantErr bool
	}{
		{"Include", LabelInclude, false},
		{"exclude", LabelExclude, false},
		{" REVIEW ", LabelReview, false},
		{"maybe", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLabel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLabelRetained(t *testing.T) {
	assert.True(t, LabelInclude.Retained())
	assert.True(t, LabelReview.Retained())
	assert.False(t, LabelExclude.Retained())
}

func TestRecordGetMissingField(t *testing.T) {
	r := Record{"TI": "A title"}
	assert.Equal(t, "A title", r.Get(TagTitle))
	assert.Equal(t, "", r.Get(TagAbstract))
}

func TestTablePresentTags(t *testing.T) {
	tbl := &Table{Columns: []string{"TC", "TI", "Extra", "AU"}}
	assert.Equal(t, []Tag{TagAuthors, TagTitle, TagTimesCited}, tbl.PresentTags())
}
