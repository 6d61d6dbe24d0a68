// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wos

import "github.com/pdiddy/biblio-screen/pkg/types"

// Synonyms maps long-form export column names to their field tags. Matching
// is exact and case-sensitive.
var Synonyms = map[string]types.Tag{
	"Authors":                    types.TagAuthors,
	"Article Title":              types.TagTitle,
	"Source Title":               types.TagSource,
	"Author Keywords":            types.TagAuthorKeywords,
	"Keywords Plus":              types.TagKeywordsPlus,
	"Abstract":                   types.TagAbstract,
	"Cited References":           types.TagCitedRefs,
	"Publication Year":           types.TagYear,
	"Times Cited, All Databases": types.TagTimesCited,
}

// longNames is the reverse of Synonyms.
var longNames = func() map[types.Tag]string {
	m := make(map[types.Tag]string, len(Synonyms))
	for name, tag := range Synonyms {
		m[tag] = name
	}
	return m
}()

// TagFor returns the field tag for a column name: the tag itself for an
// already-tagged column, the synonym for a long-form name, or false.
func TagFor(column string) (types.Tag, bool) {
	for _, tag := range types.ExportTags {
		if column == string(tag) {
			return tag, true
		}
	}
	tag, ok := Synonyms[column]
	return tag, ok
}

// Lookup returns the value of tag in rec, trying the tag first and then its
// long-form synonym. Absent fields yield "".
func Lookup(rec types.Record, tag types.Tag) string {
	if v, ok := rec[string(tag)]; ok {
		return v
	}
	if name, ok := longNames[tag]; ok {
		return rec[name]
	}
	return ""
}

// Standardize renames recognized long-form columns of t to their tags, in
// place. Unrecognized columns are left untouched. When a table carries both
// a tag column and its long-form synonym, the tag column wins and the
// long-form column keeps its name.
func Standardize(t *types.Table) *types.Table {
	renames := make(map[string]string)
	for i, col := range t.Columns {
		tag, ok := TagFor(col)
		if !ok || col == string(tag) || t.HasColumn(string(tag)) {
			continue
		}
		renames[col] = string(tag)
		t.Columns[i] = string(tag)
	}
	if len(renames) == 0 {
		return t
	}

	for _, rec := range t.Records {
		for from, to := range renames {
			if v, ok := rec[from]; ok {
				rec[to] = v
				delete(rec, from)
			}
		}
	}
	return t
}
