// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords cleans semicolon-delimited keyword fields into sorted,
// deduplicated phrase lists suitable for co-word analysis.
package keywords

import (
	"sort"
	"strings"
	"unicode"
)

// Separator joins normalized phrases in the output field.
const Separator = "; "

// minWordLen is the length a word must exceed to survive normalization.
const minWordLen = 2

// Normalizer rewrites keyword fields. It holds no mutable state and is safe
// for concurrent use as long as its Lemmatizer is.
type Normalizer struct {
	stop  StopWords
	lemma Lemmatizer
}

// NewNormalizer returns a Normalizer. A nil stop set removes nothing; a nil
// lemmatizer leaves words unchanged.
func NewNormalizer(stop StopWords, lemma Lemmatizer) *Normalizer {
	if stop == nil {
		stop = StopWords{}
	}
	if lemma == nil {
		lemma = IdentityLemmatizer{}
	}
	return &Normalizer{stop: stop, lemma: lemma}
}

// NormalizeValue normalizes v when it is a string and returns "" otherwise.
func (n *Normalizer) NormalizeValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return n.Normalize(s)
}

// Normalize splits raw on ';', cleans each segment into a phrase, and
// returns the distinct non-empty phrases sorted and joined by Separator.
// Original keyword order is not preserved.
func (n *Normalizer) Normalize(raw string) string {
	set := make(map[string]struct{})
	for _, segment := range strings.Split(raw, ";") {
		if phrase := n.phrase(segment); phrase != "" {
			set[phrase] = struct{}{}
		}
	}
	if len(set) == 0 {
		return ""
	}

	phrases := make([]string, 0, len(set))
	for p := range set {
		phrases = append(phrases, p)
	}
	sort.Strings(phrases)
	return strings.Join(phrases, Separator)
}

// Phrases returns the normalized phrases of raw as a slice.
func (n *Normalizer) Phrases(raw string) []string {
	out := n.Normalize(raw)
	if out == "" {
		return nil
	}
	return strings.Split(out, Separator)
}

func (n *Normalizer) phrase(segment string) string {
	text := strings.ToLower(strings.TrimSpace(segment))
	text = strings.ReplaceAll(text, "-", " ")
	text = strings.Map(keepLetterOrSpace, text)

	var words []string
	for _, w := range strings.Fields(text) {
		if !n.keep(w) {
			continue
		}
		lemma := n.lemma.Lemma(w)
		if !isWord(lemma) {
			lemma = w
		}
		// The lemma must pass the same filters as the word, otherwise a
		// second pass would drop it ("studies" -> "study").
		if !n.keep(lemma) {
			continue
		}
		words = append(words, lemma)
	}
	return strings.Join(words, " ")
}

// keep reports whether w is long enough and not a stop word.
func (n *Normalizer) keep(w string) bool {
	return len(w) > minWordLen && !n.stop.Contains(w)
}

// isWord reports whether s is a single non-empty run of ASCII lowercase letters.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// keepLetterOrSpace drops everything except ASCII lowercase letters and
// whitespace, so digits, punctuation, and accented letters vanish.
func keepLetterOrSpace(r rune) rune {
	if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
		return r
	}
	return -1
}
