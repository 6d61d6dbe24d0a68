// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keywords

import "strings"

// englishStopWords is the common English function-word list used by most
// text-mining toolkits.
var englishStopWords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her", "hers",
	"herself", "it", "it's", "its", "itself", "they", "them", "their",
	"theirs", "themselves", "what", "which", "who", "whom", "this", "that",
	"that'll", "these", "those", "am", "is", "are", "was", "were", "be",
	"been", "being", "have", "has", "had", "having", "do", "does", "did",
	"doing", "a", "an", "the", "and", "but", "if", "or", "because", "as",
	"until", "while", "of", "at", "by", "for", "with", "about", "against",
	"between", "into", "through", "during", "before", "after", "above",
	"below", "to", "from", "up", "down", "in", "out", "on", "off", "over",
	"under", "again", "further", "then", "once", "here", "there", "when",
	"where", "why", "how", "all", "any", "both", "each", "few", "more",
	"most", "other", "some", "such", "no", "nor", "not", "only", "own",
	"same", "so", "than", "too", "very", "s", "t", "can", "will", "just",
	"don", "don't", "should", "should've", "now", "d", "ll", "m", "o", "re",
	"ve", "y", "ain", "aren", "aren't", "couldn", "couldn't", "didn",
	"didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't",
	"haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't", "mustn",
	"mustn't", "needn", "needn't", "shan", "shan't", "shouldn", "shouldn't",
	"wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn",
	"wouldn't",
}

// DomainStopWords are words that appear in nearly every bibliographic
// keyword list and carry no topical signal.
var DomainStopWords = []string{"study", "research", "analysis", "results", "paper", "article"}

// StopWords is a set of lowercase words removed during normalization.
type StopWords map[string]struct{}

// NewStopWords builds a set from one or more word lists.
func NewStopWords(lists ...[]string) StopWords {
	s := make(StopWords)
	for _, list := range lists {
		s.Add(list...)
	}
	return s
}

// EnglishStopWords returns the English list plus DomainStopWords.
func EnglishStopWords() StopWords {
	return NewStopWords(englishStopWords, DomainStopWords)
}

// Add inserts words, lowercased and trimmed. Blank entries are ignored.
func (s StopWords) Add(words ...string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s[w] = struct{}{}
		}
	}
}

// Contains reports whether word is a stop word.
func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}
