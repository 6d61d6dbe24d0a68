// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keywords

import (
	"fmt"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Lemmatizer reduces a lowercase word to its dictionary base form.
type Lemmatizer interface {
	Lemma(word string) string
}

// IdentityLemmatizer returns every word unchanged.
type IdentityLemmatizer struct{}

// Lemma returns word.
func (IdentityLemmatizer) Lemma(word string) string { return word }

// dictLemmatizer adapts a golem dictionary lemmatizer.
type dictLemmatizer struct {
	l *golem.Lemmatizer
}

func (d dictLemmatizer) Lemma(word string) string {
	return d.l.Lemma(word)
}

var (
	englishOnce sync.Once
	englishLem  Lemmatizer
	englishErr  error
)

// EnglishLemmatizer returns the process-wide English dictionary lemmatizer.
// The dictionary is loaded on first use and shared by every later caller.
func EnglishLemmatizer() (Lemmatizer, error) {
	englishOnce.Do(func() {
		l, err := golem.New(en.New())
		if err != nil {
			englishErr = fmt.Errorf("loading English lemma dictionary: %w", err)
			return
		}
		englishLem = dictLemmatizer{l: l}
	})
	return englishLem, englishErr
}
