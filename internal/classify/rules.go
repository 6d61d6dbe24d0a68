// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// Rules holds the ordered exclusion and inclusion pattern lists.
type Rules struct {
	Exclude []string `yaml:"exclude" json:"exclude"`
	Include []string `yaml:"include" json:"include"`
}

// DefaultRules returns the built-in keyword lists.
func DefaultRules() Rules {
	r, err := ParseRules(bytes.NewReader(defaultRulesYAML))
	if err != nil {
		panic(fmt.Sprintf("classify: built-in rules are invalid: %v", err))
	}
	return r
}

// LoadRules reads a rules file from disk.
func LoadRules(path string) (Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return Rules{}, fmt.Errorf("opening rules file: %w", err)
	}
	defer f.Close()

	r, err := ParseRules(f)
	if err != nil {
		return Rules{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// ParseRules decodes a YAML rules document. Patterns are trimmed and
// lowercased; duplicates collapse to their first occurrence and an empty
// pattern is an error, since it would match every record.
func ParseRules(r io.Reader) (Rules, error) {
	var raw Rules
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Rules{}, fmt.Errorf("parsing rules: document is empty")
		}
		return Rules{}, fmt.Errorf("parsing rules: %w", err)
	}

	exclude, err := cleanPatterns("exclude", raw.Exclude)
	if err != nil {
		return Rules{}, err
	}
	include, err := cleanPatterns("include", raw.Include)
	if err != nil {
		return Rules{}, err
	}
	return Rules{Exclude: exclude, Include: include}, nil
}

// Marshal encodes the rules as YAML.
func (r Rules) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

func cleanPatterns(list string, patterns []string) ([]string, error) {
	seen := make(map[string]bool, len(patterns))
	out := make([]string, 0, len(patterns))
	for i, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			return nil, fmt.Errorf("%s[%d]: empty pattern", list, i)
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}
