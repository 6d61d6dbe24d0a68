// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/biblio-screen/internal/classify"
	"github.com/pdiddy/biblio-screen/internal/keywords"
	"github.com/pdiddy/biblio-screen/pkg/types"
)

// flagKeys maps command-line flags to their config keys. Flags only
// override the config when set on the command line.
var flagKeys = map[string]string{
	"rules":      "classifier.rules_file",
	"stop-words": "normalizer.extra_stop_words",
	"encodings":  "reader.encodings",
	"workers":    "workers",
	"format":     "export.format",
	"output":     "export.output",
	"summary":    "export.summary_file",
}

func setDefaults() {
	def := types.DefaultScreenConfig()
	viper.SetDefault("reader.encodings", def.Reader.Encodings)
	viper.SetDefault("reader.delimiters", def.Reader.Delimiters)
	viper.SetDefault("reader.min_columns", def.Reader.MinColumns)
	viper.SetDefault("classifier.rules_file", def.Classifier.RulesFile)
	viper.SetDefault("normalizer.extra_stop_words", def.Normalizer.ExtraStopWords)
	viper.SetDefault("normalizer.lemmatize", def.Normalizer.Lemmatize)
	viper.SetDefault("export.format", string(def.Export.Format))
	viper.SetDefault("export.output", def.Export.Output)
	viper.SetDefault("export.summary_file", def.Export.SummaryFile)
	viper.SetDefault("workers", def.Workers)
}

// screenConfig resolves the effective configuration for cmd: defaults, then
// the config file and environment, then any flags set on the command line.
func screenConfig(cmd *cobra.Command) (types.ScreenConfig, error) {
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return types.ScreenConfig{}, fmt.Errorf("binding --%s: %w", flag, err)
		}
	}

	var cfg types.ScreenConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	if f := cmd.Flags().Lookup("no-lemmatize"); f != nil && f.Changed {
		off, _ := cmd.Flags().GetBool("no-lemmatize")
		cfg.Normalizer.Lemmatize = !off
	}

	switch cfg.Export.Format {
	case types.FormatTSV, types.FormatCSL:
	case "":
		cfg.Export.Format = types.FormatTSV
	default:
		return cfg, fmt.Errorf("unsupported format %q: use tsv or csl", cfg.Export.Format)
	}
	return cfg, nil
}

// loadRules returns the configured rule set and a description of its origin.
func loadRules(cfg types.ClassifierConfig) (classify.Rules, string, error) {
	if cfg.RulesFile == "" {
		return classify.DefaultRules(), "built-in", nil
	}
	r, err := classify.LoadRules(cfg.RulesFile)
	if err != nil {
		return classify.Rules{}, "", err
	}
	return r, cfg.RulesFile, nil
}

// newNormalizer builds a keyword normalizer from cfg.
func newNormalizer(cfg types.NormalizerConfig) (*keywords.Normalizer, error) {
	stop := keywords.EnglishStopWords()
	for _, w := range cfg.ExtraStopWords {
		// A config list may arrive as one comma-separated env value.
		stop.Add(strings.Split(w, ",")...)
	}

	var lemma keywords.Lemmatizer = keywords.IdentityLemmatizer{}
	if cfg.Lemmatize {
		l, err := keywords.EnglishLemmatizer()
		if err != nil {
			return nil, err
		}
		lemma = l
	}
	return keywords.NewNormalizer(stop, lemma), nil
}
