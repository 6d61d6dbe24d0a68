package types

// ReaderConfig holds settings for decoding an uploaded export.
type ReaderConfig struct {
	// Encodings is the ordered list of character encodings to try
	// (default utf-8, utf-16, latin-1, cp1252).
	Encodings []string `json:"encodings" yaml:"encodings" mapstructure:"encodings"`

	// Delimiters is the ordered list of field separators to try (default tab, comma).
	Delimiters []string `json:"delimiters" yaml:"delimiters" mapstructure:"delimiters"`

	// MinColumns is the column count a parse attempt must exceed to be accepted (default 2).
	MinColumns int `json:"min_columns" yaml:"min_columns" mapstructure:"min_columns"`
}

// ClassifierConfig holds settings for the keyword classifier.
type ClassifierConfig struct {
	// RulesFile is an optional YAML file replacing the built-in keyword lists.
	RulesFile string `json:"rules_file,omitempty" yaml:"rules_file,omitempty" mapstructure:"rules_file"`
}

// NormalizerConfig holds settings for keyword normalization.
type NormalizerConfig struct {
	// ExtraStopWords are added to the English and domain stop-word sets.
	ExtraStopWords []string `json:"extra_stop_words,omitempty" yaml:"extra_stop_words,omitempty" mapstructure:"extra_stop_words"`

	// Lemmatize enables dictionary lemmatization of surviving words (default true).
	Lemmatize bool `json:"lemmatize" yaml:"lemmatize" mapstructure:"lemmatize"`
}

// ExportFormat selects the output encoding of screened records.
type ExportFormat string

const (
	FormatTSV ExportFormat = "tsv"
	FormatCSL ExportFormat = "csl"
)

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// Format selects the output format: tsv or csl.
	Format ExportFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Output is the export path. Empty derives "<input>_screened.txt".
	Output string `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`

	// SummaryFile is an optional path for a YAML run summary.
	SummaryFile string `json:"summary_file,omitempty" yaml:"summary_file,omitempty" mapstructure:"summary_file"`
}

// ScreenConfig groups all stage configurations for a screening run.
type ScreenConfig struct {
	Reader     ReaderConfig     `json:"reader" yaml:"reader" mapstructure:"reader"`
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier" mapstructure:"classifier"`
	Normalizer NormalizerConfig `json:"normalizer" yaml:"normalizer" mapstructure:"normalizer"`
	Export     ExportConfig     `json:"export" yaml:"export" mapstructure:"export"`

	// Workers bounds per-record parallelism; 0 or 1 runs serially.
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// DefaultScreenConfig returns the settings used when no config file is present.
func DefaultScreenConfig() ScreenConfig {
	return ScreenConfig{
		Reader: ReaderConfig{
			Encodings:  []string{"utf-8", "utf-16", "latin-1", "cp1252"},
			Delimiters: []string{"\t", ","},
			MinColumns: 2,
		},
		Normalizer: NormalizerConfig{Lemmatize: true},
		Export:     ExportConfig{Format: FormatTSV},
		Workers:    1,
	}
}
