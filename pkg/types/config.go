package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pharmascan/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SearchConfig holds settings for PubMed search and detail retrieval.
type SearchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// DefaultMaxResults caps the identifier list per query when the caller
	// does not supply a limit (default 100).
	DefaultMaxResults int `json:"default_max_results" yaml:"default_max_results" mapstructure:"default_max_results"`

	// RateLimitDelay is the fixed pause after every detail request
	// (default 100ms). NCBI fair-use policy requires throttling; this is
	// an unconditional delay, not adaptive backoff.
	RateLimitDelay time.Duration `json:"rate_limit_delay" yaml:"rate_limit_delay" mapstructure:"rate_limit_delay"`

	// MaxRetries is the number of retries for failed requests.
	//
	// The fetch path does not consult this setting: failed requests are
	// skipped, not retried. The knob is kept for config compatibility.
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
}

// OutputConfig holds settings for CSV export.
type OutputConfig struct {
	// DefaultFilename is the output path used when the caller supplies none.
	DefaultFilename string `json:"default_filename" yaml:"default_filename" mapstructure:"default_filename"`

	// CSVEncoding is the output text encoding. Only "utf-8" is supported.
	CSVEncoding string `json:"csv_encoding" yaml:"csv_encoding" mapstructure:"csv_encoding"`

	// IncludeAbstract controls whether abstracts appear in records.
	IncludeAbstract bool `json:"include_abstract" yaml:"include_abstract" mapstructure:"include_abstract"`

	// IncludeAffiliations controls whether affiliation strings appear in
	// records.
	IncludeAffiliations bool `json:"include_affiliations" yaml:"include_affiliations" mapstructure:"include_affiliations"`

	// TruncateLongFields enables truncation of title and abstract.
	TruncateLongFields bool `json:"truncate_long_fields" yaml:"truncate_long_fields" mapstructure:"truncate_long_fields"`

	// MaxFieldLength is the truncation limit in characters (default 1000).
	// Fields over the limit are cut and suffixed with "...".
	MaxFieldLength int `json:"max_field_length" yaml:"max_field_length" mapstructure:"max_field_length"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is the output format: "json" or "console".
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// Output is the destination: "stdout" or "stderr".
	Output string `json:"output" yaml:"output" mapstructure:"output"`
}

// Config groups all settings for a pharmascan run.
type Config struct {
	Search  SearchConfig  `json:"search" yaml:"search" mapstructure:"search"`
	Output  OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`
	Logging LoggingConfig `json:"logging" yaml:"logging" mapstructure:"logging"`

	// LexiconPath points at the keyword lexicon YAML file. When empty or
	// unreadable the built-in lexicon is used.
	LexiconPath string `json:"lexicon_path,omitempty" yaml:"lexicon_path,omitempty" mapstructure:"lexicon_path"`
}

// DefaultConfig returns the in-code fallback configuration, used when no
// config file is found.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "pharmascan/0.1",
			},
			DefaultMaxResults: 100,
			RateLimitDelay:    100 * time.Millisecond,
			MaxRetries:        3,
		},
		Output: OutputConfig{
			DefaultFilename:     "pubmed_results.csv",
			CSVEncoding:         "utf-8",
			IncludeAbstract:     true,
			IncludeAffiliations: true,
			TruncateLongFields:  true,
			MaxFieldLength:      1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
	}
}
