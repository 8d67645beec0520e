package config

// Config represents the complete configuration structure
type Config struct {
	PubMed  PubMedConfig  `mapstructure:"pubmed"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PubMedConfig holds NCBI E-utilities connection details
type PubMedConfig struct {
	// APIKey may also come from the PUBMED_API_KEY environment variable
	// or the --api-key flag.
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// FetchConfig contains batch retrieval settings
type FetchConfig struct {
	BatchSize int `mapstructure:"batch_size"`
	// DelayMS is the pause between batch requests, in milliseconds.
	DelayMS int `mapstructure:"delay_ms"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
