package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Fetch: FetchConfig{BatchSize: 500, DelayMS: 100},
			Logging: LoggingConfig{
				Level:  "info",
				Format: "console",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "zero batch size",
			mutate:  func(c *Config) { c.Fetch.BatchSize = 0 },
			wantErr: "fetch.batch_size",
		},
		{
			name:    "negative delay",
			mutate:  func(c *Config) { c.Fetch.DelayMS = -1 },
			wantErr: "fetch.delay_ms",
		},
		{
			name:    "bad logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level",
		},
		{
			name:    "bad logging format",
			mutate:  func(c *Config) { c.Logging.Format = "text" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// chdir changes to dir for the duration of the test; it stands in for
// t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults without config file", func(t *testing.T) {
		chdir(t, t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, 500, cfg.Fetch.BatchSize)
		assert.Equal(t, 100, cfg.Fetch.DelayMS)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format)
		assert.True(t, cfg.Logging.Color)
	})

	t.Run("explicit config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
pubmed:
  api_key: file-key
fetch:
  batch_size: 200
  delay_ms: 250
logging:
  level: debug
  format: json
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "file-key", cfg.PubMed.APIKey)
		assert.Equal(t, 200, cfg.Fetch.BatchSize)
		assert.Equal(t, 250, cfg.Fetch.DelayMS)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("api key from environment", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("PUBMED_API_KEY", "env-key")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.PubMed.APIKey)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("fetch:\n  batch_size: -5\n"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}
