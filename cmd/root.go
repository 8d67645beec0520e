package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jordanbk/pubmed-scraper/config"
	"github.com/jordanbk/pubmed-scraper/eutils"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger

	// Persistent flags
	apiKey string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pubmed-scraper",
	Short: "Export PubMed author data to CSV",
	Long: `pubmed-scraper searches PubMed through the NCBI E-utilities API and
exports one CSV row per (article, author) pair. Large result sets are
paged through the NCBI history server in batches, so a single search can
cover far more articles than one response carries.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records build metadata shown by --version.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "NCBI API key (overrides PUBMED_API_KEY and config)")
}

// initializeApp initializes the configuration and logger
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	// Flag beats environment beats config file for the credential.
	if apiKey != "" {
		cfg.PubMed.APIKey = apiKey
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// newClient builds the E-utilities client from the effective credential
func newClient() (*eutils.Client, error) {
	if cfg.PubMed.APIKey == "" {
		return nil, fmt.Errorf("an NCBI API key is required: pass --api-key, set PUBMED_API_KEY or configure pubmed.api_key")
	}

	var opts []eutils.Option
	if cfg.PubMed.BaseURL != "" {
		opts = append(opts, eutils.WithBaseURL(cfg.PubMed.BaseURL))
	}

	return eutils.NewClient(cfg.PubMed.APIKey, logger, opts...)
}
