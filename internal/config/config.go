package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/MuhammadZahidRWTH/docextract/internal/common"
)

// OCR engines.
const (
	OCREngineCLI       = "cli"
	OCREngineGosseract = "gosseract"
)

// Config is the typed application configuration.
type Config struct {
	Output   OutputConfig   `mapstructure:"output"`
	Database DatabaseConfig `mapstructure:"database"`
	Schema   SchemaConfig   `mapstructure:"schema"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	OCR      OCRConfig      `mapstructure:"ocr"`
	Language LanguageConfig `mapstructure:"language"`
	Batch    BatchConfig    `mapstructure:"batch"`
}

// OutputConfig controls where records are written.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// DatabaseConfig controls the result store.
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Enabled bool   `mapstructure:"enabled"`
}

// SchemaConfig points at an optional field-definition file.
type SchemaConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OCRConfig configures text acquisition.
type OCRConfig struct {
	Engine    string `mapstructure:"engine"`
	Langs     string `mapstructure:"langs"`
	Pdftotext string `mapstructure:"pdftotext"`
	Pdftoppm  string `mapstructure:"pdftoppm"`
	Tesseract string `mapstructure:"tesseract"`
	DPI       int    `mapstructure:"dpi"`
	MaxPages  int    `mapstructure:"max_pages"`
}

// LanguageConfig configures language detection.
type LanguageConfig struct {
	// Force skips detection when set to a language code.
	Force string `mapstructure:"force"`
	// Restrict limits detection to the supported languages.
	Restrict bool `mapstructure:"restrict"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	Timeout       time.Duration `mapstructure:"timeout"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
	Workers       int           `mapstructure:"workers"`
	RetryAttempts int           `mapstructure:"retry_attempts"`
}

// EnvPrefix prefixes environment overrides, e.g. DOCEXTRACT_BATCH_WORKERS.
const EnvPrefix = "DOCEXTRACT"

// BindEnv makes every key overridable from the environment.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.dir", "./output")
	v.SetDefault("database.path", DefaultDatabasePath())
	v.SetDefault("database.enabled", true)
	v.SetDefault("schema.path", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("ocr.engine", OCREngineCLI)
	v.SetDefault("ocr.langs", "deu+eng+fra+spa+ita")
	v.SetDefault("ocr.pdftotext", "pdftotext")
	v.SetDefault("ocr.pdftoppm", "pdftoppm")
	v.SetDefault("ocr.tesseract", "tesseract")
	v.SetDefault("ocr.dpi", 300)
	v.SetDefault("ocr.max_pages", 0)
	v.SetDefault("language.force", "")
	v.SetDefault("language.restrict", false)
	v.SetDefault("batch.workers", 4)
	v.SetDefault("batch.timeout", "2m")
	v.SetDefault("batch.retry_attempts", 2)
	v.SetDefault("batch.retry_delay", "500ms")
}

// Load decodes and validates the configuration held by v. Paths are expanded.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	cfg.Output.Dir = ExpandPath(cfg.Output.Dir)
	cfg.Database.Path = ExpandPath(cfg.Database.Path)
	cfg.Schema.Path = ExpandPath(cfg.Schema.Path)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Batch.Workers < 1:
		return fmt.Errorf("%w: batch.workers must be at least 1, got %d", common.ErrInvalidConfig, c.Batch.Workers)
	case c.Batch.RetryAttempts < 0:
		return fmt.Errorf("%w: batch.retry_attempts must not be negative", common.ErrInvalidConfig)
	case c.Batch.Timeout < 0:
		return fmt.Errorf("%w: batch.timeout must not be negative", common.ErrInvalidConfig)
	case c.OCR.DPI <= 0:
		return fmt.Errorf("%w: ocr.dpi must be positive, got %d", common.ErrInvalidConfig, c.OCR.DPI)
	case c.OCR.Engine != OCREngineCLI && c.OCR.Engine != OCREngineGosseract:
		return fmt.Errorf("%w: ocr.engine must be %q or %q, got %q",
			common.ErrInvalidConfig, OCREngineCLI, OCREngineGosseract, c.OCR.Engine)
	}
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// RetryOptions converts the batch settings into acquisition retry options.
func (c Config) RetryOptions() common.RetryOptions {
	return common.RetryOptions{
		MaxAttempts:  c.Batch.RetryAttempts + 1,
		InitialDelay: c.Batch.RetryDelay,
		MaxDelay:     10 * c.Batch.RetryDelay,
		Multiplier:   2,
	}
}
