// Package config loads CLI settings from defaults, an optional YAML file,
// .env files and RESUMEGEN_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/goliatone/go-resumegen/pkg/theme"
)

// Output formats understood by the CLI.
const (
	FormatHTML     = "html"
	FormatTerminal = "terminal"
	FormatJSON     = "json"
)

const envPrefix = "RESUMEGEN"

// Config aggregates CLI settings.
type Config struct {
	Template TemplateConfig `mapstructure:"template"`
	Output   OutputConfig   `mapstructure:"output"`
	Preview  PreviewConfig  `mapstructure:"preview"`
	Log      LogConfig      `mapstructure:"log"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
}

// TemplateConfig picks the template used when a document names none.
type TemplateConfig struct {
	Default string `mapstructure:"default"`
}

// OutputConfig selects the serializer.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Width  int    `mapstructure:"width"`
}

// PreviewConfig holds thumbnail constraints.
type PreviewConfig struct {
	TruncateAt int     `mapstructure:"truncate_at"`
	Scale      float64 `mapstructure:"scale"`
}

// LogConfig holds the slog level name.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// CatalogConfig points at an external catalog file. Empty uses the bundled
// catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// Mode converts the preview settings into a theme mode.
func (c PreviewConfig) Mode(preview bool) theme.Mode {
	return theme.Mode{Preview: preview, Scale: c.Scale, TruncateAt: c.TruncateAt}
}

// SlogLevel maps the configured level name onto slog.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadEnvFiles loads .env style files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadEnvFiles(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("config: load env file %s: %w", file, err)
		}
	}
	return nil
}

// Load reads the configuration. An empty configFile searches for
// resumegen.yaml in the working directory and the user config directory; a
// missing file is not an error unless configFile names it explicitly.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("resumegen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "resumegen"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config: %w", err)
		}
	}

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("config: bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("template.default", "classic")
	v.SetDefault("output.format", FormatTerminal)
	v.SetDefault("output.width", 96)
	v.SetDefault("preview.truncate_at", theme.DefaultTruncateAt)
	v.SetDefault("preview.scale", theme.DefaultPreviewScale)
	v.SetDefault("log.level", "info")
	v.SetDefault("catalog.path", "")
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"template.default":    envPrefix + "_TEMPLATE",
		"output.format":       envPrefix + "_OUTPUT_FORMAT",
		"output.width":        envPrefix + "_OUTPUT_WIDTH",
		"preview.truncate_at": envPrefix + "_PREVIEW_TRUNCATE_AT",
		"preview.scale":       envPrefix + "_PREVIEW_SCALE",
		"log.level":           envPrefix + "_LOG_LEVEL",
		"catalog.path":        envPrefix + "_CATALOG_PATH",
	}
	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}
	return nil
}

// Validate checks every section of the configuration. Min skips zero
// values, so numeric settings are also Required.
func (c Config) Validate() error {
	return validation.Errors{
		"template": validation.ValidateStruct(&c.Template,
			validation.Field(&c.Template.Default, validation.Required),
		),
		"output": validation.ValidateStruct(&c.Output,
			validation.Field(&c.Output.Format, validation.Required, validation.In(FormatHTML, FormatTerminal, FormatJSON)),
			validation.Field(&c.Output.Width, validation.Required, validation.Min(20)),
		),
		"preview": validation.ValidateStruct(&c.Preview,
			validation.Field(&c.Preview.TruncateAt, validation.Required, validation.Min(1)),
			validation.Field(&c.Preview.Scale, validation.Required, validation.Min(0.1), validation.Max(1.0)),
		),
		"log": validation.ValidateStruct(&c.Log,
			validation.Field(&c.Log.Level, validation.In("debug", "info", "warn", "error")),
		),
	}.Filter()
}
