package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrBadFormat indicates an output format other than "json" or "text".
var ErrBadFormat = errors.New("config: format must be json or text")

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds runtime configuration for the dsu command.
// Values come from .dsu.yaml, DSU_* environment variables and CLI flags.
type Config struct {
	Format  string `mapstructure:"format"`
	Verbose bool   `mapstructure:"verbose"`
	Watch   bool   `mapstructure:"watch"`
}

// Load reads configuration from v, applying built-in defaults for any value
// not set by config file, environment or flags. A nil v means the global viper.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	v.SetDefault("format", FormatJSON)
	v.SetDefault("verbose", false)
	v.SetDefault("watch", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if cfg.Format != FormatJSON && cfg.Format != FormatText {
		return Config{}, fmt.Errorf("%q: %w", cfg.Format, ErrBadFormat)
	}

	return cfg, nil
}
