package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the data directory.
type Config interface {
	BasePath() string
}

// Settings is the resolved medbook configuration.
type Settings struct {
	Path  string      `mapstructure:"path"`
	Theme string      `mapstructure:"theme"`
	Log   LogSettings `mapstructure:"log"`
}

// LogSettings holds structured logging settings.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BasePath is the data directory with ~ expanded.
func (s *Settings) BasePath() string {
	if p, err := homedir.Expand(s.Path); err == nil {
		return p
	}
	return s.Path
}

// LoadConfig reads .medbook.yaml from $MEDBOOK_CONFIG_PATH, the working
// directory or $HOME, then applies MEDBOOK_* environment overrides.
func LoadConfig() (*Settings, error) {
	v := viper.New()

	v.SetDefault("path", "~/.medbook.db")
	v.SetDefault("theme", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigName(".medbook") // .yaml is implicit
	v.SetEnvPrefix("MEDBOOK")
	v.AutomaticEnv()
	_ = v.BindEnv("log.level", "MEDBOOK_LOG_LEVEL")
	_ = v.BindEnv("log.format", "MEDBOOK_LOG_FORMAT")

	if override := os.Getenv("MEDBOOK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(filepath.Clean(home))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &s, nil
}
