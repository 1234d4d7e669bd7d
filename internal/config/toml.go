// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Limit    LimitConfig    `toml:"limit"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// AnalysisConfig maps metric settings.
type AnalysisConfig struct {
	ExcludeSpaces  *bool   `toml:"exclude-spaces"`
	WordsPerMinute *int    `toml:"wpm"`
	LetterScope    *string `toml:"letter-scope"`
	AllLetters     *bool   `toml:"all-letters"`
}

// LimitConfig maps the character limit.
type LimitConfig struct {
	Enabled *bool `toml:"enabled"`
	Value   *int  `toml:"value"`
}

// UIConfig maps display settings.
type UIConfig struct {
	Theme *string `toml:"theme"`
}

// LogConfig maps the diagnostic log.
type LogConfig struct {
	File  *string `toml:"file"`
	Debug *bool   `toml:"debug"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
