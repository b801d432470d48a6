package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Address     string   `toml:"address"`
	Method      string   `toml:"method"`
	Path        string   `toml:"path"`
	ReadTimeout string   `toml:"read_timeout"`
	Headers     []string `toml:"headers"`
	Data        string   `toml:"data"`
	Close       *bool    `toml:"close"`
	NoColor     *bool    `toml:"no_color"`
	LogLevel    string   `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.rawhttp/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".rawhttp", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("addr", fc.Address, &cfg.Address)
	s.setString("method", fc.Method, &cfg.Method)
	s.setString("path", fc.Path, &cfg.Path)
	s.setString("data", fc.Data, &cfg.Data)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setStrings("header", fc.Headers, &cfg.Headers)

	if err := s.setDuration("timeout", fc.ReadTimeout, &cfg.ReadTimeout); err != nil {
		return err
	}

	s.setBool("close", fc.Close, &cfg.Close)
	s.setBool("no-color", fc.NoColor, &cfg.NoColor)
	return nil
}

func FileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}
