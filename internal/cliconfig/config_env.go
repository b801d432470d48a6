package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (RAWHTTP_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("addr", os.Getenv("RAWHTTP_ADDRESS"), &cfg.Address)
	s.setString("method", os.Getenv("RAWHTTP_METHOD"), &cfg.Method)
	s.setString("path", os.Getenv("RAWHTTP_PATH"), &cfg.Path)
	s.setString("data", os.Getenv("RAWHTTP_DATA"), &cfg.Data)
	s.setString("log-level", os.Getenv("RAWHTTP_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("timeout", os.Getenv("RAWHTTP_READ_TIMEOUT"), &cfg.ReadTimeout); err != nil {
		return err
	}

	s.setBoolFromString("close", os.Getenv("RAWHTTP_CLOSE"), &cfg.Close)
	s.setBoolFromString("no-color", os.Getenv("RAWHTTP_NO_COLOR"), &cfg.NoColor)
	return nil
}
