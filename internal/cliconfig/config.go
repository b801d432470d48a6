package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/frankli0324/go-rawhttp/internal/model"
)

// DefaultAddress matches the address the bundled test server listens on.
const DefaultAddress = "http://localhost:8888"

// Config holds CLI configuration for rawhttp.
type Config struct {
	Address     string
	Method      string
	Path        string
	ReadTimeout time.Duration

	Headers []string // "Name: value"
	Data    string

	Close    bool // send "Connection: close" so the server ends the response with EOF
	DumpOnly bool
	NoColor  bool
	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Address:     DefaultAddress,
		Method:      "GET",
		Path:        "/",
		ReadTimeout: 5 * time.Second,
		Close:       true,
		LogLevel:    "info",
	}
}

// Validate checks the configuration for errors and normalizes the method.
func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("address is required")
	}
	m, err := model.NormalizeMethod(c.Method)
	if err != nil {
		return err
	}
	c.Method = m
	if c.ReadTimeout < 0 {
		return fmt.Errorf("read timeout must not be negative")
	}
	for _, h := range c.Headers {
		if _, _, ok := strings.Cut(h, ":"); !ok {
			return fmt.Errorf("header %q: expected \"Name: value\"", h)
		}
	}
	return nil
}

// Request builds the request descriptor: the path is joined to the address,
// headers are kept in the order given.
func (c *Config) Request() *model.Request {
	req := &model.Request{
		Method: c.Method,
		URL:    model.JoinBase(c.Address, c.Path),
	}
	for _, h := range c.Headers {
		k, v, _ := strings.Cut(h, ":")
		req.Header.Add(strings.TrimSpace(k), strings.TrimSpace(v))
	}
	if c.Close && !req.Header.Has("Connection") {
		req.Header.Set("Connection", "close")
	}
	if c.Data != "" {
		req.Body = c.Data
	}
	return req
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
