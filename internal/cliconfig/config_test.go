package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultAddress, cfg.Address)
	assert.Equal(t, "GET", cfg.Method)
	assert.Equal(t, "/", cfg.Path)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.True(t, cfg.Close)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"lower case method", func(c *Config) { c.Method = "post" }, true},
		{"empty method", func(c *Config) { c.Method = "" }, true},
		{"no address", func(c *Config) { c.Address = "" }, false},
		{"bad method", func(c *Config) { c.Method = "GE T" }, false},
		{"negative timeout", func(c *Config) { c.ReadTimeout = -time.Second }, false},
		{"zero timeout", func(c *Config) { c.ReadTimeout = 0 }, true},
		{"header without colon", func(c *Config) { c.Headers = []string{"X-Trace 1"} }, false},
		{"header", func(c *Config) { c.Headers = []string{"X-Trace: 1"} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Method = "post"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "POST", cfg.Method)
}

func TestRequest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "http://localhost:8888/"
	cfg.Path = "echo"
	cfg.Headers = []string{"X-B: 2", " X-A :1 "}
	req := cfg.Request()

	assert.Equal(t, "http://localhost:8888/echo", req.URL)
	assert.Nil(t, req.Body)
	var names []string
	_ = req.Header.Each(func(k, v string) error {
		names = append(names, k+"="+v)
		return nil
	})
	assert.Equal(t, []string{"X-B=2", "X-A=1", "Connection=close"}, names)

	cfg.Close = true
	cfg.Headers = []string{"Connection: keep-alive"}
	cfg.Data = "a=1"
	req = cfg.Request()
	assert.Equal(t, []string{"keep-alive"}, req.Header.Values("Connection"))
	assert.Equal(t, "a=1", req.Body)

	cfg.Close = false
	cfg.Headers = nil
	assert.False(t, cfg.Request().Header.Has("Connection"))
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestApplyFileConfig(t *testing.T) {
	p := writeFile(t, `
address = "http://127.0.0.1:9000"
method = "POST"
path = "/upload"
read_timeout = "250ms"
headers = ["X-Trace: 1"]
data = "body"
close = false
log_level = "debug"
`)
	assert.True(t, FileExists(p))
	assert.False(t, FileExists(filepath.Dir(p)))

	fc, err := LoadFileConfig(p)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Method = "PUT"
	require.NoError(t, ApplyFileConfig(&cfg, fc, map[string]bool{"method": true}))

	assert.Equal(t, "http://127.0.0.1:9000", cfg.Address)
	assert.Equal(t, "PUT", cfg.Method, "changed flag wins over the file")
	assert.Equal(t, "/upload", cfg.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.ReadTimeout)
	assert.Equal(t, []string{"X-Trace: 1"}, cfg.Headers)
	assert.Equal(t, "body", cfg.Data)
	assert.False(t, cfg.Close)
	assert.False(t, cfg.NoColor, "unset keys keep their value")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestApplyFileConfigErrors(t *testing.T) {
	_, err := LoadFileConfig(writeFile(t, `address = `))
	assert.Error(t, err)

	_, err = LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	cfg := DefaultConfig()
	err = ApplyFileConfig(&cfg, FileConfig{ReadTimeout: "soon"}, nil)
	assert.Error(t, err)
}

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("RAWHTTP_ADDRESS", "http://10.0.0.1:80")
	t.Setenv("RAWHTTP_PATH", "/env")
	t.Setenv("RAWHTTP_READ_TIMEOUT", "1s")
	t.Setenv("RAWHTTP_CLOSE", "0")
	t.Setenv("RAWHTTP_NO_COLOR", "1")

	cfg := DefaultConfig()
	cfg.Path = "/flag"
	require.NoError(t, ApplyEnvConfig(&cfg, map[string]bool{"path": true}))

	assert.Equal(t, "http://10.0.0.1:80", cfg.Address)
	assert.Equal(t, "/flag", cfg.Path)
	assert.Equal(t, time.Second, cfg.ReadTimeout)
	assert.False(t, cfg.Close)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "GET", cfg.Method)

	t.Setenv("RAWHTTP_READ_TIMEOUT", "later")
	assert.Error(t, ApplyEnvConfig(&cfg, nil))
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, filepath.Join("/home/tester", ".rawhttp", "config.toml"), DefaultConfigPath())
}
