package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), FilePermissions))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	timeout, err := cfg.RequestTimeout()
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, timeout)
	assert.True(t, cfg.HighlightEnabled())
	assert.Equal(t, DefaultTheme, cfg.ThemeName())
	assert.Equal(t, "hedwig/dev", cfg.UserAgentOr("hedwig/dev"))
	assert.True(t, cfg.Keybinds.IsEmpty())
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
timeout: 5s
userAgent: custom/1.0
highlight: false
theme: dracula
tls:
  insecureSkipVerify: true
keybinds:
  main:
    x: execute
    s: noop
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	timeout, err := cfg.RequestTimeout()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, timeout)
	assert.Equal(t, "custom/1.0", cfg.UserAgentOr("fallback"))
	assert.False(t, cfg.HighlightEnabled())
	assert.Equal(t, "dracula", cfg.ThemeName())
	assert.True(t, cfg.TLS.InsecureSkipVerify)
	require.NotNil(t, cfg.Keybinds)
	assert.Equal(t, "execute", cfg.Keybinds.Main["x"])
	assert.Equal(t, "noop", cfg.Keybinds.Main["s"])
	assert.Equal(t, path, cfg.Path)
}

func TestLoad_JSONWithComments(t *testing.T) {
	path := writeFile(t, "config.jsonc", `{
  // shorter timeout for local servers
  "timeout": "2s",
  "keybinds": {
    "new_request": {"ctrl+s": "text_submit"}, /* trailing comma follows */
  },
}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	timeout, err := cfg.RequestTimeout()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, timeout)
	assert.Equal(t, "text_submit", cfg.Keybinds.NewRequest["ctrl+s"])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"malformed yaml", "config.yaml", "timeout: [unclosed"},
		{"malformed json", "config.json", `{"timeout": }`},
		{"bad timeout", "config.yaml", "timeout: soon"},
		{"negative timeout", "config.yaml", "timeout: -1s"},
		{"missing ca file", "config.yaml", "tls:\n  caFile: /nonexistent/ca.pem"},
		{"unsupported format", "config.toml", "timeout = '1s'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_DefaultPathMissingGivesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Path)
	assert.Equal(t, DefaultTheme, cfg.ThemeName())
}

func TestLoad_DefaultPathFound(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".hedwig")
	require.NoError(t, os.MkdirAll(dir, DirPermissions))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("theme: github"), FilePermissions))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "github", cfg.ThemeName())
	assert.Equal(t, filepath.Join(dir, "config.yml"), cfg.Path)
}

func TestCAFilePath_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &Config{TLS: TLSConfig{CAFile: "~/certs/ca.pem"}}
	assert.Equal(t, filepath.Join(home, "certs", "ca.pem"), cfg.CAFilePath())

	cfg.TLS.CAFile = "/etc/ca.pem"
	assert.Equal(t, "/etc/ca.pem", cfg.CAFilePath())
}
