package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/minatsilvester/hedwig/internal/keybinds"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// DefaultTimeout is the request timeout used when none is configured
	DefaultTimeout = 30 * time.Second
	// DefaultTheme is the chroma style used for response highlighting
	DefaultTheme = "monokai"
)

// configNames are the file names looked up in the config directory, in order
var configNames = []string{"config.yaml", "config.yml", "config.json", "config.jsonc"}

// TLSConfig holds TLS options for the HTTP executor
type TLSConfig struct {
	InsecureSkipVerify bool   `json:"insecureSkipVerify" yaml:"insecureSkipVerify"`
	CAFile             string `json:"caFile,omitempty" yaml:"caFile,omitempty"`
}

// Config is the user configuration file
type Config struct {
	Timeout   string           `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	UserAgent string           `json:"userAgent,omitempty" yaml:"userAgent,omitempty"`
	Highlight *bool            `json:"highlight,omitempty" yaml:"highlight,omitempty"`
	Theme     string           `json:"theme,omitempty" yaml:"theme,omitempty"`
	TLS       TLSConfig        `json:"tls" yaml:"tls"`
	Keybinds  *keybinds.Config `json:"keybinds,omitempty" yaml:"keybinds,omitempty"`

	// Path is the file the config was loaded from, empty for defaults
	Path string `json:"-" yaml:"-"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{}
}

// ConfigDir returns the configuration directory (~/.hedwig)
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".hedwig"), nil
}

// DefaultPath returns the first existing config file in the config directory.
// It returns "" when none exists.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	for _, name := range configNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// Load reads the config file at path. An empty path looks in the config
// directory; a missing default file yields the defaults. An explicitly
// named file must exist.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		if found == "" {
			return Default(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path

	return cfg, nil
}

// Parse decodes config data in the format given by a file extension
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s (use .yaml, .yml, .json, or .jsonc)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the field values that cannot be checked by decoding alone
func (c *Config) Validate() error {
	if _, err := c.RequestTimeout(); err != nil {
		return err
	}
	if c.TLS.CAFile != "" {
		if _, err := os.Stat(expandHome(c.TLS.CAFile)); err != nil {
			return fmt.Errorf("tls.caFile: %w", err)
		}
	}
	return nil
}

// RequestTimeout returns the configured timeout, or DefaultTimeout when unset
func (c *Config) RequestTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return d, nil
}

// HighlightEnabled reports whether responses are syntax highlighted
func (c *Config) HighlightEnabled() bool {
	return c.Highlight == nil || *c.Highlight
}

// ThemeName returns the highlight theme
func (c *Config) ThemeName() string {
	if c.Theme == "" {
		return DefaultTheme
	}
	return c.Theme
}

// UserAgentOr returns the configured user agent, or fallback when unset
func (c *Config) UserAgentOr(fallback string) string {
	if c.UserAgent == "" {
		return fallback
	}
	return c.UserAgent
}

// CAFilePath returns the CA bundle path with a leading ~/ expanded
func (c *Config) CAFilePath() string {
	return expandHome(c.TLS.CAFile)
}

// expandHome expands a leading ~/ to the home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
