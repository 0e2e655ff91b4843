package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/shlex"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/heroesofcode/devmenu/internal/fsutil"
)

// Config is the launcher configuration. Every field is optional.
type Config struct {
	Loop     bool   `json:"loop,omitempty" toml:"loop,omitempty" yaml:"loop,omitempty"`
	LogLevel string `json:"log_level,omitempty" toml:"log_level,omitempty" yaml:"log_level,omitempty"`
	Workdir  string `json:"workdir,omitempty" toml:"workdir,omitempty" yaml:"workdir,omitempty"`

	// Actions selects and orders the menu entries by ID. Empty means all
	// built-in actions in their default order.
	Actions []string `json:"actions,omitempty" toml:"actions,omitempty" yaml:"actions,omitempty"`

	// Commands overrides the command prefix of an action, written as a
	// shell-style string ("gh repo create --public").
	Commands map[string]string `json:"commands,omitempty" toml:"commands,omitempty" yaml:"commands,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Commands: make(map[string]string),
	}
}

// Load reads the config at path, picking the decoder from the file extension.
func Load(path string) (*Config, error) {
	// Trust boundary: the config chooses which programs run.
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if perm := info.Mode().Perm(); perm&0077 != 0 {
		return nil, fmt.Errorf("config file %s has insecure permissions %o (expected 0600). Fix with: chmod 600 %s", path, perm, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := DefaultConfig()
	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Commands == nil {
		cfg.Commands = make(map[string]string)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields DefaultConfig.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

func decode(path string, data []byte, cfg *Config) error {
	switch Format(path) {
	case "toml":
		return toml.Unmarshal(data, cfg)
	case "yaml":
		return yaml.Unmarshal(data, cfg)
	default:
		return json.Unmarshal(data, cfg)
	}
}

// Format returns the config format implied by the extension of path:
// "json", "toml" or "yaml".
func Format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch Format(path) {
	case "toml":
		data, err = toml.Marshal(c)
	case "yaml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return fsutil.AtomicWriteFile(path, data, 0600)
}

// Validate checks that every referenced action exists in known and that
// command overrides can be split into an argv.
func (c *Config) Validate(known []string) error {
	seen := make(map[string]bool, len(c.Actions))
	for _, id := range c.Actions {
		if !slices.Contains(known, id) {
			return fmt.Errorf("unknown action %q", id)
		}
		if seen[id] {
			return fmt.Errorf("action %q listed twice", id)
		}
		seen[id] = true
	}
	for id := range c.Commands {
		if !slices.Contains(known, id) {
			return fmt.Errorf("command override for unknown action %q", id)
		}
		if _, err := c.CommandFor(id, nil); err != nil {
			return err
		}
	}
	return nil
}

// CommandFor returns the argv prefix for action id: the split override when
// one is configured, def otherwise.
func (c *Config) CommandFor(id string, def []string) ([]string, error) {
	raw, ok := c.Commands[id]
	if !ok {
		return def, nil
	}
	argv, err := shlex.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("command for %s: %w", id, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("command for %s is empty", id)
	}
	return argv, nil
}
