// Package store persists todo.txt collections and the global configuration.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// GlobalConfig is ~/.todotxt/config.json. It is loaded into a value and
// passed to operations; nothing in this package keeps mutable global state.
type GlobalConfig struct {
	// Files is the list of managed todo.txt files.
	Files []string `json:"files,omitempty"`

	// CurrentFile is the active file for commands that do not name one.
	CurrentFile string `json:"currentFile,omitempty"`
}

// ErrNoFiles is returned when an operation needs a todo file and none are
// configured.
var ErrNoFiles = errors.New("no todo files configured (run `todotxt init <path>`)")

// ActiveFile resolves the file an operation should work on: the current
// file when set, else the sole configured file.
func (c *GlobalConfig) ActiveFile() (string, error) {
	if c.CurrentFile != "" {
		return c.CurrentFile, nil
	}
	switch len(c.Files) {
	case 0:
		return "", ErrNoFiles
	case 1:
		return c.Files[0], nil
	default:
		return "", errors.New("several todo files configured and none active (run `todotxt files use`)")
	}
}

// HasFile reports whether path is already registered.
func (c *GlobalConfig) HasFile(path string) bool {
	for _, f := range c.Files {
		if f == path {
			return true
		}
	}
	return false
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.todotxt).
	if v := strings.TrimSpace(os.Getenv("TODOTXT_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".todotxt"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig reads the global config. A missing file yields an empty config.
func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &GlobalConfig{}, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func SaveConfig(cfg *GlobalConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(path, append(b, '\n'))
}
