// Package config loads .gql.yaml, the optional defaults file cmd/gql reads
// before CLI flags are applied. The parser package itself never touches the
// filesystem.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Find when no config file exists between dir
// and the filesystem root.
var ErrNotFound = errors.New("no .gql.yaml found")

// Color is the config file's color setting. It is loaded, but neither
// cmd/gql nor cmd/gql-repl reads it.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// Config is the shape of .gql.yaml.
type Config struct {
	Dialect string `yaml:"dialect,omitempty"`
	Format  string `yaml:"format,omitempty"`
	Color   Color  `yaml:"color,omitempty"`
}

// Names are the filenames Find looks for, checked in order at each
// directory level.
var Names = []string{".gql.yaml", ".gql.yml"}

// Load finds and parses the nearest config walking up from dir. Returns
// ErrNotFound (never a parse error) when no file exists, so callers can
// treat "no config" as "use defaults" without a type switch.
func Load(dir string) (*Config, error) {
	path, err := Find(dir)
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// Find walks up from dir looking for one of Names at each level.
func Find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for d := abs; ; {
		for _, name := range Names {
			path := filepath.Join(d, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", ErrNotFound
		}
		d = parent
	}
}

// LoadFile parses a specific config file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
