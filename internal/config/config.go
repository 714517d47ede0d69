// Package config loads the smorth command line's YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked for in the home directory.
const FileName = ".smorth.yaml"

// Config holds settings for the command line; flags override it.
type Config struct {
	// Prelude lists source files evaluated before any other input.
	Prelude []string `yaml:"prelude"`

	// Prompt is shown before each line read by the REPL.
	Prompt string `yaml:"prompt"`

	// History names a file to keep REPL history in; empty disables it.
	History     string `yaml:"history"`
	HistorySize int    `yaml:"history_size"`

	MaxDepth int  `yaml:"max_depth"`
	Trace    bool `yaml:"trace"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Prompt:      "> ",
		History:     "~/.smorth_history.db",
		HistorySize: 500,
		MaxDepth:    10000,
	}
}

// DefaultPath returns the path of FileName in the user's home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, FileName)
}

// Load reads the configuration file at path, over Default. If the file does
// not exist and allowMissing is set, Default is returned without error.
func Load(path string, allowMissing bool) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && allowMissing {
		return Default(), nil
	} else if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%v: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default; unknown keys are an error.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if cfg.HistorySize < 0 {
		return Config{}, fmt.Errorf("invalid history_size %v", cfg.HistorySize)
	}
	if cfg.MaxDepth < 0 {
		return Config{}, fmt.Errorf("invalid max_depth %v", cfg.MaxDepth)
	}
	cfg.History = ExpandHome(cfg.History)
	for i, name := range cfg.Prelude {
		cfg.Prelude[i] = ExpandHome(name)
	}
	return cfg, nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
