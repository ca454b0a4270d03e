// Package config holds the user-tunable naming configuration: every folder
// label and filename prefix the organizer produces is configurable rather
// than hard-coded.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Naming defines the folder labels and filename prefixes used by the
// grouping strategies, the plan executor and the duplicate resolver.
type Naming struct {
	TypePrefix        string `yaml:"type_prefix"`         // by-type group label prefix
	NoExtensionFolder string `yaml:"no_extension_folder"` // label for files without extension
	SimilarPrefix     string `yaml:"similar_prefix"`      // similarity group label prefix
	OneFolder         string `yaml:"one_folder"`          // consolidation folder label
	DuplicatesFolder  string `yaml:"duplicates_folder"`   // duplicate destination folder
	DuplicatePrefix   string `yaml:"duplicate_prefix"`    // relocated duplicate filename prefix
	EmptyFolders      string `yaml:"empty_folders"`       // relocated empty directories folder
}

// Config is the application configuration.
type Config struct {
	Naming Naming `yaml:"naming"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Naming: Naming{
			TypePrefix:        "Type ",
			NoExtensionFolder: "No Extension",
			SimilarPrefix:     "Similar",
			OneFolder:         "One Folder",
			DuplicatesFolder:  "Duplicates",
			DuplicatePrefix:   "Dupe",
			EmptyFolders:      "Empty Folders",
		},
	}
}

// Load reads configuration from path. An empty path or a missing file
// yields the defaults; any field absent from the file keeps its default.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that every label is usable as (part of) a folder or file
// name.
func (c *Config) Validate() error {
	fields := map[string]string{
		"type_prefix":         c.Naming.TypePrefix,
		"no_extension_folder": c.Naming.NoExtensionFolder,
		"similar_prefix":      c.Naming.SimilarPrefix,
		"one_folder":          c.Naming.OneFolder,
		"duplicates_folder":   c.Naming.DuplicatesFolder,
		"duplicate_prefix":    c.Naming.DuplicatePrefix,
		"empty_folders":       c.Naming.EmptyFolders,
	}

	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("naming.%s must not be empty", name)
		}
		if strings.ContainsRune(value, os.PathSeparator) {
			return fmt.Errorf("naming.%s must not contain a path separator", name)
		}
	}

	for _, folder := range []string{c.Naming.NoExtensionFolder, c.Naming.OneFolder, c.Naming.DuplicatesFolder, c.Naming.EmptyFolders} {
		if folder == "." || folder == ".." {
			return fmt.Errorf("folder label %q is not a valid directory name", folder)
		}
	}

	return nil
}
