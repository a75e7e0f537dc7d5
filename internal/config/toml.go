// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Store StoreConfig `toml:"store"`
}

// StoreConfig maps counter store settings.
type StoreConfig struct {
	Lock       *bool   `toml:"lock"`
	Global     *bool   `toml:"global"`
	GlobalRoot *string `toml:"global-root"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// LockEnabled reports whether counter updates take a file lock. Defaults to true.
func (c FileConfig) LockEnabled() bool {
	if c.Store.Lock == nil {
		return true
	}
	return *c.Store.Lock
}

// GlobalEnabled reports whether the global store is used when no marker exists.
func (c FileConfig) GlobalEnabled() bool {
	return c.Store.Global != nil && *c.Store.Global
}

// GlobalRoot returns the configured global store root or the default one.
func (c FileConfig) GlobalRoot() string {
	if c.Store.GlobalRoot != nil && *c.Store.GlobalRoot != "" {
		return *c.Store.GlobalRoot
	}
	return DefaultGlobalRoot()
}
