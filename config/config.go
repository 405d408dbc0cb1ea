// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Config store rooted at one directory: texelrain.json plus one
// apps/<name>/config.json per app, loaded lazily and seeded from defaults.
// Usage: Package-level helpers use the default store; SetRoot repoints it.

package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

// Store owns the configs under a single root. The system config is read on
// first use; app configs are read the first time each app asks for them.
type Store struct {
	root string

	mu      sync.Mutex
	loaded  bool
	system  Config
	apps    map[string]Config
	loadErr error
}

// NewStore returns a store rooted at dir. An empty dir means the user config
// directory.
func NewStore(dir string) *Store {
	return &Store{root: dir, apps: make(map[string]Config)}
}

var (
	defaultMu    sync.Mutex
	defaultStore = NewStore("")
)

// Default returns the store behind the package-level helpers.
func Default() *Store {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultStore
}

// SetRoot replaces the default store with one rooted at dir. An empty dir
// restores the user config directory.
func SetRoot(dir string) {
	defaultMu.Lock()
	defaultStore = NewStore(dir)
	defaultMu.Unlock()
}

// System returns the default store's system config.
func System() Config { return Default().System() }

// App returns the default store's config for name.
func App(name string) Config { return Default().App(name) }

// Err reports why the default store's system config could not be loaded.
func Err() error { return Default().Err() }

// Root returns the default store's directory.
func Root() (string, error) { return Default().Root() }

// DefaultLogPath is where the CLI sends log output unless told otherwise.
func DefaultLogPath() (string, error) { return Default().LogPath() }

func (s *Store) ensureLocked() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.loadErr = s.loadSystemLocked()
}

// System returns the system config. A broken file yields the defaults; see Err.
func (s *Store) System() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLocked()
	return s.system
}

// Err returns the error hit while loading the system config, if any.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLocked()
	return s.loadErr
}

// App returns the config for a named app, or nil for an empty name.
func (s *Store) App(name string) Config {
	if name == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLocked()
	if cfg, ok := s.apps[name]; ok {
		return cfg
	}

	cfg, err := s.loadAppLocked(name)
	if err != nil {
		log.Printf("Config: Failed to load app %q config: %v", name, err)
		cfg = make(Config)
		applyAppDefaults(name, cfg)
	}
	s.apps[name] = cfg
	return cfg
}

// SetSystem replaces the in-memory system config with a copy of cfg.
func (s *Store) SetSystem(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLocked()
	s.system = Clone(cfg)
	if s.system == nil {
		s.system = make(Config)
	}
}

// SetApp replaces the in-memory config of app name with a copy of cfg.
func (s *Store) SetApp(name string, cfg Config) {
	if name == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLocked()
	cfg = Clone(cfg)
	if cfg == nil {
		cfg = make(Config)
	}
	s.apps[name] = cfg
}

// SaveSystem writes the in-memory system config to texelrain.json.
func (s *Store) SaveSystem() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLocked()
	path, err := s.systemPath()
	if err != nil {
		return err
	}
	return writeConfig(path, s.system)
}

// SaveApp writes the in-memory config of app name, loading it first if needed.
func (s *Store) SaveApp(name string) error {
	if name == "" {
		return nil
	}
	cfg := s.App(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	path, err := s.appPath(name)
	if err != nil {
		return err
	}
	return writeConfig(path, cfg)
}

func readConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

func writeConfig(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
