// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load logic for the config store; first run writes the defaults.

package config

import "log"

func (s *Store) loadSystemLocked() error {
	path, err := s.systemPath()
	if err != nil {
		log.Printf("Config: Failed to resolve system config path: %v", err)
		s.system = make(Config)
		applySystemDefaults(s.system)
		return err
	}
	cfg, err := loadOrSeed(path, defaultSystemConfig, applySystemDefaults)
	s.system = cfg
	return err
}

func (s *Store) loadAppLocked(name string) (Config, error) {
	path, err := s.appPath(name)
	if err != nil {
		return nil, err
	}
	return loadOrSeed(path,
		func() Config { return defaultAppConfig(name) },
		func(cfg Config) { applyAppDefaults(name, cfg) })
}

// loadOrSeed reads path. A missing or empty file is replaced with the embedded
// defaults and written back. Keys missing from an existing file are filled in
// memory only, so user files are never rewritten behind their back.
func loadOrSeed(path string, embedded func() Config, apply func(Config)) (Config, error) {
	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: Failed to read %s: %v", path, readErr)
		cfg = make(Config)
	}

	if !exists || (readErr == nil && len(cfg) == 0) {
		cfg = embedded()
		if cfg == nil {
			cfg = make(Config)
		}
		apply(cfg)
		if err := writeConfig(path, cfg); err != nil {
			log.Printf("Config: Failed to write defaults to %s: %v", path, err)
			if readErr == nil {
				readErr = err
			}
		}
		return cfg, readErr
	}

	apply(cfg)
	if readErr == nil {
		log.Printf("Config: Loaded %s", path)
	}
	return cfg, readErr
}
