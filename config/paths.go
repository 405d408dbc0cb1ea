// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: File locations under a store root.

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirName          = "texelrain"
	systemConfigName = "texelrain.json"
	logFileName      = "texelrain.log"
)

// Root returns the directory holding texelrain.json.
func (s *Store) Root() (string, error) {
	if s.root != "" {
		return s.root, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, dirName), nil
}

// LogPath is texelrain.log next to texelrain.json.
func (s *Store) LogPath() (string, error) {
	return s.join(logFileName)
}

func (s *Store) systemPath() (string, error) {
	return s.join(systemConfigName)
}

func (s *Store) appPath(app string) (string, error) {
	if app == "" {
		return "", fmt.Errorf("app name is required")
	}
	return s.join("apps", app, "config.json")
}

func (s *Store) join(elem ...string) (string, error) {
	root, err := s.Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{root}, elem...)...), nil
}
