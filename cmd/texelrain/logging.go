// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelrain/logging.go
// Summary: Sends the standard logger to a file while the effect owns the terminal.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/framegrace/texelrain/config"
)

// setupLogging resolves the log path (flag, then config, then default) and
// redirects log output there. The returned func closes the file.
func setupLogging(flagPath string) (func(), error) {
	path := flagPath
	if path == "" {
		path = config.System().GetString("", "log_file", "")
	}
	if path == "" {
		def, err := config.DefaultLogPath()
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
		path = def
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(logFile)
	log.Println("texelrain starting")
	return func() {
		log.Println("texelrain stopped")
		log.SetOutput(os.Stderr)
		logFile.Close()
	}, nil
}
