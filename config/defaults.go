// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for system and app configuration files.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"defaultApp": "rain",
		"log_file":   "",
	})
}

func applyAppDefaults(app string, cfg Config) {
	if cfg == nil {
		return
	}
	switch app {
	case "rain":
		cfg.RegisterDefaults("rain", Section{
			"frame_delay_ms": 50,
			"min_trail":      5,
			"charset":        "ascii",
			"palette":        "classic",
			"seed":           0,
			"parallel":       false,
		})
	}
}
