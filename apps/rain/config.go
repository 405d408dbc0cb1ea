// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/rain/config.go
// Summary: Translates the "rain" config section into AppConfig and writes
// command-line overrides back to it.

package rain

import (
	"fmt"
	"time"

	"github.com/framegrace/texelrain/config"
	"github.com/framegrace/texelrain/texel"
)

const (
	// AppName is the config store entry (apps/rain/config.json).
	AppName = "rain"
	// ConfigSection is the section of that file read by FromConfig.
	ConfigSection = "rain"
)

// FromConfig builds an AppConfig from cfg, falling back to defaults for
// missing keys. Invalid charsets, palettes or non-positive values are errors.
// frame_delay_ms may be fractional.
func FromConfig(cfg config.Config) (AppConfig, error) {
	charset, err := ParseCharset(cfg.GetString(ConfigSection, "charset", "ascii"))
	if err != nil {
		return AppConfig{}, err
	}
	palette, err := texel.PaletteByName(cfg.GetString(ConfigSection, "palette", "classic"))
	if err != nil {
		return AppConfig{}, err
	}
	minTrail := cfg.GetInt(ConfigSection, "min_trail", DefaultMinTrail)
	if minTrail < 1 {
		return AppConfig{}, fmt.Errorf("rain: min_trail must be at least 1, got %d", minTrail)
	}
	ms := cfg.GetFloat(ConfigSection, "frame_delay_ms", float64(DefaultFrameDelay/time.Millisecond))
	delay := time.Duration(ms * float64(time.Millisecond))
	if ms <= 0 || delay <= 0 {
		return AppConfig{}, fmt.Errorf("rain: frame_delay_ms must be positive, got %v", ms)
	}
	seed := cfg.GetInt(ConfigSection, "seed", 0)
	if seed < 0 {
		return AppConfig{}, fmt.Errorf("rain: seed must not be negative, got %d", seed)
	}

	return AppConfig{
		Effect: Options{
			Charset:  charset,
			MinTrail: minTrail,
			Seed:     uint64(seed),
			Parallel: cfg.GetBool(ConfigSection, "parallel", false),
		},
		Palette:    palette,
		FrameDelay: delay,
	}, nil
}

// SaveOverrides merges values into the rain section and writes the app config.
// Nothing is written when the merged config would not load.
func SaveOverrides(store *config.Store, values config.Section) error {
	cfg := config.Clone(store.App(AppName))
	if cfg == nil {
		cfg = make(config.Config)
	}
	section := cfg.Section(ConfigSection)
	if section == nil {
		section = make(config.Section)
		cfg[ConfigSection] = section
	}
	for key, value := range values {
		section[key] = value
	}
	if _, err := FromConfig(cfg); err != nil {
		return err
	}
	store.SetApp(AppName, cfg)
	return store.SaveApp(AppName)
}
