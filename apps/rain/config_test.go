// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package rain

import (
	"testing"
	"time"

	"github.com/framegrace/texelrain/config"
)

func TestFromConfigDefaults(t *testing.T) {
	cfg, err := FromConfig(config.Config{})
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if cfg.FrameDelay != DefaultFrameDelay {
		t.Fatalf("expected default frame delay, got %v", cfg.FrameDelay)
	}
	if cfg.Effect.MinTrail != DefaultMinTrail || len(cfg.Effect.Charset) != 94 {
		t.Fatalf("unexpected effect options %+v", cfg.Effect)
	}
	if cfg.Palette.Name != "classic" {
		t.Fatalf("expected classic palette, got %q", cfg.Palette.Name)
	}
}

func TestFromConfigValues(t *testing.T) {
	cfg, err := FromConfig(config.Config{
		ConfigSection: map[string]interface{}{
			"frame_delay_ms": float64(20),
			"min_trail":      float64(3),
			"charset":        "binary",
			"palette":        "ice",
			"seed":           float64(77),
			"parallel":       true,
		},
	})
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if cfg.FrameDelay != 20*time.Millisecond || cfg.Effect.MinTrail != 3 || cfg.Effect.Seed != 77 || !cfg.Effect.Parallel {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Effect.Charset.String() != "01" || cfg.Palette.Name != "ice" {
		t.Fatalf("unexpected charset %q / palette %q", cfg.Effect.Charset, cfg.Palette.Name)
	}
}

func TestFromConfigRejectsBadValues(t *testing.T) {
	bad := []map[string]interface{}{
		{"charset": "日本"},
		{"palette": "sepia-nonexistent"},
		{"min_trail": float64(0)},
		{"frame_delay_ms": float64(0)},
		{"frame_delay_ms": float64(-20)},
		{"frame_delay_ms": "-5"},
		{"seed": float64(-1)},
	}
	for _, section := range bad {
		if _, err := FromConfig(config.Config{ConfigSection: section}); err == nil {
			t.Fatalf("expected error for %v", section)
		}
	}
}

func TestFromConfigFractionalDelay(t *testing.T) {
	cfg, err := FromConfig(config.Config{ConfigSection: map[string]interface{}{"frame_delay_ms": 12.5}})
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if cfg.FrameDelay != 12500*time.Microsecond {
		t.Fatalf("expected 12.5ms, got %v", cfg.FrameDelay)
	}
}

func TestSaveOverridesPersists(t *testing.T) {
	root := t.TempDir()
	store := config.NewStore(root)

	err := SaveOverrides(store, config.Section{"charset": "binary", "frame_delay_ms": float64(30)})
	if err != nil {
		t.Fatalf("SaveOverrides: %v", err)
	}

	fresh := config.NewStore(root)
	cfg, err := FromConfig(fresh.App(AppName))
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if cfg.Effect.Charset.String() != "01" || cfg.FrameDelay != 30*time.Millisecond {
		t.Fatalf("overrides not persisted: charset %q delay %v", cfg.Effect.Charset, cfg.FrameDelay)
	}
	if cfg.Palette.Name != "classic" || cfg.Effect.MinTrail != DefaultMinTrail {
		t.Fatalf("untouched keys changed: %+v", cfg)
	}
}

func TestSaveOverridesRejectsInvalid(t *testing.T) {
	root := t.TempDir()
	store := config.NewStore(root)

	if err := SaveOverrides(store, config.Section{"palette": "no-such-palette"}); err == nil {
		t.Fatal("expected invalid palette to be rejected")
	}
	fresh := config.NewStore(root)
	if got := fresh.App(AppName).GetString(ConfigSection, "palette", ""); got != "classic" {
		t.Fatalf("invalid override reached disk: %q", got)
	}
}
