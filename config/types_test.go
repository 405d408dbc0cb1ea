// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"testing"
)

func TestTypedGetters(t *testing.T) {
	cfg := Config{
		"top": "level",
		"rain": map[string]interface{}{
			"int_float":  float64(12),
			"int_string": "7",
			"json_num":   json.Number("3"),
			"bool_str":   "true",
			"bool_num":   float64(0),
			"float_str":  "0.25",
			"name":       "ice",
			"wrong_type": []interface{}{1},
		},
	}

	if got := cfg.GetString("", "top", ""); got != "level" {
		t.Fatalf("top-level string = %q", got)
	}
	if got := cfg.GetInt("rain", "int_float", 0); got != 12 {
		t.Fatalf("int_float = %d", got)
	}
	if got := cfg.GetInt("rain", "int_string", 0); got != 7 {
		t.Fatalf("int_string = %d", got)
	}
	if got := cfg.GetInt("rain", "json_num", 0); got != 3 {
		t.Fatalf("json_num = %d", got)
	}
	if got := cfg.GetInt("rain", "wrong_type", 4); got != 4 {
		t.Fatalf("wrong_type should fall back, got %d", got)
	}
	if !cfg.GetBool("rain", "bool_str", false) {
		t.Fatalf("bool_str should be true")
	}
	if cfg.GetBool("rain", "bool_num", true) {
		t.Fatalf("bool_num should be false")
	}
	if got := cfg.GetFloat("rain", "float_str", 0); got != 0.25 {
		t.Fatalf("float_str = %v", got)
	}
	if got := cfg.GetString("missing", "name", "x"); got != "x" {
		t.Fatalf("missing section should fall back, got %q", got)
	}
	if got := cfg.GetFloat("rain", "int_float", 0); got != 12 {
		t.Fatalf("int_float as float = %v", got)
	}
	if got := cfg.GetFloat("rain", "absent", 1.5); got != 1.5 {
		t.Fatalf("absent float = %v", got)
	}
}

func TestRegisterDefaultsKeepsExisting(t *testing.T) {
	cfg := Config{"rain": map[string]interface{}{"charset": "binary"}}
	cfg.RegisterDefaults("rain", Section{"charset": "ascii", "min_trail": 5})
	if got := cfg.GetString("rain", "charset", ""); got != "binary" {
		t.Fatalf("existing value overwritten: %q", got)
	}
	if got := cfg.GetInt("rain", "min_trail", 0); got != 5 {
		t.Fatalf("default not registered: %d", got)
	}
}

func TestCloneCopiesSections(t *testing.T) {
	orig := Config{"rain": map[string]interface{}{"seed": 1}}
	clone := Clone(orig)
	clone.Section("rain")["seed"] = 2
	if got := orig.GetInt("rain", "seed", 0); got != 1 {
		t.Fatalf("clone shares section with original")
	}
}
