// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Clone helpers for config maps.

package config

// Clone copies the config and each of its sections. Values inside a section
// are shared.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for name, raw := range cfg {
		if section, ok := asSection(raw); ok {
			clone[name] = cloneSection(section)
			continue
		}
		clone[name] = raw
	}
	return clone
}

func cloneSection(s Section) Section {
	out := make(Section, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func asSection(raw interface{}) (Section, bool) {
	switch v := raw.(type) {
	case Section:
		return v, true
	case map[string]interface{}:
		return Section(v), true
	}
	return nil, false
}
