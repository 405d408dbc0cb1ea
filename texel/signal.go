// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/signal.go
// Summary: Input signals and display attributes exchanged with a Surface.

package texel

// Signal is what a non-blocking input poll can report.
type Signal int

const (
	SignalNone Signal = iota
	SignalKey
	SignalResize
)

func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "None"
	case SignalKey:
		return "Key"
	case SignalResize:
		return "Resize"
	default:
		return "UnknownSignal"
	}
}

// Attribute selects one of the two registered display intensities.
type Attribute int

const (
	// AttrDim is used for trailing glyphs and blanks.
	AttrDim Attribute = iota
	// AttrBright is used for the freshly drawn leading glyph.
	AttrBright
)

func (a Attribute) String() string {
	switch a {
	case AttrDim:
		return "dim"
	case AttrBright:
		return "bright"
	default:
		return "unknown"
	}
}
