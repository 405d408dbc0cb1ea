// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/rain/grid.go
// Summary: Bounds-checked cell dispatch over a texel.Surface.

package rain

import "github.com/framegrace/texelrain/texel"

// Grid is the fixed height x width matrix the columns draw into. It holds no
// cell state of its own; every write goes straight to the surface.
type Grid struct {
	surface texel.Surface
	height  int
	width   int
}

// NewGrid captures the surface dimensions for the lifetime of the run.
func NewGrid(surface texel.Surface) *Grid {
	rows, cols := surface.Size()
	return &Grid{surface: surface, height: rows, width: cols}
}

// Size returns (rows, cols).
func (g *Grid) Size() (int, int) {
	return g.height, g.width
}

// Write draws ch at (row, col). Coordinates outside the grid are ignored; the
// streamer arithmetic produces them routinely. The bottom-right cell is always
// written with an insert so the terminal cursor never wraps or scrolls.
func (g *Grid) Write(row, col int, ch rune, attr texel.Attribute) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return
	}
	if g.isLastCell(row, col) {
		g.surface.InsertCell(row, col, ch, attr)
		return
	}
	g.surface.WriteCell(row, col, ch, attr)
}

func (g *Grid) isLastCell(row, col int) bool {
	return row == g.height-1 && col == g.width-1
}
