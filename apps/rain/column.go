// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/rain/column.go
// Summary: One vertical slice of the grid with per-row glyph memory.

package rain

import "github.com/framegrace/texelrain/texel"

// Empty is returned by Column.Read for rows outside the column.
const Empty rune = 0

// placeholder fills a column before anything is drawn. It is never rendered.
const placeholder = '*'

// Column remembers the last rune written at each row so a trail can be
// redrawn dim with the same glyph it was drawn bright with.
type Column struct {
	grid  *Grid
	index int
	chars []rune
}

// NewColumn creates column index of grid.
func NewColumn(grid *Grid, index int) *Column {
	height, _ := grid.Size()
	chars := make([]rune, height)
	for i := range chars {
		chars[i] = placeholder
	}
	return &Column{grid: grid, index: index, chars: chars}
}

// Index is the column's x coordinate.
func (c *Column) Index() int { return c.index }

// Height is the number of rows.
func (c *Column) Height() int { return len(c.chars) }

// Read returns the stored rune at row, or Empty when row is out of range.
func (c *Column) Read(row int) rune {
	if row < 0 || row >= len(c.chars) {
		return Empty
	}
	return c.chars[row]
}

// Write stores ch at row and draws it. Out of range rows are ignored.
func (c *Column) Write(row int, ch rune, attr texel.Attribute) {
	if row < 0 || row >= len(c.chars) {
		return
	}
	c.chars[row] = ch
	c.grid.Write(row, c.index, ch, attr)
}
