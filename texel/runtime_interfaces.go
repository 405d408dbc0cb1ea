// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/runtime_interfaces.go
// Summary: Rendering surface contracts shared by the rain engine and its drivers.
// Usage: The engine writes cells through Surface; drivers own its lifecycle.

package texel

import "github.com/gdamore/tcell/v2"

// ScreenDriver abstracts the tcell screen used by TcellSurface. It mirrors the
// subset of tcell.Screen functionality required today so tests can substitute
// a simulation screen or a screen bound to another tty.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	SetStyle(style tcell.Style)
	HideCursor()
	Clear()
	Show()
	PollEvent() tcell.Event
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	GetContent(x, y int) (rune, []rune, tcell.Style, int)
}

// Surface is the terminal collaborator the rain grid writes through. All
// coordinates are (row, col), zero based. Implementations are free to assume
// callers have already bounds checked.
type Surface interface {
	// Size reports the grid dimensions observed when the surface was opened.
	Size() (rows, cols int)
	// WriteCell overwrites a single cell.
	WriteCell(row, col int, ch rune, attr Attribute)
	// InsertCell shifts the cells at and after col one step right, dropping
	// the last one, then writes ch at col. Used for the final cell so the
	// terminal never advances the cursor past the screen.
	InsertCell(row, col int, ch rune, attr Attribute)
	// Flush commits pending writes to the display.
	Flush()
	// PollSignal never blocks.
	PollSignal() Signal
	// Teardown restores the terminal. Safe to call more than once.
	Teardown()
}

// BufferStore tracks the last flushed frame of a BufferSurface so readers on
// other goroutines always see a complete frame.
type BufferStore interface {
	Snapshot() [][]Cell
	Save(buf [][]Cell)
	Clear()
}
