// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/buffer_store.go
// Summary: In-memory Surface backed by a cell buffer.
// Usage: Used by the rain app in hosted mode and by tests that inspect frames.

package texel

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// InMemoryBufferStore is a simple BufferStore backed by a [][]Cell slice.
type InMemoryBufferStore struct {
	mu  sync.RWMutex
	buf [][]Cell
}

// Snapshot returns the last saved buffer. Callers should treat the returned
// value as read-only.
func (s *InMemoryBufferStore) Snapshot() [][]Cell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf
}

// Save stores the given buffer reference.
func (s *InMemoryBufferStore) Save(buf [][]Cell) {
	s.mu.Lock()
	s.buf = buf
	s.mu.Unlock()
}

// Clear resets the stored buffer reference.
func (s *InMemoryBufferStore) Clear() {
	s.mu.Lock()
	s.buf = nil
	s.mu.Unlock()
}

// NewInMemoryBufferStore constructs an empty buffer store.
func NewInMemoryBufferStore() BufferStore {
	return &InMemoryBufferStore{}
}

// BufferSurface renders into a back buffer; Flush publishes a copy of it to
// its BufferStore. Signals are queued with Post and drained by PollSignal.
// Writes are not synchronized: a single goroutine drives a surface.
type BufferSurface struct {
	palette Palette
	rows    int
	cols    int
	back    [][]Cell
	store   BufferStore

	sigMu     sync.Mutex
	signals   []Signal
	teardowns int
	flushes   int
}

// NewBufferSurface allocates a rows x cols surface cleared to the palette
// background.
func NewBufferSurface(rows, cols int, palette Palette) *BufferSurface {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	s := &BufferSurface{
		palette: palette,
		rows:    rows,
		cols:    cols,
		store:   NewInMemoryBufferStore(),
	}
	s.back = newCellBuffer(rows, cols, palette.Background)
	return s
}

func newCellBuffer(rows, cols int, style tcell.Style) [][]Cell {
	buf := make([][]Cell, rows)
	for y := range buf {
		buf[y] = make([]Cell, cols)
		for x := range buf[y] {
			buf[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
	return buf
}

func (s *BufferSurface) Size() (int, int) {
	return s.rows, s.cols
}

func (s *BufferSurface) WriteCell(row, col int, ch rune, attr Attribute) {
	s.back[row][col] = Cell{Ch: ch, Style: s.palette.Style(attr)}
}

func (s *BufferSurface) InsertCell(row, col int, ch rune, attr Attribute) {
	line := s.back[row]
	copy(line[col+1:], line[col:len(line)-1])
	line[col] = Cell{Ch: ch, Style: s.palette.Style(attr)}
}

// Flush publishes the back buffer as the current frame.
func (s *BufferSurface) Flush() {
	frame := make([][]Cell, len(s.back))
	for y := range s.back {
		frame[y] = make([]Cell, len(s.back[y]))
		copy(frame[y], s.back[y])
	}
	s.store.Save(frame)
	s.sigMu.Lock()
	s.flushes++
	s.sigMu.Unlock()
}

// Frame returns the last flushed frame, nil before the first Flush.
func (s *BufferSurface) Frame() [][]Cell {
	return s.store.Snapshot()
}

// Flushes counts Flush calls.
func (s *BufferSurface) Flushes() int {
	s.sigMu.Lock()
	defer s.sigMu.Unlock()
	return s.flushes
}

// Post queues a signal for PollSignal. It is safe for concurrent use.
func (s *BufferSurface) Post(sig Signal) {
	s.sigMu.Lock()
	s.signals = append(s.signals, sig)
	s.sigMu.Unlock()
}

func (s *BufferSurface) PollSignal() Signal {
	s.sigMu.Lock()
	defer s.sigMu.Unlock()
	if len(s.signals) == 0 {
		return SignalNone
	}
	sig := s.signals[0]
	s.signals = s.signals[1:]
	return sig
}

func (s *BufferSurface) Teardown() {
	s.sigMu.Lock()
	s.teardowns++
	s.sigMu.Unlock()
	s.store.Clear()
}

// Teardowns counts Teardown calls.
func (s *BufferSurface) Teardowns() int {
	s.sigMu.Lock()
	defer s.sigMu.Unlock()
	return s.teardowns
}
