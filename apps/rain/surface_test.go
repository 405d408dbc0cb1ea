// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/rain/surface_test.go
// Summary: Recording surface shared by the rain engine tests.

package rain

import (
	"math/rand/v2"
	"sync"

	"github.com/framegrace/texelrain/texel"
)

type write struct {
	row, col int
	ch       rune
	attr     texel.Attribute
	insert   bool
}

type recordingSurface struct {
	rows, cols int

	mu     sync.Mutex
	writes []write
}

func newRecordingSurface(rows, cols int) *recordingSurface {
	return &recordingSurface{rows: rows, cols: cols}
}

func (s *recordingSurface) Size() (int, int) { return s.rows, s.cols }

func (s *recordingSurface) WriteCell(row, col int, ch rune, attr texel.Attribute) {
	s.record(write{row: row, col: col, ch: ch, attr: attr})
}

func (s *recordingSurface) InsertCell(row, col int, ch rune, attr texel.Attribute) {
	s.record(write{row: row, col: col, ch: ch, attr: attr, insert: true})
}

func (s *recordingSurface) record(w write) {
	s.mu.Lock()
	s.writes = append(s.writes, w)
	s.mu.Unlock()
}

func (s *recordingSurface) Flush()                   {}
func (s *recordingSurface) PollSignal() texel.Signal { return texel.SignalNone }
func (s *recordingSurface) Teardown()                {}

func (s *recordingSurface) take() []write {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.writes
	s.writes = nil
	return out
}

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}
