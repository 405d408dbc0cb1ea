// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/rain/streamer.go
// Summary: Per-column falling trail state machine.
// Usage: Effect ticks every streamer once per frame and resets finished ones.
// Notes: State is two integers. The derived rows below are pure functions of
// them so they can be checked in isolation.

package rain

import (
	"math/rand/v2"

	"github.com/framegrace/texelrain/texel"
)

// DefaultMinTrail is the shortest trail a streamer picks.
const DefaultMinTrail = 5

// blank clears the cell the head has just reached.
const blank = ' '

// Streamer drives one falling trail down its column. headRow grows without
// bound between resets; the tail is derived from it.
type Streamer struct {
	column   *Column
	charset  Charset
	rng      *rand.Rand
	minTrail int

	trailLength int
	headRow     int
	resets      int
}

// NewStreamer picks a random trail length and starts the head at row 0.
func NewStreamer(column *Column, charset Charset, minTrail int, rng *rand.Rand) *Streamer {
	if len(charset) == 0 {
		charset = DefaultCharset()
	}
	s := &Streamer{
		column:   column,
		charset:  charset,
		rng:      rng,
		minTrail: minTrail,
	}
	s.trailLength = s.randomTrailLength()
	return s
}

// brightRow is where the fresh glyph lands: one row below the tail.
func brightRow(head, trail int) int { return head - trail + 1 }

// tailRow is the row darkened this tick.
func tailRow(head, trail int) int { return head - trail }

// finished holds once the tail is strictly past the last row, so the final dim
// write has been drawn before the trail restarts.
func finished(head, trail, height int) bool { return tailRow(head, trail) > height }

// trailBounds returns the inclusive range trail lengths are drawn from. A grid
// shorter than minTrail collapses the range to its height.
func trailBounds(minTrail, height int) (int, int) {
	if minTrail < 1 {
		minTrail = 1
	}
	if height < minTrail {
		return height, height
	}
	return minTrail, height
}

func (s *Streamer) randomTrailLength() int {
	lo, hi := trailBounds(s.minTrail, s.column.Height())
	return lo + s.rng.IntN(hi-lo+1)
}

// Column returns the driven column.
func (s *Streamer) Column() *Column { return s.column }

// HeadRow is the current leading edge.
func (s *Streamer) HeadRow() int { return s.headRow }

// TrailLength is fixed between resets.
func (s *Streamer) TrailLength() int { return s.trailLength }

// Resets counts Reset calls since construction.
func (s *Streamer) Resets() int { return s.resets }

// BrightRow is the row that receives the bright glyph on the current tick.
func (s *Streamer) BrightRow() int { return brightRow(s.headRow, s.trailLength) }

// TailRow is the row redrawn dim on the current tick.
func (s *Streamer) TailRow() int { return tailRow(s.headRow, s.trailLength) }

// Finished reports whether the whole trail has left the bottom edge.
func (s *Streamer) Finished() bool {
	return finished(s.headRow, s.trailLength, s.column.Height())
}

// Tick advances the trail one row. The blank at the head, the bright glyph
// and the dim tail are written in that order; any of them may fall outside the
// column and be dropped there.
func (s *Streamer) Tick() {
	s.headRow++
	s.column.Write(s.headRow, blank, texel.AttrDim)
	s.column.Write(s.BrightRow(), s.charset.Pick(s.rng), texel.AttrBright)
	tail := s.TailRow()
	s.column.Write(tail, s.column.Read(tail), texel.AttrDim)
}

// Reset draws a new trail length and parks the head just above row 0 so the
// next Tick starts at the top.
func (s *Streamer) Reset() {
	s.trailLength = s.randomTrailLength()
	s.headRow = -1
	s.resets++
}

// step is one frame for this streamer.
func (s *Streamer) step() {
	s.Tick()
	if s.Finished() {
		s.Reset()
	}
}
