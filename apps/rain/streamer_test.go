// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/rain/streamer_test.go
// Summary: Exercises the streamer state machine frame by frame.

package rain

import (
	"strings"
	"testing"

	"github.com/framegrace/texelrain/texel"
)

// newTestStreamer drives column 0 of a height x 2 grid so the insert cell is
// never involved.
func newTestStreamer(height, trail int) (*Streamer, *recordingSurface) {
	surface := newRecordingSurface(height, 2)
	col := NewColumn(NewGrid(surface), 0)
	s := NewStreamer(col, DefaultCharset(), DefaultMinTrail, testRand(7))
	s.trailLength = trail
	s.headRow = -1
	surface.take()
	return s, surface
}

func TestDerivedRows(t *testing.T) {
	cases := []struct {
		head, trail, bright, tail int
	}{
		{0, 5, -4, -5},
		{5, 5, 1, 0},
		{16, 5, 12, 11},
		{-1, 10, -10, -11},
	}
	for _, tc := range cases {
		if got := brightRow(tc.head, tc.trail); got != tc.bright {
			t.Fatalf("brightRow(%d,%d) = %d, want %d", tc.head, tc.trail, got, tc.bright)
		}
		if got := tailRow(tc.head, tc.trail); got != tc.tail {
			t.Fatalf("tailRow(%d,%d) = %d, want %d", tc.head, tc.trail, got, tc.tail)
		}
	}
}

func TestStreamerFirstSixTicks(t *testing.T) {
	s, surface := newTestStreamer(10, 5)
	charset := string(DefaultCharset())

	blankAt := func(row int) write { return write{row: row, col: 0, ch: ' ', attr: texel.AttrDim} }

	// Ticks 1-4 only blank the head; bright and tail rows are above the grid.
	for tick := 1; tick <= 4; tick++ {
		s.Tick()
		if s.HeadRow() != tick-1 {
			t.Fatalf("tick %d: head %d", tick, s.HeadRow())
		}
		got := surface.take()
		if len(got) != 1 || got[0] != blankAt(tick-1) {
			t.Fatalf("tick %d: unexpected writes %+v", tick, got)
		}
	}

	// Tick 5: first bright glyph lands on row 0.
	s.Tick()
	got := surface.take()
	if len(got) != 2 || got[0] != blankAt(4) {
		t.Fatalf("tick 5: unexpected writes %+v", got)
	}
	bright0 := got[1]
	if bright0.row != 0 || bright0.attr != texel.AttrBright || !strings.ContainsRune(charset, bright0.ch) {
		t.Fatalf("tick 5: unexpected bright write %+v", bright0)
	}

	// Tick 6: row 1 goes bright and row 0 is redrawn dim with the same glyph.
	s.Tick()
	got = surface.take()
	if s.HeadRow() != 5 || s.BrightRow() != 1 || s.TailRow() != 0 {
		t.Fatalf("tick 6: head %d bright %d tail %d", s.HeadRow(), s.BrightRow(), s.TailRow())
	}
	if len(got) != 3 {
		t.Fatalf("tick 6: expected 3 writes, got %+v", got)
	}
	if got[0] != blankAt(5) {
		t.Fatalf("tick 6: expected blank at row 5, got %+v", got[0])
	}
	if got[1].row != 1 || got[1].attr != texel.AttrBright {
		t.Fatalf("tick 6: expected bright at row 1, got %+v", got[1])
	}
	want := write{row: 0, col: 0, ch: bright0.ch, attr: texel.AttrDim}
	if got[2] != want {
		t.Fatalf("tick 6: expected %+v, got %+v", want, got[2])
	}
}

func TestStreamerFinishedOnlyPastBottom(t *testing.T) {
	s, _ := newTestStreamer(10, 5)
	for tick := 1; tick <= 16; tick++ {
		s.Tick()
		if s.Finished() {
			t.Fatalf("finished early at tick %d (head %d)", tick, s.HeadRow())
		}
	}
	s.Tick()
	if s.HeadRow() != 16 || !s.Finished() {
		t.Fatalf("expected finished at head 16, head=%d finished=%v", s.HeadRow(), s.Finished())
	}
}

func TestStreamerResetAfterFinish(t *testing.T) {
	s, _ := newTestStreamer(10, 5)
	s.headRow = 16
	if !s.Finished() {
		t.Fatalf("expected finished at head 16, trail 5, height 10")
	}
	s.Reset()
	if s.HeadRow() != -1 {
		t.Fatalf("expected head -1 after reset, got %d", s.HeadRow())
	}
	if l := s.TrailLength(); l < 5 || l > 10 {
		t.Fatalf("trail length %d outside [5,10]", l)
	}
	if s.Finished() {
		t.Fatalf("expected not finished right after reset")
	}
	s.Tick()
	if s.HeadRow() != 0 {
		t.Fatalf("expected head 0 after first tick, got %d", s.HeadRow())
	}
}

func TestStreamerTrailLengthBounds(t *testing.T) {
	s, _ := newTestStreamer(10, 5)
	seen := make(map[int]int)
	for i := 0; i < 3000; i++ {
		s.Reset()
		l := s.TrailLength()
		if l < 5 || l > 10 {
			t.Fatalf("reset %d: trail length %d outside [5,10]", i, l)
		}
		seen[l]++
	}
	for l := 5; l <= 10; l++ {
		if seen[l] == 0 {
			t.Fatalf("trail length %d never drawn in 3000 resets", l)
		}
	}
}

func TestStreamerShortGridCollapsesBounds(t *testing.T) {
	for _, height := range []int{1, 3, 4} {
		s, _ := newTestStreamer(height, 1)
		for i := 0; i < 50; i++ {
			s.Reset()
			if s.TrailLength() != height {
				t.Fatalf("height %d: trail length %d", height, s.TrailLength())
			}
		}
	}
}

func TestStreamerTrailLengthFixedMidTrail(t *testing.T) {
	s, _ := newTestStreamer(20, 8)
	for !s.Finished() {
		s.Tick()
		if s.TrailLength() != 8 {
			t.Fatalf("trail length changed mid-trail to %d", s.TrailLength())
		}
	}
}

func TestStreamerBlankAheadOfBright(t *testing.T) {
	s, _ := newTestStreamer(12, 6)
	for i := 0; i < 8; i++ {
		s.Tick()
	}
	if got := s.Column().Read(s.HeadRow()); got != ' ' {
		t.Fatalf("expected blank at head row %d, got %q", s.HeadRow(), got)
	}
	if got := s.Column().Read(s.BrightRow()); got == ' ' {
		t.Fatalf("expected glyph at bright row %d, got %q", s.BrightRow(), got)
	}
}

func TestStreamerSeedIsReproducible(t *testing.T) {
	run := func() []write {
		surface := newRecordingSurface(10, 2)
		col := NewColumn(NewGrid(surface), 0)
		s := NewStreamer(col, DefaultCharset(), DefaultMinTrail, testRand(42))
		for i := 0; i < 40; i++ {
			s.step()
		}
		return surface.take()
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("write counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("write %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
