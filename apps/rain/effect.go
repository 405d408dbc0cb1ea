// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/rain/effect.go
// Summary: Owns the grid, its columns and one streamer per column.
// Usage: Drivers call Step once per frame and flush the surface afterwards.

package rain

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/framegrace/texelrain/texel"
)

// ErrEmptyGrid is returned when the surface has no rows or no columns.
var ErrEmptyGrid = errors.New("rain: grid has no cells")

// Options tune an Effect. The zero value is usable.
type Options struct {
	// Charset defaults to DefaultCharset.
	Charset Charset
	// MinTrail defaults to DefaultMinTrail.
	MinTrail int
	// Seed makes runs reproducible when non-zero.
	Seed uint64
	// Parallel ticks streamers concurrently. Columns never share cells.
	Parallel bool
}

// Stats summarises a run.
type Stats struct {
	Frames int
	Resets int
}

// Effect is the whole animation: one streamer per grid column.
type Effect struct {
	grid      *Grid
	columns   []*Column
	streamers []*Streamer
	parallel  bool
	frames    int
}

// NewEffect builds columns and streamers for every column of surface.
func NewEffect(surface texel.Surface, opts Options) (*Effect, error) {
	grid := NewGrid(surface)
	rows, cols := grid.Size()
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w (%dx%d)", ErrEmptyGrid, cols, rows)
	}

	charset := opts.Charset
	if len(charset) == 0 {
		charset = DefaultCharset()
	}
	minTrail := opts.MinTrail
	if minTrail <= 0 {
		minTrail = DefaultMinTrail
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	e := &Effect{
		grid:      grid,
		columns:   make([]*Column, cols),
		streamers: make([]*Streamer, cols),
		parallel:  opts.Parallel,
	}
	for x := 0; x < cols; x++ {
		col := NewColumn(grid, x)
		rng := rand.New(rand.NewPCG(seed, uint64(x)))
		e.columns[x] = col
		e.streamers[x] = NewStreamer(col, charset, minTrail, rng)
	}
	return e, nil
}

// Grid returns the underlying grid.
func (e *Effect) Grid() *Grid { return e.grid }

// Streamers returns the per-column streamers, indexed by column.
func (e *Effect) Streamers() []*Streamer { return e.streamers }

// Step advances every streamer by one tick and resets those that finished.
func (e *Effect) Step() {
	if e.parallel && len(e.streamers) > 1 {
		e.stepParallel()
	} else {
		for _, s := range e.streamers {
			s.step()
		}
	}
	e.frames++
}

func (e *Effect) stepParallel() {
	n := len(e.streamers)
	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		part := e.streamers[start:min(start+chunk, n)]
		g.Go(func() error {
			for _, s := range part {
				s.step()
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Stats reports frames stepped and trail resets so far.
func (e *Effect) Stats() Stats {
	st := Stats{Frames: e.frames}
	for _, s := range e.streamers {
		st.Resets += s.Resets()
	}
	return st
}
