// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/driver/driver.go
// Summary: Direct-mode frame loop: poll input, step the effect, flush, sleep.
// Usage: cmd/texelrain calls RunTerminal; tests call Run with a buffer surface.

package driver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/framegrace/texelrain/apps/rain"
	"github.com/framegrace/texelrain/texel"
)

// ErrNotATerminal is returned when stdout is not attached to a terminal.
var ErrNotATerminal = errors.New("stdout is not a terminal")

// Options configures a run.
type Options struct {
	Effect     rain.Options
	Palette    texel.Palette
	FrameDelay time.Duration
	// MaxFrames stops the run after that many frames when positive.
	MaxFrames int
	// Tty renders on another terminal device instead of the controlling one.
	Tty string
	// ScreenFactory overrides tcell.NewScreen when Tty is empty.
	ScreenFactory texel.ScreenFactory
}

// Reason says why a run ended.
type Reason int

const (
	ReasonKey Reason = iota
	ReasonResize
	ReasonCanceled
	ReasonFrameLimit
)

func (r Reason) String() string {
	switch r {
	case ReasonKey:
		return "key press"
	case ReasonResize:
		return "terminal resize"
	case ReasonCanceled:
		return "canceled"
	case ReasonFrameLimit:
		return "frame limit"
	default:
		return "unknown"
	}
}

// Result summarises a finished run.
type Result struct {
	Reason  Reason
	Stats   rain.Stats
	Elapsed time.Duration
}

// FPS is the measured frame rate.
func (r Result) FPS() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Stats.Frames) / r.Elapsed.Seconds()
}

// RunTerminal opens a tcell surface and runs the effect on it until a key
// press, a resize, ctx cancellation or the frame limit.
func RunTerminal(ctx context.Context, opts Options) (Result, error) {
	surface, err := Open(opts)
	if err != nil {
		return Result{}, err
	}
	return Run(ctx, surface, opts)
}

// Open acquires the terminal surface described by opts.
func Open(opts Options) (texel.Surface, error) {
	palette := opts.Palette
	if palette.Name == "" {
		palette = texel.ClassicPalette
	}
	if opts.Tty != "" {
		surface, err := texel.OpenTcellSurfaceOnTty(opts.Tty, palette)
		if err != nil {
			return nil, fmt.Errorf("open surface: %w", err)
		}
		return surface, nil
	}
	if opts.ScreenFactory == nil && !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotATerminal
	}
	surface, err := texel.OpenTcellSurface(opts.ScreenFactory, palette)
	if err != nil {
		return nil, fmt.Errorf("open surface: %w", err)
	}
	return surface, nil
}

// Run drives the effect on an already open surface and always tears the
// surface down before returning.
func Run(ctx context.Context, surface texel.Surface, opts Options) (Result, error) {
	defer surface.Teardown()

	effect, err := rain.NewEffect(surface, opts.Effect)
	if err != nil {
		return Result{}, err
	}
	rows, cols := surface.Size()
	log.Printf("Driver: Running on %dx%d grid", cols, rows)

	delay := opts.FrameDelay
	if delay <= 0 {
		delay = rain.DefaultFrameDelay
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	start := time.Now()
	finish := func(reason Reason) (Result, error) {
		res := Result{Reason: reason, Stats: effect.Stats(), Elapsed: time.Since(start)}
		log.Printf("Driver: Stopped on %s after %d frames (%.1f FPS, %d trail resets)",
			reason, res.Stats.Frames, res.FPS(), res.Stats.Resets)
		return res, nil
	}

	for {
		switch surface.PollSignal() {
		case texel.SignalKey:
			return finish(ReasonKey)
		case texel.SignalResize:
			return finish(ReasonResize)
		}

		effect.Step()
		surface.Flush()

		if opts.MaxFrames > 0 && effect.Stats().Frames >= opts.MaxFrames {
			return finish(ReasonFrameLimit)
		}

		select {
		case <-ctx.Done():
			return finish(ReasonCanceled)
		case <-ticker.C:
		}
	}
}
