// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/rain/app.go
// Summary: Hosts the rain effect as a texel.App rendering into a cell buffer.
// Usage: Registered with devshell so the effect can run inside any app host.

package rain

import (
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelrain/texel"
)

// DefaultFrameDelay is the pause between frames.
const DefaultFrameDelay = 50 * time.Millisecond

// AppConfig configures the hosted app.
type AppConfig struct {
	Effect     Options
	Palette    texel.Palette
	FrameDelay time.Duration
}

// rainApp owns a BufferSurface sized to its pane. A resize starts a fresh run
// on a new grid; dimensions never change under a running effect.
type rainApp struct {
	cfg AppConfig

	mu      sync.Mutex
	surface *texel.BufferSurface
	effect  *Effect
	width   int
	height  int

	stop        chan struct{}
	stopOnce    sync.Once
	refreshChan chan<- bool
}

// NewApp returns the rain effect as a texel.App.
func NewApp(cfg AppConfig) texel.App {
	if cfg.FrameDelay <= 0 {
		cfg.FrameDelay = DefaultFrameDelay
	}
	if cfg.Palette.Name == "" {
		cfg.Palette = texel.ClassicPalette
	}
	return &rainApp{
		cfg:  cfg,
		stop: make(chan struct{}),
	}
}

// HandleKey does nothing; the host decides when to stop.
func (a *rainApp) HandleKey(ev *tcell.EventKey) {}

func (a *rainApp) SetRefreshNotifier(refreshChan chan<- bool) {
	a.refreshChan = refreshChan
}

// Run steps the effect every frame until Stop.
func (a *rainApp) Run() error {
	ticker := time.NewTicker(a.cfg.FrameDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.step() {
				continue
			}
			if a.refreshChan != nil {
				select {
				case a.refreshChan <- true:
				default:
				}
			}
		case <-a.stop:
			a.mu.Lock()
			if a.effect != nil {
				st := a.effect.Stats()
				log.Printf("Rain: Stopped after %d frames, %d trail resets", st.Frames, st.Resets)
			}
			a.mu.Unlock()
			return nil
		}
	}
}

func (a *rainApp) step() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.effect == nil {
		return false
	}
	a.effect.Step()
	a.surface.Flush()
	return true
}

// Stop signals the Run loop to terminate.
func (a *rainApp) Stop() {
	a.stopOnce.Do(func() { close(a.stop) })
}

// Resize starts a new run sized cols x rows.
func (a *rainApp) Resize(cols, rows int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if cols == a.width && rows == a.height && a.surface != nil {
		return
	}
	a.width, a.height = cols, rows

	if a.surface != nil {
		a.surface.Teardown()
	}
	a.surface = texel.NewBufferSurface(rows, cols, a.cfg.Palette)
	effect, err := NewEffect(a.surface, a.cfg.Effect)
	if err != nil {
		log.Printf("Rain: %v", err)
		a.effect = nil
		return
	}
	a.effect = effect
}

// Render returns the last completed frame.
func (a *rainApp) Render() [][]texel.Cell {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.surface == nil {
		return [][]texel.Cell{}
	}
	if frame := a.surface.Frame(); frame != nil {
		return frame
	}
	return newBlankFrame(a.height, a.width, a.cfg.Palette.Background)
}

func (a *rainApp) GetTitle() string {
	return "Rain"
}

func newBlankFrame(rows, cols int, style tcell.Style) [][]texel.Cell {
	if rows <= 0 || cols <= 0 {
		return [][]texel.Cell{}
	}
	buf := make([][]texel.Cell, rows)
	for y := range buf {
		buf[y] = make([]texel.Cell, cols)
		for x := range buf[y] {
			buf[y][x] = texel.Cell{Ch: ' ', Style: style}
		}
	}
	return buf
}
