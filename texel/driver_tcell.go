// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/driver_tcell.go
// Summary: Implements Surface on top of a tcell screen.
// Usage: Opened by the direct-mode driver; torn down on every exit path.

package texel

import (
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
)

const eventQueueSize = 16

// ScreenFactory creates an uninitialized screen.
type ScreenFactory func() (tcell.Screen, error)

// TcellSurface adapts a tcell screen to the Surface interface. A background
// goroutine pumps PollEvent into a queue so PollSignal never blocks.
type TcellSurface struct {
	screen  ScreenDriver
	palette Palette

	rows, cols int

	events   chan tcell.Event
	done     chan struct{}
	finiOnce sync.Once
}

// OpenTcellSurface creates and initializes a screen, hides the cursor and
// registers the palette styles. When initialization fails nothing is left to
// tear down.
func OpenTcellSurface(factory ScreenFactory, palette Palette) (*TcellSurface, error) {
	if factory == nil {
		factory = tcell.NewScreen
	}
	screen, err := factory()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return newTcellSurface(screen, palette)
}

// OpenTcellSurfaceOnTty opens a surface on another terminal device, for
// example a second terminal's /dev/pts/N.
func OpenTcellSurfaceOnTty(device string, palette Palette) (*TcellSurface, error) {
	return OpenTcellSurface(func() (tcell.Screen, error) {
		tty, err := tcell.NewDevTtyFromDev(device)
		if err != nil {
			return nil, fmt.Errorf("open tty %s: %w", device, err)
		}
		return screenOnTty(tty)
	}, palette)
}

// screenOnTty closes tty when no screen could be built on it.
func screenOnTty(tty tcell.Tty) (tcell.Screen, error) {
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if err != nil {
		tty.Close()
		return nil, err
	}
	return screen, nil
}

func newTcellSurface(screen ScreenDriver, palette Palette) (*TcellSurface, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	screen.SetStyle(palette.Background)
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	s := &TcellSurface{
		screen:  screen,
		palette: palette,
		rows:    rows,
		cols:    cols,
		events:  make(chan tcell.Event, eventQueueSize),
		done:    make(chan struct{}),
	}
	go s.pump()
	return s, nil
}

func (s *TcellSurface) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Size returns rows and columns as seen at open time.
func (s *TcellSurface) Size() (int, int) {
	return s.rows, s.cols
}

func (s *TcellSurface) WriteCell(row, col int, ch rune, attr Attribute) {
	s.screen.SetContent(col, row, ch, nil, s.palette.Style(attr))
}

func (s *TcellSurface) InsertCell(row, col int, ch rune, attr Attribute) {
	for x := s.cols - 1; x > col; x-- {
		mainc, combc, style, _ := s.screen.GetContent(x-1, row)
		s.screen.SetContent(x, row, mainc, combc, style)
	}
	s.screen.SetContent(col, row, ch, nil, s.palette.Style(attr))
}

func (s *TcellSurface) Flush() {
	s.screen.Show()
}

// PollSignal drains queued events until it finds a key press or a real
// resize. tcell announces the initial size as a resize event; a resize to the
// size already in use is ignored.
func (s *TcellSurface) PollSignal() Signal {
	for {
		select {
		case ev := <-s.events:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				return SignalKey
			case *tcell.EventResize:
				w, h := tev.Size()
				if w == s.cols && h == s.rows {
					continue
				}
				log.Printf("Surface: Resize %dx%d -> %dx%d", s.cols, s.rows, w, h)
				return SignalResize
			}
		default:
			return SignalNone
		}
	}
}

// Teardown finalizes the screen once; later calls are no-ops.
func (s *TcellSurface) Teardown() {
	s.finiOnce.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
}
