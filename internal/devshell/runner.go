// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Hosts a texel.App inside a local tcell screen.
// Usage: cmd/app-runner and `texelrain -app` use it to run registered apps.

package devshell

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelrain/apps/rain"
	"github.com/framegrace/texelrain/config"
	"github.com/framegrace/texelrain/texel"
)

// Builder constructs a texel.App, optionally using CLI args.
type Builder func(args []string) (texel.App, error)

var registry = map[string]Builder{
	"rain": func(args []string) (texel.App, error) {
		cfg, err := rain.FromConfig(config.App(rain.AppName))
		if err != nil {
			return nil, err
		}
		return rain.NewApp(cfg), nil
	},
}

// DefaultApp is the app named by defaultApp in store's system config.
func DefaultApp(store *config.Store) string {
	return store.System().GetString("", "defaultApp", "rain")
}

// SetDefaultApp records name as defaultApp and writes the system config.
// Only registered apps are accepted.
func SetDefaultApp(store *config.Store, name string) error {
	if _, ok := registry[name]; !ok {
		return fmt.Errorf("unknown app %q", name)
	}
	sys := config.Clone(store.System())
	if sys == nil {
		sys = make(config.Config)
	}
	sys["defaultApp"] = name
	store.SetSystem(sys)
	return store.SaveSystem()
}

// Names lists registered apps.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run executes the provided builder inside a local tcell screen until Ctrl-C,
// Esc, or the app's Run returns.
func Run(builder Builder, args []string) error {
	app, err := builder(args)
	if err != nil {
		return err
	}

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	width, height := screen.Size()
	app.Resize(width, height)
	refreshCh := make(chan bool, 1)
	app.SetRefreshNotifier(refreshCh)

	draw := func() {
		buffer := app.Render()
		for y := 0; y < len(buffer); y++ {
			row := buffer[y]
			for x := 0; x < len(row); x++ {
				cell := row[x]
				screen.SetContent(x, y, cell.Ch, nil, cell.Style)
			}
		}
		screen.Show()
	}

	draw()

	runErr := make(chan error, 1)
	go func() {
		runErr <- app.Run()
	}()
	defer app.Stop()

	stopForward := make(chan struct{})
	defer close(stopForward)
	go func() {
		for {
			select {
			case <-refreshCh:
				screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-stopForward:
				return
			}
		}
	}()

	for {
		select {
		case err := <-runErr:
			return err
		default:
		}

		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			draw()
		case *tcell.EventResize:
			w, h := tev.Size()
			app.Resize(w, h)
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC || tev.Key() == tcell.KeyEscape {
				return nil
			}
			app.HandleKey(tev)
			draw()
		}
	}
}

// RunApp finds a registered builder by name and runs it.
func RunApp(name string, args []string) error {
	buildApp, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown app %q", name)
	}
	return Run(buildApp, args)
}
