// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelrain/main.go
// Summary: Falling-characters terminal effect.
// Usage: Run `texelrain`; any key or a terminal resize exits.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/framegrace/texelrain/apps/rain"
	"github.com/framegrace/texelrain/config"
	"github.com/framegrace/texelrain/internal/devshell"
	"github.com/framegrace/texelrain/internal/driver"
	"github.com/framegrace/texelrain/texel"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("texelrain", flag.ContinueOnError)

	configDir := fs.String("config-dir", "", "Directory holding texelrain.json (default: user config dir)")
	logPath := fs.String("log", "", "Log file (default: log_file from config, else <config-dir>/texelrain.log)")
	list := fs.Bool("list", false, "List palettes, charsets and apps, then exit")

	// Effect flags override apps/rain/config.json.
	charset := fs.String("charset", "", "Glyph set: "+strings.Join(rain.CharsetNames(), ", ")+", or literal glyphs")
	palette := fs.String("palette", "", "Palette: "+strings.Join(texel.PaletteNames(), ", ")+", or chroma:<style>")
	delay := fs.Duration("delay", 0, "Delay between frames")
	minTrail := fs.Int("min-trail", 0, "Shortest trail length")
	seed := fs.Uint64("seed", 0, "Random seed (0 picks one)")
	parallel := fs.Bool("parallel", false, "Tick columns concurrently")
	save := fs.Bool("save", false, "Write the effect flags given to apps/rain/config.json and exit")

	// Driver flags.
	frames := fs.Int("frames", 0, "Stop after this many frames and report FPS (0 runs until a key press)")
	tty := fs.String("tty", "", "Render on another terminal device, e.g. /dev/pts/3")
	appName := fs.String("app", "", "Host a registered app through devshell instead of drawing directly")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if *configDir != "" {
		config.SetRoot(*configDir)
	}
	closeLog, err := setupLogging(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := config.Err(); err != nil {
		log.Printf("Config: Using defaults: %v", err)
	}

	if *list {
		printLists(os.Stdout)
		return nil
	}

	if *appName != "" {
		return devshell.RunApp(*appName, fs.Args())
	}

	cfg, err := rain.FromConfig(config.App(rain.AppName))
	if err != nil {
		return fmt.Errorf("rain config: %w", err)
	}

	var flagErr error
	overrides := config.Section{}
	fs.Visit(func(f *flag.Flag) {
		if flagErr != nil {
			return
		}
		switch f.Name {
		case "charset":
			cfg.Effect.Charset, flagErr = rain.ParseCharset(*charset)
			overrides["charset"] = *charset
		case "palette":
			cfg.Palette, flagErr = texel.PaletteByName(*palette)
			overrides["palette"] = *palette
		case "delay":
			if *delay <= 0 {
				flagErr = fmt.Errorf("-delay must be positive")
			}
			cfg.FrameDelay = *delay
			overrides["frame_delay_ms"] = float64(*delay) / float64(time.Millisecond)
		case "min-trail":
			if *minTrail < 1 {
				flagErr = fmt.Errorf("-min-trail must be at least 1")
			}
			cfg.Effect.MinTrail = *minTrail
			overrides["min_trail"] = *minTrail
		case "seed":
			cfg.Effect.Seed = *seed
			overrides["seed"] = *seed
		case "parallel":
			cfg.Effect.Parallel = *parallel
			overrides["parallel"] = *parallel
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if *save {
		if err := rain.SaveOverrides(config.Default(), overrides); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		log.Printf("Config: Saved %d rain settings", len(overrides))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := driver.RunTerminal(ctx, driver.Options{
		Effect:     cfg.Effect,
		Palette:    cfg.Palette,
		FrameDelay: cfg.FrameDelay,
		MaxFrames:  *frames,
		Tty:        *tty,
	})
	if err != nil {
		return err
	}
	if *frames > 0 {
		fmt.Fprintf(os.Stderr, "Rendered %d frames in %v (%.2f FPS)\n", res.Stats.Frames, res.Elapsed, res.FPS())
	}
	return nil
}

func printLists(w io.Writer) {
	fmt.Fprintf(w, "palettes: %s, chroma:<style>\n", strings.Join(texel.PaletteNames(), ", "))
	fmt.Fprintf(w, "charsets: %s\n", strings.Join(rain.CharsetNames(), ", "))
	fmt.Fprintf(w, "apps:     %s\n", strings.Join(devshell.Names(), ", "))
	if root, err := config.Root(); err == nil {
		fmt.Fprintf(w, "config:   %s\n", root)
	}
}
