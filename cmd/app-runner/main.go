// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/app-runner/main.go
// Summary: Hosts a registered app full screen without the direct-mode driver.
// Usage: app-runner [-app rain] [-save]; Esc or Ctrl-C exits.

package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/framegrace/texelrain/config"
	"github.com/framegrace/texelrain/internal/devshell"
)

func main() {
	appName := flag.String("app", "", "name of the app to run (default: defaultApp from texelrain.json)")
	save := flag.Bool("save", false, "store -app as defaultApp in texelrain.json")
	list := flag.Bool("list", false, "list registered apps and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(devshell.Names(), "\n"))
		return
	}

	store := config.Default()
	name := *appName
	if name == "" {
		name = devshell.DefaultApp(store)
	} else if *save {
		if err := devshell.SetDefaultApp(store, name); err != nil {
			log.Fatalf("save default app: %v", err)
		}
	}
	if err := devshell.RunApp(name, flag.Args()); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}
