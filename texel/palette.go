// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/palette.go
// Summary: Dim/bright style pairs registered with a surface at open time.
// Usage: Resolved from the "palette" config key or the -palette flag.

package texel

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

const chromaPrefix = "chroma:"

// Palette holds the two display attributes plus the screen background.
type Palette struct {
	Name       string
	Dim        tcell.Style
	Bright     tcell.Style
	Background tcell.Style
}

// Style maps an attribute to its registered style.
func (p Palette) Style(attr Attribute) tcell.Style {
	if attr == AttrBright {
		return p.Bright
	}
	return p.Dim
}

func newPalette(name string, dim, bright, bg tcell.Color) Palette {
	base := tcell.StyleDefault.Background(bg)
	return Palette{
		Name:       name,
		Dim:        base.Foreground(dim),
		Bright:     base.Foreground(bright),
		Background: base,
	}
}

// ClassicPalette is green on black for the trail and white on black for the head.
var ClassicPalette = newPalette("classic", tcell.ColorGreen, tcell.ColorWhite, tcell.ColorBlack)

var builtinPalettes = map[string]Palette{
	"classic": ClassicPalette,
	"amber":   newPalette("amber", tcell.NewRGBColor(0xb3, 0x6b, 0x00), tcell.NewRGBColor(0xff, 0xd5, 0x80), tcell.ColorBlack),
	"ice":     newPalette("ice", tcell.ColorDarkCyan, tcell.ColorLightCyan, tcell.ColorBlack),
}

// PaletteNames lists the builtin palettes in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(builtinPalettes))
	for name := range builtinPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PaletteByName resolves a builtin palette or a "chroma:<style>" palette.
// An empty name yields ClassicPalette.
func PaletteByName(name string) (Palette, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ClassicPalette, nil
	}
	if strings.HasPrefix(name, chromaPrefix) {
		return paletteFromChroma(strings.TrimPrefix(name, chromaPrefix))
	}
	if p, ok := builtinPalettes[strings.ToLower(name)]; ok {
		return p, nil
	}
	return Palette{}, fmt.Errorf("unknown palette %q (builtin: %s, or chroma:<style>)", name, strings.Join(PaletteNames(), ", "))
}

// paletteFromChroma derives a palette from a syntax highlighting style: string
// literals become the trail, plain text the head, and the style background the
// screen. Missing colours fall back to the classic ones.
func paletteFromChroma(styleName string) (Palette, error) {
	style := lookupChromaStyle(styleName)
	if style == nil {
		return Palette{}, fmt.Errorf("unknown chroma style %q", styleName)
	}

	dim := chromaColor(style.Get(chroma.LiteralString).Colour, tcell.ColorGreen)
	bright := chromaColor(style.Get(chroma.Text).Colour, tcell.ColorWhite)
	bg := chromaColor(style.Get(chroma.Background).Background, tcell.ColorBlack)

	return newPalette(chromaPrefix+style.Name, dim, bright, bg), nil
}

func lookupChromaStyle(name string) *chroma.Style {
	if style, ok := styles.Registry[name]; ok {
		return style
	}
	for key, style := range styles.Registry {
		if strings.EqualFold(key, name) {
			return style
		}
	}
	return nil
}

func chromaColor(c chroma.Colour, fallback tcell.Color) tcell.Color {
	if !c.IsSet() {
		return fallback
	}
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}
