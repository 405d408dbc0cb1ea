// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/rain/charset.go
// Summary: Glyph sets the bright head is drawn from.

package rain

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const (
	digits      = "0123456789"
	letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var namedCharsets = map[string]func() string{
	"ascii":  func() string { return digits + letters + punctuation },
	"digits": func() string { return digits },
	"binary": func() string { return "01" },
	"katakana": func() string {
		var b strings.Builder
		for r := rune(0xFF66); r <= 0xFF9D; r++ {
			b.WriteRune(r)
		}
		return b.String()
	},
}

// Charset is a non-empty set of single-cell glyphs.
type Charset []rune

// DefaultCharset is digits, ASCII letters and ASCII punctuation.
func DefaultCharset() Charset {
	cs, _ := ParseCharset("ascii")
	return cs
}

// CharsetNames lists the named sets accepted by ParseCharset.
func CharsetNames() []string {
	names := make([]string, 0, len(namedCharsets))
	for name := range namedCharsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseCharset resolves a named set or treats the argument as literal glyphs.
// Duplicates are dropped; every glyph must be printable and one cell wide
// since each column is one cell.
func ParseCharset(glyphs string) (Charset, error) {
	if glyphs == "" {
		glyphs = "ascii"
	}
	if named, ok := namedCharsets[strings.ToLower(glyphs)]; ok {
		glyphs = named()
	}

	seen := make(map[rune]bool)
	cs := make(Charset, 0, len(glyphs))
	for _, r := range glyphs {
		if seen[r] {
			continue
		}
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return nil, fmt.Errorf("charset: %U is not a printable glyph", r)
		}
		if w := runewidth.RuneWidth(r); w != 1 {
			return nil, fmt.Errorf("charset: %q is %d cells wide", r, w)
		}
		seen[r] = true
		cs = append(cs, r)
	}
	if len(cs) == 0 {
		return nil, fmt.Errorf("charset: no glyphs in %q", glyphs)
	}
	return cs, nil
}

// Pick returns a uniformly chosen glyph.
func (cs Charset) Pick(rng *rand.Rand) rune {
	return cs[rng.IntN(len(cs))]
}

func (cs Charset) String() string {
	return string(cs)
}
