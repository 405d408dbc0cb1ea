// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package texel

import "testing"

func TestSignalAndAttributeStrings(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{SignalNone.String(), "None"},
		{SignalKey.String(), "Key"},
		{SignalResize.String(), "Resize"},
		{Signal(42).String(), "UnknownSignal"},
		{AttrDim.String(), "dim"},
		{AttrBright.String(), "bright"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("got %q, want %q", tc.got, tc.want)
		}
	}
}
