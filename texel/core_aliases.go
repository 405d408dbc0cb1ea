// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/core_aliases.go
// Summary: Re-exports TexelUI core types for texelrain internals.

package texel

import texelcore "github.com/framegrace/texelui/core"

// Core app types.
type App = texelcore.App
type Cell = texelcore.Cell
