/*
Package fea provides utilities for OpenType feature-file syntax, as far as
feature generation needs them: identifier legality rules, the naming
conventions which mark glyph classes and groups as kerning classes, and a
scanner harvesting glyph-class definitions from existing feature source.

This is deliberately not a feature-file parser. Hand-written feature source
passes through generation untouched; the only syntax interpreted here is the
glyph-class definition, because generated kerning rules must cooperate with
classes an author has already declared. Class definitions may hold plain
glyph names and references to previously defined classes; glyph ranges
('A - Z') are rejected and abort generation, since range expansion needs
the font's glyph order.

# Status

Complete for class harvesting. No other feature-file constructs are
interpreted.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fea

import (
	"github.com/npillmayer/feagen/core"
	"github.com/npillmayer/schuko/tracing"
)

// trace writes to trace with key 'feagen.fea'
func trace() tracing.Trace {
	return tracing.Select("feagen.fea")
}

// errFeaSyntax produces user level errors for feature source scanning.
func errFeaSyntax(x string) error {
	return core.Error(core.EINVALID, "feature syntax: %s", x)
}
