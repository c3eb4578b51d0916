/*
Package font holds the source-side data model for feature generation.

Feature writers do not operate on compiled font binaries, but on the editable
data a font is built from: per-pair kerning values, named glyph groups, and
hand-written feature source text. This package bundles those three views into
a Font value which feature writers consume.

A Font is a read-only collaborator: writers take an owned snapshot of the
kerning table (see Kerning) and mutate only that snapshot, so the same Font
may be handed to any number of independent generation passes.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'feagen.font'
func tracer() tracing.Trace {
	return tracing.Select("feagen.font")
}

// Groups maps a group name to its ordered, duplicate-free list of member
// glyph names. Feature writers treat member slices as immutable.
type Groups map[string][]string

// Font is the view of font data which feature writers consume: raw kerning,
// named glyph groups, and existing feature source text.
type Font struct {
	kerning map[Pair]int
	groups  Groups
	featxt  string
}

// NewFont bundles kerning entries, glyph groups and existing feature source
// text into a Font. The kerning map is copied; groups are referenced and
// must not be mutated while the Font is in use.
func NewFont(kerning map[Pair]int, groups Groups, featxt string) *Font {
	k := make(map[Pair]int, len(kerning))
	for pair, val := range kerning {
		k[pair] = val
	}
	if groups == nil {
		groups = Groups{}
	}
	tracer().Debugf("font model holds %d kerning pairs and %d groups", len(k), len(groups))
	return &Font{kerning: k, groups: groups, featxt: featxt}
}

// Kerning returns a fresh owned snapshot of the font's kerning table.
// Every call allocates a new snapshot, so destructive consumption by one
// generation pass never leaks into the next.
func (f *Font) Kerning() *Kerning {
	return KerningFrom(f.kerning)
}

// Groups returns the font's named glyph groups. Callers must treat the
// returned mapping and its member slices as read-only.
func (f *Font) Groups() Groups {
	return f.groups
}

// Features returns the font's hand-written feature source text, which may
// be empty.
func (f *Font) Features() string {
	return f.featxt
}
