/*
Package kern generates a kerning feature, in OpenType feature-file source
syntax, from a font's kerning table and glyph groups.

The generated feature cooperates with classes an author has already declared
in hand-written feature source: for every pre-declared kerning class the
first member acts as the class's key glyph, and its raw kerning values stand
in for the whole class. Font groups named by the kerning-group conventions
become glyph classes of their own, renamed where the group name is illegal
in feature syntax.

OpenType disallows ambiguous overlapping rules within a lookup, so after
sorting all kerning entries into four specificity buckets (glyph–glyph,
class–glyph, glyph–class, class–class) the writer resolves conflicts by
specificity: a more specific rule wins, and broader class rules are narrowed
to explicit glyph lists which exclude the glyphs already covered. Buckets
are emitted separated by subtable breaks, fully sorted, so identical input
yields byte-identical output.

A Writer is single-shot: it drains an owned snapshot of the kerning table
during Write and is not reusable afterwards. Use one Writer per generation
pass.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package kern

import (
	"github.com/npillmayer/feagen/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'feagen.fea'
func tracer() tracing.Trace {
	return tracing.Select("feagen.fea")
}

// errWriter produces user level errors for kern feature generation.
func errWriter(x string) error {
	return core.Error(core.EINTERNAL, "kern writer: %s", x)
}
