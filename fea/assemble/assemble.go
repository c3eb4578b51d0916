/*
Package assemble combines hand-written feature source with generated
kerning features.

Authors may ship a hand-tuned kern feature with their font; generation must
not clobber it. The assembler detects an existing kern feature block and
leaves the source untouched unless overwriting is requested, in which case
the hand-written block is stripped and a freshly generated one appended.
Compiling the assembled source into binary lookup tables is the business of
an external feature compiler, not of this package.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package assemble

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/npillmayer/feagen/core/font"
	"github.com/npillmayer/feagen/fea/kern"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'feagen.fea'
func tracer() tracing.Trace {
	return tracing.Select("feagen.fea")
}

// kernBlockRe recognizes a hand-written kern feature block.
var kernBlockRe = regexp.MustCompile(`(?s)feature\s+kern\s+\{.*?\}\s+kern\s*;`)

// Assembler produces the complete feature source for one font.
type Assembler struct {
	Font      *font.Font
	Overwrite bool // regenerate the kern feature even if one is hand-written
}

// Features returns the font's assembled feature source: the existing
// hand-written text plus a generated kern feature, blocks separated by a
// blank line. A hand-written kern feature is preserved as-is unless
// Overwrite is set, in which case it is stripped and replaced. If nothing
// is generated and nothing was hand-written, the result is empty.
func (a *Assembler) Features(linesep string) (string, error) {
	existing := a.Font.Features()
	if !a.Overwrite && kernBlockRe.MatchString(existing) {
		tracer().Infof("hand-written kern feature present, not regenerating")
		return existing, nil
	}
	if a.Overwrite {
		existing = kernBlockRe.ReplaceAllString(existing, "")
	}
	generated, err := kern.NewWriter(a.Font).Write(linesep)
	if err != nil {
		return "", err
	}
	blocks := make([]string, 0, 2)
	if trimmed := strings.TrimSpace(existing); trimmed != "" {
		blocks = append(blocks, trimmed)
	}
	if generated != "" {
		blocks = append(blocks, generated)
	}
	return strings.Join(blocks, linesep+linesep), nil
}

// includeRe captures the path argument of an include statement.
var includeRe = regexp.MustCompile(`(include\s*\(\s*)([^)]+)(\s*\))`)

// AbsoluteIncludes rewrites relative include paths in feature source to be
// absolute with respect to dir. Feature compilers resolve includes against
// their own working directory, so source handed over from a font located
// elsewhere needs its includes pinned first.
func AbsoluteIncludes(text, dir string) string {
	return includeRe.ReplaceAllStringFunc(text, func(stmt string) string {
		parts := includeRe.FindStringSubmatch(stmt)
		includePath := strings.TrimSpace(parts[2])
		if filepath.IsAbs(includePath) {
			return stmt
		}
		return parts[1] + filepath.Join(dir, includePath) + parts[3]
	})
}
