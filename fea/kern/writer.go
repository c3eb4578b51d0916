package kern

import (
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/feagen/core/font"
)

// Writer generates the kern feature for one font. It owns a snapshot of the
// font's kerning table and drains it destructively while sorting entries
// into rule buckets, so a Writer is good for exactly one call to Write.
type Writer struct {
	kerning *font.Kerning
	groups  font.Groups
	featxt  string

	// kerning classes found in existing feature syntax and in font groups
	leftFeaClasses    map[string][]string
	rightFeaClasses   map[string][]string
	leftGroupClasses  map[string][]string
	rightGroupClasses map[string][]string

	// rule buckets, ordered by increasing generality
	glyphPairRules  *ruleMap // glyph – glyph
	leftClassRules  *ruleMap // left class – glyph
	rightClassRules *ruleMap // glyph – right class
	classPairRules  *ruleMap // class – class

	written bool
}

// NewWriter prepares a kern feature writer for a font. The font's own data
// is never mutated; the writer works on a snapshot.
func NewWriter(f *font.Font) *Writer {
	return &Writer{
		kerning:           f.Kerning(),
		groups:            f.Groups(),
		featxt:            f.Features(),
		leftFeaClasses:    make(map[string][]string),
		rightFeaClasses:   make(map[string][]string),
		leftGroupClasses:  make(map[string][]string),
		rightGroupClasses: make(map[string][]string),
		glyphPairRules:    newRuleMap(),
		leftClassRules:    newRuleMap(),
		rightClassRules:   newRuleMap(),
		classPairRules:    newRuleMap(),
	}
}

// Write runs one generation pass and returns the kern feature as feature
// source text, lines joined by linesep. If the font holds no kerning at all
// the result is the empty string: no empty feature block is ever written,
// so callers can detect "nothing to generate".
//
// A second call on the same Writer returns an error; the kerning snapshot
// has been consumed by the first pass.
func (w *Writer) Write(linesep string) (string, error) {
	if w.written {
		return "", errWriter("single-shot writer used twice")
	}
	w.written = true

	if err := w.collectFeaClasses(); err != nil {
		return "", err
	}
	w.collectFeaClassKerning()

	w.collectGroupClasses()
	w.correctGroupNames()

	w.partitionKerning()
	w.resolveConflicts()

	return w.emit(linesep), nil
}

// ruleMap is one rule bucket: a mapping of pair keys to kerning values,
// tree-ordered for deterministic iteration. A key side holds a class name,
// a glyph name, or — after conflict narrowing — a bracketed glyph list.
type ruleMap struct {
	m *treemap.Map
}

func newRuleMap() *ruleMap {
	return &ruleMap{m: treemap.NewWith(font.ComparePairs)}
}

func (rm *ruleMap) put(pair font.Pair, val int) {
	rm.m.Put(pair, val)
}

func (rm *ruleMap) isEmpty() bool {
	return rm.m.Empty()
}

func (rm *ruleMap) size() int {
	return rm.m.Size()
}

// each visits all rules in sorted pair order.
func (rm *ruleMap) each(f func(pair font.Pair, val int)) {
	rm.m.Each(func(key, val interface{}) {
		f(key.(font.Pair), val.(int))
	})
}

// sortedNames returns the keys of a class registry in sorted order. All
// per-class processing iterates in this order, which pins down results
// wherever two classes compete for the same kerning entries.
func sortedNames(classes map[string][]string) []string {
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
