package kern

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/feagen/core/font"
)

const subtableBreak = "    subtable;"

// emit renders the final bucket state as feature source text. The layout
// is: one declaration line per group-declared class still in use, a blank
// line, then the kern feature block with the buckets in specificity order,
// non-empty class buckets preceded by a subtable break. Everything is
// sorted, so identical input yields byte-identical output.
func (w *Writer) emit(linesep string) string {
	if w.glyphPairRules.isEmpty() && w.leftClassRules.isEmpty() &&
		w.rightClassRules.isEmpty() && w.classPairRules.isEmpty() {
		// no kerning rules at all, don't write an empty feature
		return ""
	}
	var lines []string
	if w.addGlyphClasses(&lines) {
		lines = append(lines, "")
	}

	lines = append(lines, "feature kern {")
	addKerning(&lines, w.glyphPairRules, false)
	if !w.leftClassRules.isEmpty() {
		lines = append(lines, subtableBreak)
		addKerning(&lines, w.leftClassRules, true)
	}
	if !w.rightClassRules.isEmpty() {
		lines = append(lines, subtableBreak)
		addKerning(&lines, w.rightClassRules, true)
	}
	if !w.classPairRules.isEmpty() {
		lines = append(lines, subtableBreak)
		addKerning(&lines, w.classPairRules, false)
	}
	lines = append(lines, "} kern;")

	return strings.Join(lines, linesep)
}

// addGlyphClasses declares the group-declared classes referenced by the
// final rules, left and right merged, sorted by class name, and reports
// whether any declaration was written. Feature-declared classes are the
// author's and need no declaration; a class narrowed out of every rule
// needs none either.
func (w *Writer) addGlyphClasses(lines *[]string) bool {
	used := w.usedClassNames()
	declared := make(map[string][]string, len(used))
	for name, members := range w.leftGroupClasses {
		if used[name] {
			declared[name] = members
		}
	}
	for name, members := range w.rightGroupClasses {
		if used[name] {
			declared[name] = members
		}
	}
	for _, name := range sortedNames(declared) {
		*lines = append(*lines, fmt.Sprintf("%s = %s;", name, glyphList(declared[name])))
	}
	return len(declared) > 0
}

// usedClassNames collects every name still occurring on a rule side after
// conflict resolution.
func (w *Writer) usedClassNames() map[string]bool {
	used := make(map[string]bool)
	note := func(pair font.Pair, _ int) {
		used[pair.Left] = true
		used[pair.Right] = true
	}
	w.leftClassRules.each(note)
	w.rightClassRules.each(note)
	w.classPairRules.each(note)
	return used
}

// addKerning renders one bucket's rules in sorted pair order. Single-class
// rules are written as enumerating pairs, which makes the feature compiler
// flatten them into specific pairs rather than build a class subtable.
func addKerning(lines *[]string, rules *ruleMap, enum bool) {
	prefix := ""
	if enum {
		prefix = "enum "
	}
	rules.each(func(pair font.Pair, val int) {
		*lines = append(*lines, fmt.Sprintf("    %spos %s %s %d;", prefix, pair.Left, pair.Right, val))
	})
}

// glyphList renders glyph names as a bracketed, space-separated list.
func glyphList(glyphs []string) string {
	return "[" + strings.Join(glyphs, " ") + "]"
}

// sortedSubset filters members down to those in keep, sorted by name.
func sortedSubset(members []string, keep map[string]bool) []string {
	subset := make([]string, 0, len(keep))
	for _, glyph := range members {
		if keep[glyph] {
			subset = append(subset, glyph)
		}
	}
	sort.Strings(subset)
	return subset
}
