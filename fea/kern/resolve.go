package kern

import (
	"github.com/npillmayer/feagen/core/font"
)

// collectFeaClassKerning resolves kerning values for the feature-declared
// classes. The font's raw kerning carries no entries keyed on these class
// names; by convention the class's first member is its key glyph, and the
// key glyph's individual kerning values stand in for the whole class.
//
// Consumption order matters and is fixed: per left class first the
// class–class pairs against every right class's key glyph, then the left
// key glyph's remaining pairs; afterwards, per right class, the right key
// glyph's remaining pairs. Classes are visited in sorted name order. This
// runs before partitioning so key-glyph pairs are consumed here rather than
// misclassified as plain glyph pairs.
func (w *Writer) collectFeaClassKerning() {
	rightNames := sortedNames(w.rightFeaClasses)
	for _, leftName := range sortedNames(w.leftFeaClasses) {
		leftKey := w.leftFeaClasses[leftName][0]

		// collect rules with two classes
		for _, rightName := range rightNames {
			rightKey := w.rightFeaClasses[rightName][0]
			pair := font.Pair{Left: leftKey, Right: rightKey}
			val, ok := w.kerning.Get(pair)
			if !ok {
				continue
			}
			w.classPairRules.put(font.Pair{Left: leftName, Right: rightName}, val)
			w.kerning.Remove(pair)
		}

		// collect rules with left class and right glyph
		for _, entry := range w.kerning.PairsWithLeft(leftKey) {
			w.leftClassRules.put(font.Pair{Left: leftName, Right: entry.Pair.Right}, entry.Value)
			w.kerning.Remove(entry.Pair)
		}
	}

	// collect rules with left glyph and right class
	for _, rightName := range rightNames {
		rightKey := w.rightFeaClasses[rightName][0]
		for _, entry := range w.kerning.PairsWithRight(rightKey) {
			w.rightClassRules.put(font.Pair{Left: entry.Pair.Left, Right: rightName}, entry.Value)
			w.kerning.Remove(entry.Pair)
		}
	}
}
