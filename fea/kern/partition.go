package kern

import (
	"github.com/npillmayer/feagen/core/font"
)

// partitionKerning sorts every kerning entry remaining after key-glyph
// resolution into one of the four rule buckets, by testing each side for
// group-class membership. This is a pure partition: each entry lands in
// exactly one bucket, and the sorted snapshot order makes the partition
// deterministic.
func (w *Writer) partitionKerning() {
	w.kerning.EachPair(func(pair font.Pair, val int) {
		_, leftIsClass := w.leftGroupClasses[pair.Left]
		_, rightIsClass := w.rightGroupClasses[pair.Right]
		switch {
		case leftIsClass && rightIsClass:
			w.classPairRules.put(pair, val)
		case leftIsClass:
			w.leftClassRules.put(pair, val)
		case rightIsClass:
			w.rightClassRules.put(pair, val)
		default:
			w.glyphPairRules.put(pair, val)
		}
	})
	tracer().Debugf("kerning partitioned into %d/%d/%d/%d rules",
		w.glyphPairRules.size(), w.leftClassRules.size(),
		w.rightClassRules.size(), w.classPairRules.size())
}
