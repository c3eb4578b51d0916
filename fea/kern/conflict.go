package kern

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/feagen/core/font"
)

// seenPairs accumulates the concrete glyph pairs already claimed by a rule.
// It is threaded explicitly through the ordered resolution passes, so the
// ordering dependency between buckets is visible at the call sites rather
// than hidden in shared state.
type seenPairs struct {
	set *hashset.Set
}

func newSeenPairs() *seenPairs {
	return &seenPairs{set: hashset.New()}
}

func (s *seenPairs) mark(pair font.Pair) {
	s.set.Add(pair)
}

func (s *seenPairs) covered(pair font.Pair) bool {
	return s.set.Contains(pair)
}

// resolveConflicts removes ambiguous overlap between rule buckets. OpenType
// would apply two rules matching the same concrete glyph pair in an
// undefined manner, so specificity wins: glyph–glyph beats class rules,
// single-class rules beat class–class rules. Losing class rules are
// narrowed to explicit glyph lists excluding the claimed glyphs; a rule
// whose coverage is claimed entirely is dropped.
//
// The pass order — glyph–glyph (implicit), left-class–glyph, glyph–class,
// class–class, each bucket in sorted pair order — is fixed and decides the
// winner wherever several class rules could cover the same concrete pair.
func (w *Writer) resolveConflicts() {
	seen := newSeenPairs()
	w.glyphPairRules.each(func(pair font.Pair, val int) {
		seen.mark(pair)
	})
	leftClasses := mergeClasses(w.leftFeaClasses, w.leftGroupClasses)
	rightClasses := mergeClasses(w.rightFeaClasses, w.rightGroupClasses)

	w.leftClassRules = narrowLeftClassRules(w.leftClassRules, leftClasses, seen)
	w.rightClassRules = narrowRightClassRules(w.rightClassRules, rightClasses, seen)
	w.classPairRules = narrowClassPairRules(w.classPairRules, leftClasses, rightClasses, seen)
}

// narrowLeftClassRules filters the members of every left-class–glyph rule
// against the pairs already claimed. Surviving members claim their concrete
// pairs in turn. The rule's value is never changed, only its membership.
func narrowLeftClassRules(rules *ruleMap, classes map[string][]string, seen *seenPairs) *ruleMap {
	narrowed := newRuleMap()
	rules.each(func(rule font.Pair, val int) {
		members := classes[rule.Left]
		kept := members[:0:0]
		for _, glyph := range members {
			pair := font.Pair{Left: glyph, Right: rule.Right}
			if !seen.covered(pair) {
				kept = append(kept, glyph)
				seen.mark(pair)
			}
		}
		switch {
		case len(kept) == len(members):
			narrowed.put(rule, val)
		case len(kept) == 0:
			tracer().Debugf("dropping fully shadowed rule %s %s", rule.Left, rule.Right)
		default:
			narrowed.put(font.Pair{Left: glyphList(kept), Right: rule.Right}, val)
		}
	})
	return narrowed
}

// narrowRightClassRules is the symmetric pass over glyph–right-class rules.
func narrowRightClassRules(rules *ruleMap, classes map[string][]string, seen *seenPairs) *ruleMap {
	narrowed := newRuleMap()
	rules.each(func(rule font.Pair, val int) {
		members := classes[rule.Right]
		kept := members[:0:0]
		for _, glyph := range members {
			pair := font.Pair{Left: rule.Left, Right: glyph}
			if !seen.covered(pair) {
				kept = append(kept, glyph)
				seen.mark(pair)
			}
		}
		switch {
		case len(kept) == len(members):
			narrowed.put(rule, val)
		case len(kept) == 0:
			tracer().Debugf("dropping fully shadowed rule %s %s", rule.Left, rule.Right)
		default:
			narrowed.put(font.Pair{Left: rule.Left, Right: glyphList(kept)}, val)
		}
	})
	return narrowed
}

// narrowClassPairRules filters class–class rules by walking the cross
// product of both member lists. A member survives on a side if it occurs
// in at least one unclaimed concrete pair; sides narrow independently, and
// a narrowed side is written as a sorted explicit glyph list.
//
// Conflicts are resolved against prior buckets and against earlier rules of
// this bucket. When two class–class rules share members and both narrow,
// the combination of their narrowed cross products is not re-verified
// pairwise; the fixed processing order is what pins down the result.
func narrowClassPairRules(rules *ruleMap, leftClasses, rightClasses map[string][]string, seen *seenPairs) *ruleMap {
	narrowed := newRuleMap()
	rules.each(func(rule font.Pair, val int) {
		lMembers := leftClasses[rule.Left]
		rMembers := rightClasses[rule.Right]
		keptL := make(map[string]bool)
		keptR := make(map[string]bool)
		for _, lGlyph := range lMembers {
			for _, rGlyph := range rMembers {
				pair := font.Pair{Left: lGlyph, Right: rGlyph}
				if !seen.covered(pair) {
					keptL[lGlyph] = true
					keptR[rGlyph] = true
					seen.mark(pair)
				}
			}
		}
		if len(keptL) == 0 && len(keptR) == 0 {
			tracer().Debugf("dropping fully shadowed rule %s %s", rule.Left, rule.Right)
			return
		}
		left, right := rule.Left, rule.Right
		if len(keptL) != len(lMembers) {
			left = glyphList(sortedSubset(lMembers, keptL))
		}
		if len(keptR) != len(rMembers) {
			right = glyphList(sortedSubset(rMembers, keptR))
		}
		narrowed.put(font.Pair{Left: left, Right: right}, val)
	})
	return narrowed
}

// mergeClasses unifies the feature-declared and group-declared registries
// of one side for class expansion during narrowing.
func mergeClasses(feaClasses, groupClasses map[string][]string) map[string][]string {
	merged := make(map[string][]string, len(feaClasses)+len(groupClasses))
	for name, members := range feaClasses {
		merged[name] = members
	}
	for name, members := range groupClasses {
		merged[name] = members
	}
	return merged
}
