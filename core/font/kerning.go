package font

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Pair is the key of a kerning entry. Either side may hold a glyph name or
// a kerning-class name. A pair and its reverse are distinct entries.
type Pair struct {
	Left  string
	Right string
}

// ComparePairs orders pairs lexicographically, left side first. It is the
// comparator backing all pair-keyed tree maps, which makes sorted iteration
// a structural property rather than a per-call effort.
func ComparePairs(a, b interface{}) int {
	pa, pb := a.(Pair), b.(Pair)
	if pa.Left != pb.Left {
		if pa.Left < pb.Left {
			return -1
		}
		return 1
	}
	if pa.Right != pb.Right {
		if pa.Right < pb.Right {
			return -1
		}
		return 1
	}
	return 0
}

// Entry is a kerning pair together with its adjustment value.
type Entry struct {
	Pair  Pair
	Value int
}

// Kerning is an owned working copy of a font's kerning table, mapping pairs
// to integer adjustments. Feature writers drain it destructively while
// sorting entries into rule buckets; the font's own data is never touched.
//
// A Kerning is exclusively owned by one generation pass and must not be
// shared between goroutines.
type Kerning struct {
	pairs *treemap.Map // Pair → int, ordered by ComparePairs
}

// NewKerning returns an empty kerning table.
func NewKerning() *Kerning {
	return &Kerning{pairs: treemap.NewWith(ComparePairs)}
}

// KerningFrom snapshots a pair→value mapping into an owned kerning table.
func KerningFrom(entries map[Pair]int) *Kerning {
	k := NewKerning()
	for pair, val := range entries {
		k.pairs.Put(pair, val)
	}
	return k
}

// Get returns the adjustment for a pair, if present.
func (k *Kerning) Get(pair Pair) (int, bool) {
	if val, ok := k.pairs.Get(pair); ok {
		return val.(int), true
	}
	return 0, false
}

// Insert sets the adjustment for a pair, replacing any previous value.
func (k *Kerning) Insert(pair Pair, val int) {
	k.pairs.Put(pair, val)
}

// Remove deletes a pair. Removing an absent pair is a no-op.
func (k *Kerning) Remove(pair Pair) {
	k.pairs.Remove(pair)
}

// Len returns the number of entries.
func (k *Kerning) Len() int {
	return k.pairs.Size()
}

// IsEmpty returns whether no entries remain.
func (k *Kerning) IsEmpty() bool {
	return k.pairs.Empty()
}

// EachPair calls f for every entry, in sorted pair order.
func (k *Kerning) EachPair(f func(pair Pair, val int)) {
	k.pairs.Each(func(key, val interface{}) {
		f(key.(Pair), val.(int))
	})
}

// PairsWithLeft collects all entries whose left side equals name, in sorted
// order.
func (k *Kerning) PairsWithLeft(name string) []Entry {
	return k.collect(func(p Pair) bool { return p.Left == name })
}

// PairsWithRight collects all entries whose right side equals name, in
// sorted order.
func (k *Kerning) PairsWithRight(name string) []Entry {
	return k.collect(func(p Pair) bool { return p.Right == name })
}

func (k *Kerning) collect(match func(Pair) bool) []Entry {
	var hits []Entry
	k.pairs.Each(func(key, val interface{}) {
		if pair := key.(Pair); match(pair) {
			hits = append(hits, Entry{Pair: pair, Value: val.(int)})
		}
	})
	return hits
}
