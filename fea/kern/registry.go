package kern

import (
	"fmt"

	"github.com/npillmayer/feagen/core/font"
	"github.com/npillmayer/feagen/fea"
)

// collectFeaClasses harvests glyph-class definitions from the font's
// existing feature source and routes those following the kerning-class
// naming conventions into the left/right registries. Classes matching
// neither convention are not kerning classes and are ignored.
func (w *Writer) collectFeaClasses() error {
	defs, err := fea.ScanClasses(w.featxt)
	if err != nil {
		return err
	}
	for _, def := range defs {
		switch role, _ := fea.ClassRole(def.Name); role {
		case fea.LeftKerningName:
			w.leftFeaClasses[def.Name] = def.Members
		case fea.RightKerningName:
			w.rightFeaClasses[def.Name] = def.Members
		}
	}
	tracer().Debugf("%d left and %d right classes declared in feature source",
		len(w.leftFeaClasses), len(w.rightFeaClasses))
	return nil
}

// collectGroupClasses routes the font's named groups into left/right
// kerning classes by the kerning-group naming convention. Other groups are
// of no concern to kerning.
func (w *Writer) collectGroupClasses() {
	for name, members := range w.groups {
		switch role, _ := fea.GroupRole(name); role {
		case fea.LeftKerningName:
			w.leftGroupClasses[name] = members
		case fea.RightKerningName:
			w.rightGroupClasses[name] = members
		}
	}
}

// correctGroupNames replaces every group-declared class name which is
// illegal in feature syntax by a synthesized legal identifier, and re-keys
// the kerning entries of a renamed group under the new name. After this
// step every class used downstream has a legal, unique identifier.
func (w *Writer) correctGroupNames() {
	for _, name := range sortedNames(w.leftGroupClasses) {
		if fea.IsLegalName(name) {
			continue
		}
		newName := w.makeClassName(name)
		tracer().Debugf("renaming kerning group %s to %s", name, newName)
		w.leftGroupClasses[newName] = w.leftGroupClasses[name]
		delete(w.leftGroupClasses, name)
		for _, entry := range w.kerning.PairsWithLeft(name) {
			w.kerning.Insert(font.Pair{Left: newName, Right: entry.Pair.Right}, entry.Value)
			w.kerning.Remove(entry.Pair)
		}
	}
	for _, name := range sortedNames(w.rightGroupClasses) {
		if fea.IsLegalName(name) {
			continue
		}
		newName := w.makeClassName(name)
		tracer().Debugf("renaming kerning group %s to %s", name, newName)
		w.rightGroupClasses[newName] = w.rightGroupClasses[name]
		delete(w.rightGroupClasses, name)
		for _, entry := range w.kerning.PairsWithRight(name) {
			w.kerning.Insert(font.Pair{Left: entry.Pair.Left, Right: newName}, entry.Value)
			w.kerning.Remove(entry.Pair)
		}
	}
}

// makeClassName synthesizes a legal glyph-class identifier from a group
// name. If the corrected name collides with any known class — feature- or
// group-declared, either side — a numeric suffix is appended, first free
// suffix starting at 1.
func (w *Writer) makeClassName(name string) string {
	corrected := fea.MakeClassName(name)
	base := corrected
	for i := 1; w.knowsClass(corrected); i++ {
		corrected = fmt.Sprintf("%s_%d", base, i)
	}
	return corrected
}

func (w *Writer) knowsClass(name string) bool {
	if _, ok := w.leftFeaClasses[name]; ok {
		return true
	}
	if _, ok := w.rightFeaClasses[name]; ok {
		return true
	}
	if _, ok := w.leftGroupClasses[name]; ok {
		return true
	}
	_, ok := w.rightGroupClasses[name]
	return ok
}
