package fea

import "strings"

// Naming conventions marking a name as belonging to one side of a kerning
// pair. Group prefixes follow the UFO standard group names, class prefixes
// the MetricsMachine convention for feature-file kerning classes.
const (
	LeftGroupPrefix  = "public.kern1."
	RightGroupPrefix = "public.kern2."
	LeftClassPrefix  = "@MMK_L_"
	RightClassPrefix = "@MMK_R_"
)

// ClassMarker starts every glyph-class name in feature syntax.
const ClassMarker = "@"

// NameRole tells which side of a kerning pair a group or class name is
// declared for, if any.
type NameRole uint8

const (
	NotKerningName NameRole = iota // name carries no kerning convention
	LeftKerningName
	RightKerningName
)

func (r NameRole) String() string {
	switch r {
	case LeftKerningName:
		return "left"
	case RightKerningName:
		return "right"
	}
	return "none"
}

// GroupRole matches a font group name against the left/right kerning group
// conventions. For a match it returns the role together with the base name
// following the prefix; a name matching neither convention, or one with an
// empty base, is not a kerning group.
func GroupRole(name string) (NameRole, string) {
	return matchPrefix(name, LeftGroupPrefix, RightGroupPrefix)
}

// ClassRole matches a feature-declared class name against the left/right
// kerning class conventions, analogous to GroupRole.
func ClassRole(name string) (NameRole, string) {
	return matchPrefix(name, LeftClassPrefix, RightClassPrefix)
}

func matchPrefix(name, left, right string) (NameRole, string) {
	if base := strings.TrimPrefix(name, left); base != name && base != "" {
		return LeftKerningName, base
	}
	if base := strings.TrimPrefix(name, right); base != name && base != "" {
		return RightKerningName, base
	}
	return NotKerningName, ""
}

// isNameByte tells whether c may occur in a feature-file identifier.
func isNameByte(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' ||
		c >= '0' && c <= '9' || c == '.' || c == '_'
}

// IsLegalName returns whether name is usable as a glyph-class identifier in
// feature syntax without correction: the class marker followed by at least
// one character from the legal charset (ASCII letters, digits, period,
// underscore).
func IsLegalName(name string) bool {
	if !strings.HasPrefix(name, ClassMarker) || len(name) == len(ClassMarker) {
		return false
	}
	for i := len(ClassMarker); i < len(name); i++ {
		if !isNameByte(name[i]) {
			return false
		}
	}
	return true
}

// StripIllegal removes every character outside the legal identifier charset.
// The result may be empty.
func StripIllegal(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		if isNameByte(name[i]) {
			b.WriteByte(name[i])
		}
	}
	return b.String()
}

// MakeClassName synthesizes a legal glyph-class identifier from an arbitrary
// name: strip illegal characters, then prefix with the class marker. The
// caller is responsible for resolving collisions with known class names.
func MakeClassName(name string) string {
	return ClassMarker + StripIllegal(name)
}
