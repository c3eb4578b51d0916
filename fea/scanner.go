package fea

import "fmt"

// ClassDef is a glyph-class definition harvested from feature source:
// a class name together with its ordered member glyph list. Nested class
// references are already expanded.
type ClassDef struct {
	Name    string
	Members []string
}

// ScanClasses harvests glyph-class definitions of the form
//
//	@NAME = [glyph glyph …];
//
// from feature source text. All other feature-file syntax is skipped
// unvalidated, including class references inside rules; '#' comments and
// quoted strings are skipped as well. A class member may reference a class
// defined earlier in the source, in which case the reference is expanded
// in place. Glyph ranges ('A - Z') are not supported: expanding one needs
// the font's glyph order, which feature source alone does not carry.
//
// Definitions are returned in source order. A malformed definition — no
// member list, an unterminated list, a missing semicolon, an illegal member
// token, a reference to an unknown class, or a redefinition — yields an
// error and no partial result.
func ScanClasses(featxt string) ([]ClassDef, error) {
	s := &classScanner{src: featxt, byName: make(map[string]int)}
	for !s.eof() {
		switch c := s.src[s.pos]; {
		case c == '#':
			s.skipLine()
		case c == '"':
			s.skipString()
		case c == '@':
			if err := s.classOrReference(); err != nil {
				return nil, err
			}
		default:
			s.pos++
		}
	}
	trace().Debugf("scanned %d class definitions from feature source", len(s.defs))
	return s.defs, nil
}

type classScanner struct {
	src    string
	pos    int
	defs   []ClassDef
	byName map[string]int // class name → index into defs
}

func (s *classScanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *classScanner) skipLine() {
	for !s.eof() && s.src[s.pos] != '\n' {
		s.pos++
	}
}

func (s *classScanner) skipString() {
	s.pos++ // opening quote
	for !s.eof() && s.src[s.pos] != '"' {
		s.pos++
	}
	s.pos++ // closing quote, or EOF
}

func (s *classScanner) skipSpace() {
	for !s.eof() {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

// name reads a class name starting at the marker character.
func (s *classScanner) name() string {
	start := s.pos
	s.pos++ // marker
	for !s.eof() && isNameByte(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// classOrReference is called with the scanner sitting on a class marker.
// A marker followed by '=' is a definition and is parsed strictly; any
// other occurrence is a reference in syntax we do not interpret.
func (s *classScanner) classOrReference() error {
	name := s.name()
	mark := s.pos
	s.skipSpace()
	if s.eof() || s.src[s.pos] != '=' {
		s.pos = mark // not a definition, rescan from after the name
		return nil
	}
	if name == ClassMarker {
		return errFeaSyntax("glyph class with empty name")
	}
	if _, ok := s.byName[name]; ok {
		return errFeaSyntax(fmt.Sprintf("glyph class %s redefined", name))
	}
	s.pos++ // '='
	members, err := s.memberList(name)
	if err != nil {
		return err
	}
	s.byName[name] = len(s.defs)
	s.defs = append(s.defs, ClassDef{Name: name, Members: members})
	return nil
}

func (s *classScanner) memberList(class string) ([]string, error) {
	s.skipSpace()
	if s.eof() || s.src[s.pos] != '[' {
		return nil, errFeaSyntax(fmt.Sprintf("expected [ after %s =", class))
	}
	s.pos++
	var members []string
	for {
		s.skipSpace()
		if s.eof() {
			return nil, errFeaSyntax(fmt.Sprintf("unterminated glyph class %s", class))
		}
		if s.src[s.pos] == ']' {
			s.pos++
			break
		}
		if s.src[s.pos] == '@' { // expand a nested class reference
			ref := s.name()
			inx, ok := s.byName[ref]
			if !ok {
				return nil, errFeaSyntax(fmt.Sprintf("%s references unknown class %s", class, ref))
			}
			members = append(members, s.defs[inx].Members...)
			continue
		}
		if s.src[s.pos] == '-' {
			return nil, errFeaSyntax(fmt.Sprintf("glyph range in class %s, ranges are not supported", class))
		}
		glyph := s.glyphName()
		if glyph == "" {
			return nil, errFeaSyntax(fmt.Sprintf("illegal member in glyph class %s", class))
		}
		members = append(members, glyph)
	}
	if len(members) == 0 {
		return nil, errFeaSyntax(fmt.Sprintf("glyph class %s is empty", class))
	}
	s.skipSpace()
	if s.eof() || s.src[s.pos] != ';' {
		return nil, errFeaSyntax(fmt.Sprintf("missing ; after glyph class %s", class))
	}
	s.pos++
	return members, nil
}

func (s *classScanner) glyphName() string {
	start := s.pos
	for !s.eof() && isNameByte(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}
