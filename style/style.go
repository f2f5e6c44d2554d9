// seehuhn.de/go/pdfnote - highlight compositor for PDF page notes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package style implements CSS declaration lists for the generated HTML.
//
// A [Style] is an ordered list of property/value pairs, for example
// "font-style:italic;color:#ff0000".  Styles are values: all methods which
// change a style return a new style and leave the receiver unchanged.
package style

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Style is an ordered map from CSS properties to values.
// The zero value is an empty style.
type Style struct {
	decls *orderedmap.OrderedMap[string, string]
}

// New returns a style with the given declarations.
// The arguments are property/value pairs, so the number of arguments must be
// even.
func New(pairs ...string) Style {
	if len(pairs)%2 != 0 {
		panic("style: odd number of arguments")
	}
	var s Style
	for i := 0; i < len(pairs); i += 2 {
		s = s.With(pairs[i], pairs[i+1])
	}
	return s
}

// Len returns the number of declarations.
func (s Style) Len() int {
	if s.decls == nil {
		return 0
	}
	return s.decls.Len()
}

// IsEmpty reports whether the style has no declarations.
func (s Style) IsEmpty() bool {
	return s.Len() == 0
}

// Get returns the value of a property.
func (s Style) Get(prop string) (string, bool) {
	if s.decls == nil {
		return "", false
	}
	return s.decls.Get(prop)
}

// With returns a copy of s where prop is set to value.
// If prop is already present, it keeps its position in the list.
func (s Style) With(prop, value string) Style {
	res := s.clone()
	res.decls.Set(prop, value)
	return res
}

// Without returns a copy of s with prop removed.
func (s Style) Without(prop string) Style {
	res := s.clone()
	res.decls.Delete(prop)
	return res
}

// Merge combines the declarations of s and other.
// Properties only present in one of the styles are kept.  For properties
// present in both, the value from other is used if override is true,
// and the value from s otherwise.
func (s Style) Merge(other Style, override bool) Style {
	res := s.clone()
	if other.decls == nil {
		return res
	}
	for pair := other.decls.Oldest(); pair != nil; pair = pair.Next() {
		if _, present := res.decls.Get(pair.Key); present && !override {
			continue
		}
		res.decls.Set(pair.Key, pair.Value)
	}
	return res
}

// Equal reports whether s and other serialize to the same string.
func (s Style) Equal(other Style) bool {
	return s.String() == other.String()
}

// Declarations calls yield for each declaration, in order.
func (s Style) Declarations(yield func(prop, value string) bool) {
	if s.decls == nil {
		return
	}
	for pair := s.decls.Oldest(); pair != nil; pair = pair.Next() {
		if !yield(pair.Key, pair.Value) {
			return
		}
	}
}

// String returns the style in the form used for HTML style attributes,
// e.g. "font-style:italic;color:#ff0000".
func (s Style) String() string {
	if s.decls == nil {
		return ""
	}
	var b strings.Builder
	for pair := s.decls.Oldest(); pair != nil; pair = pair.Next() {
		if b.Len() > 0 {
			b.WriteByte(';')
		}
		b.WriteString(pair.Key)
		b.WriteByte(':')
		b.WriteString(pair.Value)
	}
	return b.String()
}

func (s Style) clone() Style {
	res := Style{decls: orderedmap.New[string, string]()}
	if s.decls == nil {
		return res
	}
	for pair := s.decls.Oldest(); pair != nil; pair = pair.Next() {
		res.decls.Set(pair.Key, pair.Value)
	}
	return res
}
