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

// Package tag implements the HTML elements used to mark up page text, and
// the consolidation of overlapping elements into a list of disjoint ones.
package tag

import (
	"fmt"
	"html"
	"strings"

	"seehuhn.de/go/pdfnote/highlight"
	"seehuhn.de/go/pdfnote/span"
	"seehuhn.de/go/pdfnote/style"
)

// Kind selects the HTML element used for a tag.
// Tags of different kinds are consolidated separately and may nest.
type Kind uint8

// These are the supported tag kinds.
const (
	// StyleTag marks a run of text with a font style.
	StyleTag Kind = iota + 1

	// HighlightTag marks text with a background colour.
	HighlightTag
)

// Kinds lists all tag kinds.
var Kinds = []Kind{StyleTag, HighlightTag}

// Name returns the name of the HTML element.
func (k Kind) Name() string {
	switch k {
	case StyleTag:
		return "span"
	case HighlightTag:
		return "mark"
	default:
		panic(fmt.Sprintf("tag: invalid kind %d", k))
	}
}

func (k Kind) String() string {
	switch k {
	case StyleTag:
		return "StyleTag"
	case HighlightTag:
		return "HighlightTag"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

func (k Kind) valid() bool {
	return k == StyleTag || k == HighlightTag
}

// KindOf returns the tag kind used for spans of category c.
func KindOf(c highlight.Category) Kind {
	if c.IsHighlight() {
		return HighlightTag
	}
	return StyleTag
}

// Tag is an HTML element covering a span of characters on a page.
type Tag struct {
	span.Span
	Priority int
	Style    style.Style
	Kind     Kind
}

// FromSpans converts the reduced spans of one category into tags.
// Spans with an empty style carry no information and are omitted.
func FromSpans(spans []highlight.ColoredSpan, prio highlight.Priorities) []Tag {
	var res []Tag
	for _, s := range spans {
		if s.Style.IsEmpty() || s.IsEmpty() {
			continue
		}
		res = append(res, Tag{
			Span:     s.Span,
			Priority: prio.Of(s.Category),
			Style:    s.Style,
			Kind:     KindOf(s.Category),
		})
	}
	return res
}

// Open returns the opening HTML tag, for example
// `<mark style="background-color:#ff0000">`.
func (t Tag) Open() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(t.Kind.Name())
	if !t.Style.IsEmpty() {
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(t.Style.String()))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}

// Close returns the closing HTML tag.
func (t Tag) Close() string {
	return "</" + t.Kind.Name() + ">"
}

func (t Tag) String() string {
	return fmt.Sprintf("%s%s{%s,p=%d}", t.Kind.Name(), t.Span, t.Style, t.Priority)
}

// Group sorts tags by kind.
func Group(tags []Tag) map[Kind][]Tag {
	res := make(map[Kind][]Tag)
	for _, t := range tags {
		res[t.Kind] = append(res[t.Kind], t)
	}
	return res
}
