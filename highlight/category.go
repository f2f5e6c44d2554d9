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

// Package highlight reduces the annotated ranges of one page and category
// to a sorted list of disjoint spans.
package highlight

import "fmt"

// Category identifies the source of a set of annotated ranges.
type Category uint8

// These are the categories known to the compositor.
const (
	StyleRun Category = iota + 1
	SMExtract
	PDFExtract
	Ignore
	Annotation
)

// Categories lists all categories, in the order they are processed.
var Categories = []Category{StyleRun, SMExtract, PDFExtract, Ignore, Annotation}

// IsHighlight reports whether ranges of this category are shown as
// coloured backgrounds.  All categories except [StyleRun] are highlights.
func (c Category) IsHighlight() bool {
	return c != StyleRun
}

func (c Category) String() string {
	switch c {
	case StyleRun:
		return "style-run"
	case SMExtract:
		return "sm-extract"
	case PDFExtract:
		return "pdf-extract"
	case Ignore:
		return "ignore"
	case Annotation:
		return "annotation"
	default:
		return fmt.Sprintf("Category(%d)", c)
	}
}

// ParseCategory converts the name returned by [Category.String] back to a
// category.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown highlight category %q", name)
}

// Priorities assigns a priority to each category.  Where tags from
// different categories overlap, the style of the category with the higher
// priority wins.
type Priorities map[Category]int

// DefaultPriorities is the priority table used unless the caller provides
// a different one.
var DefaultPriorities = Priorities{
	StyleRun:   0,
	SMExtract:  1,
	PDFExtract: 2,
	Ignore:     3,
	Annotation: 4,
}

// Of returns the priority of category c.  Categories missing from p use
// the entry from [DefaultPriorities].
func (p Priorities) Of(c Category) int {
	if prio, ok := p[c]; ok {
		return prio
	}
	return DefaultPriorities[c]
}
