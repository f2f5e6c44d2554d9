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

// Package render converts page text and consolidated tags into an HTML
// fragment.
//
// Rendering happens in two phases.  First the raw text is escaped, and the
// offset in the escaped text of every tag boundary is recorded.  Then the
// opening and closing tags are inserted at these offsets.
package render

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/exp/utf8string"

	"seehuhn.de/go/pdfnote/span"
	"seehuhn.de/go/pdfnote/tag"
)

// HTML returns the text of one page as an HTML fragment, with the given
// tags applied.
//
// Tags of the same kind must not overlap (see [tag.Consolidate]); tags of
// different kinds may overlap freely.  Where such tags cross, the inner tag
// is closed and re-opened so that the result is well formed.  Tag spans
// are clipped to the text; tags which are empty after clipping are ignored.
func HTML(text string, tags []tag.Tag) string {
	raw := utf8string.NewString(text)
	n := raw.RuneCount()

	var used []tag.Tag
	for _, t := range tags {
		t.Span = t.Span.Clip(n)
		if t.IsEmpty() {
			continue
		}
		used = append(used, t)
	}

	escaped, remapped := escapeTagged(raw, used)
	return insertMarkers(escaped, used, remapped)
}

// escapeTagged escapes the text, cutting it at every tag boundary.
// The returned spans give the position of every tag in the escaped text,
// in the same order as the tags.  Since the escaped text is pure ASCII,
// byte offsets and character offsets coincide.
func escapeTagged(raw *utf8string.String, tags []tag.Tag) (string, []span.Span) {
	n := raw.RuneCount()

	cuts := make([]int, 0, 2*len(tags)+1)
	for _, t := range tags {
		cuts = append(cuts, t.Start, t.End+1)
	}
	cuts = append(cuts, n)
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	// shift[k] is the difference between the output and the input position
	// at cuts[k].
	shift := make([]int, len(cuts))
	var b strings.Builder
	pos, delta := 0, 0
	for k, cut := range cuts {
		for i := pos; i < cut; i++ {
			before := b.Len()
			writeEscaped(&b, raw.At(i))
			delta += b.Len() - before - 1
		}
		shift[k] = delta
		pos = cut
	}

	outPos := func(i int) int {
		k, _ := slices.BinarySearch(cuts, i)
		return i + shift[k]
	}
	remapped := make([]span.Span, len(tags))
	for i, t := range tags {
		remapped[i] = span.New(outPos(t.Start), outPos(t.End+1)-1)
	}
	return b.String(), remapped
}

// marker is an opening or closing tag, to be inserted into the escaped text
// before the character at index pos.
type marker struct {
	pos   int
	tag   int // index into the list of tags
	close bool
}

// insertMarkers inserts the opening and closing tags into the escaped text.
// At equal positions, closing tags come before opening tags.
func insertMarkers(escaped string, tags []tag.Tag, remapped []span.Span) string {
	// Tags are opened in the order of this function.  Among tags starting
	// at the same position, the longer tag is opened first.
	openOrder := func(i, j int) int {
		return cmp.Or(
			cmp.Compare(tags[i].Start, tags[j].Start),
			-cmp.Compare(tags[i].End, tags[j].End),
			cmp.Compare(i, j),
		)
	}

	markers := make([]marker, 0, 2*len(tags))
	for i, s := range remapped {
		markers = append(markers,
			marker{pos: s.Start, tag: i},
			marker{pos: s.End + 1, tag: i, close: true})
	}
	slices.SortFunc(markers, func(a, b marker) int {
		if c := cmp.Compare(a.pos, b.pos); c != 0 {
			return c
		}
		if a.close != b.close {
			if a.close {
				return -1
			}
			return 1
		}
		if a.close {
			return openOrder(b.tag, a.tag)
		}
		return openOrder(a.tag, b.tag)
	})

	var b strings.Builder
	b.Grow(len(escaped) + 32*len(tags))
	var open []int // stack of open tags
	pos := 0
	for _, m := range markers {
		b.WriteString(escaped[pos:m.pos])
		pos = m.pos

		if !m.close {
			b.WriteString(tags[m.tag].Open())
			open = append(open, m.tag)
			continue
		}

		k := slices.Index(open, m.tag)
		for _, i := range slices.Backward(open[k+1:]) {
			b.WriteString(tags[i].Close())
		}
		b.WriteString(tags[m.tag].Close())
		for _, i := range open[k+1:] {
			b.WriteString(tags[i].Open())
		}
		open = slices.Delete(open, k, k+1)
	}
	b.WriteString(escaped[pos:])
	return b.String()
}
