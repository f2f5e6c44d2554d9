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

// Package selection implements text selections which extend over several
// pages of a document.
package selection

import (
	"cmp"
	"fmt"

	"seehuhn.de/go/pdfnote/span"
)

// Pages gives the number of characters on each page of a document.
type Pages interface {
	NumPages() int

	// PageLen returns the number of characters on the given page.
	// Pages which cannot be accessed have length 0.
	PageLen(page int) int
}

// Position identifies a character on a page.
// Both page numbers and character indices start at 0.
type Position struct {
	Page  int
	Index int
}

// Compare orders positions by page, then by character index.
func (p Position) Compare(q Position) int {
	return cmp.Or(cmp.Compare(p.Page, q.Page), cmp.Compare(p.Index, q.Index))
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Page, p.Index)
}

// Direction gives the direction in which a selection is extended.
type Direction int8

// These are the possible directions.
const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Selection is a range of characters, possibly spanning several pages.
// Both ends are included in the selection.  The anchor is the end where
// the selection was started, the head is the end which is moved when the
// selection is extended.
type Selection struct {
	Anchor Position
	Head   Position
}

// Normalize returns the ends of the selection in document order.
func (s Selection) Normalize() (first, last Position) {
	if s.Anchor.Compare(s.Head) <= 0 {
		return s.Anchor, s.Head
	}
	return s.Head, s.Anchor
}

// Contains reports whether the character at p is selected.
func (s Selection) Contains(p Position) bool {
	first, last := s.Normalize()
	return first.Compare(p) <= 0 && p.Compare(last) <= 0
}

// PageSpan is the part of a selection which lies on one page.
type PageSpan struct {
	Page int
	span.Span
}

// PageSpans splits the selection into one span per page.
// Pages between the first and the last page are covered completely.
// Pages where the selection covers no characters are omitted.
//
// The spans are not checked against the length of the first and last page,
// so that a caller can detect ranges which do not fit the document.
func (s Selection) PageSpans(doc Pages) []PageSpan {
	first, last := s.Normalize()

	var res []PageSpan
	for page := first.Page; page <= last.Page; page++ {
		sp, ok := s.onPage(page, first, last, doc.PageLen)
		if !ok {
			continue
		}
		res = append(res, PageSpan{Page: page, Span: sp})
	}
	return res
}

// OnPage returns the part of the selection which lies on the given page,
// where n is the number of characters on that page.  The second return
// value is false if the selection covers no characters on the page.
func (s Selection) OnPage(page, n int) (span.Span, bool) {
	first, last := s.Normalize()
	return s.onPage(page, first, last, func(int) int { return n })
}

func (s Selection) onPage(page int, first, last Position, pageLen func(int) int) (span.Span, bool) {
	if page < first.Page || page > last.Page {
		return span.Span{}, false
	}
	sp := span.New(0, pageLen(page)-1)
	if page == first.Page {
		sp.Start = first.Index
	}
	if page == last.Page {
		sp.End = last.Index
	}
	if sp.IsEmpty() {
		return span.Span{}, false
	}
	return sp, true
}

// ExtendChars moves the head of the selection by n characters in the given
// direction, continuing on the neighbouring pages where necessary.  The
// head stops at the first or last character of the document.  The anchor
// is not changed.
//
// The head is the index of a selected character, so on a page of length L
// a head at index i has L-1-i characters after it (and i before it).
// Moving forward by n characters takes these first; the first character
// of the next page counts as one more step.  For example, with a head at
// index 15 of a 20 character page, moving forward by 4 ends at index 19
// and moving by 10 ends at index 5 of the next page.
func ExtendChars(doc Pages, s Selection, n int, dir Direction) Selection {
	if n <= 0 || doc.NumPages() == 0 {
		return s
	}
	page := min(max(s.Head.Page, 0), doc.NumPages()-1)
	idx := min(max(s.Head.Index, 0), max(doc.PageLen(page)-1, 0))
	last := Position{Page: page, Index: idx}

	remaining := n
	if dir == Forward {
		for {
			avail := max(doc.PageLen(page)-1-idx, 0)
			if remaining <= avail {
				s.Head = Position{Page: page, Index: idx + remaining}
				return s
			}
			remaining -= avail
			if avail > 0 {
				last = Position{Page: page, Index: doc.PageLen(page) - 1}
			}
			if page+1 >= doc.NumPages() {
				s.Head = last
				return s
			}
			page++
			idx = -1
		}
	}

	for {
		avail := max(idx, 0)
		if remaining <= avail {
			s.Head = Position{Page: page, Index: idx - remaining}
			return s
		}
		remaining -= avail
		if avail > 0 {
			last = Position{Page: page, Index: 0}
		}
		if page == 0 {
			s.Head = last
			return s
		}
		page--
		idx = doc.PageLen(page)
	}
}

// ExtendPage moves the head of the selection to the same character index
// on the neighbouring page, or to the last character of that page if the
// page is shorter.  On the first or last page, the head moves to the first
// or last character of the document instead.  The anchor is not changed.
func ExtendPage(doc Pages, s Selection, dir Direction) Selection {
	numPages := doc.NumPages()
	if numPages == 0 {
		return s
	}
	page := min(max(s.Head.Page, 0), numPages-1)

	switch {
	case dir == Forward && page+1 < numPages:
		page++
	case dir == Backward && page > 0:
		page--
	case dir == Forward:
		s.Head = Position{Page: page, Index: max(doc.PageLen(page)-1, 0)}
		return s
	default:
		s.Head = Position{Page: page, Index: 0}
		return s
	}
	idx := min(max(s.Head.Index, 0), max(doc.PageLen(page)-1, 0))
	s.Head = Position{Page: page, Index: idx}
	return s
}
