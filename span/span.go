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

// Package span implements inclusive ranges of character indices on a page.
//
// Both ends of a [Span] are part of the range: the span {2, 4} covers the
// characters with index 2, 3 and 4.  A span with End < Start is empty.
package span

import "fmt"

// Span is the inclusive range [Start, End] of character indices.
type Span struct {
	Start int
	End   int
}

// New returns the span covering the characters start to end (inclusive).
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// FromLength returns the span of n characters starting at start.
// For n <= 0 the result is empty.
func FromLength(start, n int) Span {
	return Span{Start: start, End: start + n - 1}
}

// IsEmpty reports whether the span covers no characters.
func (s Span) IsEmpty() bool {
	return s.End < s.Start
}

// Len returns the number of characters in the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start + 1
}

// Overlap returns the intersection of s and other.
// The second return value is false if the intersection is empty.
func (s Span) Overlap(other Span) (Span, bool) {
	res := Span{Start: max(s.Start, other.Start), End: min(s.End, other.End)}
	if res.IsEmpty() {
		return Span{}, false
	}
	return res, true
}

// Overlaps reports whether s and other share at least one character.
func (s Span) Overlaps(other Span) bool {
	_, ok := s.Overlap(other)
	return ok
}

// Adjacent reports whether s and other are disjoint and separated by at
// most tolerance characters.  For character indices the tolerance is
// normally 0, in which case one span must start right after the other ends.
func (s Span) Adjacent(other Span, tolerance int) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return false
	}
	var gap int
	switch {
	case s.End < other.Start:
		gap = other.Start - s.End - 1
	case other.End < s.Start:
		gap = s.Start - other.End - 1
	default:
		return false
	}
	return gap <= tolerance
}

// Union returns the smallest span containing both s and other.
// The result only equals the set union if the spans overlap or are adjacent.
func (s Span) Union(other Span) Span {
	return Span{Start: min(s.Start, other.Start), End: max(s.End, other.End)}
}

// Contains reports whether every character of other lies in s.
// An empty span is contained in every span.
func (s Span) Contains(other Span) bool {
	if other.IsEmpty() {
		return true
	}
	return s.Start <= other.Start && other.End <= s.End
}

// ContainsIndex reports whether the character with index i lies in s.
func (s Span) ContainsIndex(i int) bool {
	return s.Start <= i && i <= s.End
}

// Shift returns the span moved by delta characters.
func (s Span) Shift(delta int) Span {
	return Span{Start: s.Start + delta, End: s.End + delta}
}

// Clip returns the part of s which lies inside a page of n characters.
func (s Span) Clip(n int) Span {
	return Span{Start: max(s.Start, 0), End: min(s.End, n-1)}
}

// Valid reports whether s is a non-empty span inside a page of n characters.
func (s Span) Valid(n int) bool {
	return s.Start >= 0 && s.Start <= s.End && s.End < n
}

// Compare orders spans by start index, then by end index.
// This is suitable for use with [slices.SortFunc].
func Compare(a, b Span) int {
	if a.Start != b.Start {
		if a.Start < b.Start {
			return -1
		}
		return 1
	}
	if a.End != b.End {
		if a.End < b.End {
			return -1
		}
		return 1
	}
	return 0
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d]", s.Start, s.End)
}
