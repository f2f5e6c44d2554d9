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

package span

import "seehuhn.de/go/geom/rect"

// The functions in this file apply the interval operations to rectangles
// on a page, for example the areas selected for an image extract.  Unlike
// character indices, rectangle coordinates are continuous, so adjacency
// is measured as the distance between the edges.

// RectOverlap returns the intersection of a and b.
// The second return value is false if the rectangles do not intersect
// in a region of positive area.
func RectOverlap(a, b rect.Rect) (rect.Rect, bool) {
	res := rect.Rect{
		LLx: max(a.LLx, b.LLx),
		LLy: max(a.LLy, b.LLy),
		URx: min(a.URx, b.URx),
		URy: min(a.URy, b.URy),
	}
	if res.LLx >= res.URx || res.LLy >= res.URy {
		return rect.Rect{}, false
	}
	return res, true
}

// RectAdjacent reports whether a and b do not overlap, but touch or are
// separated by at most tol units.  Rectangles which are only close at a
// corner, but separated in both directions, are not adjacent.
func RectAdjacent(a, b rect.Rect, tol float64) bool {
	if _, ok := RectOverlap(a, b); ok {
		return false
	}
	dx := max(b.LLx-a.URx, a.LLx-b.URx, 0)
	dy := max(b.LLy-a.URy, a.LLy-b.URy, 0)
	switch {
	case dx == 0:
		return dy <= tol
	case dy == 0:
		return dx <= tol
	default:
		return false
	}
}

// RectUnion returns the smallest rectangle containing both a and b.
func RectUnion(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}

// RectContains reports whether b lies inside a.
func RectContains(a, b rect.Rect) bool {
	return a.LLx <= b.LLx && a.LLy <= b.LLy && b.URx <= a.URx && b.URy <= a.URy
}
