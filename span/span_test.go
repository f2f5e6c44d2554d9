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

import (
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestOverlap(t *testing.T) {
	cases := []struct {
		a, b Span
		want Span
		ok   bool
	}{
		{Span{0, 3}, Span{2, 5}, Span{2, 3}, true},
		{Span{2, 5}, Span{0, 3}, Span{2, 3}, true},
		{Span{0, 3}, Span{3, 3}, Span{3, 3}, true},
		{Span{0, 3}, Span{4, 6}, Span{}, false},
		{Span{0, 10}, Span{4, 6}, Span{4, 6}, true},
		{Span{0, 3}, Span{5, 2}, Span{}, false},
	}
	for _, c := range cases {
		got, ok := c.a.Overlap(c.b)
		if ok != c.ok || got != c.want {
			t.Errorf("%s.Overlap(%s) = %s, %t; want %s, %t", c.a, c.b, got, ok, c.want, c.ok)
		}
	}
}

func TestAdjacent(t *testing.T) {
	cases := []struct {
		a, b Span
		tol  int
		want bool
	}{
		{Span{0, 2}, Span{3, 4}, 0, true},
		{Span{3, 4}, Span{0, 2}, 0, true},
		{Span{0, 2}, Span{4, 5}, 0, false},
		{Span{0, 2}, Span{4, 5}, 1, true},
		{Span{0, 2}, Span{2, 5}, 0, false}, // overlapping
		{Span{0, 2}, Span{2, 5}, 5, false},
		{Span{0, -1}, Span{0, 2}, 0, false}, // empty
	}
	for _, c := range cases {
		got := c.a.Adjacent(c.b, c.tol)
		if got != c.want {
			t.Errorf("%s.Adjacent(%s, %d) = %t, want %t", c.a, c.b, c.tol, got, c.want)
		}
	}
}

func TestUnionContains(t *testing.T) {
	a := Span{0, 3}
	b := Span{2, 5}
	u := a.Union(b)
	if u != (Span{0, 5}) {
		t.Errorf("union = %s", u)
	}
	if !u.Contains(a) || !u.Contains(b) {
		t.Errorf("%s does not contain its parts", u)
	}
	if a.Contains(b) {
		t.Errorf("%s contains %s", a, b)
	}
	if !a.Contains(Span{7, 6}) {
		t.Error("empty span not contained")
	}
	if u.Len() != 6 || (Span{3, 2}).Len() != 0 {
		t.Error("wrong length")
	}
}

func TestValidClip(t *testing.T) {
	if !(Span{0, 4}).Valid(5) {
		t.Error("[0,4] invalid on a page of 5 characters")
	}
	for _, s := range []Span{{0, 5}, {-1, 2}, {3, 2}} {
		if s.Valid(5) {
			t.Errorf("%s valid on a page of 5 characters", s)
		}
	}
	if got := (Span{-3, 10}).Clip(5); got != (Span{0, 4}) {
		t.Errorf("clip = %s", got)
	}
}

func TestCompare(t *testing.T) {
	spans := []Span{{4, 5}, {0, 3}, {0, 1}, {2, 2}}
	slices.SortFunc(spans, Compare)
	want := []Span{{0, 1}, {0, 3}, {2, 2}, {4, 5}}
	if !slices.Equal(spans, want) {
		t.Errorf("sorted = %v, want %v", spans, want)
	}
}

func TestRect(t *testing.T) {
	a := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	b := rect.Rect{LLx: 12, LLy: 2, URx: 20, URy: 8}
	c := rect.Rect{LLx: 5, LLy: 5, URx: 15, URy: 15}
	d := rect.Rect{LLx: 12, LLy: 12, URx: 20, URy: 20}

	if _, ok := RectOverlap(a, b); ok {
		t.Error("a and b overlap")
	}
	if !RectAdjacent(a, b, 2) {
		t.Error("a and b not adjacent with tolerance 2")
	}
	if RectAdjacent(a, b, 1) {
		t.Error("a and b adjacent with tolerance 1")
	}
	if RectAdjacent(a, d, 5) {
		t.Error("diagonal rectangles reported as adjacent")
	}
	ov, ok := RectOverlap(a, c)
	if !ok || ov != (rect.Rect{LLx: 5, LLy: 5, URx: 10, URy: 10}) {
		t.Errorf("overlap = %v, %t", ov, ok)
	}
	u := RectUnion(a, b)
	if !RectContains(u, a) || !RectContains(u, b) {
		t.Errorf("union %v does not contain its parts", u)
	}
}
