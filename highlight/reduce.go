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

package highlight

import (
	"cmp"
	"container/heap"
	"fmt"
	"slices"

	"seehuhn.de/go/pdfnote/span"
	"seehuhn.de/go/pdfnote/style"
)

// ColoredSpan is a span of characters together with the style used to show
// it and the category it was taken from.
type ColoredSpan struct {
	span.Span
	Style    style.Style
	Category Category
}

// MalformedSpanError is returned by [Clean] for spans which are empty or
// which do not fit on the page.
type MalformedSpanError struct {
	Category Category
	Span     span.Span
	PageLen  int
}

func (err *MalformedSpanError) Error() string {
	return fmt.Sprintf("malformed %s span %s on page with %d characters",
		err.Category, err.Span, err.PageLen)
}

// Clean removes all spans which are not valid on a page of n characters.
// The valid spans are returned in their original order, together with one
// error for every span which was dropped.
func Clean(spans []ColoredSpan, n int) ([]ColoredSpan, []*MalformedSpanError) {
	var valid []ColoredSpan
	var dropped []*MalformedSpanError
	for _, s := range spans {
		if !s.Span.Valid(n) {
			dropped = append(dropped, &MalformedSpanError{
				Category: s.Category,
				Span:     s.Span,
				PageLen:  n,
			})
			continue
		}
		valid = append(valid, s)
	}
	return valid, dropped
}

// Reduce converts a list of possibly overlapping spans from one category
// into a sorted list of disjoint spans covering the same characters.
//
// The spans are ordered by their start index, keeping the input order for
// spans which start at the same index.  Every character then gets the
// style of the last span in this order which covers it, as if the spans
// were painted one after another.  Neighbouring pieces with equal styles
// are joined.
//
// The input slice is not modified.
func Reduce(spans []ColoredSpan) []ColoredSpan {
	sorted := make([]ColoredSpan, 0, len(spans))
	for _, s := range spans {
		if !s.IsEmpty() {
			sorted = append(sorted, s)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	slices.SortStableFunc(sorted, func(a, b ColoredSpan) int {
		return cmp.Compare(a.Start, b.Start)
	})

	cuts := make([]int, 0, 2*len(sorted))
	for _, s := range sorted {
		cuts = append(cuts, s.Start, s.End+1)
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	// Between two cuts the set of covering spans does not change.  The
	// heap holds the spans started so far, latest in sweep order on top;
	// spans which have ended are removed once they reach the top.
	active := &sweepHeap{}
	var out []ColoredSpan
	next := 0
	for k, cut := range cuts[:len(cuts)-1] {
		for next < len(sorted) && sorted[next].Start == cut {
			heap.Push(active, ranked{ColoredSpan: sorted[next], rank: next})
			next++
		}
		for active.Len() > 0 && (*active)[0].End < cut {
			heap.Pop(active)
		}
		if active.Len() == 0 {
			continue
		}
		piece := (*active)[0].ColoredSpan
		piece.Span = span.New(cut, cuts[k+1]-1)
		out = appendMerged(out, piece)
	}
	return out
}

// appendMerged appends s to out.  If s directly follows the last span in
// out and has the same style, the two are joined instead.
func appendMerged(out []ColoredSpan, s ColoredSpan) []ColoredSpan {
	if len(out) > 0 {
		last := &out[len(out)-1]
		if last.End+1 == s.Start && last.Style.Equal(s.Style) {
			last.End = s.End
			return out
		}
	}
	return append(out, s)
}

// ranked is a span together with its position in sweep order.
type ranked struct {
	ColoredSpan
	rank int
}

// sweepHeap is a max-heap of spans, ordered by rank.
type sweepHeap []ranked

func (h sweepHeap) Len() int           { return len(h) }
func (h sweepHeap) Less(i, j int) bool { return h[i].rank > h[j].rank }
func (h sweepHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *sweepHeap) Push(x any) {
	*h = append(*h, x.(ranked))
}

func (h *sweepHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]
	return x
}
