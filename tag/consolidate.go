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

package tag

import (
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/pdfnote/span"
)

// NonTerminationError is returned if consolidation does not reach a fixed
// point within the number of steps which is guaranteed to suffice.
// This indicates a bug in the consolidation code.
type NonTerminationError struct {
	Kind  Kind
	Tags  int
	Steps int
}

func (err *NonTerminationError) Error() string {
	return fmt.Sprintf("consolidation of %d %s tags did not terminate after %d steps",
		err.Tags, err.Kind, err.Steps)
}

// stepLimit gives the maximal number of work list steps allowed for
// consolidating n tags.
var stepLimit = maxSteps

// Consolidate converts a list of tags of one kind into a sorted list of
// pairwise disjoint tags, where no two adjacent tags have the same style.
//
// Where two tags overlap, the overlap gets the merged style of both tags.
// For properties set by both tags, the value of the tag with the higher
// priority is used; for equal priorities the tag which starts first (or,
// for tags with the same start, ends first) wins.
//
// The input slice is not modified.
func Consolidate(tags []Tag) ([]Tag, error) {
	work := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if !t.Kind.valid() {
			return nil, fmt.Errorf("cannot consolidate tags of unknown kind %s", t.Kind)
		}
		if t.IsEmpty() {
			continue
		}
		if len(work) > 0 && t.Kind != work[0].Kind {
			return nil, fmt.Errorf("cannot consolidate %s and %s tags together",
				work[0].Kind, t.Kind)
		}
		work = append(work, t)
	}
	if len(work) == 0 {
		return nil, nil
	}
	slices.SortStableFunc(work, compareTags)

	limit := stepLimit(len(work))
	c := &consolidator{budget: limit}
	for {
		var changed, ok bool
		work, changed, ok = c.pass(work)
		if !ok {
			return nil, &NonTerminationError{Kind: work[0].Kind, Tags: len(tags), Steps: limit}
		}
		if !changed {
			return work, nil
		}
	}
}

// ConsolidateAll consolidates the tags of every kind separately.
// The result contains the consolidated style tags, followed by the
// consolidated highlight tags.
func ConsolidateAll(tags []Tag) ([]Tag, error) {
	groups := Group(tags)
	for kind := range groups {
		if !kind.valid() {
			return nil, fmt.Errorf("cannot consolidate tags of unknown kind %s", kind)
		}
	}

	var res []Tag
	for _, kind := range Kinds {
		group, err := Consolidate(groups[kind])
		if err != nil {
			return nil, err
		}
		res = append(res, group...)
	}
	return res, nil
}

// maxSteps returns an upper bound for the number of work list steps
// needed to consolidate n tags.  Every step splits two tags, joins two
// tags or emits one tag.
//
// Splitting and joining never introduce new tag boundaries, so all pieces
// are unions of the at most 2n-1 elementary intervals between the original
// boundaries.  Let c be the sum, over all tags, of the number of elementary
// intervals covered.  Every split reduces c by at least one while adding
// at most one tag, and every join removes one tag without changing c.
// Thus 2c + (number of tags) decreases with every split or join; it starts
// at no more than p-1 = 2n(2n-1) + n.  So there are fewer than p splits
// and joins, at most p passes (every pass but the last makes a change),
// and never more than n+p tags in the work list.  Each pass emits every
// tag at most once, which gives the bound p + p(n+p).
func maxSteps(n int) int {
	p := 2*n*(2*n-1) + n + 1
	if p > math.MaxInt/(n+p+1) {
		return math.MaxInt
	}
	return p * (n + p + 1)
}

type consolidator struct {
	budget int
}

// step uses up one unit of the step budget.
// The result is false once the budget is exhausted.
func (c *consolidator) step() bool {
	if c.budget <= 0 {
		return false
	}
	c.budget--
	return true
}

// pass runs one pass over the sorted work list.
// The second return value reports whether any tags were split or joined.
// The third return value is false if the step budget ran out.
func (c *consolidator) pass(work []Tag) ([]Tag, bool, bool) {
	work = slices.Clone(work)
	out := make([]Tag, 0, len(work))
	changed := false

	i := 0
	for i < len(work) {
		if !c.step() {
			return work, changed, false
		}

		cur := work[i]
		if i+1 == len(work) {
			out = append(out, cur)
			break
		}
		next := work[i+1]

		if ov, ok := cur.Overlap(next.Span); ok {
			work = slices.Delete(work, i, i+2)
			for _, piece := range split(cur, next, ov) {
				work = insertSorted(work, i, piece)
			}
			changed = true
			continue
		}

		if cur.Adjacent(next.Span, 0) && cur.Style.Equal(next.Style) {
			joined := cur
			joined.Span = cur.Union(next.Span)
			joined.Priority = max(cur.Priority, next.Priority)
			work[i] = joined
			work = slices.Delete(work, i+1, i+2)
			changed = true
			continue
		}

		out = append(out, cur)
		i++
	}
	return out, changed, true
}

// split divides two overlapping tags into the part covered only by the tag
// which starts first, the overlap, and the part covered only by the tag
// which ends last.
func split(cur, next Tag, ov span.Span) []Tag {
	res := make([]Tag, 0, 3)

	first := cur
	if next.Start < cur.Start {
		first = next
	}
	if first.Start < ov.Start {
		head := first
		head.Span = span.New(first.Start, ov.Start-1)
		res = append(res, head)
	}

	res = append(res, Tag{
		Span:     ov,
		Priority: max(cur.Priority, next.Priority),
		Style:    cur.Style.Merge(next.Style, next.Priority > cur.Priority),
		Kind:     cur.Kind,
	})

	last := cur
	if next.End > cur.End {
		last = next
	}
	if last.End > ov.End {
		tail := last
		tail.Span = span.New(ov.End+1, last.End)
		res = append(res, tail)
	}
	return res
}

// insertSorted inserts t into work, keeping work[from:] sorted.
func insertSorted(work []Tag, from int, t Tag) []Tag {
	idx, _ := slices.BinarySearchFunc(work[from:], t, compareTags)
	return slices.Insert(work, from+idx, t)
}

func compareTags(a, b Tag) int {
	return span.Compare(a.Span, b.Span)
}
