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

package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// PageRange selects a range of pages.  Pages are numbered from 1 on the
// command line and from 0 internally.
//
// PageRange implements [flag.Value].  Accepted forms are "all", "N",
// "N-M", "N-" and "-M".
type PageRange struct {
	First int // 0-based, -1 means from the first page
	Last  int // 0-based, -1 means to the last page
}

// AllPages is the page range containing every page.
var AllPages = PageRange{First: -1, Last: -1}

func (r *PageRange) String() string {
	if r == nil {
		return "all"
	}
	switch {
	case r.First == -1 && r.Last == -1:
		return "all"
	case r.First == r.Last:
		return strconv.Itoa(r.First + 1)
	case r.First == -1:
		return fmt.Sprintf("-%d", r.Last+1)
	case r.Last == -1:
		return fmt.Sprintf("%d-", r.First+1)
	default:
		return fmt.Sprintf("%d-%d", r.First+1, r.Last+1)
	}
}

// Set parses a page range.
func (r *PageRange) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "all" {
		*r = AllPages
		return nil
	}

	parse := func(part string) (int, error) {
		if part == "" {
			return -1, nil
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return 0, fmt.Errorf("invalid page number %q", part)
		}
		return n - 1, nil
	}

	from, to, isRange := strings.Cut(s, "-")
	if !isRange {
		if from == "" {
			return fmt.Errorf("empty page range")
		}
		to = from
	}
	first, err := parse(from)
	if err != nil {
		return err
	}
	last, err := parse(to)
	if err != nil {
		return err
	}
	if first != -1 && last != -1 && first > last {
		return fmt.Errorf("invalid page range %q", s)
	}
	r.First, r.Last = first, last
	return nil
}

// Pages returns the 0-based indices of the selected pages in a document
// with n pages.
func (r PageRange) Pages(n int) []int {
	first, last := r.First, r.Last
	if first == -1 {
		first = 0
	}
	if last == -1 || last >= n {
		last = n - 1
	}
	var res []int
	for i := first; i <= last; i++ {
		res = append(res, i)
	}
	return res
}
