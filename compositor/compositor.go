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

// Package compositor combines the text of PDF pages with style runs and
// highlighted ranges into HTML fragments.
//
// For every page, the ranges of each category are reduced to disjoint
// spans (see [highlight.Reduce]), converted to tags, consolidated per tag
// kind (see [tag.Consolidate]) and finally inserted into the escaped page
// text (see [render.HTML]).
package compositor

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdfnote/highlight"
	"seehuhn.de/go/pdfnote/render"
	"seehuhn.de/go/pdfnote/selection"
	"seehuhn.de/go/pdfnote/span"
	"seehuhn.de/go/pdfnote/style"
	"seehuhn.de/go/pdfnote/tag"
)

// Document gives access to the text of a paginated document.
//
// Character indices used by the compositor count Unicode code points in
// the string returned by PageText.
type Document interface {
	NumPages() int

	// PageText returns the text of the given page.  An error indicates
	// that the page is currently not available.
	PageText(page int) (string, error)

	// StyleRuns returns the style runs of the given page.  Where runs
	// overlap, later runs take precedence.
	StyleRuns(page int) ([]style.Run, error)
}

// Range is a highlighted range of text, which may span several pages.
// Both end points are included in the range.
type Range struct {
	Start, End selection.Position
	Color      style.RGB
}

// Selection returns the range as a selection.
func (r Range) Selection() selection.Selection {
	return selection.Selection{Anchor: r.Start, Head: r.End}
}

// Request lists the highlighted ranges for one export.
//
// Ranges within one category are processed in order: where ranges of the
// same category overlap, the later range determines the colour.
type Request struct {
	Highlights map[highlight.Category][]Range
}

// Add appends a highlighted range to the request.
func (r *Request) Add(c highlight.Category, rng Range) {
	if r.Highlights == nil {
		r.Highlights = make(map[highlight.Category][]Range)
	}
	r.Highlights[c] = append(r.Highlights[c], rng)
}

// Options control the output of a [Compositor].
// The zero value is valid.
type Options struct {
	// Priorities decides between overlapping highlights of different
	// categories.  If this is nil, [highlight.DefaultPriorities] is used.
	Priorities highlight.Priorities

	// Lang, if set, is emitted as the lang attribute of the page
	// containers written by [Compositor.Document].
	Lang language.Tag

	// Logger receives warnings about dropped spans and unavailable pages.
	// If this is nil, [slog.Default] is used.
	Logger *slog.Logger
}

// Compositor renders pages to HTML.
//
// A Compositor holds no mutable state and can be used concurrently.
type Compositor struct {
	prio   highlight.Priorities
	lang   language.Tag
	logger *slog.Logger
}

// New returns a compositor using the given options.
// The options are copied, later changes have no effect on the compositor.
func New(opt *Options) *Compositor {
	if opt == nil {
		opt = &Options{}
	}
	c := &Compositor{
		prio:   maps.Clone(opt.Priorities),
		lang:   opt.Lang,
		logger: opt.Logger,
	}
	if c.prio == nil {
		c.prio = maps.Clone(highlight.DefaultPriorities)
	}
	return c
}

func (c *Compositor) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// Page returns the HTML fragment for one page of doc.
//
// Malformed spans are dropped and reported to the logger.  If the page
// text cannot be obtained, the page is rendered as the empty string.  The
// only error returned is a [*tag.NonTerminationError], if consolidation of
// the tags fails.
func (c *Compositor) Page(doc Document, req *Request, page int) (string, error) {
	text, err := doc.PageText(page)
	if err != nil {
		c.log().Warn("page unavailable", "page", page, "error", err)
		return "", nil
	}
	n := utf8.RuneCountInString(text)

	spans := c.collect(doc, req, page, n)

	var tags []tag.Tag
	for _, cat := range highlight.Categories {
		valid, dropped := highlight.Clean(spans[cat], n)
		for _, err := range dropped {
			c.log().Warn("dropping span", "page", page, "error", err)
		}
		tags = append(tags, tag.FromSpans(highlight.Reduce(valid), c.prio)...)
	}

	tags, err = tag.ConsolidateAll(tags)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", page, err)
	}
	return render.HTML(text, tags), nil
}

// collect gathers the spans of all categories on one page of n characters.
func (c *Compositor) collect(doc Document, req *Request, page, n int) map[highlight.Category][]highlight.ColoredSpan {
	spans := make(map[highlight.Category][]highlight.ColoredSpan)

	runs, err := doc.StyleRuns(page)
	if err != nil {
		c.log().Warn("style runs unavailable", "page", page, "error", err)
	}
	for _, run := range runs {
		if run.Length == 0 {
			continue
		}
		spans[highlight.StyleRun] = append(spans[highlight.StyleRun], highlight.ColoredSpan{
			Span:     run.Span(),
			Style:    run.Style(),
			Category: highlight.StyleRun,
		})
	}

	if req == nil {
		return spans
	}
	for cat, ranges := range req.Highlights {
		if !cat.IsHighlight() {
			c.log().Warn("ignoring ranges of non-highlight category", "category", cat)
			continue
		}
		for _, rng := range ranges {
			sel := rng.Selection()
			first, last := sel.Normalize()
			if page < first.Page || page > last.Page {
				continue
			}
			if first.Page == last.Page {
				// Single page ranges are passed on unchanged, so that
				// malformed ranges are reported by [highlight.Clean].
				spans[cat] = append(spans[cat], highlight.ColoredSpan{
					Span:     span.New(first.Index, last.Index),
					Style:    style.Background(rng.Color),
					Category: cat,
				})
				continue
			}
			if err := checkEndpoints(doc, cat, first, last, page, n); err != nil {
				c.log().Warn("dropping span", "page", page,
					"from", first, "to", last, "error", err)
				continue
			}
			sp, ok := sel.OnPage(page, n)
			if !ok {
				continue
			}
			spans[cat] = append(spans[cat], highlight.ColoredSpan{
				Span:     sp,
				Style:    style.Background(rng.Color),
				Category: cat,
			})
		}
	}
	return spans
}

// checkEndpoints verifies that both ends of a multi-page range lie inside
// their pages.  The current page, of n characters, is not fetched again.
// Ends on pages which are currently unavailable cannot be checked and are
// accepted.
func checkEndpoints(doc Document, cat highlight.Category, first, last selection.Position, page, n int) error {
	pageLen := func(p int) (int, bool) {
		if p == page {
			return n, true
		}
		if p < 0 || p >= doc.NumPages() {
			return 0, true
		}
		text, err := doc.PageText(p)
		if err != nil {
			return 0, false
		}
		return utf8.RuneCountInString(text), true
	}

	if k, ok := pageLen(first.Page); ok && (first.Index < 0 || first.Index >= k) {
		return &highlight.MalformedSpanError{
			Category: cat,
			Span:     span.New(first.Index, k-1),
			PageLen:  k,
		}
	}
	if k, ok := pageLen(last.Page); ok && (last.Index < 0 || last.Index >= k) {
		return &highlight.MalformedSpanError{
			Category: cat,
			Span:     span.New(0, last.Index),
			PageLen:  k,
		}
	}
	return nil
}

// Document renders the given pages of doc.  Every page is wrapped in a
// div element with class "page".  If pages is nil, all pages are rendered.
func (c *Compositor) Document(doc Document, req *Request, pages []int) (string, error) {
	if pages == nil {
		pages = make([]int, doc.NumPages())
		for i := range pages {
			pages[i] = i
		}
	}

	var b strings.Builder
	for _, page := range pages {
		frag, err := c.Page(doc, req, page)
		if err != nil {
			return "", err
		}
		b.WriteString(c.openPage(page))
		b.WriteString(frag)
		b.WriteString("</div>\n")
	}
	return b.String(), nil
}

func (c *Compositor) openPage(page int) string {
	attrs := []string{
		`class="page"`,
		fmt.Sprintf(`data-page="%d"`, page+1),
	}
	if c.lang != language.Und {
		attrs = append(attrs, `lang="`+c.lang.String()+`"`)
	}
	return "<div " + strings.Join(attrs, " ") + ">"
}

// Priorities returns a copy of the priority table used by c.
func (c *Compositor) Priorities() highlight.Priorities {
	return maps.Clone(c.prio)
}

// Pages returns the indices of all pages touched by the request,
// in increasing order.
func (req *Request) Pages() []int {
	var res []int
	for _, ranges := range req.Highlights {
		for _, rng := range ranges {
			first, last := rng.Selection().Normalize()
			for p := first.Page; p <= last.Page; p++ {
				res = append(res, p)
			}
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}
