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

// Package document implements an in-memory paginated text document,
// for use with the compositor.
package document

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/exp/utf8string"

	"seehuhn.de/go/pdfnote/compositor"
	"seehuhn.de/go/pdfnote/selection"
	"seehuhn.de/go/pdfnote/style"
)

// ErrPageUnavailable is returned when the text of a page is requested
// which does not exist or which has been disposed.
var ErrPageUnavailable = errors.New("page not available")

// Document is a sequence of pages.
type Document struct {
	Pages []*Page
}

var (
	_ compositor.Document = (*Document)(nil)
	_ selection.Pages     = (*Document)(nil)
)

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// AddPage appends a new, empty page to the document.
func (doc *Document) AddPage() *Page {
	p := &Page{}
	doc.Pages = append(doc.Pages, p)
	return p
}

// NumPages returns the number of pages in the document.
func (doc *Document) NumPages() int {
	return len(doc.Pages)
}

func (doc *Document) page(i int) (*Page, error) {
	if i < 0 || i >= len(doc.Pages) {
		return nil, fmt.Errorf("page %d of %d: %w", i, len(doc.Pages), ErrPageUnavailable)
	}
	return doc.Pages[i], nil
}

// PageText returns the text of page i.
func (doc *Document) PageText(i int) (string, error) {
	p, err := doc.page(i)
	if err != nil {
		return "", err
	}
	text, _, err := p.contents()
	if err != nil {
		return "", fmt.Errorf("page %d: %w", i, err)
	}
	return text, nil
}

// StyleRuns returns the style runs of page i.
func (doc *Document) StyleRuns(i int) ([]style.Run, error) {
	p, err := doc.page(i)
	if err != nil {
		return nil, err
	}
	_, runs, err := p.contents()
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", i, err)
	}
	return runs, nil
}

// PageLen returns the number of characters on page i.
// Unavailable pages have length 0.
func (doc *Document) PageLen(i int) int {
	p, err := doc.page(i)
	if err != nil {
		return 0
	}
	return p.Len()
}

// Quote returns the text covered by a selection.  Page breaks are
// represented by newline characters.  Text on unavailable pages is
// omitted.
func (doc *Document) Quote(sel selection.Selection) string {
	var parts []string
	for _, ps := range sel.PageSpans(doc) {
		text, err := doc.PageText(ps.Page)
		if err != nil {
			continue
		}
		s := utf8string.NewString(text)
		sp := ps.Span.Clip(s.RuneCount())
		if sp.IsEmpty() {
			continue
		}
		parts = append(parts, s.Slice(sp.Start, sp.End+1))
	}
	return strings.Join(parts, "\n")
}

// Page holds the text of one page, split into runs of characters with
// the same look.
//
// A page can be disposed, to release the text while the page is not
// needed.  Disposed pages report [ErrPageUnavailable] until the text is
// restored.
type Page struct {
	mu    sync.RWMutex
	text  strings.Builder
	n     int
	runs  []style.Run
	saved string
	gone  bool
}

// AddRun appends text with the given look to the page.  The Start and
// Length fields of look are ignored.  If the previous run has the same
// look, the text is added to that run.
func (p *Page) AddRun(text string, look style.Run) {
	k := utf8.RuneCountInString(text)
	if k == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	look.Start = p.n
	look.Length = k
	if last := len(p.runs) - 1; last >= 0 && p.runs[last].SameLook(look) {
		p.runs[last].Length += k
	} else {
		p.runs = append(p.runs, look)
	}
	p.text.WriteString(text)
	p.n += k
}

// AddText appends plain text to the page.
func (p *Page) AddText(text string) {
	p.AddRun(text, style.Run{})
}

// Len returns the number of characters on the page.
func (p *Page) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.gone {
		return 0
	}
	return p.n
}

// Dispose releases the text of the page.
func (p *Page) Dispose() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gone {
		return
	}
	p.saved = p.text.String()
	p.text.Reset()
	p.gone = true
}

// Restore makes the text of a disposed page available again.
func (p *Page) Restore() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.gone {
		return
	}
	p.text.WriteString(p.saved)
	p.saved = ""
	p.gone = false
}

func (p *Page) contents() (string, []style.Run, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.gone {
		return "", nil, ErrPageUnavailable
	}
	runs := make([]style.Run, len(p.runs))
	copy(runs, p.runs)
	return p.text.String(), runs, nil
}
