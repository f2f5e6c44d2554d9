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

package document

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/pdfnote/compositor"
	"seehuhn.de/go/pdfnote/highlight"
	"seehuhn.de/go/pdfnote/selection"
	"seehuhn.de/go/pdfnote/style"
)

// Request is an export request read from a file: a document together
// with the ranges to highlight.
type Request struct {
	Doc        *Document
	Highlights *compositor.Request

	// Lang is the language of the document text, or [language.Und].
	Lang language.Tag

	// Priorities holds the priorities given in the file.  Categories not
	// listed in the file are missing from the map.
	Priorities highlight.Priorities
}

// Options returns compositor options matching the request.
func (r *Request) Options() *compositor.Options {
	opt := &compositor.Options{Lang: r.Lang}
	if len(r.Priorities) > 0 {
		opt.Priorities = r.Priorities
	}
	return opt
}

// requestFile is the YAML representation of a [Request].
type requestFile struct {
	Lang       string                 `yaml:"lang"`
	Priorities map[string]int         `yaml:"priorities"`
	Pages      []pageFile             `yaml:"pages"`
	Highlights map[string][]rangeFile `yaml:"highlights"`
}

type pageFile struct {
	Text        string    `yaml:"text"`
	Runs        []runFile `yaml:"runs"`
	Unavailable bool      `yaml:"unavailable"`
}

type runFile struct {
	Text    string `yaml:"text"`
	Font    string `yaml:"font"`
	Italic  bool   `yaml:"italic"`
	Weight  int    `yaml:"weight"`
	AllCaps bool   `yaml:"caps"`
	Color   string `yaml:"color"`
}

type rangeFile struct {
	From  position `yaml:"from"`
	To    position `yaml:"to"`
	Color string   `yaml:"color"`
}

// position is a page and character index, written either as the string
// "page:index" or as a two element sequence.
type position selection.Position

func (p *position) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		page, index, ok := strings.Cut(node.Value, ":")
		if !ok {
			return fmt.Errorf("line %d: invalid position %q", node.Line, node.Value)
		}
		var err error
		p.Page, err = strconv.Atoi(strings.TrimSpace(page))
		if err != nil {
			return fmt.Errorf("line %d: invalid page number: %w", node.Line, err)
		}
		p.Index, err = strconv.Atoi(strings.TrimSpace(index))
		if err != nil {
			return fmt.Errorf("line %d: invalid character index: %w", node.Line, err)
		}
		return nil
	case yaml.SequenceNode:
		var pair []int
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: position needs 2 elements, not %d", node.Line, len(pair))
		}
		p.Page, p.Index = pair[0], pair[1]
		return nil
	default:
		return fmt.Errorf("line %d: invalid position", node.Line)
	}
}

// LoadRequest reads an export request from the named YAML file.
func LoadRequest(name string) (*Request, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	req, err := ReadRequest(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return req, nil
}

// ReadRequest reads an export request in YAML format.
//
// Each page is given either as plain text, or as a list of runs.
// Positions are written as "page:index", with pages and characters
// counted from zero:
//
//	lang: en
//	pages:
//	  - text: "plain text"
//	  - runs:
//	      - {text: "bold", weight: 700}
//	      - {text: " and red", color: red}
//	highlights:
//	  annotation:
//	    - {from: "0:0", to: "1:3", color: "#ffff00"}
func ReadRequest(r io.Reader) (*Request, error) {
	var file requestFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, err
	}

	req := &Request{
		Doc:        New(),
		Highlights: &compositor.Request{},
	}

	if file.Lang != "" {
		tag, err := language.Parse(file.Lang)
		if err != nil {
			return nil, fmt.Errorf("lang: %w", err)
		}
		req.Lang = tag
	}

	for name, prio := range file.Priorities {
		c, err := highlight.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("priorities: %w", err)
		}
		if req.Priorities == nil {
			req.Priorities = make(highlight.Priorities)
		}
		req.Priorities[c] = prio
	}

	for i, pf := range file.Pages {
		page := req.Doc.AddPage()
		page.AddText(pf.Text)
		for _, rf := range pf.Runs {
			look := style.Run{
				FontFamily: rf.Font,
				Italic:     rf.Italic,
				Weight:     os2.Weight(rf.Weight),
				AllCaps:    rf.AllCaps,
			}
			if rf.Color != "" {
				col, err := style.ParseColor(rf.Color)
				if err != nil {
					return nil, fmt.Errorf("page %d: %w", i, err)
				}
				look.Fill = col
			}
			page.AddRun(rf.Text, look)
		}
		if pf.Unavailable {
			page.Dispose()
		}
	}

	for name, ranges := range file.Highlights {
		c, err := highlight.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("highlights: %w", err)
		}
		if !c.IsHighlight() {
			return nil, fmt.Errorf("highlights: %s is not a highlight category", c)
		}
		for _, rf := range ranges {
			col, err := style.ParseColor(rf.Color)
			if err != nil {
				return nil, fmt.Errorf("highlights: %s: %w", c, err)
			}
			req.Highlights.Add(c, compositor.Range{
				Start: selection.Position(rf.From),
				End:   selection.Position(rf.To),
				Color: col,
			})
		}
	}

	return req, nil
}
