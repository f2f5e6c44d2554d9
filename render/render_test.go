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

package render

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"seehuhn.de/go/pdfnote/span"
	"seehuhn.de/go/pdfnote/style"
	"seehuhn.de/go/pdfnote/tag"
)

var (
	redMark  = `<mark style="background-color:#ff0000">`
	blueMark = `<mark style="background-color:#0000ff">`
	italic   = `<span style="font-style:italic">`
)

func mark(start, end int, c style.RGB) tag.Tag {
	return tag.Tag{Span: span.New(start, end), Style: style.Background(c), Kind: tag.HighlightTag}
}

func italicRun(start, end int) tag.Tag {
	return tag.Tag{Span: span.New(start, end), Style: style.New("font-style", "italic"), Kind: tag.StyleTag}
}

func TestEscape(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`a<b & "c" 'd'>`, "a&lt;b &amp; &#34;c&#34; &#39;d&#39;&gt;"},
		{"é", "&#233;"},
		{"€1", "&#8364;1"},
		{"𝄞", "&#119070;"},
		{"line\nbreak", "line\n<br/>break"},
		{"hy\uFFFEphen", "hy-<br/>phen"},
	}
	for _, c := range cases {
		if got := Escape(c.in); got != c.out {
			t.Errorf("Escape(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestHTML(t *testing.T) {
	red := style.RGB{R: 255}
	blue := style.RGB{B: 255}

	cases := []struct {
		name string
		text string
		tags []tag.Tag
		want string
	}{
		{
			name: "no tags",
			text: "a < b",
			want: "a &lt; b",
		},
		{
			name: "single tag",
			text: "ABCDE",
			tags: []tag.Tag{mark(1, 3, red)},
			want: "A" + redMark + "BCD</mark>E",
		},
		{
			name: "whole text",
			text: "ABC",
			tags: []tag.Tag{mark(0, 2, red)},
			want: redMark + "ABC</mark>",
		},
		{
			name: "adjacent tags",
			text: "ABCDE",
			tags: []tag.Tag{mark(2, 4, blue), mark(0, 1, red)},
			want: redMark + "AB</mark>" + blueMark + "CDE</mark>",
		},
		{
			name: "shift from escaping",
			text: "éab&c",
			tags: []tag.Tag{mark(1, 2, red), mark(4, 4, blue)},
			want: "&#233;" + redMark + "ab</mark>&amp;" + blueMark + "c</mark>",
		},
		{
			name: "tag around escaped characters",
			text: "x<é>y",
			tags: []tag.Tag{mark(1, 3, red)},
			want: "x" + redMark + "&lt;&#233;&gt;</mark>y",
		},
		{
			name: "newline",
			text: "a\nb",
			tags: []tag.Tag{mark(0, 2, red)},
			want: redMark + "a\n<br/>b</mark>",
		},
		{
			name: "nested kinds",
			text: "ABCDEF",
			tags: []tag.Tag{mark(1, 2, red), italicRun(0, 5)},
			want: italic + "A" + redMark + "BC</mark>DEF</span>",
		},
		{
			name: "same start, longer tag outside",
			text: "ABCDEF",
			tags: []tag.Tag{italicRun(0, 2), mark(0, 5, red)},
			want: redMark + italic + "ABC</span>DEF</mark>",
		},
		{
			name: "crossing kinds",
			text: "ABCDEF",
			tags: []tag.Tag{italicRun(0, 3), mark(2, 5, red)},
			want: italic + "AB" + redMark + "CD</mark></span>" + redMark + "EF</mark>",
		},
		{
			name: "clipped",
			text: "ABC",
			tags: []tag.Tag{mark(1, 10, red), mark(5, 8, blue)},
			want: "A" + redMark + "BC</mark>",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := HTML(c.text, c.tags)
			if got != c.want {
				t.Errorf("got  %s\nwant %s", got, c.want)
			}
		})
	}
}

var (
	tagRegexp    = regexp.MustCompile(`<[^>]*>`)
	entityRegexp = regexp.MustCompile(`&(?:#[0-9]+|amp|lt|gt);`)
)

// plainText removes all markup from a rendered fragment and replaces
// entities by the characters they stand for.
func plainText(fragment string) string {
	text := tagRegexp.ReplaceAllString(fragment, "")
	return entityRegexp.ReplaceAllStringFunc(text, func(e string) string {
		switch e {
		case "&amp;":
			return "&"
		case "&lt;":
			return "<"
		case "&gt;":
			return ">"
		}
		n, _ := strconv.Atoi(e[2 : len(e)-1])
		return string(rune(n))
	})
}

// wellFormed checks that the opening and closing tags in a fragment match.
func wellFormed(fragment string) bool {
	var stack []string
	for _, m := range tagRegexp.FindAllString(fragment, -1) {
		switch {
		case m == "<br/>":
		case strings.HasPrefix(m, "</"):
			name := m[2 : len(m)-1]
			if len(stack) == 0 || stack[len(stack)-1] != name {
				return false
			}
			stack = stack[:len(stack)-1]
		default:
			name, _, _ := strings.Cut(m[1:len(m)-1], " ")
			stack = append(stack, name)
		}
	}
	return len(stack) == 0
}

func FuzzHTML(f *testing.F) {
	f.Add("ABCDE", []byte{0, 2, 0, 2, 4, 1})
	f.Add("é<b>&\n'x'", []byte{1, 3, 0, 0, 8, 1, 4, 6, 2})
	f.Add("Grüße, Welt!", []byte{0, 20, 2, 3, 4, 0})

	f.Fuzz(func(t *testing.T, text string, data []byte) {
		if !utf8.ValidString(text) || strings.ContainsRune(text, SoftHyphen) {
			t.Skip()
		}
		n := utf8.RuneCountInString(text)
		if n == 0 {
			t.Skip()
		}

		// Each group of three bytes describes one tag, or nothing.
		var tags []tag.Tag
		for len(data) >= 3 {
			a, b := int(data[0])%n, int(data[1])%n
			s := span.New(min(a, b), max(a, b))
			switch data[2] % 3 {
			case 0:
				tags = append(tags, mark(s.Start, s.End, style.RGB{R: 255}))
			case 1:
				tags = append(tags, italicRun(s.Start, s.End))
			}
			data = data[3:]
		}
		consolidated, err := tag.ConsolidateAll(tags)
		if err != nil {
			t.Fatal(err)
		}

		out := HTML(text, consolidated)
		if got := plainText(out); got != text {
			t.Errorf("round trip failed: %q -> %q -> %q", text, out, got)
		}
		if !wellFormed(out) {
			t.Errorf("fragment not well formed: %q", out)
		}
	})
}
