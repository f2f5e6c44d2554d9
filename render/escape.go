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
	"strconv"
	"strings"
)

// SoftHyphen is the placeholder code point used by the text extraction for
// a hyphen at the end of a line.
const SoftHyphen = '\uFFFE'

// Escape converts raw page text to HTML.
//
// The characters &, <, >, " and ' are replaced by entities and all
// non-ASCII characters by numeric character references, so the result
// consists of ASCII characters only.  Newlines are followed by a <br/>
// element, and the placeholder [SoftHyphen] becomes a hyphen followed by
// <br/>.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		writeEscaped(&b, r)
	}
	return b.String()
}

func writeEscaped(b *strings.Builder, r rune) {
	switch {
	case r == SoftHyphen:
		b.WriteString("-<br/>")
	case r == '\n':
		b.WriteString("\n<br/>")
	case r == '&':
		b.WriteString("&amp;")
	case r == '<':
		b.WriteString("&lt;")
	case r == '>':
		b.WriteString("&gt;")
	case r == '"':
		b.WriteString("&#34;")
	case r == '\'':
		b.WriteString("&#39;")
	case r > 127:
		b.WriteString("&#")
		b.WriteString(strconv.Itoa(int(r)))
		b.WriteByte(';')
	default:
		b.WriteRune(r)
	}
}
