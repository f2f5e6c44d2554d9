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

package style

import (
	"strconv"

	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/pdfnote/span"
)

// Run describes the font used for a range of characters on a page.
type Run struct {
	// Start is the index of the first character of the run.
	Start int

	// Length is the number of characters in the run.
	Length int

	FontFamily string
	Italic     bool

	// Weight is the font weight.  The value 0 means that the weight is
	// unknown.
	Weight os2.Weight

	AllCaps bool

	// Fill is the text colour.  Black is treated as the default text colour
	// and not written to the output.
	Fill RGB
}

// Span returns the characters covered by the run.
func (r Run) Span() span.Span {
	return span.FromLength(r.Start, r.Length)
}

// Style returns the CSS declarations needed to reproduce the run.
// Properties which match the default appearance of note text are omitted,
// so the result is empty for a run of plain, regular weight, black text.
func (r Run) Style() Style {
	var s Style
	if r.Italic {
		s = s.With("font-style", "italic")
	}
	if r.Weight != 0 && (r.Weight < os2.WeightLight || r.Weight > os2.WeightMedium) {
		s = s.With("font-weight", strconv.Itoa(int(r.Weight)))
	}
	if r.AllCaps {
		s = s.With("text-transform", "capitalize")
	}
	if !r.Fill.IsZero() {
		s = s.With("color", r.Fill.CSS())
	}
	return s
}

// SameLook reports whether two runs use the same font and colour.
// Unlike a comparison of the styles, this takes the font family into
// account.
func (r Run) SameLook(other Run) bool {
	return r.FontFamily == other.FontFamily && r.Italic == other.Italic &&
		r.Weight == other.Weight && r.AllCaps == other.AllCaps && r.Fill == other.Fill
}
