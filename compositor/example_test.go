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

package compositor_test

import (
	"fmt"

	"seehuhn.de/go/pdfnote/compositor"
	"seehuhn.de/go/pdfnote/document"
	"seehuhn.de/go/pdfnote/highlight"
	"seehuhn.de/go/pdfnote/selection"
	"seehuhn.de/go/pdfnote/style"
)

func Example() {
	doc := document.New()
	page := doc.AddPage()
	page.AddText("Hello, ")
	page.AddRun("world", style.Run{Italic: true})
	page.AddText("!")

	req := &compositor.Request{}
	req.Add(highlight.Annotation, compositor.Range{
		Start: selection.Position{Page: 0, Index: 7},
		End:   selection.Position{Page: 0, Index: 11},
		Color: style.RGB{R: 255, G: 255},
	})

	html, err := compositor.New(nil).Page(doc, req, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(html)
	// Output:
	// Hello, <span style="font-style:italic"><mark style="background-color:#ffff00">world</mark></span>!
}
