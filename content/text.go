// pdfgen-go - a low-level library for generating PDF files
// Copyright (C) 2026  The pdfgen-go authors
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

package content

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/geom/vec"

	pdfgen "github.com/pediferrous/pdfgen-go"
)

// Text describes a single text object: one string shown at a fixed
// position with a named font resource.
type Text struct {
	// Font is the resource name a page maps to a font dictionary,
	// e.g. "F1".
	Font pdfgen.Name

	// Size is the font size, in user space units.
	Size float64

	// Pos is the position of the text's start point.
	Pos vec.Vec2

	// Value is the text to show.
	Value string
}

// Operators returns the operator bytes of the text object
// (BT ... Tf ... Td ... Tj ... ET).
func (t *Text) Operators() []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("BT\n")
	mustWrite(buf, t.Font)
	fmt.Fprintf(buf, " %s Tf\n", num(t.Size))
	fmt.Fprintf(buf, "%s %s Td\n", num(t.Pos.X), num(t.Pos.Y))
	mustWrite(buf, pdfgen.TextString(t.Value))
	buf.WriteString(" Tj\nET")
	return buf.Bytes()
}

// Stream returns the text object as a ready-to-append content stream.
func (t *Text) Stream() *pdfgen.Stream {
	return pdfgen.NewStream(nil, t.Operators())
}

func num(x float64) string {
	return format(pdfgen.Number(x))
}

func format(obj pdfgen.Object) string {
	buf := &bytes.Buffer{}
	mustWrite(buf, obj)
	return buf.String()
}

func mustWrite(buf *bytes.Buffer, obj pdfgen.Object) {
	err := obj.PDF(buf)
	if err != nil {
		// writes to a bytes.Buffer cannot fail, and the operands used
		// here are always representable
		panic(err)
	}
}
