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

	"seehuhn.de/go/geom/matrix"

	pdfgen "github.com/pediferrous/pdfgen-go"
)

// Image describes an image XObject.  The sample data must already be
// encoded in the form the Filter (if any) expects; the package does no
// image decoding or re-encoding.
type Image struct {
	Width, Height int

	// ColorSpace names the colour space of the samples,
	// e.g. "DeviceRGB" or "DeviceGray".
	ColorSpace pdfgen.Name

	// BitsPerComponent is the number of bits per colour component,
	// usually 8.
	BitsPerComponent int

	// Filter, if non-empty, names the filter the sample data is
	// encoded with, e.g. "DCTDecode" for JPEG data.
	Filter pdfgen.Name

	// Data holds the (possibly encoded) sample bytes.
	Data []byte
}

// XObject returns the image as a stream object, ready to be added to a
// document and registered as a page resource under the "XObject"
// category.
func (img *Image) XObject() *pdfgen.Stream {
	dict := pdfgen.NewDict()
	dict.Set("Type", pdfgen.Name("XObject"))
	dict.Set("Subtype", pdfgen.Name("Image"))
	dict.Set("Width", pdfgen.Integer(img.Width))
	dict.Set("Height", pdfgen.Integer(img.Height))
	dict.Set("ColorSpace", img.ColorSpace)
	dict.Set("BitsPerComponent", pdfgen.Integer(img.BitsPerComponent))
	if img.Filter != "" {
		dict.Set("Filter", img.Filter)
	}
	return pdfgen.NewStream(dict, img.Data)
}

// Draw returns the operator bytes which paint the image resource name
// transformed by M.  Image XObjects occupy the unit square, so M
// normally combines a scale to the desired size with a translation to
// the desired position, for example
//
//	matrix.Scale(w, h).Mul(matrix.Translate(x, y))
func Draw(name pdfgen.Name, M matrix.Matrix) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("q\n")
	fmt.Fprintf(buf, "%s %s %s %s %s %s cm\n",
		num(M[0]), num(M[1]), num(M[2]), num(M[3]), num(M[4]), num(M[5]))
	mustWrite(buf, name)
	buf.WriteString(" Do\nQ")
	return buf.Bytes()
}
