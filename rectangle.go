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

package pdfgen

import (
	"fmt"
	"io"
	"math"
)

// Rectangle represents a PDF rectangle, given by the coordinates of
// two diagonally opposite corners in default user space units.
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

// Common paper sizes, in PDF default user space units.
var (
	A4     = &Rectangle{URx: 595.276, URy: 841.890}
	A5     = &Rectangle{URx: 419.528, URy: 595.276}
	Letter = &Rectangle{URx: 612, URy: 792}
	Legal  = &Rectangle{URx: 612, URy: 1008}
)

// Millimeters converts a length in millimeters to default user space
// units (1/72 inch).
func Millimeters(mm float64) float64 {
	return mm * 72 / 25.4
}

func (rect *Rectangle) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", rect.LLx, rect.LLy, rect.URx, rect.URy)
}

// PDF implements the [Object] interface.
func (rect *Rectangle) PDF(w io.Writer) error {
	res := Array{}
	for _, x := range []float64{rect.LLx, rect.LLy, rect.URx, rect.URy} {
		x = math.Round(100*x) / 100
		res = append(res, Number(x))
	}
	return res.PDF(w)
}

// IsZero is true if the rectangle is the zero rectangle.
func (rect *Rectangle) IsZero() bool {
	return rect.LLx == 0 && rect.LLy == 0 && rect.URx == 0 && rect.URy == 0
}

// Dx returns the width of the rectangle.
func (rect *Rectangle) Dx() float64 {
	return rect.URx - rect.LLx
}

// Dy returns the height of the rectangle.
func (rect *Rectangle) Dy() float64 {
	return rect.URy - rect.LLy
}
