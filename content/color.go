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

import "fmt"

// Colour operators for the device colour spaces.  All components are
// in the range 0 to 1.

// FillRGB returns the operator bytes which set the fill colour in the
// DeviceRGB colour space.
func FillRGB(r, g, b float64) []byte {
	return []byte(fmt.Sprintf("%s %s %s rg", num(r), num(g), num(b)))
}

// StrokeRGB returns the operator bytes which set the stroke colour in
// the DeviceRGB colour space.
func StrokeRGB(r, g, b float64) []byte {
	return []byte(fmt.Sprintf("%s %s %s RG", num(r), num(g), num(b)))
}

// FillGray returns the operator bytes which set the fill colour in the
// DeviceGray colour space.
func FillGray(gray float64) []byte {
	return []byte(fmt.Sprintf("%s g", num(gray)))
}

// StrokeGray returns the operator bytes which set the stroke colour in
// the DeviceGray colour space.
func StrokeGray(gray float64) []byte {
	return []byte(fmt.Sprintf("%s G", num(gray)))
}

// FillCMYK returns the operator bytes which set the fill colour in the
// DeviceCMYK colour space.
func FillCMYK(c, m, y, k float64) []byte {
	return []byte(fmt.Sprintf("%s %s %s %s k", num(c), num(m), num(y), num(k)))
}

// StrokeCMYK returns the operator bytes which set the stroke colour in
// the DeviceCMYK colour space.
func StrokeCMYK(c, m, y, k float64) []byte {
	return []byte(fmt.Sprintf("%s %s %s %s K", num(c), num(m), num(y), num(k)))
}
