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

// Version represents a version of the PDF standard.
type Version int

// PDF versions supported by this library.
const (
	_ Version = iota
	V1_4
	V1_5
	V1_6
	V1_7
	V2_0
)

func (v Version) String() string {
	switch v {
	case V1_4:
		return "1.4"
	case V1_5:
		return "1.5"
	case V1_6:
		return "1.6"
	case V1_7:
		return "1.7"
	case V2_0:
		return "2.0"
	default:
		return "unknown"
	}
}

func (v Version) isValid() bool {
	return v >= V1_4 && v <= V2_0
}
