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

// Package content provides thin helpers for building page content
// streams: text objects, image placement and colour operators.
//
// The helpers only assemble operator bytes.  Anything requiring font
// metrics, text shaping or image decoding belongs to higher layers;
// the resulting bytes are handed to the core as ordinary streams.
package content

import (
	"bytes"

	pdfgen "github.com/pediferrous/pdfgen-go"
)

// Stream bundles one or more operator fragments into a content stream
// object, separated by newlines.
func Stream(fragments ...[]byte) *pdfgen.Stream {
	return pdfgen.NewStream(nil, bytes.Join(fragments, []byte("\n")))
}
