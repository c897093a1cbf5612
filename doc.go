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

// Package pdfgen generates PDF files from a programmatic object graph.
//
// The package gives fine-grained control over PDF internals.  A
// [Document] owns a set of indirect objects (dictionaries, arrays,
// streams, ...) which refer to each other through [Reference] values,
// and serializes the complete graph to a byte stream in a single
// deterministic pass: header, body, cross-reference table, trailer.
//
// A minimal document:
//
//	doc := pdfgen.NewBuilder().WithPageSize(pdfgen.A4).Build()
//	page, err := doc.CreatePage()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = doc.AppendContent(page, pdfgen.NewStream(nil, ops))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = doc.Write(out)
//
// Higher layers (fonts, images, text layout) are expected to hand the
// document fully-formed values, most commonly streams with pre-encoded
// payloads; the package records and measures those bytes but never
// re-encodes them.
package pdfgen
