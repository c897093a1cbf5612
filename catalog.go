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
	"io"

	"golang.org/x/text/language"
)

// Catalog represents a PDF document catalog, the root of the
// document's object hierarchy.  The only required field is Pages,
// which names the root of the page tree.
//
// The catalog is owned by the [Document]; use [Document.Catalog] to
// modify the optional fields.
type Catalog struct {
	// Pages is the root of the document's page tree.
	Pages Reference

	// Lang (optional) is the natural language of the document's text.
	Lang language.Tag

	// Metadata (optional) refers to the document's XMP metadata stream.
	Metadata Reference

	// Version (optional) specifies the PDF version this document
	// conforms to, if later than the version in the file header.
	Version Version
}

// PDF implements the [Object] interface.
func (c *Catalog) PDF(w io.Writer) error {
	dict := NewDict()
	dict.Set("Type", Name("Catalog"))
	dict.Set("Pages", c.Pages)
	if c.Version.isValid() {
		dict.Set("Version", Name(c.Version.String()))
	}
	if c.Lang != language.Und {
		dict.Set("Lang", TextString(c.Lang.String()))
	}
	if c.Metadata != 0 {
		dict.Set("Metadata", c.Metadata)
	}
	return dict.PDF(w)
}
