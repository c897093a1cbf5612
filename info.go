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
	"time"
)

// Info represents a PDF document information dictionary.
//
// All fields are optional.  The zero value represents an empty
// information dictionary.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator gives the name of the application that created the
	// original document, if the document was converted to PDF from
	// another format.
	Creator string

	// Producer gives the name of the application that converted the
	// document to PDF.
	Producer string

	// CreationDate gives the date and time the document was created.
	CreationDate time.Time

	// ModDate gives the date and time the document was most recently
	// modified.
	ModDate time.Time
}

// PDF implements the [Object] interface.
func (info *Info) PDF(w io.Writer) error {
	dict := NewDict()
	if info.Title != "" {
		dict.Set("Title", TextString(info.Title))
	}
	if info.Author != "" {
		dict.Set("Author", TextString(info.Author))
	}
	if info.Subject != "" {
		dict.Set("Subject", TextString(info.Subject))
	}
	if info.Keywords != "" {
		dict.Set("Keywords", TextString(info.Keywords))
	}
	if info.Creator != "" {
		dict.Set("Creator", TextString(info.Creator))
	}
	if info.Producer != "" {
		dict.Set("Producer", TextString(info.Producer))
	}
	if !info.CreationDate.IsZero() {
		dict.Set("CreationDate", Date(info.CreationDate))
	}
	if !info.ModDate.IsZero() {
		dict.Set("ModDate", Date(info.ModDate))
	}
	return dict.PDF(w)
}
