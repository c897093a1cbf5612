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

import "io"

// Page represents a single page of the document, a leaf of the page
// tree.  Pages are owned by the [Document]; other code holds only the
// page's [Reference] and mutates the page through Document methods.
type Page struct {
	// Parent is the page tree node this page belongs to.
	Parent Reference

	// MediaBox defines the boundaries of the physical medium on which
	// the page is displayed or printed.
	MediaBox *Rectangle

	// Contents lists the page's content streams, in paint order.
	Contents []Reference

	// Resources enumerates the named resources needed by the page's
	// content streams, grouped by category (Font, XObject, ColorSpace,
	// ...).  An empty resource dictionary is written inline; it is not
	// an indirect object of its own.
	Resources *Dict
}

// PDF implements the [Object] interface.
func (p *Page) PDF(w io.Writer) error {
	dict := NewDict()
	dict.Set("Type", Name("Page"))
	dict.Set("Parent", p.Parent)

	res := p.Resources
	if res == nil {
		res = NewDict()
	}
	dict.Set("Resources", res)

	if p.MediaBox != nil {
		dict.Set("MediaBox", p.MediaBox)
	}
	switch len(p.Contents) {
	case 0:
		// a page without content streams is valid
	case 1:
		dict.Set("Contents", p.Contents[0])
	default:
		contents := make(Array, len(p.Contents))
		for i, ref := range p.Contents {
			contents[i] = ref
		}
		dict.Set("Contents", contents)
	}
	return dict.PDF(w)
}
