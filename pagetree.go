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

// PageTree represents a page tree node.  The children are [Page]
// objects (or, for nested trees, other PageTree nodes), referenced by
// object number; all structural edges are [Reference] values, never
// pointers, so that the [Document] remains the sole owner of the
// nodes.
type PageTree struct {
	// Parent is the immediate parent of this node, or 0 for the root
	// node of the tree.
	Parent Reference

	// Kids lists the immediate children of this node, in document
	// order.
	Kids []Reference

	// Count is the number of page objects which are descendants of
	// this node.
	Count int
}

// PDF implements the [Object] interface.
func (t *PageTree) PDF(w io.Writer) error {
	kids := make(Array, len(t.Kids))
	for i, kid := range t.Kids {
		kids[i] = kid
	}

	dict := NewDict()
	dict.Set("Type", Name("Pages"))
	if t.Parent != 0 {
		dict.Set("Parent", t.Parent)
	}
	dict.Set("Kids", kids)
	dict.Set("Count", Integer(t.Count))
	return dict.PDF(w)
}
