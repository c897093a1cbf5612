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

// Builder configures and creates a [Document] with the usual skeleton
// already in place: a root page tree and a catalog pointing at it.
type Builder struct {
	version  Version
	pageSize *Rectangle
}

// NewBuilder returns a Builder with default settings: PDF 1.7 and no
// default page size.
func NewBuilder() *Builder {
	return &Builder{version: V1_7}
}

// WithVersion sets the PDF version written to the file header.
func (b *Builder) WithVersion(v Version) *Builder {
	b.version = v
	return b
}

// WithPageSize sets the media box used for pages created without an
// explicit one.
func (b *Builder) WithPageSize(r *Rectangle) *Builder {
	b.pageSize = r
	return b
}

// Build produces the configured document.  The root page tree can be
// retrieved with [Document.RootPageTree]; pages are typically added
// with [Document.CreatePage].
func (b *Builder) Build() *Document {
	d := NewDocument(b.version)
	d.defaultPageSize = b.pageSize
	tree := d.AddPageTree()
	// SetCatalogRoot cannot fail for a tree we just created.
	_ = d.SetCatalogRoot(tree)
	return d
}

// RootPageTree returns the page tree the catalog points at, or 0 if no
// catalog root has been set.
func (d *Document) RootPageTree() Reference {
	if d.catalog == nil {
		return 0
	}
	return d.catalog.Pages
}

// CreatePage adds a page to the document's root page tree, using the
// document's default page size.  It fails with [ErrMissingCatalogRoot]
// if no catalog root has been set.
func (d *Document) CreatePage() (Reference, error) {
	root := d.RootPageTree()
	if root == 0 {
		return 0, &StructuralError{Op: "CreatePage", Err: ErrMissingCatalogRoot}
	}
	return d.AddPage(root, nil)
}
