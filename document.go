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

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Document is an in-memory PDF document under construction.  It owns
// every indirect object of the file, stored in an arena indexed by
// object number, and is the single source of truth for object
// identity: all cross-object edges are [Reference] values which are
// resolved against the arena only when the document is written.
//
// A Document is not safe for concurrent use.  It is exclusively owned
// and mutated by the goroutine constructing the graph.
type Document struct {
	// Version is the PDF version written to the file header.
	Version Version

	objects map[Reference]Object
	lastRef uint32

	catalog    *Catalog
	catalogRef Reference
	infoRef    Reference

	trees map[Reference]*PageTree
	pages map[Reference]*Page

	defaultPageSize *Rectangle
}

// NewDocument creates a new, empty document using the given PDF
// version.  A version outside the supported range falls back to
// [V1_7]; the choice only affects the file header, never the bytes of
// the body.
func NewDocument(v Version) *Document {
	if !v.isValid() {
		v = V1_7
	}
	return &Document{
		Version: v,
		objects: make(map[Reference]Object),
		trees:   make(map[Reference]*PageTree),
		pages:   make(map[Reference]*Page),
	}
}

// Alloc allocates an object number for an indirect object.  Numbers
// are strictly increasing, starting at 1; object number 0 is reserved
// for the head of the cross-reference free list.  The generation
// number is always 0, since incremental update is not supported.
//
// Every allocated number must be filled in with [Document.Put] before
// the document is written.
func (d *Document) Alloc() Reference {
	d.lastRef++
	return NewReference(d.lastRef, 0)
}

// Put stores obj as the indirect object named by ref.  The reference
// must have been obtained from [Document.Alloc].
func (d *Document) Put(ref Reference, obj Object) error {
	if ref.Number() == 0 || ref.Number() > d.lastRef || ref.Generation() != 0 {
		return &StructuralError{Op: "Put", Ref: ref, Err: ErrDanglingReference}
	}
	d.objects[ref] = obj
	return nil
}

// AddObject allocates an object number for obj and stores it in the
// document.  The returned reference can be used to refer to the object
// from other parts of the graph.
func (d *Document) AddObject(obj Object) Reference {
	ref := d.Alloc()
	d.objects[ref] = obj
	return ref
}

// Get returns the indirect object named by ref, if any.  The lookup is
// pure: it never modifies the document.
func (d *Document) Get(ref Reference) (Object, bool) {
	obj, ok := d.objects[ref]
	return obj, ok
}

// References returns the references of all indirect objects currently
// in the document, in ascending object number order.
func (d *Document) References() []Reference {
	refs := maps.Keys(d.objects)
	slices.Sort(refs)
	return refs
}

// AddPageTree creates a new page tree node in the document and returns
// its reference.
func (d *Document) AddPageTree() Reference {
	tree := &PageTree{}
	ref := d.AddObject(tree)
	d.trees[ref] = tree
	return ref
}

// AddPage creates a new page under the given page tree.  The media box
// may be nil, in which case the document's default page size (if any)
// is used.
//
// If parent does not name a page tree present in this document, the
// call fails with [ErrDetachedParent] and no object number is
// consumed.
func (d *Document) AddPage(parent Reference, mediaBox *Rectangle) (Reference, error) {
	tree, ok := d.trees[parent]
	if !ok {
		return 0, &StructuralError{Op: "AddPage", Ref: parent, Err: ErrDetachedParent}
	}

	if mediaBox == nil {
		mediaBox = d.defaultPageSize
	}
	page := &Page{
		Parent:   parent,
		MediaBox: mediaBox,
	}
	ref := d.AddObject(page)
	d.pages[ref] = page
	tree.Kids = append(tree.Kids, ref)
	tree.Count++
	return ref, nil
}

// SetCatalogRoot makes the given page tree the root of the document's
// page hierarchy.  The first call creates the catalog; later calls
// re-point it.
func (d *Document) SetCatalogRoot(tree Reference) error {
	if _, ok := d.trees[tree]; !ok {
		return &StructuralError{Op: "SetCatalogRoot", Ref: tree, Err: ErrDetachedParent}
	}
	if d.catalog == nil {
		d.catalog = &Catalog{}
		d.catalogRef = d.AddObject(d.catalog)
	}
	d.catalog.Pages = tree
	return nil
}

// Catalog gives access to the document catalog, for setting optional
// entries such as the language or the metadata stream.  It returns nil
// until a catalog root has been set.
func (d *Document) Catalog() *Catalog {
	return d.catalog
}

// AppendContent adds a content stream to the given page.  The stream
// is registered as an indirect object and its reference is appended to
// the page's content list.
//
// The payload must already carry any encoding declared by the stream
// dictionary's /Filter entry; the core stores and measures the bytes,
// it does not validate or re-encode them.
func (d *Document) AppendContent(page Reference, s *Stream) (Reference, error) {
	p, ok := d.pages[page]
	if !ok {
		return 0, &StructuralError{Op: "AppendContent", Ref: page, Err: ErrDanglingReference}
	}
	ref := d.AddObject(s)
	p.Contents = append(p.Contents, ref)
	return ref, nil
}

// SetMediaBox replaces the media box of the given page.
func (d *Document) SetMediaBox(page Reference, mediaBox *Rectangle) error {
	p, ok := d.pages[page]
	if !ok {
		return &StructuralError{Op: "SetMediaBox", Ref: page, Err: ErrDanglingReference}
	}
	p.MediaBox = mediaBox
	return nil
}

// SetPageResource registers a named resource on the given page, e.g.
//
//	d.SetPageResource(page, "Font", "F1", fontRef)
//
// category is the resource class (Font, XObject, ColorSpace, ...), and
// name is the token by which the page's content streams refer to the
// resource.
func (d *Document) SetPageResource(page Reference, category, name Name, val Object) error {
	p, ok := d.pages[page]
	if !ok {
		return &StructuralError{Op: "SetPageResource", Ref: page, Err: ErrDanglingReference}
	}
	if p.Resources == nil {
		p.Resources = NewDict()
	}
	group, _ := p.Resources.Get(category)
	groupDict, ok := group.(*Dict)
	if !ok {
		groupDict = NewDict()
		p.Resources.Set(category, groupDict)
	}
	groupDict.Set(name, val)
	return nil
}

// AddFont registers a font dictionary in the document and returns its
// reference.  Only the dictionary is written; font programs and
// metrics are the business of higher layers.
func (d *Document) AddFont(subtype, baseFont Name) Reference {
	dict := NewDict()
	dict.Set("Type", Name("Font"))
	dict.Set("Subtype", subtype)
	dict.Set("BaseFont", baseFont)
	return d.AddObject(dict)
}

// SetInfo sets the document information dictionary, written as its own
// indirect object and referenced from the trailer.
func (d *Document) SetInfo(info *Info) Reference {
	if d.infoRef == 0 {
		d.infoRef = d.Alloc()
	}
	d.objects[d.infoRef] = info
	return d.infoRef
}

// SetMetadata attaches an XMP metadata stream (already registered in
// the document) to the catalog.
func (d *Document) SetMetadata(ref Reference) error {
	if d.catalog == nil {
		return &StructuralError{Op: "SetMetadata", Err: ErrMissingCatalogRoot}
	}
	if _, ok := d.objects[ref]; !ok {
		return &StructuralError{Op: "SetMetadata", Ref: ref, Err: ErrDanglingReference}
	}
	d.catalog.Metadata = ref
	return nil
}

// Write serializes the document to w in a single pass: header, every
// indirect object in ascending object number order, cross-reference
// table, trailer, end-of-file marker.
//
// Before any byte is written, the graph reachable from the catalog is
// checked for closure; a reference which does not resolve to a
// registered object aborts the write with [ErrDanglingReference].
//
// Write does not mutate the document.  It may be called any number of
// times and yields byte-identical output on each call.
func (d *Document) Write(w io.Writer) error {
	if d.catalog == nil || d.catalog.Pages == 0 {
		return &StructuralError{Op: "Write", Err: ErrMissingCatalogRoot}
	}

	if err := d.checkClosure(); err != nil {
		return err
	}

	pw := newWriter(w, d.Version)
	if err := pw.writeHeader(); err != nil {
		return err
	}
	for n := uint32(1); n <= d.lastRef; n++ {
		ref := NewReference(n, 0)
		if err := pw.writeObject(ref, d.objects[ref]); err != nil {
			return err
		}
	}
	if err := pw.writeXRefTable(); err != nil {
		return err
	}
	return pw.writeTrailer(d.catalogRef, d.infoRef)
}

// checkClosure verifies that every allocated object number is filled
// in and that the graph reachable from the catalog contains no
// dangling references.
func (d *Document) checkClosure() error {
	// Allocation is strictly sequential, so a number without an object
	// can only come from an Alloc that was never followed by Put.
	for n := uint32(1); n <= d.lastRef; n++ {
		ref := NewReference(n, 0)
		if _, ok := d.objects[ref]; !ok {
			return &StructuralError{Op: "Write", Ref: ref, Err: ErrDanglingReference}
		}
	}

	seen := make(map[Reference]bool)
	var walk func(obj Object) error
	walk = func(obj Object) error {
		switch x := obj.(type) {
		case Reference:
			if seen[x] {
				return nil
			}
			seen[x] = true
			target, ok := d.objects[x]
			if !ok {
				return &StructuralError{Op: "Write", Ref: x, Err: ErrDanglingReference}
			}
			return walk(target)
		case Array:
			for _, elem := range x {
				if err := walk(elem); err != nil {
					return err
				}
			}
		case *Dict:
			for _, key := range x.Keys() {
				val, _ := x.Get(key)
				if err := walk(val); err != nil {
					return err
				}
			}
		case *Stream:
			return walk(x.Dict)
		case *Catalog:
			if err := walk(x.Pages); err != nil {
				return err
			}
			if x.Metadata != 0 {
				return walk(x.Metadata)
			}
		case *PageTree:
			if x.Parent != 0 {
				if err := walk(x.Parent); err != nil {
					return err
				}
			}
			for _, kid := range x.Kids {
				if err := walk(kid); err != nil {
					return err
				}
			}
		case *Page:
			if err := walk(x.Parent); err != nil {
				return err
			}
			if err := walk(x.Resources); err != nil {
				return err
			}
			for _, c := range x.Contents {
				if err := walk(c); err != nil {
					return err
				}
			}
		}
		return nil
	}

	return walk(d.catalogRef)
}
