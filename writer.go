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
	"fmt"
	"io"
)

// writeState tracks the writer's progress through the fixed section
// order of a PDF file.  States advance strictly forward; driving a
// stage out of order or a second time fails with ErrAlreadyWritten.
type writeState int

const (
	stateHeader writeState = iota
	stateBody
	stateXRef
	stateTrailer
	stateDone
)

func (s writeState) String() string {
	switch s {
	case stateHeader:
		return "header"
	case stateBody:
		return "body"
	case stateXRef:
		return "cross-reference table"
	case stateTrailer:
		return "trailer"
	case stateDone:
		return "done"
	default:
		return "invalid"
	}
}

// writer emits one PDF file, top to bottom, in a single pass.  It
// tracks the byte offset of every indirect object for the
// cross-reference table.  A writer is one-shot: Document.Write creates
// a fresh instance for every call.
type writer struct {
	w     *posWriter
	ver   Version
	xref  *crossReferenceTable
	state writeState

	// xrefPos is the byte offset of the "xref" keyword, recorded when
	// the table is written and reported in the trailer.
	xrefPos int64
}

func newWriter(w io.Writer, ver Version) *writer {
	return &writer{
		w:    &posWriter{w: w},
		ver:  ver,
		xref: newCrossReferenceTable(),
	}
}

func (pw *writer) advance(from, to writeState) error {
	if pw.state != from {
		return &StructuralError{
			Op:  "write " + to.String(),
			Err: ErrAlreadyWritten,
		}
	}
	pw.state = to
	return nil
}

// writeHeader emits the version marker followed by a comment line of
// high-bit bytes, so that transfer tools treat the file as binary.
func (pw *writer) writeHeader() error {
	if err := pw.advance(stateHeader, stateBody); err != nil {
		return err
	}
	_, err := fmt.Fprintf(pw.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", pw.ver)
	return err
}

// writeObject records the current byte offset for ref and emits the
// object as an indirect object block.
func (pw *writer) writeObject(ref Reference, obj Object) error {
	if pw.state != stateBody {
		return &StructuralError{Op: "write body", Ref: ref, Err: ErrAlreadyWritten}
	}

	pw.xref.add(ref.Number(), pw.w.pos, ref.Generation())

	_, err := fmt.Fprintf(pw.w, "%d %d obj\n", ref.Number(), ref.Generation())
	if err != nil {
		return err
	}
	if err := obj.PDF(pw.w); err != nil {
		return err
	}
	_, err = pw.w.Write([]byte("\nendobj\n"))
	return err
}

// writeXRefTable emits the cross-reference section for all objects
// written so far, remembering its own byte offset for the trailer.
func (pw *writer) writeXRefTable() error {
	if err := pw.advance(stateBody, stateXRef); err != nil {
		return err
	}
	pw.xrefPos = pw.w.pos
	if err := pw.xref.write(pw.w); err != nil {
		return err
	}
	pw.state = stateTrailer
	return nil
}

// writeTrailer emits the trailer dictionary, the startxref offset and
// the end-of-file marker.
func (pw *writer) writeTrailer(root, info Reference) error {
	if err := pw.advance(stateTrailer, stateDone); err != nil {
		return err
	}
	if root == 0 {
		return &StructuralError{Op: "write trailer", Err: ErrMissingCatalogRoot}
	}

	id := pw.xref.idHash()
	trailer := NewDict()
	trailer.Set("Size", Integer(pw.xref.count()))
	trailer.Set("Root", root)
	if info != 0 {
		trailer.Set("Info", info)
	}
	trailer.Set("ID", Array{String(id), String(id)})

	_, err := pw.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	if err := trailer.PDF(pw.w); err != nil {
		return err
	}
	_, err = fmt.Fprintf(pw.w, "\nstartxref\n%d\n%%%%EOF\n", pw.xrefPos)
	return err
}

// posWriter wraps an io.Writer, tracking the number of bytes written
// so far.  All offsets in the cross-reference table are byte positions
// measured by this counter.
type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
