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
	"errors"
	"strconv"
)

// Conditions reported by this library.  They are always wrapped in a
// [StructuralError] or [EncodingError] and can be tested for with
// [errors.Is].
var (
	// ErrDanglingReference indicates a reference which does not resolve
	// to an indirect object registered in the document.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrDetachedParent indicates a parent reference which does not
	// name a page tree present in the document.
	ErrDetachedParent = errors.New("detached parent")

	// ErrMissingCatalogRoot indicates an attempt to write a document
	// for which no catalog root has been set.
	ErrMissingCatalogRoot = errors.New("missing catalog root")

	// ErrAlreadyWritten indicates that a writer stage was driven out of
	// order or a second time.
	ErrAlreadyWritten = errors.New("already written")

	// ErrInvalidName indicates a name which cannot be represented in a
	// PDF file.
	ErrInvalidName = errors.New("invalid name")

	// ErrStreamLength indicates a mismatch between a stream's declared
	// length and its payload.  Since the length is computed from the
	// payload when the stream is written, this condition signals an
	// internal defect, not caller misuse.
	ErrStreamLength = errors.New("stream length mismatch")
)

// StructuralError indicates that the document graph violates one of
// the PDF structural invariants.  The document is left unchanged and
// no output has been committed beyond the point of failure.
type StructuralError struct {
	Op  string    // the operation that failed
	Ref Reference // the offending object, if known
	Err error
}

func (e *StructuralError) Error() string {
	msg := "pdf: " + e.Op + ": " + e.Err.Error()
	if e.Ref != 0 {
		msg += " (object " + strconv.FormatUint(uint64(e.Ref.Number()), 10) + ")"
	}
	return msg
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// EncodingError indicates that a value could not be serialized to
// valid PDF syntax.
type EncodingError struct {
	Field string // the value or dictionary field concerned
	Err   error
}

func (e *EncodingError) Error() string {
	return "pdf: cannot encode " + e.Field + ": " + e.Err.Error()
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
