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

// Package metadata embeds XMP metadata streams into documents.
package metadata

import (
	"bytes"

	"seehuhn.de/go/xmp"

	pdfgen "github.com/pediferrous/pdfgen-go"
)

// PDF 2.0 sections: 14.3

// Stream represents an XMP metadata stream.
type Stream struct {
	Data *xmp.Packet
}

// Embed adds the XMP metadata stream to the document and registers it
// in the document catalog.  The returned reference points at the
// metadata stream object.
func (s *Stream) Embed(d *pdfgen.Document) (pdfgen.Reference, error) {
	buf := &bytes.Buffer{}
	err := s.Data.Write(buf, nil)
	if err != nil {
		return 0, err
	}

	dict := pdfgen.NewDict()
	dict.Set("Type", pdfgen.Name("Metadata"))
	dict.Set("Subtype", pdfgen.Name("XML"))
	ref := d.AddObject(pdfgen.NewStream(dict, buf.Bytes()))

	err = d.SetMetadata(ref)
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// Equal reports whether s and other represent the same XMP metadata.
func (s *Stream) Equal(other *Stream) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Data.Equal(other.Data)
}
