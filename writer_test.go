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
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func TestHeader(t *testing.T) {
	buf := &bytes.Buffer{}
	pw := newWriter(buf, V2_0)
	if err := pw.writeHeader(); err != nil {
		t.Fatal(err)
	}
	want := "%PDF-2.0\n%\x80\x80\x80\x80\n"
	if buf.String() != want {
		t.Errorf("expected %q but got %q", want, buf.String())
	}
}

func TestWriterStages(t *testing.T) {
	buf := &bytes.Buffer{}
	pw := newWriter(buf, V1_7)

	// body before header
	err := pw.writeObject(NewReference(1, 0), Integer(1))
	if !errors.Is(err, ErrAlreadyWritten) {
		t.Errorf("expected ErrAlreadyWritten, got %v", err)
	}

	if err := pw.writeHeader(); err != nil {
		t.Fatal(err)
	}

	// header twice
	err = pw.writeHeader()
	if !errors.Is(err, ErrAlreadyWritten) {
		t.Errorf("expected ErrAlreadyWritten, got %v", err)
	}

	if err := pw.writeObject(NewReference(1, 0), Integer(1)); err != nil {
		t.Fatal(err)
	}
	if err := pw.writeXRefTable(); err != nil {
		t.Fatal(err)
	}

	// body after the cross-reference table
	err = pw.writeObject(NewReference(2, 0), Integer(2))
	if !errors.Is(err, ErrAlreadyWritten) {
		t.Errorf("expected ErrAlreadyWritten, got %v", err)
	}

	if err := pw.writeTrailer(NewReference(1, 0), 0); err != nil {
		t.Fatal(err)
	}

	// trailer twice
	err = pw.writeTrailer(NewReference(1, 0), 0)
	if !errors.Is(err, ErrAlreadyWritten) {
		t.Errorf("expected ErrAlreadyWritten, got %v", err)
	}
}

func TestTrailerNeedsRoot(t *testing.T) {
	buf := &bytes.Buffer{}
	pw := newWriter(buf, V1_7)
	if err := pw.writeHeader(); err != nil {
		t.Fatal(err)
	}
	if err := pw.writeObject(NewReference(1, 0), Integer(1)); err != nil {
		t.Fatal(err)
	}
	if err := pw.writeXRefTable(); err != nil {
		t.Fatal(err)
	}
	err := pw.writeTrailer(0, 0)
	if !errors.Is(err, ErrMissingCatalogRoot) {
		t.Errorf("expected ErrMissingCatalogRoot, got %v", err)
	}
}

// TestXRefOffsets writes a document and then checks every offset the
// cross-reference table claims against the actual file bytes.
func TestXRefOffsets(t *testing.T) {
	d := minimalDoc(t)
	page := NewReference(3, 0)
	_, err := d.AppendContent(page, NewStream(nil, []byte("0 0 m 100 100 l S")))
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := d.Write(buf); err != nil {
		t.Fatal(err)
	}
	body := buf.String()

	xrefPos := strings.Index(body, "xref\n")
	if xrefPos < 0 {
		t.Fatal("no xref section")
	}

	lines := strings.SplitN(body[xrefPos:], "\n", 3)
	var count int
	if _, err := fmt.Sscanf(lines[1], "0 %d", &count); err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Fatalf("expected 5 xref entries, got %d", count)
	}

	table := lines[2]
	for i := 0; i < count; i++ {
		entry := table[20*i : 20*i+20]
		if entry[18] != '\r' || entry[19] != '\n' {
			t.Fatalf("entry %d not CR LF terminated: %q", i, entry)
		}
		if i == 0 {
			if entry != "0000000000 65535 f\r\n" {
				t.Errorf("wrong free-list head: %q", entry)
			}
			continue
		}
		offset, err := strconv.Atoi(entry[:10])
		if err != nil {
			t.Fatal(err)
		}
		want := fmt.Sprintf("%d 0 obj\n", i)
		if !strings.HasPrefix(body[offset:], want) {
			t.Errorf("offset %d for object %d points at %q",
				offset, i, body[offset:offset+len(want)])
		}
		if entry[11:18] != "00000 n" {
			t.Errorf("wrong entry tail for object %d: %q", i, entry)
		}
	}

	// startxref names the byte offset of the xref keyword
	sxPos := strings.LastIndex(body, "startxref\n")
	if sxPos < 0 {
		t.Fatal("no startxref")
	}
	var claimed int
	if _, err := fmt.Sscanf(body[sxPos:], "startxref\n%d", &claimed); err != nil {
		t.Fatal(err)
	}
	if claimed != xrefPos {
		t.Errorf("startxref claims %d, xref is at %d", claimed, xrefPos)
	}
}

func TestTrailerID(t *testing.T) {
	d := minimalDoc(t)
	buf := &bytes.Buffer{}
	if err := d.Write(buf); err != nil {
		t.Fatal(err)
	}
	body := buf.String()

	idPos := strings.Index(body, "/ID [<")
	if idPos < 0 {
		t.Fatal("no file identifier in trailer")
	}
	rest := body[idPos+len("/ID ["):]
	end := strings.Index(rest, "]")
	parts := strings.Fields(rest[:end])
	if len(parts) != 2 || parts[0] != parts[1] {
		t.Errorf("malformed identifier: %q", rest[:end])
	}
	// 16 byte MD5 sum, hex encoded
	if len(parts[0]) != 34 {
		t.Errorf("wrong identifier length: %q", parts[0])
	}
}
