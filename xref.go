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
	"crypto/md5"
	"fmt"
	"io"
)

type xrefEntry struct {
	pos int64
	gen uint16
}

// crossReferenceTable records the byte offset of every indirect object
// written to the file, keyed by object number, and emits the xref
// section in the fixed-width format required by the PDF syntax.
type crossReferenceTable struct {
	entries map[uint32]xrefEntry
	maxNum  uint32
}

func newCrossReferenceTable() *crossReferenceTable {
	return &crossReferenceTable{entries: make(map[uint32]xrefEntry)}
}

// add records the byte offset at which the object's "obj" line begins.
func (t *crossReferenceTable) add(num uint32, pos int64, gen uint16) {
	t.entries[num] = xrefEntry{pos: pos, gen: gen}
	if num > t.maxNum {
		t.maxNum = num
	}
}

// count returns the number of entries in the table, including the
// free-list head at object number 0.
func (t *crossReferenceTable) count() int {
	return int(t.maxNum) + 1
}

// write emits the xref section.  Every entry is exactly 20 bytes: a
// 10-digit offset, a space, a 5-digit generation number, a space, the
// entry type, and a 2-byte CR LF terminator.  Object 0 is the head of
// the free list; since this library never frees objects, it links to
// itself with generation 65535.
func (t *crossReferenceTable) write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "xref\n0 %d\n", t.count())
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("0000000000 65535 f\r\n"))
	if err != nil {
		return err
	}
	for num := uint32(1); num <= t.maxNum; num++ {
		entry := t.entries[num]
		_, err = fmt.Fprintf(w, "%010d %05d n\r\n", entry.pos, entry.gen)
		if err != nil {
			return err
		}
	}
	return nil
}

// idHash derives the file identifier from the recorded offsets.  The
// same document always hashes to the same identifier, keeping the
// output deterministic.
func (t *crossReferenceTable) idHash() []byte {
	h := md5.New()
	for num := uint32(1); num <= t.maxNum; num++ {
		fmt.Fprintf(h, "%010d", t.entries[num].pos)
	}
	sum := h.Sum(nil)
	return sum
}
