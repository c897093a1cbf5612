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
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// Object represents an object in a PDF file.  The native PDF types
// implement this interface: [Array], [Bool], [*Dict], [Integer], [Name],
// [Number], [Real], [Reference], [*Stream], and [String].  Custom types
// can be constructed out of these basic types, by implementing the
// Object interface.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	var s string
	if x {
		s = "true"
	} else {
		s = "false"
	}
	_, err := w.Write([]byte(s))
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	s := strconv.FormatInt(int64(x), 10)
	_, err := w.Write([]byte(s))
	return err
}

// Real represents a real number in a PDF file.
type Real float64

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + "."
	}
	_, err := w.Write([]byte(s))
	return err
}

// Number represents a numeric value in a PDF file.  When written, the
// integer representation is used where it is exact.
type Number float64

// PDF implements the [Object] interface.
func (x Number) PDF(w io.Writer) error {
	var obj Object
	if i := Integer(x); Number(i) == x {
		obj = i
	} else {
		obj = Real(x)
	}
	return obj.PDF(w)
}

// String represents a raw string in a PDF file.  The character set
// encoding, if any, is determined by the context.
type String []byte

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	l := []byte(x)

	level := 0
	for _, c := range l {
		if c == '(' {
			level++
		} else if c == ')' {
			level--
			if level < 0 {
				break
			}
		}
	}
	balanced := level == 0

	var funny []int
	for i, c := range l {
		if c == '\r' || c == '\n' || c == '\t' {
			continue
		}
		if c < 32 || c >= 127 || c == '\\' ||
			!balanced && (c == '(' || c == ')') {
			funny = append(funny, i)
		}
	}
	n := len(l)

	buf := &bytes.Buffer{}
	if 3*len(funny) <= n {
		buf.WriteString("(")
		pos := 0
		for _, i := range funny {
			if pos < i {
				buf.Write(l[pos:i])
			}
			c := l[i]
			switch c {
			case '\b':
				buf.WriteString(`\b`)
			case '\f':
				buf.WriteString(`\f`)
			case '(':
				buf.WriteString(`\(`)
			case ')':
				buf.WriteString(`\)`)
			case '\\':
				buf.WriteString(`\\`)
			default:
				fmt.Fprintf(buf, `\%03o`, c)
			}
			pos = i + 1
		}
		if pos < n {
			buf.Write(l[pos:n])
		}
		buf.WriteString(")")
	} else {
		fmt.Fprintf(buf, "<%x>", l)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// TextString creates a String object using the PDF "text string"
// encoding: printable ASCII text is stored as given, everything else is
// encoded as UTF-16BE with a leading byte order mark.
func TextString(s string) String {
	ascii := true
	for _, r := range s {
		if r < 32 || r >= 127 {
			ascii = false
			break
		}
	}
	if ascii {
		return String(s)
	}

	enc := utf16.Encode([]rune(s))
	buf := make([]byte, 2*len(enc)+2)
	buf[0] = 0xFE
	buf[1] = 0xFF
	for i, c := range enc {
		buf[2*i+2] = byte(c >> 8)
		buf[2*i+3] = byte(c)
	}
	return String(buf)
}

// Date creates a PDF String object encoding the given date and time.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:]
	return String(s)
}

// Name represents a name object in a PDF file.  Names are atomic
// symbols; characters which are not regular characters are written
// using 2-digit hexadecimal codes introduced by a number sign.
type Name string

// PDF implements the [Object] interface.  Names which cannot be
// represented in a PDF file at all, i.e. the empty name and names
// containing a NUL byte, lead to an [EncodingError] wrapping
// [ErrInvalidName].
func (x Name) PDF(w io.Writer) error {
	l := []byte(x)
	if len(l) == 0 {
		return &EncodingError{Field: "Name", Err: ErrInvalidName}
	}

	var funny []int
	for i, c := range l {
		if c == 0 {
			return &EncodingError{Field: "Name", Err: ErrInvalidName}
		}
		if isSpace[c] || isDelimiter[c] || c < 0x21 || c > 0x7e || c == '#' {
			funny = append(funny, i)
		}
	}
	n := len(l)

	buf := &bytes.Buffer{}
	buf.WriteString("/")
	pos := 0
	for _, i := range funny {
		if pos < i {
			buf.Write(l[pos:i])
		}
		fmt.Fprintf(buf, "#%02x", l[i])
		pos = i + 1
	}
	if pos < n {
		buf.Write(l[pos:n])
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Array represents an array of objects in a PDF file.
type Array []Object

func (x Array) String() string {
	return "<Array, " + strconv.Itoa(len(x)) + " elements>"
}

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	_, err := w.Write([]byte("["))
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err := w.Write([]byte(" "))
			if err != nil {
				return err
			}
		}
		if val == nil {
			_, err = w.Write([]byte("null"))
		} else {
			err = val.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("]"))
	return err
}

type dictEntry struct {
	key Name
	val Object
}

// Dict represents a dictionary object in a PDF file.  Entries keep the
// order in which their keys were first set, so that the same logical
// dictionary always serializes to the same bytes.
type Dict struct {
	entries []dictEntry
	index   map[Name]int
}

// NewDict creates a new, empty dictionary.
func NewDict() *Dict {
	return &Dict{index: make(map[Name]int)}
}

// Set stores the value for the given key.  Setting a key a second time
// replaces the value but keeps the key's original position.  Setting a
// nil value removes the key.
func (d *Dict) Set(key Name, val Object) {
	if val == nil {
		d.Del(key)
		return
	}
	if i, ok := d.index[key]; ok {
		d.entries[i].val = val
		return
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, dictEntry{key, val})
}

// Get returns the value stored for the given key.
func (d *Dict) Get(key Name) (Object, bool) {
	if d == nil {
		return nil, false
	}
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.entries[i].val, true
}

// Del removes the entry with the given key, if any.
func (d *Dict) Del(key Name) {
	i, ok := d.index[key]
	if !ok {
		return
	}
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	delete(d.index, key)
	for k, j := range d.index {
		if j > i {
			d.index[k] = j - 1
		}
	}
}

// Len returns the number of entries in the dictionary.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Keys returns the dictionary's keys in insertion order.
func (d *Dict) Keys() []Name {
	if d == nil {
		return nil
	}
	keys := make([]Name, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.key
	}
	return keys
}

// Clone returns a shallow copy of the dictionary.
func (d *Dict) Clone() *Dict {
	res := NewDict()
	if d == nil {
		return res
	}
	res.entries = make([]dictEntry, len(d.entries))
	copy(res.entries, d.entries)
	for k, i := range d.index {
		res.index[k] = i
	}
	return res
}

func (d *Dict) String() string {
	res := "Dict"
	if tp, ok := d.Get("Type"); ok {
		if name, ok := tp.(Name); ok {
			res = string(name) + " Dict"
		}
	}
	return "<" + res + ", " + strconv.Itoa(d.Len()) + " entries>"
}

// PDF implements the [Object] interface.
func (d *Dict) PDF(w io.Writer) error {
	if d == nil {
		_, err := w.Write([]byte("null"))
		return err
	}

	_, err := w.Write([]byte("<<"))
	if err != nil {
		return err
	}
	for _, e := range d.entries {
		_, err = w.Write([]byte("\n"))
		if err != nil {
			return err
		}
		err = e.key.PDF(w)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
		err = e.val.PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("\n>>"))
	return err
}

// Stream represents a stream object in a PDF file: a dictionary
// together with an opaque byte payload.
//
// The /Length entry of the dictionary is always computed from the
// payload when the stream is written; any caller-supplied value is
// ignored.  The payload bytes are written as given: if the dictionary
// declares a /Filter, the caller must supply the payload already
// encoded accordingly.
type Stream struct {
	Dict *Dict
	Data []byte
}

// NewStream creates a stream with the given dictionary and payload.
// A nil dictionary is allowed and treated as empty.
func NewStream(dict *Dict, data []byte) *Stream {
	if dict == nil {
		dict = NewDict()
	}
	return &Stream{Dict: dict, Data: data}
}

func (x *Stream) String() string {
	res := "Stream"
	if tp, ok := x.Dict.Get("Type"); ok {
		if name, ok := tp.(Name); ok {
			res = string(name) + " Stream"
		}
	}
	return "<" + res + ", " + strconv.Itoa(len(x.Data)) + " bytes>"
}

// PDF implements the [Object] interface.
func (x *Stream) PDF(w io.Writer) error {
	dict := x.Dict.Clone()
	dict.Set("Length", Integer(len(x.Data)))

	err := dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nstream\n"))
	if err != nil {
		return err
	}
	n, err := w.Write(x.Data)
	if err != nil {
		return err
	}
	if n != len(x.Data) {
		// cannot happen for a conforming io.Writer
		return &EncodingError{Field: "Length", Err: ErrStreamLength}
	}
	_, err = w.Write([]byte("\nendstream"))
	return err
}

// Reference represents a reference to an indirect object in a PDF
// file.  The lower 32 bits hold the object number, the next 16 bits
// the generation number.  The zero value means "no reference".
type Reference uint64

// NewReference combines an object number and a generation number into
// a Reference.
func NewReference(number uint32, generation uint16) Reference {
	return Reference(uint64(number) | uint64(generation)<<32)
}

// Number returns the object number of the reference.
func (x Reference) Number() uint32 {
	return uint32(x)
}

// Generation returns the generation number of the reference.
func (x Reference) Generation() uint16 {
	return uint16(x >> 32)
}

func (x Reference) String() string {
	res := "obj_" + strconv.FormatUint(uint64(x.Number()), 10)
	if gen := x.Generation(); gen > 0 {
		res += "@" + strconv.FormatUint(uint64(gen), 10)
	}
	return res
}

// PDF implements the [Object] interface.
func (x Reference) PDF(w io.Writer) error {
	if x>>48 != 0 {
		return fmt.Errorf("invalid reference: 0x%016x", uint64(x))
	}
	_, err := fmt.Fprintf(w, "%d %d R", x.Number(), x.Generation())
	return err
}

// format returns the serialized form of an object, for tests and error
// messages.
func format(obj Object) string {
	buf := &bytes.Buffer{}
	if obj == nil {
		buf.WriteString("null")
	} else {
		err := obj.PDF(buf)
		if err != nil {
			return "<" + err.Error() + ">"
		}
	}
	return buf.String()
}

var (
	isSpace     [256]bool
	isDelimiter [256]bool
)

func init() {
	for _, c := range []byte{0, 9, 10, 12, 13, 32} {
		isSpace[c] = true
	}
	for _, c := range []byte("()<>[]{}/%") {
		isDelimiter[c] = true
	}
}
