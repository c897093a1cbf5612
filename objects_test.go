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
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(0), "0"},
		{Integer(-42), "-42"},
		{Real(1.5), "1.5"},
		{Real(3), "3."},
		{Number(612), "612"},
		{Number(841.89), "841.89"},
		{String("a"), "(a)"},
		{String("a (test version)"), "(a (test version))"},
		{String("a (test version"), "(a \\(test version)"},
		{String(""), "()"},
		{String("\000"), "<00>"},
		{String("back\\slash"), "(back\\\\slash)"},
		{Name("F1"), "/F1"},
		{Name("two words"), "/two#20words"},
		{Name("1.5"), "/1.5"},
		{Name("a#b"), "/a#23b"},
		{Name("ab\x7f"), "/ab#7f"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{}, "[]"},
		{NewReference(12, 0), "12 0 R"},
		{NewReference(12, 3), "12 3 R"},
	}
	for _, test := range cases {
		out := format(test.in)
		if out != test.out {
			t.Errorf("object wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestTextString(t *testing.T) {
	cases := []struct {
		in  string
		out String
	}{
		{"hello", String("hello")},
		{"", String("")},
		{"grüß dich", String("\xFE\xFF\x00g\x00r\x00\xfc\x00\xdf\x00 \x00d\x00i\x00c\x00h")},
	}
	for _, test := range cases {
		out := TextString(test.in)
		if d := cmp.Diff(test.out, out); d != "" {
			t.Errorf("TextString(%q) mismatch (-want +got):\n%s", test.in, d)
		}
	}
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("", 2*60*60)
	when := time.Date(2026, 8, 26, 14, 30, 5, 0, loc)
	out := format(Date(when))
	want := "(D:20260826143005+02'00)"
	if out != want {
		t.Errorf("expected %q but got %q", want, out)
	}
}

func TestInvalidName(t *testing.T) {
	for _, name := range []Name{"", "a\000b"} {
		buf := &bytes.Buffer{}
		err := name.PDF(buf)
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("%q: expected ErrInvalidName, got %v", string(name), err)
		}
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Errorf("%q: error is not an EncodingError", string(name))
		}
	}
}

func TestDictOrder(t *testing.T) {
	d := NewDict()
	d.Set("Zebra", Integer(1))
	d.Set("Apple", Integer(2))
	d.Set("Mango", Integer(3))
	d.Set("Zebra", Integer(4)) // update keeps position

	want := []Name{"Zebra", "Apple", "Mango"}
	if diff := cmp.Diff(want, d.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	out := format(d)
	wantOut := "<<\n/Zebra 4\n/Apple 2\n/Mango 3\n>>"
	if out != wantOut {
		t.Errorf("expected %q but got %q", wantOut, out)
	}
}

func TestDictDel(t *testing.T) {
	d := NewDict()
	d.Set("A", Integer(1))
	d.Set("B", Integer(2))
	d.Set("C", Integer(3))
	d.Del("B")

	if d.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", d.Len())
	}
	if diff := cmp.Diff([]Name{"A", "C"}, d.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if val, ok := d.Get("C"); !ok || val != Integer(3) {
		t.Errorf("index broken after Del: got %v, %t", val, ok)
	}
}

func TestDictNil(t *testing.T) {
	var d *Dict
	if out := format(d); out != "null" {
		t.Errorf("expected \"null\" but got %q", out)
	}
	if d.Len() != 0 {
		t.Errorf("expected length 0, got %d", d.Len())
	}
	if _, ok := d.Get("Type"); ok {
		t.Error("Get on nil dict reported a value")
	}
}

func TestStreamLength(t *testing.T) {
	dict := NewDict()
	dict.Set("Filter", Name("FlateDecode"))
	dict.Set("Length", Integer(999)) // ignored

	s := NewStream(dict, []byte("not actually flate data"))
	out := format(s)
	want := "<<\n/Filter /FlateDecode\n/Length 23\n>>\nstream\nnot actually flate data\nendstream"
	if out != want {
		t.Errorf("expected %q but got %q", want, out)
	}

	// the caller's dictionary is left untouched
	if val, _ := s.Dict.Get("Length"); val != Integer(999) {
		t.Errorf("stream dict modified: Length = %v", val)
	}
}

func TestStreamEmpty(t *testing.T) {
	s := NewStream(nil, nil)
	out := format(s)
	want := "<<\n/Length 0\n>>\nstream\n\nendstream"
	if out != want {
		t.Errorf("expected %q but got %q", want, out)
	}
}

func TestReference(t *testing.T) {
	ref := NewReference(123, 7)
	if ref.Number() != 123 {
		t.Errorf("expected number 123, got %d", ref.Number())
	}
	if ref.Generation() != 7 {
		t.Errorf("expected generation 7, got %d", ref.Generation())
	}
	if Reference(0) != NewReference(0, 0) {
		t.Error("zero reference is not the zero value")
	}
}

func FuzzString(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte("he(ll)o"))
	f.Add([]byte("he(llo"))
	f.Add([]byte{0, 1, 2, 3})
	f.Fuzz(func(t *testing.T, data []byte) {
		buf := &bytes.Buffer{}
		err := String(data).PDF(buf)
		if err != nil {
			t.Fatal(err)
		}
		out := buf.Bytes()
		if len(out) < 2 {
			t.Fatalf("output too short: %q", out)
		}
		switch out[0] {
		case '(':
			if out[len(out)-1] != ')' {
				t.Errorf("unterminated literal string: %q", out)
			}
			level := 0
			for i := 1; i < len(out)-1; i++ {
				switch out[i] {
				case '\\':
					i++
				case '(':
					level++
				case ')':
					level--
					if level < 0 {
						t.Fatalf("unbalanced parentheses: %q", out)
					}
				}
			}
			if level != 0 {
				t.Errorf("unbalanced parentheses: %q", out)
			}
		case '<':
			if out[len(out)-1] != '>' {
				t.Errorf("unterminated hex string: %q", out)
			}
		default:
			t.Errorf("not a string: %q", out)
		}
	})
}
