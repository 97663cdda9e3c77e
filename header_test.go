// Copyright 2023 The go-rlp Authors
// This file is part of the go-rlp library.
//
// The go-rlp library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-rlp library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-rlp library. If not, see <http://www.gnu.org/licenses/>.

package rlp

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

func unhex(str string) []byte {
	b, err := hex.DecodeString(strings.ReplaceAll(str, " ", ""))
	if err != nil {
		panic("invalid hex string: " + str)
	}
	return b
}

func TestDecodeHeader(t *testing.T) {
	tests := []struct {
		input    string
		wantList bool
		wantLen  uint64
		wantTag  int // header size consumed
		err      error
	}{
		{input: "", err: ErrInputTooShort},
		{input: "00", wantLen: 1, wantTag: 0},
		{input: "01", wantLen: 1, wantTag: 0},
		{input: "7f", wantLen: 1, wantTag: 0},
		{input: "80", wantLen: 0, wantTag: 1},
		{input: "8180", wantLen: 1, wantTag: 1},
		{input: "81ff", wantLen: 1, wantTag: 1},
		{input: "817f", err: ErrNonCanonicalSingleByte},
		{input: "8100", err: ErrNonCanonicalSingleByte},
		{input: "81", err: ErrInputTooShort},
		{input: "83646f67", wantLen: 3, wantTag: 1},
		{input: "b7" + strings.Repeat("aa", 55), wantLen: 55, wantTag: 1},
		{input: "b838" + strings.Repeat("aa", 56), wantLen: 56, wantTag: 2},
		{input: "b837" + strings.Repeat("aa", 55), err: ErrNonCanonicalSize},
		{input: "b800", err: ErrLeadingZero},
		{input: "b90038", err: ErrLeadingZero},
		{input: "b8", err: ErrInputTooShort},
		{input: "b90100" + strings.Repeat("aa", 256), wantLen: 256, wantTag: 3},
		{input: "bfffffffffffffffff", err: ErrOverflow},
		{input: "b838", err: ErrInputTooShort},
		{input: "8301", err: ErrInputTooShort},
		{input: "c0", wantList: true, wantLen: 0, wantTag: 1},
		{input: "c3808080", wantList: true, wantLen: 3, wantTag: 1},
		{input: "c301", wantList: true, err: ErrInputTooShort},
		{input: "f7" + strings.Repeat("c0", 55), wantList: true, wantLen: 55, wantTag: 1},
		{input: "f838" + strings.Repeat("c0", 56), wantList: true, wantLen: 56, wantTag: 2},
		{input: "f837" + strings.Repeat("c0", 55), err: ErrNonCanonicalSize},
		{input: "f800", err: ErrLeadingZero},
		{input: "f90200" + strings.Repeat("c0", 512), wantList: true, wantLen: 512, wantTag: 3},
		{input: "ffffffffffffffffff", err: ErrOverflow},
	}

	for _, test := range tests {
		input := unhex(test.input)
		h, rest, err := DecodeHeader(input)
		if err != test.err {
			t.Errorf("input %q: error mismatch: got %v, want %v", test.input, err, test.err)
			continue
		}
		if err != nil {
			continue
		}
		if h.List != test.wantList {
			t.Errorf("input %q: List mismatch: got %v, want %v", test.input, h.List, test.wantList)
		}
		if h.PayloadLength != test.wantLen {
			t.Errorf("input %q: PayloadLength mismatch: got %d, want %d", test.input, h.PayloadLength, test.wantLen)
		}
		if consumed := len(input) - len(rest); consumed != test.wantTag {
			t.Errorf("input %q: consumed %d header bytes, want %d", test.input, consumed, test.wantTag)
		}
	}
}

func TestHeaderEncode(t *testing.T) {
	tests := []struct {
		h    Header
		want string
	}{
		{Header{List: false, PayloadLength: 0}, "80"},
		{Header{List: false, PayloadLength: 1}, "81"},
		{Header{List: false, PayloadLength: 55}, "b7"},
		{Header{List: false, PayloadLength: 56}, "b838"},
		{Header{List: false, PayloadLength: 1024}, "b90400"},
		{Header{List: true, PayloadLength: 0}, "c0"},
		{Header{List: true, PayloadLength: 55}, "f7"},
		{Header{List: true, PayloadLength: 56}, "f838"},
		{Header{List: true, PayloadLength: 0x10000}, "fa010000"},
	}
	for _, test := range tests {
		var buf bytes.Buffer
		if err := test.h.EncodeRLP(&buf); err != nil {
			t.Fatalf("header %+v: unexpected error %v", test.h, err)
		}
		if !bytes.Equal(buf.Bytes(), unhex(test.want)) {
			t.Errorf("header %+v: got %x, want %s", test.h, buf.Bytes(), test.want)
		}
		if test.h.EncodedSize() != len(buf.Bytes()) {
			t.Errorf("header %+v: EncodedSize %d, written %d", test.h, test.h.EncodedSize(), len(buf.Bytes()))
		}
	}
}

func TestSplitString(t *testing.T) {
	content, rest, err := SplitString(unhex("83646f67ff"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(content, []byte("dog")) {
		t.Errorf("content %x, want 'dog'", content)
	}
	if !bytes.Equal(rest, []byte{0xff}) {
		t.Errorf("rest %x, want ff", rest)
	}

	// A single byte is its own payload.
	content, rest, err = SplitString(unhex("2a01"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(content, []byte{0x2a}) || len(rest) != 1 {
		t.Errorf("content %x rest %x", content, rest)
	}

	if _, _, err := SplitString(unhex("c3808080")); err != ErrUnexpectedList {
		t.Errorf("got %v, want ErrUnexpectedList", err)
	}
}

func TestSplitList(t *testing.T) {
	content, rest, err := SplitList(unhex("c38080807f"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(content, unhex("808080")) {
		t.Errorf("content %x", content)
	}
	if !bytes.Equal(rest, []byte{0x7f}) {
		t.Errorf("rest %x", rest)
	}

	if _, _, err := SplitList(unhex("83646f67")); err != ErrUnexpectedString {
		t.Errorf("got %v, want ErrUnexpectedString", err)
	}
	if _, _, err := SplitList(unhex("00")); err != ErrUnexpectedString {
		t.Errorf("got %v, want ErrUnexpectedString", err)
	}
}

func TestSplitText(t *testing.T) {
	s, rest, err := SplitText(unhex("83646f6780"))
	if err != nil {
		t.Fatal(err)
	}
	if s != "dog" || len(rest) != 1 {
		t.Errorf("s %q rest %x", s, rest)
	}

	s, _, err = SplitText(unhex("80"))
	if err != nil || s != "" {
		t.Errorf("empty string: s %q err %v", s, err)
	}

	if _, _, err := SplitText(unhex("81ff")); err != ErrUnexpectedString {
		t.Errorf("invalid utf8: got %v, want ErrUnexpectedString", err)
	}
	if _, _, err := SplitText(unhex("c0")); err != ErrUnexpectedList {
		t.Errorf("list: got %v, want ErrUnexpectedList", err)
	}
}

func TestSplit(t *testing.T) {
	h, content, rest, err := Split(unhex("c50583343434"))
	if err != nil {
		t.Fatal(err)
	}
	if !h.List {
		t.Error("not detected as list")
	}
	if !bytes.Equal(content, unhex("0583343434")) {
		t.Errorf("content %x", content)
	}
	if len(rest) != 0 {
		t.Errorf("rest %x", rest)
	}
}

func TestHeadsize(t *testing.T) {
	tests := []struct {
		size uint64
		want int
	}{
		{0, 1}, {1, 1}, {55, 1}, {56, 2}, {255, 2}, {256, 3}, {65535, 3}, {65536, 4},
	}
	for _, test := range tests {
		if got := headsize(test.size); got != test.want {
			t.Errorf("headsize(%d) = %d, want %d", test.size, got, test.want)
		}
	}
}

func TestIntsize(t *testing.T) {
	tests := []struct {
		v    uint64
		want int
	}{
		{0, 1}, {1, 1}, {255, 1}, {256, 2}, {65535, 2}, {1 << 32, 5}, {1<<64 - 1, 8},
	}
	for _, test := range tests {
		if got := intsize(test.v); got != test.want {
			t.Errorf("intsize(%d) = %d, want %d", test.v, got, test.want)
		}
	}
}
