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
	"math"
	"unicode/utf8"
)

const (
	// EmptyStringCode is the prefix of the empty string and the base of
	// short string headers.
	EmptyStringCode = 0x80
	// EmptyListCode is the prefix of the empty list and the base of short
	// list headers.
	EmptyListCode = 0xC0
	// MaxShortLen is the largest payload length expressible in short form.
	MaxShortLen = 55

	longStringOffset = 0xB7
	longListOffset   = 0xF7
)

// Header describes one RLP item: whether it is a list and how many payload
// bytes follow the prefix.
type Header struct {
	List          bool
	PayloadLength uint64
}

// DecodeHeader reads the header of the first item in buf and returns the
// bytes after it. The returned slice still starts at the payload; the
// header only checks that PayloadLength bytes are present.
//
// For a single byte below 0x80 the byte is its own encoding: the cursor is
// not advanced and PayloadLength is 1, so the payload read yields the byte
// itself.
func DecodeHeader(buf []byte) (Header, []byte, error) {
	if len(buf) == 0 {
		return Header{}, buf, ErrInputTooShort
	}
	var (
		h    Header
		rest []byte
	)
	switch b := buf[0]; {
	case b < EmptyStringCode:
		h.PayloadLength = 1
		rest = buf

	case b <= longStringOffset:
		h.PayloadLength = uint64(b - EmptyStringCode)
		rest = buf[1:]
		if h.PayloadLength == 1 {
			if len(rest) == 0 {
				return Header{}, buf, ErrInputTooShort
			}
			if rest[0] < EmptyStringCode {
				return Header{}, buf, ErrNonCanonicalSingleByte
			}
		}

	case b < EmptyListCode:
		lenOfLen := int(b - longStringOffset)
		size, err := readSize(buf[1:], lenOfLen)
		if err != nil {
			return Header{}, buf, err
		}
		h.PayloadLength = size
		rest = buf[1+lenOfLen:]

	case b <= longListOffset:
		h.List = true
		h.PayloadLength = uint64(b - EmptyListCode)
		rest = buf[1:]

	default:
		lenOfLen := int(b - longListOffset)
		size, err := readSize(buf[1:], lenOfLen)
		if err != nil {
			return Header{}, buf, err
		}
		h.List = true
		h.PayloadLength = size
		rest = buf[1+lenOfLen:]
	}
	if h.PayloadLength > uint64(len(rest)) {
		return Header{}, buf, ErrInputTooShort
	}
	return h, rest, nil
}

// readSize reads slen bytes of b as a big-endian long-form payload size.
func readSize(b []byte, slen int) (uint64, error) {
	if slen > len(b) {
		return 0, ErrInputTooShort
	}
	if b[0] == 0 {
		return 0, ErrLeadingZero
	}
	var s uint64
	switch slen {
	case 1:
		s = uint64(b[0])
	case 2:
		s = uint64(b[0])<<8 | uint64(b[1])
	case 3:
		s = uint64(b[0])<<16 | uint64(b[1])<<8 | uint64(b[2])
	case 4:
		s = uint64(b[0])<<24 | uint64(b[1])<<16 | uint64(b[2])<<8 | uint64(b[3])
	case 5:
		s = uint64(b[0])<<32 | uint64(b[1])<<24 | uint64(b[2])<<16 | uint64(b[3])<<8 | uint64(b[4])
	case 6:
		s = uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 | uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
	case 7:
		s = uint64(b[0])<<48 | uint64(b[1])<<40 | uint64(b[2])<<32 | uint64(b[3])<<24 | uint64(b[4])<<16 | uint64(b[5])<<8 | uint64(b[6])
	case 8:
		s = uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 | uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
	}
	if s <= MaxShortLen {
		return 0, ErrNonCanonicalSize
	}
	if s > math.MaxInt {
		return 0, ErrOverflow
	}
	return s, nil
}

// EncodeRLP writes the header to w. The single-byte string form is not a
// header concern: the byte-string encoder emits such bytes as themselves
// and never calls this.
func (h Header) EncodeRLP(w Sink) error {
	var b [9]byte
	_, err := w.Write(h.appendTo(b[:0]))
	return err
}

// EncodedSize returns the number of bytes the header occupies on the wire.
func (h Header) EncodedSize() int {
	return headsize(h.PayloadLength)
}

func (h Header) appendTo(dst []byte) []byte {
	var b [9]byte
	smalltag, largetag := byte(EmptyStringCode), byte(longStringOffset)
	if h.List {
		smalltag, largetag = EmptyListCode, longListOffset
	}
	n := puthead(b[:], smalltag, largetag, h.PayloadLength)
	return append(dst, b[:n]...)
}

// Split reads the first item in b and returns its header, its payload as a
// sub-slice of b, and the bytes after the item.
func Split(b []byte) (h Header, content, rest []byte, err error) {
	h, after, err := DecodeHeader(b)
	if err != nil {
		return Header{}, nil, b, err
	}
	return h, after[:h.PayloadLength], after[h.PayloadLength:], nil
}

// SplitString splits b into the content of an RLP string and the bytes
// after it. The content aliases b. SplitString returns ErrUnexpectedList
// if the item is a list.
func SplitString(b []byte) (content, rest []byte, err error) {
	h, content, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	if h.List {
		return nil, b, ErrUnexpectedList
	}
	return content, rest, nil
}

// SplitList splits b into the payload of an RLP list and the bytes after
// it. The payload aliases b. SplitList returns ErrUnexpectedString if the
// item is a string.
func SplitList(b []byte) (content, rest []byte, err error) {
	h, content, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	if !h.List {
		return nil, b, ErrUnexpectedString
	}
	return content, rest, nil
}

// SplitText decodes an RLP string whose content must be valid UTF-8.
func SplitText(b []byte) (s string, rest []byte, err error) {
	content, rest, err := SplitString(b)
	if err != nil {
		return "", b, err
	}
	if !utf8.Valid(content) {
		return "", b, ErrUnexpectedString
	}
	return string(content), rest, nil
}

// headsize returns the size of a list or string header for a value of the
// given size.
func headsize(size uint64) int {
	if size <= MaxShortLen {
		return 1
	}
	return 1 + intsize(size)
}

// puthead writes a list or string header to buf. buf must be at least 9
// bytes long.
func puthead(buf []byte, smalltag, largetag byte, size uint64) int {
	if size <= MaxShortLen {
		buf[0] = smalltag + byte(size)
		return 1
	}
	sizesize := putint(buf[1:], size)
	buf[0] = largetag + byte(sizesize)
	return sizesize + 1
}

// putint writes i to the beginning of b in big endian byte order, using
// the least number of bytes needed to represent i.
func putint(b []byte, i uint64) (size int) {
	switch {
	case i < (1 << 8):
		b[0] = byte(i)
		return 1
	case i < (1 << 16):
		b[0] = byte(i >> 8)
		b[1] = byte(i)
		return 2
	case i < (1 << 24):
		b[0] = byte(i >> 16)
		b[1] = byte(i >> 8)
		b[2] = byte(i)
		return 3
	case i < (1 << 32):
		b[0] = byte(i >> 24)
		b[1] = byte(i >> 16)
		b[2] = byte(i >> 8)
		b[3] = byte(i)
		return 4
	case i < (1 << 40):
		b[0] = byte(i >> 32)
		b[1] = byte(i >> 24)
		b[2] = byte(i >> 16)
		b[3] = byte(i >> 8)
		b[4] = byte(i)
		return 5
	case i < (1 << 48):
		b[0] = byte(i >> 40)
		b[1] = byte(i >> 32)
		b[2] = byte(i >> 24)
		b[3] = byte(i >> 16)
		b[4] = byte(i >> 8)
		b[5] = byte(i)
		return 6
	case i < (1 << 56):
		b[0] = byte(i >> 48)
		b[1] = byte(i >> 40)
		b[2] = byte(i >> 32)
		b[3] = byte(i >> 24)
		b[4] = byte(i >> 16)
		b[5] = byte(i >> 8)
		b[6] = byte(i)
		return 7
	default:
		b[0] = byte(i >> 56)
		b[1] = byte(i >> 48)
		b[2] = byte(i >> 40)
		b[3] = byte(i >> 32)
		b[4] = byte(i >> 24)
		b[5] = byte(i >> 16)
		b[6] = byte(i >> 8)
		b[7] = byte(i)
		return 8
	}
}

// intsize computes the minimum number of bytes required to store i.
func intsize(i uint64) (size int) {
	for size = 1; ; size++ {
		if i >>= 8; i == 0 {
			return size
		}
	}
}
