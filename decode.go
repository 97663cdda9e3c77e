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
	"math/bits"

	"github.com/holiman/uint256"
)

// Decodable is implemented by types that can decode themselves from the
// front of an RLP-encoded buffer.
//
// DecodeRLP consumes exactly one value and returns the bytes after it.
// Trailing data is not an error; use DecodeExact to reject it. On failure
// the value is unspecified and the input should not be re-read.
type Decodable interface {
	DecodeRLP(buf []byte) (rest []byte, err error)
}

// DecodeExact decodes one value from buf into val and rejects trailing
// bytes with ErrUnexpectedLength.
func DecodeExact(buf []byte, val Decodable) error {
	rest, err := val.DecodeRLP(buf)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return ErrUnexpectedLength
	}
	return nil
}

// splitUint decodes an integer payload of at most maxbytes bytes from the
// start of b.
func splitUint(b []byte, maxbytes int) (uint64, []byte, error) {
	content, rest, err := SplitString(b)
	if err != nil {
		return 0, b, err
	}
	if len(content) == 0 {
		return 0, rest, nil
	}
	if len(content) > maxbytes {
		return 0, b, ErrOverflow
	}
	if content[0] == 0 {
		return 0, b, ErrLeadingZero
	}
	var x uint64
	for _, c := range content {
		x = x<<8 | uint64(c)
	}
	return x, rest, nil
}

// SplitUint64 decodes an integer at the beginning of b. It also returns
// the remaining data after the integer in 'rest'.
func SplitUint64(b []byte) (x uint64, rest []byte, err error) {
	return splitUint(b, 8)
}

// SplitUint32 decodes a 32-bit integer at the beginning of b.
func SplitUint32(b []byte) (x uint32, rest []byte, err error) {
	v, rest, err := splitUint(b, 4)
	return uint32(v), rest, err
}

// SplitUint16 decodes a 16-bit integer at the beginning of b.
func SplitUint16(b []byte) (x uint16, rest []byte, err error) {
	v, rest, err := splitUint(b, 2)
	return uint16(v), rest, err
}

// SplitUint8 decodes an 8-bit integer at the beginning of b.
func SplitUint8(b []byte) (x uint8, rest []byte, err error) {
	v, rest, err := splitUint(b, 1)
	return uint8(v), rest, err
}

// SplitUint decodes a platform-word integer at the beginning of b.
func SplitUint(b []byte) (x uint, rest []byte, err error) {
	v, rest, err := splitUint(b, bits.UintSize/8)
	return uint(v), rest, err
}

// SplitBool decodes a boolean at the beginning of b. The only canonical
// encodings are 0x80 (false, the integer zero) and 0x01 (true); any other
// string payload, whatever its length, is rejected with
// ErrNonCanonicalSingleByte.
func SplitBool(b []byte) (x bool, rest []byte, err error) {
	content, rest, err := SplitString(b)
	if err != nil {
		return false, b, err
	}
	switch {
	case len(content) == 0:
		return false, rest, nil
	case len(content) == 1 && content[0] == 1:
		return true, rest, nil
	}
	return false, b, ErrNonCanonicalSingleByte
}

// SplitUint256 decodes a 256-bit integer at the beginning of b into z.
func SplitUint256(b []byte, z *uint256.Int) (rest []byte, err error) {
	content, rest, err := SplitString(b)
	if err != nil {
		return b, err
	}
	if len(content) > 32 {
		return b, ErrOverflow
	}
	if len(content) > 0 && content[0] == 0 {
		return b, ErrLeadingZero
	}
	z.SetBytes(content)
	return rest, nil
}

// DecodeBytes decodes an RLP string at the beginning of b and returns a
// copy of its content. Use SplitString to borrow the content instead.
func DecodeBytes(b []byte) (data, rest []byte, err error) {
	content, rest, err := SplitString(b)
	if err != nil {
		return nil, b, err
	}
	data = make([]byte, len(content))
	copy(data, content)
	return data, rest, nil
}

// DecodeText decodes an RLP string at the beginning of b whose content
// must be valid UTF-8.
func DecodeText(b []byte) (s string, rest []byte, err error) {
	return SplitText(b)
}

// SplitFixedBytes decodes an RLP string at the beginning of b into dst.
// The payload must hold exactly len(dst) bytes; any other length is
// rejected with ErrUnexpectedLength.
func SplitFixedBytes(b []byte, dst []byte) (rest []byte, err error) {
	content, rest, err := SplitString(b)
	if err != nil {
		return b, err
	}
	if len(content) != len(dst) {
		return b, ErrUnexpectedLength
	}
	copy(dst, content)
	return rest, nil
}

// DecodeList decodes a homogeneous list at the beginning of buf, applying
// elem to each element payload until it is exhausted. A trailing fragment
// that is not a complete element surfaces as the element decoder's own
// error.
func DecodeList[T any](buf []byte, elem func([]byte) (T, []byte, error)) (values []T, rest []byte, err error) {
	content, rest, err := SplitList(buf)
	if err != nil {
		return nil, buf, err
	}
	for len(content) > 0 {
		var v T
		v, content, err = elem(content)
		if err != nil {
			return nil, buf, err
		}
		values = append(values, v)
	}
	return values, rest, nil
}
