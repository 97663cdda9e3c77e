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
	"github.com/holiman/uint256"
)

// RawValue represents an encoded RLP value and can be used to delay RLP
// decoding or to precompute an encoding. Note that the encoder does not
// verify whether the content of RawValues is valid RLP.
type RawValue []byte

// EncodeRLP writes v verbatim.
func (v RawValue) EncodeRLP(w Sink) error {
	_, err := w.Write(v)
	return err
}

// EncodedSize returns len(v); RawValue carries its header already.
func (v RawValue) EncodedSize() int {
	return len(v)
}

// DecodeRLP captures one item, header included, as a sub-slice of buf.
func (v *RawValue) DecodeRLP(buf []byte) ([]byte, error) {
	h, after, err := DecodeHeader(buf)
	if err != nil {
		return buf, err
	}
	total := len(buf) - len(after) + int(h.PayloadLength)
	*v = RawValue(buf[:total])
	return buf[total:], nil
}

// StringSize returns the encoded size of a string.
func StringSize(s string) uint64 {
	if len(s) == 0 {
		return 1
	}
	return stringItemSize(len(s), s[0])
}

// BytesSize returns the encoded size of a byte slice.
func BytesSize(b []byte) uint64 {
	if len(b) == 0 {
		return 1
	}
	return stringItemSize(len(b), b[0])
}

// stringItemSize is the string-rule size for a non-empty payload of n
// bytes starting with first.
func stringItemSize(n int, first byte) uint64 {
	if n == 1 && first <= 0x7f {
		return 1
	}
	return uint64(headsize(uint64(n)) + n)
}

// ListSize returns the encoded size of an RLP list with the given
// content size.
func ListSize(contentSize uint64) uint64 {
	return uint64(headsize(contentSize)) + contentSize
}

// IntSize returns the encoded size of the integer x. Note: The return
// type of this function is 'int' for backwards-compatibility reasons.
// The result is always positive.
func IntSize(x uint64) int {
	if x < 0x80 {
		return 1
	}
	return 1 + intsize(x)
}

// Uint256Size returns the encoded size of the integer z.
func Uint256Size(z *uint256.Int) int {
	bitlen := z.BitLen()
	if bitlen <= 7 {
		return 1
	}
	return 1 + (bitlen+7)/8
}

// CountValues counts the number of encoded values in b.
func CountValues(b []byte) (int, error) {
	i := 0
	for ; len(b) > 0; i++ {
		_, _, rest, err := Split(b)
		if err != nil {
			return 0, err
		}
		b = rest
	}
	return i, nil
}

// AppendUint64 appends the RLP encoding of i to b, and returns the
// resulting slice.
func AppendUint64(b []byte, i uint64) []byte {
	if i == 0 {
		return append(b, EmptyStringCode)
	}
	if i < 0x80 {
		return append(b, byte(i))
	}
	var be [8]byte
	n := putint(be[:], i)
	b = append(b, EmptyStringCode+byte(n))
	return append(b, be[:n]...)
}
