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
	"io"
)

var (
	// Common encoded values.
	// These are useful when implementing EncodeRLP.

	// EmptyString is the encoding of an empty RLP string.
	EmptyString = []byte{EmptyStringCode}
	// EmptyList is the encoding of an empty RLP list.
	EmptyList = []byte{EmptyListCode}
)

// A Sink receives encoder output. *bytes.Buffer and EncoderBuffer satisfy
// it; for those, writes cannot fail.
type Sink interface {
	io.Writer
	io.ByteWriter
}

// Encodable is implemented by types that can write their own RLP encoding.
type Encodable interface {
	// EncodeRLP appends the encoding of the value to w.
	//
	// Implementations should write exactly one value whose size matches
	// EncodedSize, and must generate valid RLP.
	EncodeRLP(w Sink) error

	// EncodedSize returns the number of bytes EncodeRLP will write.
	EncodedSize() int
}

// MaxEncodedLen is implemented by encodables whose encoded size has a
// known upper bound, allowing callers to reserve fixed buffers up front.
// An implementation reporting a bound smaller than an actual encoding can
// make such a caller overrun its reservation; the bound is a promise.
type MaxEncodedLen interface {
	Encodable
	MaxEncodedLen() int
}

// Phantom is a zero-byte placeholder. It encodes to nothing and decodes
// from nothing, so aggregates can carry type-level markers without
// affecting their wire form.
type Phantom struct{}

func (Phantom) EncodeRLP(w Sink) error { return nil }

func (Phantom) EncodedSize() int { return 0 }

func (Phantom) MaxEncodedLen() int { return 0 }

// DecodeRLP consumes no input.
func (*Phantom) DecodeRLP(buf []byte) ([]byte, error) { return buf, nil }

// EncodeToBytes returns the RLP encoding of val. The output buffer is
// sized with val.EncodedSize before encoding starts.
func EncodeToBytes(val Encodable) ([]byte, error) {
	buf := getEncBuffer()
	defer encBufferPool.Put(buf)

	buf.grow(val.EncodedSize())
	if err := val.EncodeRLP(buf); err != nil {
		return nil, err
	}
	return buf.makeBytes(), nil
}

// Encode writes the RLP encoding of val to w. Encode may perform many
// small writes in some cases. Consider making w buffered.
func Encode(w io.Writer, val Encodable) error {
	// Optimization: reuse the *encBuffer when called through an
	// EncoderBuffer output.
	if buf := encBufferFromWriter(w); buf != nil {
		return val.EncodeRLP(buf)
	}

	buf := getEncBuffer()
	defer encBufferPool.Put(buf)
	buf.grow(val.EncodedSize())
	if err := val.EncodeRLP(buf); err != nil {
		return err
	}
	return buf.writeTo(w)
}

// EncodeToReader returns a reader from which the RLP encoding of val can
// be read. The returned size is the total size of the encoded data.
func EncodeToReader(val Encodable) (size int, r io.Reader, err error) {
	buf := getEncBuffer()
	buf.grow(val.EncodedSize())
	if err := val.EncodeRLP(buf); err != nil {
		encBufferPool.Put(buf)
		return 0, nil, err
	}
	// Note: can't put the buffer back into the pool here because it is
	// held by encReader. The reader returns it when it has been fully
	// consumed.
	return buf.size(), newEncReader(buf), nil
}

// EncodeList writes items as one RLP list to w: a list header for the
// combined size of the children, then each child in order.
func EncodeList[T Encodable](items []T, w Sink) error {
	h := Header{List: true}
	for _, item := range items {
		h.PayloadLength += uint64(item.EncodedSize())
	}
	if err := h.EncodeRLP(w); err != nil {
		return err
	}
	for _, item := range items {
		if err := item.EncodeRLP(w); err != nil {
			return err
		}
	}
	return nil
}

// EncodeIter writes the values produced by seq as one RLP list to w.
// seq is traversed twice, once to sum the child sizes and once to emit
// them, and must produce the same values both times.
func EncodeIter[T Encodable](seq func(yield func(T) bool), w Sink) error {
	h := Header{List: true}
	seq(func(v T) bool {
		h.PayloadLength += uint64(v.EncodedSize())
		return true
	})
	if err := h.EncodeRLP(w); err != nil {
		return err
	}
	var err error
	seq(func(v T) bool {
		err = v.EncodeRLP(w)
		return err == nil
	})
	return err
}

// ListEncodedSize returns the encoded size of an RLP list holding the
// given items, header included.
func ListEncodedSize[T Encodable](items []T) int {
	var content uint64
	for _, item := range items {
		content += uint64(item.EncodedSize())
	}
	return int(ListSize(content))
}
