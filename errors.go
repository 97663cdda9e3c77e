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
	"errors"
	"fmt"
)

// Decoding errors. These are the only failure values produced by this
// package; callers can match them with errors.Is or direct comparison.
var (
	// ErrOverflow is returned when a size field exceeds the platform word,
	// or when an integer payload is wider than the integer type it is
	// decoded into.
	ErrOverflow = errors.New("rlp: value overflows platform word")

	// ErrLeadingZero is returned when a size field or integer payload
	// starts with a zero byte.
	ErrLeadingZero = errors.New("rlp: leading zero bytes")

	// ErrInputTooShort is returned when the input does not hold as many
	// bytes as its header announces.
	ErrInputTooShort = errors.New("rlp: input too short")

	// ErrNonCanonicalSingleByte is returned when a single byte below 0x80
	// was written with a string prefix instead of as itself.
	ErrNonCanonicalSingleByte = errors.New("rlp: non-canonical single-byte encoding")

	// ErrNonCanonicalSize is returned when a long-form size was used for a
	// payload that fits the short form.
	ErrNonCanonicalSize = errors.New("rlp: non-canonical size information")

	// ErrUnexpectedLength is returned when a fixed-width decode sees a
	// payload of the wrong length, or when DecodeExact finds trailing
	// bytes after the value.
	ErrUnexpectedLength = errors.New("rlp: unexpected length")

	// ErrUnexpectedString is returned when a string item appears where a
	// list was requested, or when string content is not valid UTF-8 in a
	// text decode.
	ErrUnexpectedString = errors.New("rlp: unexpected string")

	// ErrUnexpectedList is returned when a list item appears where a
	// string was requested.
	ErrUnexpectedList = errors.New("rlp: unexpected list")
)

// ListLengthMismatchError is returned by callers validating tuple-like
// lists against a declared arity. This package never produces it on its
// own; it is part of the taxonomy so that higher layers agree on one kind.
type ListLengthMismatchError struct {
	Expected int
	Actual   int
}

func (err *ListLengthMismatchError) Error() string {
	return fmt.Sprintf("rlp: list length mismatch: expected %d, got %d", err.Expected, err.Actual)
}
