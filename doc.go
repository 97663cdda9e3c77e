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

/*
Package rlp implements the RLP serialization format.

The purpose of RLP (Recursive Linear Prefix) is to encode arbitrarily
nested arrays of binary data, and RLP is the main encoding method used to
serialize objects in Ethereum. The only purpose of RLP is to encode
structure; encoding specific atomic data types (strings, ints, floats) is
left up to higher protocols. In Ethereum integers must be represented in
big endian binary form with no leading zeroes (thus making the integer
value zero equivalent to the empty string).

RLP values are distinguished by a type tag. The type tag precedes the
value in the input stream and defines the size and kind of the bytes that
follow: a string of up to 55 bytes carries its length in the tag itself,
longer strings carry the length separately, and lists work the same way
over the concatenation of their encoded elements. A single byte below 0x80
is its own encoding.

Every value has exactly one valid encoding. The decoder enforces this:
length fields with leading zeroes, long forms used where a short form
fits, and single bytes written with a superfluous prefix are all rejected
with one of the package's error values.

# Encoding

Values that know their own encoding implement Encodable. Primitive forms
are written through an EncoderBuffer (WriteUint64, WriteBytes,
WriteString, WriteBool, WriteUint256) or with append-style helpers such
as AppendUint64. EncodeToBytes sizes its output with EncodedSize before
writing; EncodeList and EncodeIter assemble homogeneous lists.

Aggregates encode as the list of their fields in declared order. Either
precompute the payload size and write a Header followed by the fields, or
use EncoderBuffer.List and ListEnd to let the buffer patch in the header
afterwards.

# Decoding

The decoder operates on an in-memory byte slice. Each function consumes
one value from the front of its input and returns the remainder, so
decoding a sequence of values is a chain of calls on the returned rest.
SplitString and SplitList return payloads aliasing the input; the owning
variants (DecodeBytes, DecodeText) copy. DecodeExact rejects trailing
bytes after the decoded value.

Aggregates decode by opening a ListIterator on their encoding and reading
each field in declared order with DecodeNext or Next.
*/
package rlp
