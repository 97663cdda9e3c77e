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
	"sync"

	"github.com/holiman/uint256"
)

// encBuffer holds string data and the list headers that still have to be
// materialized in front of it. Headers are deferred so that a list can be
// opened before its payload size is known; they are regular Header values
// and are emitted through Header.appendTo when the output is assembled.
type encBuffer struct {
	str     []byte           // string data, contains everything except list headers
	headers []deferredHeader // list headers, in opening order
	lhsize  int              // sum of encoded sizes of all closed headers
}

// deferredHeader is a list Header pinned to the string-data position where
// it belongs. before records how many header bytes were already pending
// when the list was opened, so that listEnd can subtract them from the
// payload size.
type deferredHeader struct {
	offset int
	before int
	h      Header
}

// The global encBuffer pool.
var encBufferPool = sync.Pool{
	New: func() interface{} { return new(encBuffer) },
}

func getEncBuffer() *encBuffer {
	buf := encBufferPool.Get().(*encBuffer)
	buf.reset()
	return buf
}

func (buf *encBuffer) reset() {
	buf.lhsize = 0
	buf.str = buf.str[:0]
	buf.headers = buf.headers[:0]
}

// size returns the length of the encoded data.
func (buf *encBuffer) size() int {
	return len(buf.str) + buf.lhsize
}

// grow ensures the string buffer can hold n more bytes without
// reallocating.
func (buf *encBuffer) grow(n int) {
	if need := len(buf.str) + n; need > cap(buf.str) {
		str := make([]byte, len(buf.str), need)
		copy(str, buf.str)
		buf.str = str
	}
}

// segments calls emit for each chunk of the final output in order: string
// data interleaved with the deferred list headers at their offsets.
// Chunks are never empty.
func (buf *encBuffer) segments(emit func([]byte)) {
	strpos := 0
	for i := range buf.headers {
		d := &buf.headers[i]
		if d.offset > strpos {
			emit(buf.str[strpos:d.offset])
			strpos = d.offset
		}
		emit(d.h.appendTo(nil))
	}
	if strpos < len(buf.str) {
		emit(buf.str[strpos:])
	}
}

// makeBytes creates the encoder output.
func (buf *encBuffer) makeBytes() []byte {
	out := make([]byte, 0, buf.size())
	buf.segments(func(seg []byte) {
		out = append(out, seg...)
	})
	return out
}

// writeTo writes the encoder output to w.
func (buf *encBuffer) writeTo(w io.Writer) error {
	var werr error
	buf.segments(func(seg []byte) {
		if werr == nil {
			_, werr = w.Write(seg)
		}
	})
	return werr
}

// Write implements io.Writer and appends b directly to the output.
func (buf *encBuffer) Write(b []byte) (int, error) {
	buf.str = append(buf.str, b...)
	return len(b), nil
}

// WriteByte implements io.ByteWriter and appends b directly to the output.
func (buf *encBuffer) WriteByte(b byte) error {
	buf.str = append(buf.str, b)
	return nil
}

func (buf *encBuffer) writeUint64(i uint64) {
	buf.str = AppendUint64(buf.str, i)
}

func (buf *encBuffer) writeBytes(b []byte) {
	if len(b) == 1 && b[0] <= 0x7F {
		// fits single byte, no string header
		buf.str = append(buf.str, b[0])
		return
	}
	buf.str = Header{PayloadLength: uint64(len(b))}.appendTo(buf.str)
	buf.str = append(buf.str, b...)
}

// writeUint256 writes z as an integer.
func (buf *encBuffer) writeUint256(z *uint256.Int) {
	if z.IsUint64() {
		buf.writeUint64(z.Uint64())
		return
	}
	// Values above 64 bits never hit the single-byte rule, so the
	// minimal big-endian bytes go through the plain string path.
	buf.writeBytes(z.Bytes())
}

// list opens a new list: the header is pinned to the current position and
// filled in by listEnd. It returns the index of the header.
func (buf *encBuffer) list() int {
	buf.headers = append(buf.headers, deferredHeader{
		offset: len(buf.str),
		before: buf.lhsize,
		h:      Header{List: true},
	})
	return len(buf.headers) - 1
}

// listEnd closes the list at the given index. The payload size is
// everything written since the list was opened, including headers of
// nested lists closed in the meantime.
func (buf *encBuffer) listEnd(index int) {
	d := &buf.headers[index]
	d.h.PayloadLength = uint64(buf.size() - d.offset - d.before)
	buf.lhsize += d.h.EncodedSize()
}

// encReader is the io.Reader returned by EncodeToReader.
// It releases its encbuf at EOF.
type encReader struct {
	buf    *encBuffer // the buffer we're reading from. this is nil when we're at EOF.
	pieces [][]byte   // remaining output chunks
}

func newEncReader(buf *encBuffer) *encReader {
	r := &encReader{buf: buf}
	buf.segments(func(seg []byte) {
		r.pieces = append(r.pieces, seg)
	})
	return r
}

func (r *encReader) Read(b []byte) (n int, err error) {
	for {
		if len(r.pieces) == 0 {
			// Put the encode buffer back into the pool at EOF when it
			// is first encountered. Subsequent calls still return EOF
			// as the error but the buffer is no longer valid.
			if r.buf != nil {
				encBufferPool.Put(r.buf)
				r.buf = nil
			}
			return n, io.EOF
		}
		piece := r.pieces[0]
		nn := copy(b[n:], piece)
		n += nn
		if nn < len(piece) {
			// piece didn't fit, see you next time.
			r.pieces[0] = piece[nn:]
			return n, nil
		}
		r.pieces = r.pieces[1:]
	}
}

func encBufferFromWriter(w io.Writer) *encBuffer {
	switch w := w.(type) {
	case EncoderBuffer:
		return w.buf
	case *EncoderBuffer:
		return w.buf
	case *encBuffer:
		return w
	default:
		return nil
	}
}

// EncoderBuffer is a buffer for incremental encoding.
//
// The zero value is NOT ready for use. To get a usable buffer,
// create it using NewEncoderBuffer or call Reset.
type EncoderBuffer struct {
	buf *encBuffer
	dst io.Writer

	ownBuffer bool
}

// NewEncoderBuffer creates an encoder buffer.
func NewEncoderBuffer(dst io.Writer) EncoderBuffer {
	var w EncoderBuffer
	w.Reset(dst)
	return w
}

// Reset truncates the buffer and sets the output destination.
func (w *EncoderBuffer) Reset(dst io.Writer) {
	if w.buf != nil && !w.ownBuffer {
		panic("can't Reset derived EncoderBuffer")
	}

	// Share the destination's buffer when writing into another encoder,
	// so nested encoders append in place. Note that w.ownBuffer is left
	// false here.
	if outer := encBufferFromWriter(dst); outer != nil {
		*w = EncoderBuffer{buf: outer}
		return
	}

	if w.buf == nil {
		w.buf = getEncBuffer()
		w.ownBuffer = true
	} else {
		w.buf.reset()
	}
	w.dst = dst
}

// Flush writes encoded RLP data to the output writer. This can only be
// called once. If you want to re-use the buffer after Flush, you must
// call Reset.
func (w *EncoderBuffer) Flush() error {
	var err error
	if w.dst != nil {
		err = w.buf.writeTo(w.dst)
	}
	// Release the internal buffer.
	if w.ownBuffer {
		encBufferPool.Put(w.buf)
	}
	*w = EncoderBuffer{}
	return err
}

// ToBytes returns the encoded bytes.
func (w *EncoderBuffer) ToBytes() []byte {
	return w.buf.makeBytes()
}

// AppendToBytes appends the encoded bytes to dst.
func (w *EncoderBuffer) AppendToBytes(dst []byte) []byte {
	w.buf.segments(func(seg []byte) {
		dst = append(dst, seg...)
	})
	return dst
}

// Write appends b directly to the encoder output.
func (w EncoderBuffer) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

// WriteByte appends b directly to the encoder output.
func (w EncoderBuffer) WriteByte(b byte) error {
	return w.buf.WriteByte(b)
}

// WriteBool writes b as the integer 0 (false) or 1 (true).
func (w EncoderBuffer) WriteBool(b bool) {
	if b {
		w.buf.writeUint64(1)
	} else {
		w.buf.writeUint64(0)
	}
}

// WriteUint64 encodes an unsigned integer.
func (w EncoderBuffer) WriteUint64(i uint64) {
	w.buf.writeUint64(i)
}

// WriteUint256 encodes uint256.Int as an RLP string.
func (w EncoderBuffer) WriteUint256(i *uint256.Int) {
	w.buf.writeUint256(i)
}

// WriteBytes encodes b as an RLP string.
func (w EncoderBuffer) WriteBytes(b []byte) {
	w.buf.writeBytes(b)
}

// WriteString encodes s as an RLP string.
func (w EncoderBuffer) WriteString(s string) {
	w.buf.writeBytes([]byte(s))
}

// List starts a list. It returns an internal index. Call ListEnd with
// this index after encoding the content to finish the list.
func (w EncoderBuffer) List() int {
	return w.buf.list()
}

// ListEnd finishes the given list.
func (w EncoderBuffer) ListEnd(index int) {
	w.buf.listEnd(index)
}
