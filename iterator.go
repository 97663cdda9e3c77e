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

// ListIterator walks the elements of an encoded list one item at a time.
// It is the building block for tuple-like aggregates: open the list, then
// read each field in its declared order.
type ListIterator struct {
	data []byte
	next []byte
	err  error
}

// NewListIterator creates an iterator over the list item at the start of
// data. It returns ErrUnexpectedString if the item is a string.
func NewListIterator(data []byte) (*ListIterator, error) {
	content, _, err := SplitList(data)
	if err != nil {
		return nil, err
	}
	return &ListIterator{data: content}, nil
}

// Next forwards the iterator one step, it returns true as long as there
// is an item to read. Check Err after a false return.
func (it *ListIterator) Next() bool {
	if it.err != nil || len(it.data) == 0 {
		return false
	}
	_, _, rest, err := Split(it.data)
	if err != nil {
		it.err = err
		return false
	}
	it.next = it.data[:len(it.data)-len(rest)]
	it.data = rest
	return true
}

// Value returns the current item, header included.
func (it *ListIterator) Value() []byte {
	return it.next
}

func (it *ListIterator) Err() error {
	return it.err
}

// DecodeNext decodes the next element into val. It returns false with a
// nil error when the list is exhausted.
func (it *ListIterator) DecodeNext(val Decodable) (bool, error) {
	if it.err != nil {
		return false, it.err
	}
	if len(it.data) == 0 {
		return false, nil
	}
	rest, err := val.DecodeRLP(it.data)
	if err != nil {
		it.err = err
		return false, err
	}
	it.data = rest
	return true, nil
}

// Next decodes the next element of it with the given element decoder.
// The second return is false when the list is exhausted.
func Next[T any](it *ListIterator, elem func([]byte) (T, []byte, error)) (T, bool, error) {
	var zero T
	if it.err != nil {
		return zero, false, it.err
	}
	if len(it.data) == 0 {
		return zero, false, nil
	}
	v, rest, err := elem(it.data)
	if err != nil {
		it.err = err
		return zero, false, err
	}
	it.data = rest
	return v, true, nil
}
