// Copyright (c) kvbit contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"encoding/binary"
	"io"
)

// cookie identifies this package's wire format. It deliberately does not
// match any other roaring bitmap implementation's magic number: streams
// produced here are only meant to round-trip through this package (see
// DESIGN.md).
const cookie uint32 = 0x726F6172 // hex digits spell ASCII "roar"; written little-endian, so the wire bytes are 72 61 6F 72

// WriteTo serializes rb and writes it to w, returning the number of bytes
// written.
func (rb *Bitmap) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, rb.serializedSizeInBytes())
	n := rb.encodeInto(buf)
	written, err := w.Write(buf[:n])
	return int64(written), err
}

// ToBytes serializes rb into a freshly allocated byte slice.
func (rb *Bitmap) ToBytes() []byte {
	buf := make([]byte, rb.serializedSizeInBytes())
	n := rb.encodeInto(buf)
	return buf[:n]
}

// serializedSizeInBytes computes the exact wire size without encoding,
// so WriteTo/ToBytes can allocate once.
func (rb *Bitmap) serializedSizeInBytes() int {
	size := len(rb.ra.keys)
	total := 4 + 4 + size*4 + size*4 // cookie + size + keys/cards + offsets
	for i := range rb.ra.containers {
		total += rb.ra.containers[i].payloadSizeInBytes()
	}
	return total
}

func (c *container) payloadSizeInBytes() int {
	if c.kind == kindArray {
		return len(c.array) * 2
	}
	return bitmapWords * 8
}

func (rb *Bitmap) encodeInto(buf []byte) int {
	size := len(rb.ra.keys)
	off := 0

	binary.LittleEndian.PutUint32(buf[off:], cookie)
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], uint32(size))
	off += 4

	keysTableOff := off
	off += size * 4
	offsetsTableOff := off
	off += size * 4
	payloadOff := off

	for i := 0; i < size; i++ {
		card := rb.ra.containers[i].cardinality()
		binary.LittleEndian.PutUint16(buf[keysTableOff:], rb.ra.keys[i])
		binary.LittleEndian.PutUint16(buf[keysTableOff+2:], uint16(card-1))
		keysTableOff += 4

		binary.LittleEndian.PutUint32(buf[offsetsTableOff:], uint32(payloadOff))
		offsetsTableOff += 4

		payloadOff += rb.ra.containers[i].encodePayload(buf[payloadOff:])
	}

	return payloadOff
}

func (c *container) encodePayload(buf []byte) int {
	if c.kind == kindArray {
		for i, v := range c.array {
			binary.LittleEndian.PutUint16(buf[i*2:], v)
		}
		return len(c.array) * 2
	}
	for i, w := range c.bits {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return bitmapWords * 8
}

// ReadFrom reads and deserializes a Bitmap written by WriteTo/ToBytes.
func ReadFrom(r io.Reader) (*Bitmap, int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, int64(len(data)), err
	}
	rb, err := FromBytes(data)
	return rb, int64(len(data)), err
}

// FromBytes deserializes a Bitmap previously produced by ToBytes/WriteTo.
// It rejects malformed streams: bad cookie, truncation, out-of-range
// cardinality, or non-increasing keys.
func FromBytes(data []byte) (*Bitmap, error) {
	if len(data) < 8 {
		return nil, ErrTruncated
	}
	if binary.LittleEndian.Uint32(data) != cookie {
		return nil, ErrBadCookie
	}
	size := int(binary.LittleEndian.Uint32(data[4:]))

	keysTableOff := 8
	offsetsTableOff := keysTableOff + size*4
	payloadStart := offsetsTableOff + size*4
	if len(data) < payloadStart {
		return nil, ErrTruncated
	}

	ra := &roaringArray{
		keys:       make([]uint16, size),
		containers: make([]container, size),
	}

	var prevKey uint16
	for i := 0; i < size; i++ {
		key := binary.LittleEndian.Uint16(data[keysTableOff:])
		cardMinusOne := binary.LittleEndian.Uint16(data[keysTableOff+2:])
		keysTableOff += 4

		if i > 0 && key <= prevKey {
			return nil, ErrKeysNotSorted
		}
		prevKey = key

		card := int(cardMinusOne) + 1
		if card <= 0 || card > 65536 {
			return nil, ErrBadCardinality
		}

		offset := int(binary.LittleEndian.Uint32(data[offsetsTableOff:]))
		offsetsTableOff += 4

		c, err := decodeContainer(data, offset, card)
		if err != nil {
			return nil, err
		}

		ra.keys[i] = key
		ra.containers[i] = c
	}

	return &Bitmap{ra: ra}, nil
}

func decodeContainer(data []byte, offset, card int) (container, error) {
	if card <= arrayMaxCardinality {
		end := offset + card*2
		if end > len(data) {
			return container{}, ErrTruncated
		}
		c := container{kind: kindArray, n: uint32(card), array: make([]uint16, card)}
		for i := range c.array {
			c.array[i] = binary.LittleEndian.Uint16(data[offset+i*2:])
		}
		return c, nil
	}

	end := offset + bitmapWords*8
	if end > len(data) {
		return container{}, ErrTruncated
	}
	c := newBitmapContainer()
	c.n = uint32(card)
	for i := range c.bits {
		c.bits[i] = binary.LittleEndian.Uint64(data[offset+i*8:])
	}
	return c, nil
}
