// Copyright (c) kvbit contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"math/bits"

	"github.com/kelindar/bitmap"
)

type kind uint8

const (
	kindArray kind = iota
	kindBitmap
)

const (
	// arrayMaxCardinality is the switch threshold: an ArrayContainer
	// upgrades to a BitmapContainer the moment its cardinality would
	// exceed this, and a BitmapContainer downgrades back once its
	// cardinality falls to this or below.
	arrayMaxCardinality = 4096

	// bitmapWords is the fixed word count backing every BitmapContainer:
	// 1024 x 64-bit words = 65536 bits, one per possible low-bits value.
	bitmapWords = 1024
)

// container is the tagged-variant representation of a subset of [0, 65536):
// an ArrayContainer or a BitmapContainer behind one Go type, dispatched on
// kind. Mutating methods rewrite the receiver's
// fields in place (including kind, when the representation should change)
// rather than returning a new container, so a *container held anywhere
// (a RoaringArray slot, an iterator) stays valid across the call.
//
// shared marks a container whose backing storage (array or bits) is still
// owned by another container from a shallow Clone; the first mutation
// forks it via ensureOwned.
type container struct {
	kind   kind
	shared bool
	n      uint32
	array  []uint16
	bits   bitmap.Bitmap
}

func newArrayContainer() container {
	return container{kind: kindArray}
}

func newBitmapContainer() container {
	return container{kind: kindBitmap, bits: make(bitmap.Bitmap, bitmapWords)}
}

// copyOfBits returns an independent copy of a 1024-word bitmap, used by the
// mixed-kind boolean ops to avoid aliasing another container's storage.
func copyOfBits(b bitmap.Bitmap) bitmap.Bitmap {
	cp := make(bitmap.Bitmap, len(b))
	copy(cp, b)
	return cp
}

// singleton returns a new ArrayContainer holding exactly one value, the
// shape Bitmap.Add creates the first time a high key is seen.
func singleton(value uint16) container {
	return container{kind: kindArray, n: 1, array: []uint16{value}}
}

// ensureOwned forks shared backing storage before a mutation, implementing
// the clone-on-write discipline: Clone is O(container count), not
// O(total cardinality), until something writes.
func (c *container) ensureOwned() {
	if !c.shared {
		return
	}
	switch c.kind {
	case kindArray:
		cp := make([]uint16, len(c.array), len(c.array))
		copy(cp, c.array)
		c.array = cp
	case kindBitmap:
		cp := make(bitmap.Bitmap, len(c.bits))
		copy(cp, c.bits)
		c.bits = cp
	}
	c.shared = false
}

// clone deep-copies the container unconditionally, independent of the COW
// shared flag: the result owns its own backing storage outright.
func (c *container) clone() container {
	out := container{kind: c.kind, n: c.n}
	switch c.kind {
	case kindArray:
		out.array = make([]uint16, len(c.array))
		copy(out.array, c.array)
	case kindBitmap:
		out.bits = make(bitmap.Bitmap, len(c.bits))
		copy(out.bits, c.bits)
	}
	return out
}

func (c *container) cardinality() int { return int(c.n) }
func (c *container) isEmpty() bool    { return c.n == 0 }

// add inserts value, returning true if it was not already present. Crossing
// arrayMaxCardinality upgrades the container to a bitmap in place.
func (c *container) add(value uint16) bool {
	c.ensureOwned()
	if c.kind == kindArray {
		return c.arrayAdd(value)
	}
	return c.bitmapAdd(value)
}

// remove deletes value, returning true if it was present. Falling to or
// below arrayMaxCardinality downgrades a bitmap container to an array.
func (c *container) remove(value uint16) bool {
	c.ensureOwned()
	if c.kind == kindArray {
		return c.arrayRemove(value)
	}
	return c.bitmapRemove(value)
}

func (c *container) contains(value uint16) bool {
	if c.kind == kindArray {
		return c.arrayContains(value)
	}
	return c.bits.Contains(uint32(value))
}

func (c *container) min() (uint16, bool) {
	if c.n == 0 {
		return 0, false
	}
	if c.kind == kindArray {
		return c.array[0], true
	}
	return c.bitmapMin()
}

func (c *container) max() (uint16, bool) {
	if c.n == 0 {
		return 0, false
	}
	if c.kind == kindArray {
		return c.array[len(c.array)-1], true
	}
	return c.bitmapMax()
}

// sizeInBytes is the approximate backing-storage size that
// Bitmap.SizeInBytes sums over every container.
func (c *container) sizeInBytes() int {
	if c.kind == kindArray {
		return len(c.array) * 2
	}
	return bitmapWords * 8
}

// trim shrinks backing capacity to the minimum needed for the current
// contents, safe to call at any time on a quiescent bitmap.
func (c *container) trim() {
	if c.kind == kindArray && cap(c.array) > len(c.array) {
		tight := make([]uint16, len(c.array))
		copy(tight, c.array)
		c.array = tight
	}
}

// fillLeastSignificant16bits writes this container's values OR'd with hs
// into out[offset:], in ascending order.
func (c *container) fillLeastSignificant16bits(out []uint32, offset int, hs uint32) {
	if c.kind == kindArray {
		for i, v := range c.array {
			out[offset+i] = hs | uint32(v)
		}
		return
	}

	i := offset
	for w := 0; w < len(c.bits); w++ {
		word := c.bits[w]
		base := uint32(w * 64)
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out[i] = hs | (base + uint32(b))
			i++
			word &= word - 1
		}
	}
}

// equalsContainer reports whether c and o represent the same set,
// independent of which variant either one is stored as.
func (c *container) equalsContainer(o *container) bool {
	if c.n != o.n {
		return false
	}
	if c.kind == o.kind {
		if c.kind == kindArray {
			for i := range c.array {
				if c.array[i] != o.array[i] {
					return false
				}
			}
			return true
		}
		for i := range c.bits {
			if c.bits[i] != o.bits[i] {
				return false
			}
		}
		return true
	}

	// Mixed variants: walk the array side and probe the bitmap side.
	arr, bmp := c, o
	if arr.kind != kindArray {
		arr, bmp = o, c
	}
	for _, v := range arr.array {
		if !bmp.contains(v) {
			return false
		}
	}
	return true
}
