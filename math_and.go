// Copyright (c) kvbit contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// and returns a new container holding the intersection of c and o, never
// mutating either operand. It clones c and runs the in-place algorithm on
// the clone, keeping one algorithm per (kind, kind) pair instead of two.
func (c *container) and(o *container) container {
	out := c.clone()
	out.iand(o)
	return out
}

// iand intersects o into c in place. c may change kind; c.n reflects the
// new cardinality, possibly zero.
func (c *container) iand(o *container) {
	c.ensureOwned()
	switch {
	case c.kind == kindArray && o.kind == kindArray:
		c.andArrayArray(o)
	case c.kind == kindArray && o.kind == kindBitmap:
		c.andArrayBitmap(o)
	case c.kind == kindBitmap && o.kind == kindArray:
		c.andBitmapArray(o)
	default:
		c.andBitmapBitmap(o)
	}
}

// andArrayArray merge-walks two sorted arrays, keeping the common elements.
func (c *container) andArrayArray(o *container) {
	a, b := c.array, o.array
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			a[k] = a[i]
			k++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	c.array = a[:k]
	c.n = uint32(k)
}

// andArrayBitmap keeps only the array elements present in the bitmap.
func (c *container) andArrayBitmap(o *container) {
	out := c.array[:0]
	for _, v := range c.array {
		if o.bits.Contains(uint32(v)) {
			out = append(out, v)
		}
	}
	c.array = out
	c.n = uint32(len(out))
}

// andBitmapArray is the mirror of andArrayBitmap: the smaller operand (the
// array) bounds the result, so the result is always an ArrayContainer.
func (c *container) andBitmapArray(o *container) {
	out := make([]uint16, 0, len(o.array))
	for _, v := range o.array {
		if c.bits.Contains(uint32(v)) {
			out = append(out, v)
		}
	}
	c.kind = kindArray
	c.bits = nil
	c.array = out
	c.n = uint32(len(out))
}

// andBitmapBitmap ANDs word-wise, downgrading to an array if the result is
// small enough.
func (c *container) andBitmapBitmap(o *container) {
	c.bits.And(o.bits)
	c.n = uint32(c.bits.Count())
	if c.n <= arrayMaxCardinality {
		c.bitmapToArray()
	}
}
