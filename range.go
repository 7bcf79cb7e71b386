// Copyright (c) kvbit contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "math/bits"

// not returns a new container that is the symmetric difference of c with
// the inclusive range [lo, hi] (allocating form). 0 <= lo <= hi <= 65535.
func (c *container) not(lo, hi uint16) container {
	out := c.clone()
	out.inot(lo, hi)
	return out
}

// inot flips every value in [lo, hi] (inclusive) in c, in place.
func (c *container) inot(lo, hi uint16) {
	c.ensureOwned()
	if c.kind == kindArray {
		c.notArray(lo, hi)
	} else {
		c.notBitmap(lo, hi)
	}
}

// rangeOfOnes builds a fresh container holding exactly [lo, hi] (inclusive),
// used by Bitmap.Flip when a key within the flipped span has no existing
// container: the complement of the empty set over that range is the range
// itself.
func rangeOfOnes(lo, hi uint16) container {
	c := newArrayContainer()
	c.inot(lo, hi)
	return c
}

// notArray merge-walks the sorted array against the implicit ascending
// sequence lo..hi, keeping array elements outside the range untouched and
// toggling membership for every value inside it.
func (c *container) notArray(lo, hi uint16) {
	out := make([]uint16, 0, len(c.array)+int(hi-lo)+1)

	i := 0
	for i < len(c.array) && int(c.array[i]) < int(lo) {
		out = append(out, c.array[i])
		i++
	}

	for v := int(lo); v <= int(hi); v++ {
		if i < len(c.array) && int(c.array[i]) == v {
			i++ // present on both sides: cancels out
		} else {
			out = append(out, uint16(v))
		}
	}

	out = append(out, c.array[i:]...)

	c.array = out
	c.n = uint32(len(out))
	if c.n > arrayMaxCardinality {
		c.arrayToBitmap()
	}
}

// notBitmap flips the bits covering [lo, hi], recomputing the cardinality
// delta from only the affected words rather than a full rescan: one masked
// XOR for each boundary word, a full-word XOR for every word strictly
// between them.
func (c *container) notBitmap(lo, hi uint16) {
	wLo, wHi := int(lo)/64, int(hi)/64
	bLo, bHi := uint(lo)%64, uint(hi)%64

	delta := 0
	flip := func(w int, mask uint64) {
		before := bits.OnesCount64(c.bits[w])
		c.bits[w] ^= mask
		delta += bits.OnesCount64(c.bits[w]) - before
	}

	if wLo == wHi {
		flip(wLo, (^uint64(0)<<bLo)&(^uint64(0)>>(63-bHi)))
	} else {
		flip(wLo, ^uint64(0)<<bLo)
		for w := wLo + 1; w < wHi; w++ {
			flip(w, ^uint64(0))
		}
		flip(wHi, ^uint64(0)>>(63-bHi))
	}

	c.n = uint32(int(c.n) + delta)
	if c.n <= arrayMaxCardinality {
		c.bitmapToArray()
	}
}
