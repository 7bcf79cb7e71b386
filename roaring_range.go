// Copyright (c) kvbit contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// Flip returns a.Xor(range(start, end)): the symmetric difference of a
// with the contiguous interval [start, end). a is left unmodified.
// start >= end is a no-op, returning a clone of a.
//
// end is accepted up to 1<<32 inclusive: since Go's uint32 cannot name
// 2^32 itself, end is taken as a uint64 and rejected with
// ErrRangeOverflow above 1<<32, widening the arithmetic rather than
// truncating it.
func Flip(a *Bitmap, start, end uint64) (*Bitmap, error) {
	if end > 1<<32 {
		return nil, ErrRangeOverflow
	}
	if start >= end {
		return a.Clone(), nil
	}

	hbS, lbS := highBits(uint32(start)), lowBits(uint32(start))
	last := end - 1
	hbL, lbL := highBits(uint32(last)), lowBits(uint32(last))

	out := &roaringArray{}
	out.appendCopiesUntil(a.ra, hbS)

	for hb := uint32(hbS); hb <= uint32(hbL); hb++ {
		lo := uint16(0)
		if uint16(hb) == hbS {
			lo = lbS
		}
		hi := uint16(65535)
		if uint16(hb) == hbL {
			hi = lbL
		}

		i := a.ra.getIndex(uint16(hb))
		var c container
		if i >= 0 {
			c = a.ra.containers[i].not(lo, hi)
		} else {
			c = rangeOfOnes(lo, hi)
		}
		if !c.isEmpty() {
			out.append(uint16(hb), c)
		}
	}

	out.appendCopiesAfter(a.ra, hbL)
	return &Bitmap{ra: out}, nil
}

// Flip mutates rb in place to its symmetric difference with [start, end).
// Range errors follow the same rule as the static form.
func (rb *Bitmap) Flip(start, end uint64) error {
	flipped, err := Flip(rb, start, end)
	if err != nil {
		return err
	}
	rb.ra = flipped.ra
	return nil
}
