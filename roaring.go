// Copyright (c) kvbit contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// Bitmap is a compressed, sorted set of uint32 values, stored as a
// high-16-bits-keyed sequence of containers. The zero value is not usable;
// construct one with New.
type Bitmap struct {
	ra *roaringArray
}

// New returns an empty Bitmap.
func New() *Bitmap {
	return &Bitmap{ra: &roaringArray{}}
}

// NewFrom returns a Bitmap containing exactly the given values, added in
// the order given (later duplicates are no-ops).
func NewFrom(values ...uint32) *Bitmap {
	rb := New()
	for _, v := range values {
		rb.Add(v)
	}
	return rb
}

// Add inserts value, returning true if it was not already present.
func (rb *Bitmap) Add(value uint32) bool {
	hb, lb := highBits(value), lowBits(value)
	i := rb.ra.getIndex(hb)
	if i >= 0 {
		return rb.ra.containers[i].add(lb)
	}

	c := singleton(lb)
	rb.ra.insertNewKeyValueAt(^i, hb, c)
	return true
}

// Remove deletes value, returning true if it was present. The owning
// container is dropped the instant it empties.
func (rb *Bitmap) Remove(value uint32) bool {
	hb, lb := highBits(value), lowBits(value)
	i := rb.ra.getIndex(hb)
	if i < 0 {
		return false
	}

	removed := rb.ra.containers[i].remove(lb)
	if removed && rb.ra.containers[i].isEmpty() {
		rb.ra.removeAtIndex(i)
	}
	return removed
}

// Contains reports whether value is a member.
func (rb *Bitmap) Contains(value uint32) bool {
	hb, lb := highBits(value), lowBits(value)
	i := rb.ra.getIndex(hb)
	if i < 0 {
		return false
	}
	return rb.ra.containers[i].contains(lb)
}

// Cardinality returns the total number of members.
func (rb *Bitmap) Cardinality() uint64 {
	return rb.ra.cardinality()
}

// IsEmpty reports whether the bitmap has no members.
func (rb *Bitmap) IsEmpty() bool {
	return rb.ra.size() == 0
}

// Min returns the smallest member, or ok=false if the bitmap is empty.
func (rb *Bitmap) Min() (uint32, bool) {
	if rb.ra.size() == 0 {
		return 0, false
	}
	lo, _ := rb.ra.containers[0].min()
	return joinBits(rb.ra.keys[0], lo), true
}

// Max returns the largest member, or ok=false if the bitmap is empty.
func (rb *Bitmap) Max() (uint32, bool) {
	n := rb.ra.size()
	if n == 0 {
		return 0, false
	}
	hi, _ := rb.ra.containers[n-1].max()
	return joinBits(rb.ra.keys[n-1], hi), true
}

// Clone returns an independent copy. The copy is cheap (O(container count)):
// backing storage is shared copy-on-write until either side mutates it.
func (rb *Bitmap) Clone() *Bitmap {
	return &Bitmap{ra: rb.ra.clone()}
}

// Equals reports whether rb and other contain exactly the same values.
func (rb *Bitmap) Equals(other *Bitmap) bool {
	return rb.ra.equals(other.ra)
}

// ToArray returns every member in ascending order.
func (rb *Bitmap) ToArray() []uint32 {
	out := make([]uint32, rb.ra.cardinality())
	offset := 0
	for i, key := range rb.ra.keys {
		hs := uint32(key) << 16
		rb.ra.containers[i].fillLeastSignificant16bits(out, offset, hs)
		offset += rb.ra.containers[i].cardinality()
	}
	return out
}

// SizeInBytes estimates the in-memory footprint of the backing containers.
func (rb *Bitmap) SizeInBytes() int {
	return rb.ra.sizeInBytes()
}

// Trim shrinks every array container's backing slice to its contents,
// releasing slack capacity left over from incremental Add calls.
func (rb *Bitmap) Trim() {
	for i := range rb.ra.containers {
		rb.ra.containers[i].trim()
	}
}
