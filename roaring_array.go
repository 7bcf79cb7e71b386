// Copyright (c) kvbit contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// roaringArray is the ordered, binary-searchable key -> container
// association: two parallel slices, keys kept strictly increasing, each
// container owned exclusively by this array.
type roaringArray struct {
	keys       []uint16
	containers []container
}

func (ra *roaringArray) size() int { return len(ra.keys) }

// getIndex returns the index of key if present, or the bitwise complement
// of the position at which it would need to be inserted (the same
// "insertion-point or found" contract as Java's Arrays.binarySearch).
func (ra *roaringArray) getIndex(key uint16) int {
	return search16(ra.keys, key)
}

// append pushes (key, c) at the end. The caller guarantees key is strictly
// greater than the current last key; violating that is a programmer bug,
// not a recoverable runtime condition.
func (ra *roaringArray) append(key uint16, c container) {
	if n := len(ra.keys); n > 0 && key <= ra.keys[n-1] {
		invariant("append: key not strictly increasing")
	}
	ra.keys = append(ra.keys, key)
	ra.containers = append(ra.containers, c)
}

// appendCopy clones src's container at i and appends it under src's key.
func (ra *roaringArray) appendCopy(src *roaringArray, i int) {
	ra.append(src.keys[i], src.containers[i].clone())
}

// appendCopyRange clones src's containers over [from, to) and appends them.
func (ra *roaringArray) appendCopyRange(src *roaringArray, from, to int) {
	for i := from; i < to; i++ {
		ra.appendCopy(src, i)
	}
}

// appendCopiesUntil clones every src container whose key is < stopKey.
func (ra *roaringArray) appendCopiesUntil(src *roaringArray, stopKey uint16) {
	for i, k := range src.keys {
		if k >= stopKey {
			return
		}
		ra.appendCopy(src, i)
	}
}

// appendCopiesAfter clones every src container whose key is > startKey.
func (ra *roaringArray) appendCopiesAfter(src *roaringArray, startKey uint16) {
	start := search16(src.keys, startKey)
	if start >= 0 {
		start++
	} else {
		start = ^start
	}
	ra.appendCopyRange(src, start, len(src.keys))
}

// insertNewKeyValueAt shift-inserts (key, c) at index i, keeping keys sorted.
func (ra *roaringArray) insertNewKeyValueAt(i int, key uint16, c container) {
	ra.keys = append(ra.keys, 0)
	copy(ra.keys[i+1:], ra.keys[i:len(ra.keys)-1])
	ra.keys[i] = key

	ra.containers = append(ra.containers, container{})
	copy(ra.containers[i+1:], ra.containers[i:len(ra.containers)-1])
	ra.containers[i] = c
}

// removeAtIndex deletes the entry at index i, called the instant a
// container's cardinality drops to zero.
func (ra *roaringArray) removeAtIndex(i int) {
	copy(ra.keys[i:], ra.keys[i+1:])
	ra.keys = ra.keys[:len(ra.keys)-1]

	copy(ra.containers[i:], ra.containers[i+1:])
	ra.containers = ra.containers[:len(ra.containers)-1]
}

// resize truncates to n entries, releasing containers beyond n.
func (ra *roaringArray) resize(n int) {
	for i := n; i < len(ra.containers); i++ {
		ra.containers[i] = container{}
	}
	ra.keys = ra.keys[:n]
	ra.containers = ra.containers[:n]
}

// clone deep-copies the array structurally while keeping container copies
// cheap: every container is marked shared (on both the original and the
// copy) so the backing storage is only forked by whichever side mutates
// first (container.ensureOwned).
func (ra *roaringArray) clone() *roaringArray {
	out := &roaringArray{
		keys:       append([]uint16(nil), ra.keys...),
		containers: make([]container, len(ra.containers)),
	}
	for i := range ra.containers {
		ra.containers[i].shared = true
	}
	copy(out.containers, ra.containers)
	return out
}

func (ra *roaringArray) equals(other *roaringArray) bool {
	if len(ra.keys) != len(other.keys) {
		return false
	}
	for i := range ra.keys {
		if ra.keys[i] != other.keys[i] || !ra.containers[i].equalsContainer(&other.containers[i]) {
			return false
		}
	}
	return true
}

func (ra *roaringArray) cardinality() uint64 {
	var total uint64
	for i := range ra.containers {
		total += uint64(ra.containers[i].cardinality())
	}
	return total
}

// sizeInBytes estimates the total footprint: 8 fixed + 2 bytes of key
// overhead per entry + each container's own sizeInBytes.
func (ra *roaringArray) sizeInBytes() int {
	total := 8
	for i := range ra.containers {
		total += 2 + ra.containers[i].sizeInBytes()
	}
	return total
}
