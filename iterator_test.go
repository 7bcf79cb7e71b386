// Copyright (c) kvbit contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIteratorAscending(t *testing.T) {
	rb := NewFrom(5, 1, 70000, 3, 65536)
	it := rb.Iterator()

	var got []uint32
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, rb.ToArray(), got)
}

func TestIteratorEmpty(t *testing.T) {
	rb := New()
	it := rb.Iterator()
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestIteratorAcrossBitmapContainer(t *testing.T) {
	rb := New()
	for i := uint32(0); i < 5000; i++ {
		rb.Add(i)
	}
	it := rb.Iterator()
	var count int
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, 5000, count)
}

func TestIteratorRemove(t *testing.T) {
	rb := NewFrom(1, 2, 3, 4, 5)
	it := rb.Iterator()

	var kept []uint32
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if v%2 == 0 {
			it.Remove()
			continue
		}
		kept = append(kept, v)
	}

	assert.Equal(t, []uint32{1, 3, 5}, kept)
	assert.Equal(t, []uint32{1, 3, 5}, rb.ToArray())
}

func TestIteratorRemoveEmptiesContainer(t *testing.T) {
	rb := NewFrom(1, 2, 3)
	it := rb.Iterator()
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		it.Remove()
	}
	assert.True(t, rb.IsEmpty())
}

// TestIteratorRemoveAcrossDowngrade exercises Remove() triggering a
// BitmapContainer -> ArrayContainer downgrade mid-iteration: the iterator
// must keep iterating correctly rather than mis-tracking its cursor once
// the underlying representation changes shape.
func TestIteratorRemoveAcrossDowngrade(t *testing.T) {
	rb := New()
	for i := uint32(0); i <= 4096; i++ {
		rb.Add(i)
	}
	assert.Equal(t, kindBitmap, rb.ra.containers[0].kind)

	it := rb.Iterator()
	for i := 0; i < 10; i++ {
		_, ok := it.Next()
		assert.True(t, ok)
	}

	assert.True(t, it.Remove()) // drops cardinality to 4096, downgrading to array
	assert.Equal(t, kindArray, rb.ra.containers[0].kind)

	var rest []uint32
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		rest = append(rest, v)
	}

	assert.Equal(t, rb.ToArray(), append([]uint32{0, 1, 2, 3, 4, 5, 6, 7, 8}, rest...))
	assert.Equal(t, uint64(4096), rb.Cardinality())
}
