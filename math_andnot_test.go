// Copyright (c) kvbit contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainerAndNot(t *testing.T) {
	tc := []struct {
		name   string
		c1     container
		c2     container
		result []uint16
	}{
		{"empty", newArrC(), newArrC(), []uint16{}},
		{"arr ¬ arr all", newArrC(1, 2, 3), newArrC(1, 2, 3), []uint16{}},
		{"bmp ¬ bmp all", newBmpC(1, 2, 3), newBmpC(1, 2, 3), []uint16{}},

		{"arr ¬ arr disjoint", newArrC(1, 2, 3), newArrC(4, 5, 6), []uint16{1, 2, 3}},
		{"bmp ¬ bmp disjoint", newBmpC(1, 2, 3), newBmpC(4, 5, 6), []uint16{1, 2, 3}},

		{"arr ¬ arr partial", newArrC(1, 2, 3, 4), newArrC(3, 4, 5, 6), []uint16{1, 2}},
		{"arr ¬ bmp partial", newArrC(1, 2, 3, 4), newBmpC(3, 4, 5, 6), []uint16{1, 2}},
		{"bmp ¬ arr partial", newBmpC(1, 2, 3, 4), newArrC(3, 4, 5, 6), []uint16{1, 2}},
		{"bmp ¬ bmp partial", newBmpC(1, 2, 3, 4), newBmpC(3, 4, 5, 6), []uint16{1, 2}},

		{"arr ¬ empty", newArrC(1, 2, 3), newArrC(), []uint16{1, 2, 3}},
		{"empty ¬ arr", newArrC(), newArrC(1, 2, 3), []uint16{}},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			c1, c2 := tt.c1, tt.c2
			got := c1.andNot(&c2)
			assert.Equal(t, tt.result, valuesOfC(&got))
			assert.Equal(t, tt.c1.cardinality(), c1.cardinality())
			assert.Equal(t, tt.c2.cardinality(), c2.cardinality())
		})
	}
}

func TestContainerAndNotDowngradesBitmap(t *testing.T) {
	c1 := newBmpC()
	for i := uint16(0); i < 5000; i++ {
		c1.add(i)
	}
	c2 := newBmpC()
	for i := uint16(3); i < 5000; i++ {
		c2.add(i)
	}
	c1.iandNot(&c2)
	assert.Equal(t, kindArray, c1.kind)
	assert.Equal(t, []uint16{0, 1, 2}, valuesOfC(&c1))
}
