// Copyright (c) kvbit contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainerOr(t *testing.T) {
	tc := []struct {
		name   string
		c1     container
		c2     container
		result []uint16
	}{
		{"empty", newArrC(), newArrC(), []uint16{}},
		{"arr ∨ arr", newArrC(1, 2, 3), newArrC(1, 2, 3), []uint16{1, 2, 3}},
		{"arr ∨ bmp", newArrC(1, 2, 3), newBmpC(1, 2, 3), []uint16{1, 2, 3}},
		{"bmp ∨ arr", newBmpC(1, 2, 3), newArrC(1, 2, 3), []uint16{1, 2, 3}},
		{"bmp ∨ bmp", newBmpC(1, 2, 3), newBmpC(1, 2, 3), []uint16{1, 2, 3}},

		{"arr ∨ arr partial", newArrC(1, 2, 3), newArrC(4, 5, 6), []uint16{1, 2, 3, 4, 5, 6}},
		{"arr ∨ bmp partial", newArrC(1, 2, 3), newBmpC(4, 5, 6), []uint16{1, 2, 3, 4, 5, 6}},
		{"bmp ∨ arr partial", newBmpC(1, 2, 3), newArrC(4, 5, 6), []uint16{1, 2, 3, 4, 5, 6}},

		{"arr ∨ arr overlap", newArrC(1, 2, 3, 4), newArrC(3, 4, 5, 6), []uint16{1, 2, 3, 4, 5, 6}},

		{"arr ∨ arr boundary", newArrC(0, 1), newArrC(65534, 65535), []uint16{0, 1, 65534, 65535}},

		{"arr ∨ empty", newArrC(1, 2, 3), newArrC(), []uint16{1, 2, 3}},
		{"empty ∨ arr", newArrC(), newArrC(1, 2, 3), []uint16{1, 2, 3}},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			c1, c2 := tt.c1, tt.c2
			got := c1.or(&c2)
			assert.Equal(t, tt.result, valuesOfC(&got))
			assert.Equal(t, tt.c1.cardinality(), c1.cardinality())
			assert.Equal(t, tt.c2.cardinality(), c2.cardinality())
		})
	}
}

func TestContainerOrUpgradesArray(t *testing.T) {
	c1 := newArrC()
	for i := uint16(0); i < 3000; i++ {
		c1.add(i * 2)
	}
	c2 := newArrC()
	for i := uint16(0); i < 3000; i++ {
		c2.add(i*2 + 1)
	}
	c1.ior(&c2)
	assert.Equal(t, kindBitmap, c1.kind)
	assert.Equal(t, 6000, c1.cardinality())
}
