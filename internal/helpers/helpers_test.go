package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	a := make([]int, 0, 5)
	b := append(a[:0], 1, 2, 3, 4)
	c := append(a[:0], 4, 5, 6)

	assert.Equal(t, []int{}, a)
	assert.Equal(t, []int{4, 5, 6, 4}, b)
	assert.Equal(t, []int{4, 5, 6}, c)
}

func TestFindInSlice(t *testing.T) {
	found := FindInSlice([]string{"e2e4", "d2d4"}, func(s string) bool { return s == "d2d4" })
	assert.True(t, found.HasValue())
	assert.Equal(t, "d2d4", found.Value())

	missing := FindInSlice([]string{"e2e4"}, func(s string) bool { return s == "a2a3" })
	assert.True(t, missing.IsEmpty())
	assert.Equal(t, "none", missing.ValueOr("none"))
}

func TestFlipArray(t *testing.T) {
	array := [8][8]int{}
	array[0][3] = 7
	flipped := FlipArray(array)
	assert.Equal(t, 7, flipped[7][3])
	assert.Equal(t, 0, flipped[0][3])
	assert.Equal(t, array, FlipArray(flipped))
}
