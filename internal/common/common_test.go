package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlices(t *testing.T) {
	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsEmpty([]string{"a"}))
	assert.True(t, IsSingle([]string{"a"}))
	assert.False(t, IsSingle([]int{1, 2}))
}

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(2, 2, 8))
	assert.True(t, IsInRange(2, 8, 8))
	assert.False(t, IsInRange(2, 9, 8))
	assert.False(t, IsInRange(0.5, 0.1, 1.0))
}
