package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindIndex(t *testing.T) {
	assert.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	assert.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	assert.Equal(t, -1, FindIndex(nil, 0))

	assert.True(t, Contains([]int{4, 5}, 5))
	assert.False(t, Contains([]int{}, 5))
}
