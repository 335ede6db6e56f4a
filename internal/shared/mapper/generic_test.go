package mapper

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSlice(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))

	out := MapSlice[int, string](nil, strconv.Itoa)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
