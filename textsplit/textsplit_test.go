package textsplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitInclusive(t *testing.T) {
	assert.Equal(t, []Range{{0, 9}, {9, 18}}, Split("你好，世界！", true))
	assert.Equal(t, []Range{{0, 6}, {6, 12}, {12, 17}}, Split("Hello,World!Rust.", true))
	assert.Equal(t, []Range{{0, 10}}, Split("HelloWorld", true))
	assert.Equal(t, []Range{{0, 3}, {3, 8}}, Split("，Hello", true))
}

func TestSplitExclusive(t *testing.T) {
	assert.Equal(t, []Range{{0, 6}, {6, 9}, {9, 15}, {15, 18}}, Split("你好，世界！", false))
	assert.Equal(t, []Range{
		{0, 5}, {5, 6}, {6, 11}, {11, 12}, {12, 16}, {16, 17},
	}, Split("Hello,World!Rust.", false))
	assert.Equal(t, []Range{{0, 10}}, Split("HelloWorld", false))
	assert.Equal(t, []Range{{0, 3}, {3, 8}}, Split("，Hello", false))
	assert.Equal(t, []Range{{0, 5}, {5, 6}, {6, 7}, {7, 12}}, Split("Hello,,World", false))
	assert.Equal(t, []Range{{0, 5}, {5, 6}}, Split("Hello!", false))
	assert.Equal(t, []Range{{0, 1}, {1, 2}, {2, 3}}, Split(",,,", false))
}

func TestSplitEmptyInput(t *testing.T) {
	assert.Empty(t, Split("", true))
	assert.Empty(t, Split("", false))
}

func TestIsDelimiter(t *testing.T) {
	assert.True(t, IsDelimiter('，'))
	assert.True(t, IsDelimiter(' '))
	assert.False(t, IsDelimiter('好'))
}
