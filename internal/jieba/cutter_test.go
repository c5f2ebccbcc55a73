package jieba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutKnownPhrase(t *testing.T) {
	c := NewCutter()
	tokens, err := c.Cut("这里", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"这里"}, tokens)
}

func TestCutMixedHanAndAscii(t *testing.T) {
	c := NewCutter()
	tokens, err := c.Cut("这里 hello123 网络", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"这里", " ", "hello123", " ", "网络"}, tokens)
}

func TestCutUnknownSingletonsWithoutHMM(t *testing.T) {
	c := NewCutter()
	tokens, err := c.Cut("甲乙丙", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"甲", "乙", "丙"}, tokens)
}

func TestCutUnknownSingletonsWithHMMMerges(t *testing.T) {
	c := NewCutter()
	tokens, err := c.Cut("甲乙丙", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"甲乙丙"}, tokens)
}

func TestCutEmptyChunk(t *testing.T) {
	c := NewCutter()
	tokens, err := c.Cut("", false)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestCutWhitespaceOnlyPreservesEachRune(t *testing.T) {
	c := NewCutter()
	tokens, err := c.Cut("   ", false)
	require.NoError(t, err)
	assert.Equal(t, []string{" ", " ", " "}, tokens)
}

func TestCutTokensConcatenateBackToChunk(t *testing.T) {
	c := NewCutter()
	chunk := "你好\n世界 hello\tworld"
	tokens, err := c.Cut(chunk, false)
	require.NoError(t, err)

	var rebuilt string
	for _, tok := range tokens {
		rebuilt += tok
	}
	assert.Equal(t, chunk, rebuilt)
}
