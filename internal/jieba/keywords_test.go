package jieba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTFIDFRanksDistinctiveWordsHigher(t *testing.T) {
	c := NewCutter()
	tokens, err := c.Cut("龙马精神 的 龙马精神 真的 是 龙马精神", false)
	require.NoError(t, err)

	kws := ExtractTFIDF(tokens, 3)
	require.NotEmpty(t, kws)
	assert.Equal(t, "龙马精神", kws[0].Word)
}

func TestExtractTFIDFTopKLimitsResults(t *testing.T) {
	c := NewCutter()
	tokens, err := c.Cut("网络 这里 网络 这里 服务器", false)
	require.NoError(t, err)

	kws := ExtractTFIDF(tokens, 2)
	assert.Len(t, kws, 2)
}

func TestExtractTextRankNonEmptyForRepeatedContext(t *testing.T) {
	c := NewCutter()
	tokens, err := c.Cut("网络 服务器 网络 服务器 信息", false)
	require.NoError(t, err)

	kws := ExtractTextRank(tokens, 3, 4)
	assert.NotEmpty(t, kws)
}

func TestExtractTextRankEmptyInput(t *testing.T) {
	kws := ExtractTextRank(nil, 3, 4)
	assert.Empty(t, kws)
}
