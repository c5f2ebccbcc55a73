package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laisuk/opencc-jieba-go/internal/jieba"
)

func TestExtractTagsReturnsDistinctiveWord(t *testing.T) {
	e := New(jieba.NewCutter())
	tags, err := e.ExtractTags("龙马精神 的 龙马精神 真的 是 龙马精神", 1)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "龙马精神", tags[0])
}

func TestExtractTagsWithWeightOrdersDescending(t *testing.T) {
	e := New(jieba.NewCutter())
	pairs, err := e.ExtractTagsWithWeight("网络 这里 网络 这里 服务器", 3)
	require.NoError(t, err)
	for i := 1; i < len(pairs); i++ {
		assert.GreaterOrEqual(t, pairs[i-1].Weight, pairs[i].Weight)
	}
}

func TestTextRankStripsNewlinesBeforeTokenizing(t *testing.T) {
	e := New(jieba.NewCutter())
	tags, err := e.TextRank("网络\n服务器\r\n网络 服务器 信息", 3)
	require.NoError(t, err)
	assert.NotEmpty(t, tags)

	// Unknown runes split only by a newline merge into one token once the
	// newline is removed; without stripping they would stay single runes
	// and be filtered out.
	merged, err := e.TextRank("甲\n乙 网络", 3)
	require.NoError(t, err)
	assert.Contains(t, merged, "甲乙")
}
