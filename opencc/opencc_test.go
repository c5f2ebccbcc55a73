package opencc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laisuk/opencc-jieba-go/dictionary"
	"github.com/laisuk/opencc-jieba-go/internal/jieba"
)

func newTestOpenCC(t *testing.T) *OpenCC {
	t.Helper()
	dict, err := dictionary.New()
	require.NoError(t, err)
	return New(dict, jieba.NewCutter())
}

func TestS2tWithoutPunctuation(t *testing.T) {
	o := newTestOpenCC(t)
	got := o.Convert("你好，世界！龙马精神！", "s2t", false)
	assert.Equal(t, "你好，世界！龍馬精神！", got)
}

func TestS2tWithPunctuation(t *testing.T) {
	o := newTestOpenCC(t)
	got := o.Convert("你好，世界！“龙马精神”！", "s2t", true)
	assert.Equal(t, "你好，世界！「龍馬精神」！", got)
}

func TestT2sWithPunctuation(t *testing.T) {
	o := newTestOpenCC(t)
	got := o.Convert("「數大」便是美，碧綠的山坡前幾千隻綿羊，挨成一片的雪絨，是美；", "t2s", true)
	assert.Equal(t, "“数大”便是美，碧绿的山坡前几千只绵羊，挨成一片的雪绒，是美；", got)
}

func TestS2twWithoutPunctuation(t *testing.T) {
	o := newTestOpenCC(t)
	got := o.Convert("你好，这里世界！龙马精神！", "s2tw", false)
	assert.Equal(t, "你好，這裡世界！龍馬精神！", got)
}

func TestS2tPreservesWhitespaceDelimiters(t *testing.T) {
	o := newTestOpenCC(t)
	got := o.Convert("你好\n世界\t龙马", "s2t", false)
	assert.Equal(t, "你好\n世界\t龍馬", got)
}

func TestT2jpAndJp2t(t *testing.T) {
	o := newTestOpenCC(t)
	assert.Equal(t, "旧字体：広国，読売。", o.T2jp("舊字體：廣國，讀賣。"))
	assert.Equal(t, "廣國，讀賣。", o.Jp2t("広国，読売。"))
}

func TestConvertUnknownConfigReturnsHistoricalString(t *testing.T) {
	o := newTestOpenCC(t)
	got := o.Convert("…", "unknown", true)
	assert.Equal(t, "Invalid config: unknown", got)
}

func TestParseConfigAccepts(t *testing.T) {
	c, err := ParseConfig("s2twp")
	require.NoError(t, err)
	assert.Equal(t, S2twp, c)
}

func TestParseConfigRejectsUnknown(t *testing.T) {
	_, err := ParseConfig("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}
