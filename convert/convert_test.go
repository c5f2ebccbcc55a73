package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laisuk/opencc-jieba-go/dictmap"
	"github.com/laisuk/opencc-jieba-go/internal/jieba"
)

func testDicts() []*dictmap.DictMap {
	phrases := dictmap.NewFromEntries(map[string]string{
		"这里": "這裡",
		"网络": "網絡",
	})
	chars := dictmap.NewFromEntries(map[string]string{
		"龙": "龍", "马": "馬", "这": "這",
	})
	return []*dictmap.DictMap{phrases, chars}
}

func TestPhraseConverterPrefersPhraseOverCharacter(t *testing.T) {
	c := PhraseConverter{}
	out, err := c.Convert("这里", testDicts(), jieba.NewCutter(), false)
	require.NoError(t, err)
	assert.Equal(t, "這裡", out)
}

func TestPhraseConverterFallsBackToCharacters(t *testing.T) {
	c := PhraseConverter{}
	out, err := c.Convert("龙马", testDicts(), jieba.NewCutter(), false)
	require.NoError(t, err)
	assert.Equal(t, "龍馬", out)
}

func TestPhraseConverterLeavesUnmappedScalarsAlone(t *testing.T) {
	c := PhraseConverter{}
	out, err := c.Convert("龙abc马", testDicts(), jieba.NewCutter(), false)
	require.NoError(t, err)
	assert.Equal(t, "龍abc馬", out)
}

func TestPhraseConverterEmptyInput(t *testing.T) {
	c := PhraseConverter{}
	out, err := c.Convert("", testDicts(), jieba.NewCutter(), false)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestPhraseConverterParallelMatchesSerial(t *testing.T) {
	c := PhraseConverter{}
	longText := strings.Repeat("这里网络龙马。", 400)

	originalThreshold := ParallelThreshold
	defer func() { ParallelThreshold = originalThreshold }()

	ParallelThreshold = 1 << 30
	serial, err := c.Convert(longText, testDicts(), jieba.NewCutter(), false)
	require.NoError(t, err)

	ParallelThreshold = 1
	parallel, err := c.Convert(longText, testDicts(), jieba.NewCutter(), false)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestCharConverterScalarByScalar(t *testing.T) {
	c := CharConverter{}
	out, err := c.Convert("这龙马网络", testDicts())
	require.NoError(t, err)
	assert.Equal(t, "這龍馬网络", out)
}
