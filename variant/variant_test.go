package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/laisuk/opencc-jieba-go/dictmap"
)

func testTables() (ts, st *dictmap.DictMap) {
	ts = dictmap.NewFromEntries(map[string]string{"龍": "龙", "馬": "马"})
	st = dictmap.NewFromEntries(map[string]string{"龙": "龍", "马": "馬"})
	return ts, st
}

func TestCheckTraditionalText(t *testing.T) {
	ts, st := testTables()
	assert.Equal(t, Traditional, Check("龍馬精神", ts, st))
}

func TestCheckSimplifiedText(t *testing.T) {
	ts, st := testTables()
	assert.Equal(t, Simplified, Check("龙马精神", ts, st))
}

func TestCheckNeitherWhenNoOverlap(t *testing.T) {
	ts, st := testTables()
	assert.Equal(t, Other, Check("hello world 123", ts, st))
}

func TestCheckStripsZhuCharacter(t *testing.T) {
	ts, st := testTables()
	assert.Equal(t, Traditional, Check("著龍馬", ts, st))
}

func TestCheckEmptyAfterStripIsOther(t *testing.T) {
	ts, st := testTables()
	assert.Equal(t, Other, Check("123 !!! 著", ts, st))
}

func TestCheckStripsAsciiSymbols(t *testing.T) {
	ts, st := testTables()
	assert.Equal(t, Other, Check("$+<=>^`|~", ts, st))
}
