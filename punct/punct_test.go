package punct

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertSimpToTrad(t *testing.T) {
	assert.Equal(t, "「你好」, 『世界』", Convert("“你好”, ‘世界’", "s2t"))
}

func TestConvertTradToSimp(t *testing.T) {
	assert.Equal(t, "“你好”, ‘世界’", Convert("「你好」, 『世界』", "t2s"))
}

func TestConvertLeavesOtherRunesAlone(t *testing.T) {
	assert.Equal(t, "Hello, 世界!", Convert("Hello, 世界!", "s2t"))
}

func TestConvertNonSPrefixModeUsesTradToSimp(t *testing.T) {
	assert.Equal(t, "“a”", Convert("「a」", "hk2s"))
}
