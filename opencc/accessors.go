package opencc

import (
	"github.com/laisuk/opencc-jieba-go/dictionary"
	"github.com/laisuk/opencc-jieba-go/segment"
)

// DictionaryOf returns o's backing Dictionary, for collaborators (such as
// the C ABI) that need direct access to individual DictMaps, e.g. for
// variant detection.
func DictionaryOf(o *OpenCC) *dictionary.Dictionary {
	return o.dict
}

// CutterOf returns o's backing Cutter, for collaborators that need to
// tokenize or rank keywords outside of Convert.
func CutterOf(o *OpenCC) segment.Cutter {
	return o.cutter
}
