package opencc

import (
	"github.com/laisuk/opencc-jieba-go/dictionary"
	"github.com/laisuk/opencc-jieba-go/dictmap"
)

// stackSelector picks an ordered dictionary stack (precedence high to low)
// out of a live Dictionary for one conversion pass.
type stackSelector func(d *dictionary.Dictionary) []*dictmap.DictMap

func stStack(d *dictionary.Dictionary) []*dictmap.DictMap {
	return []*dictmap.DictMap{d.StPhrases, d.StCharacters}
}

func tsStack(d *dictionary.Dictionary) []*dictmap.DictMap {
	return []*dictmap.DictMap{d.TsPhrases, d.TsCharacters}
}

func twVariantsStack(d *dictionary.Dictionary) []*dictmap.DictMap {
	return []*dictmap.DictMap{d.TwVariants}
}

func twRevStack(d *dictionary.Dictionary) []*dictmap.DictMap {
	return []*dictmap.DictMap{d.TwVariantsRev, d.TwVariantsRevPhrases}
}

func twPhrasesStack(d *dictionary.Dictionary) []*dictmap.DictMap {
	return []*dictmap.DictMap{d.TwPhrases}
}

func twPhrasesRevStack(d *dictionary.Dictionary) []*dictmap.DictMap {
	return []*dictmap.DictMap{d.TwPhrasesRev}
}

func hkVariantsStack(d *dictionary.Dictionary) []*dictmap.DictMap {
	return []*dictmap.DictMap{d.HkVariants}
}

func hkRevStack(d *dictionary.Dictionary) []*dictmap.DictMap {
	return []*dictmap.DictMap{d.HkVariantsRevPhrases, d.HkVariantsRev}
}

func jpStack(d *dictionary.Dictionary) []*dictmap.DictMap {
	return []*dictmap.DictMap{d.JpVariants}
}

func jpRevStack(d *dictionary.Dictionary) []*dictmap.DictMap {
	return []*dictmap.DictMap{d.JpsPhrases, d.JpsCharacters, d.JpVariantsRev}
}
