// Package opencc routes a named configuration (s2t, tw2sp, ...) to a
// sequence of one to three phrase-conversion passes over specific
// dictionary stacks, optionally followed by punctuation mapping.
package opencc

import (
	"github.com/laisuk/opencc-jieba-go/convert"
	"github.com/laisuk/opencc-jieba-go/dictionary"
	"github.com/laisuk/opencc-jieba-go/punct"
	"github.com/laisuk/opencc-jieba-go/segment"
)

// Config is a closed-set conversion routing name, e.g. "s2t" or "tw2sp".
type Config string

const (
	S2t   Config = "s2t"
	T2s   Config = "t2s"
	S2tw  Config = "s2tw"
	Tw2s  Config = "tw2s"
	S2twp Config = "s2twp"
	Tw2sp Config = "tw2sp"
	S2hk  Config = "s2hk"
	Hk2s  Config = "hk2s"
	T2tw  Config = "t2tw"
	T2twp Config = "t2twp"
	Tw2t  Config = "tw2t"
	Tw2tp Config = "tw2tp"
	T2hk  Config = "t2hk"
	Hk2t  Config = "hk2t"
	T2jp  Config = "t2jp"
	Jp2t  Config = "jp2t"
)

var passTable = map[Config]routing{
	S2t:   {stacks: []stackSelector{stStack}, punct: "s"},
	T2s:   {stacks: []stackSelector{tsStack}, punct: "t"},
	S2tw:  {stacks: []stackSelector{stStack, twVariantsStack}, punct: "s"},
	Tw2s:  {stacks: []stackSelector{twRevStack, tsStack}, punct: "t"},
	S2twp: {stacks: []stackSelector{stStack, twPhrasesStack, twVariantsStack}, punct: "s"},
	Tw2sp: {stacks: []stackSelector{twRevStack, twPhrasesRevStack, tsStack}, punct: "t"},
	S2hk:  {stacks: []stackSelector{stStack, hkVariantsStack}, punct: "s"},
	Hk2s:  {stacks: []stackSelector{hkRevStack, tsStack}, punct: "t"},
	T2tw:  {stacks: []stackSelector{twVariantsStack}},
	T2twp: {stacks: []stackSelector{twPhrasesStack, twVariantsStack}},
	Tw2t:  {stacks: []stackSelector{twRevStack}},
	Tw2tp: {stacks: []stackSelector{twRevStack, twPhrasesRevStack}},
	T2hk:  {stacks: []stackSelector{hkVariantsStack}},
	Hk2t:  {stacks: []stackSelector{hkRevStack}},
	T2jp:  {stacks: []stackSelector{jpStack}},
	Jp2t:  {stacks: []stackSelector{jpRevStack}},
}

// routing is the pass stack plus punctuation mode for one named Config.
// punct == "" means no punctuation mapping.
type routing struct {
	stacks []stackSelector
	punct  string
}

// OpenCC is the conversion router: a Dictionary bundle and a Segmenter,
// both immutable after construction and safe to share across goroutines.
type OpenCC struct {
	dict   *dictionary.Dictionary
	cutter segment.Cutter
}

// New returns an OpenCC backed by dict and cutter. Neither is copied or
// mutated; callers retain ownership.
func New(dict *dictionary.Dictionary, cutter segment.Cutter) *OpenCC {
	return &OpenCC{dict: dict, cutter: cutter}
}

// Convert routes text through the named config. An unknown config name
// returns the historical "Invalid config: <name>" string rather than an
// error, matching upstream's long-standing behavior; callers that want an
// idiomatic error should call ParseConfig first.
func (o *OpenCC) Convert(text string, config string, punctuation bool) string {
	routing, ok := passTable[Config(config)]
	if !ok {
		return "Invalid config: " + config
	}

	converter := convert.PhraseConverter{}
	result := text
	for _, selector := range routing.stacks {
		converted, err := converter.Convert(result, selector(o.dict), o.cutter, true)
		if err != nil {
			return "Invalid config: " + config
		}
		result = converted
	}

	if punctuation && routing.punct != "" {
		result = punct.Convert(result, routing.punct)
	}
	return result
}

// ParseConfig validates name against the closed set of routing names,
// returning an idiomatic error instead of Convert's historical string
// payload.
func ParseConfig(name string) (Config, error) {
	if _, ok := passTable[Config(name)]; !ok {
		return "", ErrUnknownConfig(name)
	}
	return Config(name), nil
}
