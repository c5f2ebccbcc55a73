// Package keyword extracts ranked keywords from text, delegating the
// ranking math to internal/jieba while presenting a small stable surface.
package keyword

import (
	"strings"

	"github.com/laisuk/opencc-jieba-go/internal/jieba"
	"github.com/laisuk/opencc-jieba-go/segment"
)

// TextRankWindow is the co-occurrence window used by ExtractTextRank,
// matching jieba's default span.
const TextRankWindow = 5

// Extractor ranks keywords in Chinese text, tokenizing with a
// segment.Cutter before delegating to TF-IDF or TextRank scoring.
type Extractor struct {
	cutter segment.Cutter
}

// New returns an Extractor backed by cutter.
func New(cutter segment.Cutter) *Extractor {
	return &Extractor{cutter: cutter}
}

// Pair is one ranked keyword with its relevance weight.
type Pair struct {
	Word   string
	Weight float64
}

func (e *Extractor) tokenize(text string) ([]string, error) {
	clean := strings.NewReplacer("\n", "", "\r", "").Replace(text)
	return e.cutter.Cut(clean, true)
}

// ExtractTags returns the top-k keywords by TF-IDF weight, highest first.
func (e *Extractor) ExtractTags(text string, topK int) ([]string, error) {
	pairs, err := e.ExtractTagsWithWeight(text, topK)
	if err != nil {
		return nil, err
	}
	words := make([]string, len(pairs))
	for i, p := range pairs {
		words[i] = p.Word
	}
	return words, nil
}

// ExtractTagsWithWeight returns the top-k (keyword, weight) pairs by
// TF-IDF weight, highest first.
func (e *Extractor) ExtractTagsWithWeight(text string, topK int) ([]Pair, error) {
	tokens, err := e.tokenize(text)
	if err != nil {
		return nil, err
	}
	return toPairs(jieba.ExtractTFIDF(tokens, topK)), nil
}

// TextRank returns the top-k keywords by TextRank centrality, highest first.
func (e *Extractor) TextRank(text string, topK int) ([]string, error) {
	pairs, err := e.TextRankWithWeight(text, topK)
	if err != nil {
		return nil, err
	}
	words := make([]string, len(pairs))
	for i, p := range pairs {
		words[i] = p.Word
	}
	return words, nil
}

// TextRankWithWeight returns the top-k (keyword, weight) pairs by TextRank
// centrality, highest first.
func (e *Extractor) TextRankWithWeight(text string, topK int) ([]Pair, error) {
	tokens, err := e.tokenize(text)
	if err != nil {
		return nil, err
	}
	return toPairs(jieba.ExtractTextRank(tokens, topK, TextRankWindow)), nil
}

func toPairs(kws []jieba.Keyword) []Pair {
	pairs := make([]Pair, len(kws))
	for i, kw := range kws {
		pairs[i] = Pair{Word: kw.Word, Weight: kw.Weight}
	}
	return pairs
}
