// Package convert implements the two core text-transformation operators:
// phrase-first dictionary conversion over segmented tokens, and direct
// per-scalar character conversion.
package convert

import (
	"strings"
	"sync"

	"github.com/laisuk/opencc-jieba-go/dictmap"
	"github.com/laisuk/opencc-jieba-go/segment"
	"github.com/laisuk/opencc-jieba-go/textsplit"
)

const (
	minRangesPerPartition = 64
	maxNumPartitions      = 128
)

// ParallelThreshold is the input length, in bytes, at or above which
// PhraseConverter.Convert may split work across goroutines instead of
// running serially. It is a visible configuration point, not a tuning secret.
var ParallelThreshold = 1000

// PhraseConverter performs phrase-first, longest-match dictionary
// conversion: text is split at delimiters, each range is tokenized by a
// segment.Cutter, and each token is looked up across an ordered dictionary
// list before falling back to per-character substitution.
type PhraseConverter struct{}

// Convert applies dicts, in precedence order (earlier wins), to text using
// cutter to tokenize each delimiter-bounded range. When text is at least
// ParallelThreshold bytes long and has enough ranges to fill more than one
// partition, ranges are converted across multiple goroutines; the output is
// reassembled in input order regardless.
func (PhraseConverter) Convert(text string, dicts []*dictmap.DictMap, cutter segment.Cutter, hmm bool) (string, error) {
	if text == "" {
		return "", nil
	}

	ranges := textsplit.Split(text, false)
	if len(ranges) == 0 {
		return text, nil
	}

	fragments := make([]string, len(ranges))
	if len(text) < ParallelThreshold {
		if err := convertRangePartition(text, ranges, dicts, cutter, hmm, fragments); err != nil {
			return "", err
		}
		return strings.Join(fragments, ""), nil
	}

	numPartitions := numPartitions(len(ranges))
	if numPartitions == 1 {
		if err := convertRangePartition(text, ranges, dicts, cutter, hmm, fragments); err != nil {
			return "", err
		}
		return strings.Join(fragments, ""), nil
	}

	var wg sync.WaitGroup
	errs := make([]error, numPartitions)
	rangesPerPartition := len(ranges)/numPartitions + 1
	partition := 0
	for start := 0; start < len(ranges); start += rangesPerPartition {
		end := start + rangesPerPartition
		if end > len(ranges) {
			end = len(ranges)
		}

		wg.Add(1)
		go func(partitionIdx, start, end int) {
			defer wg.Done()
			errs[partitionIdx] = convertRangePartition(text, ranges[start:end], dicts, cutter, hmm, fragments[start:end])
		}(partition, start, end)
		partition++
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return "", err
		}
	}
	return strings.Join(fragments, ""), nil
}

func numPartitions(numRanges int) int {
	n := numRanges / minRangesPerPartition
	if n < 1 {
		return 1
	}
	if n > maxNumPartitions {
		return maxNumPartitions
	}
	return n
}

// convertRangePartition converts every range in this partition and writes
// each result to the correspondingly-indexed slot in out. Each goroutine
// owns a disjoint slice of out, so no locking is needed.
func convertRangePartition(text string, ranges []textsplit.Range, dicts []*dictmap.DictMap, cutter segment.Cutter, hmm bool, out []string) error {
	for i, r := range ranges {
		chunk := text[r.Start:r.End]
		converted, err := convertChunk(chunk, dicts, cutter, hmm)
		if err != nil {
			return err
		}
		out[i] = converted
	}
	return nil
}

func convertChunk(chunk string, dicts []*dictmap.DictMap, cutter segment.Cutter, hmm bool) (string, error) {
	tokens, err := cutter.Cut(chunk, hmm)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(chunk) + len(chunk)/8)
	for _, token := range tokens {
		writeConvertedToken(&b, token, dicts)
	}
	return b.String(), nil
}

func writeConvertedToken(b *strings.Builder, token string, dicts []*dictmap.DictMap) {
	runes := []rune(token)
	if len(runes) == 1 && textsplit.IsDelimiter(runes[0]) {
		b.WriteRune(runes[0])
		return
	}

	for _, d := range dicts {
		if v, ok := d.Get(token); ok {
			b.WriteString(v)
			return
		}
	}

	for _, r := range runes {
		writeConvertedScalar(b, r, dicts)
	}
}

func writeConvertedScalar(b *strings.Builder, r rune, dicts []*dictmap.DictMap) {
	s := string(r)
	for _, d := range dicts {
		if v, ok := d.Get(s); ok {
			b.WriteString(v)
			return
		}
	}
	b.WriteRune(r)
}

// CharConverter performs direct, segmenter-free scalar-by-scalar
// conversion: no tokenization, no delimiter handling.
type CharConverter struct{}

// Convert maps every Unicode scalar of text independently through dicts, in
// precedence order, substituting the first hit and leaving unmapped
// scalars unchanged.
func (CharConverter) Convert(text string, dicts []*dictmap.DictMap) (string, error) {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		writeConvertedScalar(&b, r, dicts)
	}
	return b.String(), nil
}
