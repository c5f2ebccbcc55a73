// Package jieba is the default segment.Cutter implementation: a prefix-
// dictionary, dynamic-programming word segmenter in the style of the
// Chinese "jieba" tokenizer, adapted to this repo's embedded dictionary
// format and concurrency needs.
package jieba

import (
	"bufio"
	"bytes"
	"embed"
	"strconv"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

//go:embed dicts/seg_words.txt.zst
var embeddedDict embed.FS

const packagedWordListPath = "dicts/seg_words.txt.zst"

// prefixDict is a word-frequency table plus every proper prefix of every
// entry, so the DAG builder can answer "is there any dictionary word
// starting with this prefix" in O(1).
type prefixDict struct {
	freq  map[string]int
	total int
}

var (
	defaultDict     *prefixDict
	defaultDictOnce sync.Once
	defaultDictErr  error
)

func defaultPrefixDict() (*prefixDict, error) {
	defaultDictOnce.Do(func() {
		blob, err := embeddedDict.ReadFile(packagedWordListPath)
		if err != nil {
			defaultDictErr = errors.Wrapf(err, "jieba: read embedded word list")
			return
		}
		text, err := decompressZstd(blob)
		if err != nil {
			defaultDictErr = err
			return
		}
		defaultDict, defaultDictErr = newPrefixDictFromText(text)
	})
	return defaultDict, defaultDictErr
}

// newPrefixDictFromText parses "word frequency" lines, one per line, and
// fills in every proper prefix of each word with a zero frequency so the
// DAG builder can distinguish "not a word" from "not even a known prefix".
func newPrefixDictFromText(text []byte) (*prefixDict, error) {
	pd := &prefixDict{freq: make(map[string]int, 1024)}
	scanner := bufio.NewScanner(bytes.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		word := fields[0]
		count, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "jieba: word list line %d: bad frequency %q", lineNo, fields[1])
		}
		pd.freq[word] = count
		pd.total += count

		runes := []rune(word)
		prefix := strings.Builder{}
		for _, r := range runes[:len(runes)-1] {
			prefix.WriteRune(r)
			if _, ok := pd.freq[prefix.String()]; !ok {
				pd.freq[prefix.String()] = 0
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "jieba: scan word list")
	}
	return pd, nil
}

func decompressZstd(blob []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrapf(err, "jieba: new zstd decoder")
	}
	defer dec.Close()
	out, err := dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "jieba: zstd decode word list")
	}
	return out, nil
}
