// Package variant classifies a text sample as Simplified, Traditional, or
// neither, by comparing it against its own character-converted forms.
package variant

import (
	"strings"
	"unicode"

	"github.com/laisuk/opencc-jieba-go/convert"
	"github.com/laisuk/opencc-jieba-go/dictmap"
)

// Code is the classification result of Check.
type Code int

const (
	Other Code = iota
	Traditional
	Simplified
)

const (
	firstTruncateBytes  = 1000
	secondTruncateBytes = 200
)

var charConverter = convert.CharConverter{}

// Check classifies text by truncating it to a short prefix, stripping
// ASCII punctuation/whitespace/digits/letters and the character 著, and
// comparing the result against its own Traditional- and Simplified-
// character-converted forms. ts maps Traditional to Simplified characters;
// st maps Simplified to Traditional characters.
func Check(text string, ts, st *dictmap.DictMap) Code {
	truncated := truncateAtScalarBoundary(text, firstTruncateBytes)
	stripped := stripNoise(truncated)
	t := truncateAtScalarBoundary(stripped, secondTruncateBytes)
	if t == "" {
		return Other
	}

	// ts converts Traditional characters to Simplified; if applying it
	// changes t, t contained Traditional-only characters.
	asSimplified, _ := charConverter.Convert(t, []*dictmap.DictMap{ts})
	if asSimplified != t {
		return Traditional
	}

	asTraditional, _ := charConverter.Convert(t, []*dictmap.DictMap{st})
	if asTraditional != t {
		return Simplified
	}

	return Other
}

func truncateAtScalarBoundary(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	end := maxBytes
	for end > 0 && !utf8RuneStart(s[end]) {
		end--
	}
	return s[:end]
}

func utf8RuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

func stripNoise(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '著' {
			continue
		}
		if r <= unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r) || unicode.IsDigit(r) || unicode.IsLetter(r)) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
