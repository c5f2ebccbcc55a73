// Package punct substitutes curly quotes for CJK corner brackets and back,
// the one punctuation transform the conversion router optionally applies.
package punct

import "strings"

// simpToTrad maps Simplified-style curly quotes to Traditional-style corner
// brackets; tradToSimp is its inverse. Both are fixed, process-wide, and
// never mutated after init.
var (
	simpToTrad = map[rune]rune{
		'“': '「',
		'”': '」',
		'‘': '『',
		'’': '』',
	}
	tradToSimp = invert(simpToTrad)
)

func invert(m map[rune]rune) map[rune]rune {
	out := make(map[rune]rune, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Convert substitutes only the four paired quotation mark codepoints,
// leaving every other rune untouched. mode beginning with "s" selects the
// Simplified-to-Traditional table (curly quotes to corner brackets);
// anything else selects the reverse.
func Convert(text string, mode string) string {
	table := tradToSimp
	if strings.HasPrefix(mode, "s") {
		table = simpToTrad
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if mapped, ok := table[r]; ok {
			b.WriteRune(mapped)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
