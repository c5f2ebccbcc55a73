package jieba

import (
	"regexp"
	"strings"

	"github.com/laisuk/opencc-jieba-go/segment"
)

var (
	hanRun   = regexp.MustCompile(`\p{Han}+`)
	alnumRun = regexp.MustCompile(`[a-zA-Z0-9]+`)
)

// Cutter is the default segment.Cutter: a prefix-dictionary DAG segmenter
// for Han runs, with a simple alnum/rune splitter for everything else.
// Zero value is ready to use; it lazily loads the embedded word list on
// first Cut call.
type Cutter struct{}

// NewCutter returns a ready-to-use Cutter. It exists mainly for symmetry
// with other constructors in this repo; the zero value works just as well.
func NewCutter() *Cutter {
	return &Cutter{}
}

var _ segment.Cutter = (*Cutter)(nil)

// Cut splits chunk into word tokens. Runs of Han characters are segmented
// with a dictionary DAG; everything else is split into runs of ASCII
// alphanumerics (kept intact) and individual runes, including whitespace.
// The returned tokens always concatenate back to chunk, per the segmenter
// contract: no rune, space or otherwise, is ever dropped.
func (c *Cutter) Cut(chunk string, hmm bool) ([]string, error) {
	pd, err := defaultPrefixDict()
	if err != nil {
		return nil, err
	}

	var tokens []string
	pos := 0
	for _, idx := range hanRun.FindAllStringIndex(chunk, -1) {
		if idx[0] > pos {
			tokens = append(tokens, cutNonHan(chunk[pos:idx[0]])...)
		}
		tokens = append(tokens, cutHan(pd, chunk[idx[0]:idx[1]], hmm)...)
		pos = idx[1]
	}
	if pos < len(chunk) {
		tokens = append(tokens, cutNonHan(chunk[pos:])...)
	}
	return tokens, nil
}

// cutHan segments a contiguous run of Han characters. With hmm set, runs of
// adjacent dictionary-unknown singleton runes are merged into one
// speculative multi-character token instead of being emitted one rune at a
// time; this is a deliberate simplification of jieba's full Viterbi
// unknown-word model, traded for predictability and no training data.
func cutHan(pd *prefixDict, text string, hmm bool) []string {
	runes := []rune(text)
	dag := buildDAG(pd, runes)
	path := bestPath(pd, runes, dag)

	pieces := make([]string, 0, len(path))
	for _, p := range path {
		pieces = append(pieces, string(runes[p[0]:p[1]]))
	}
	if !hmm {
		return pieces
	}

	merged := make([]string, 0, len(pieces))
	run := strings.Builder{}
	flush := func() {
		if run.Len() > 0 {
			merged = append(merged, run.String())
			run.Reset()
		}
	}
	for _, piece := range pieces {
		if len([]rune(piece)) == 1 {
			if _, known := pd.freq[piece]; known {
				flush()
				merged = append(merged, piece)
				continue
			}
			run.WriteString(piece)
			continue
		}
		flush()
		merged = append(merged, piece)
	}
	flush()
	return merged
}

// cutNonHan splits non-Han text into runs of ASCII alphanumerics (kept
// intact) and individual runes everywhere else. Whitespace runes are
// emitted as their own tokens rather than dropped, so the token sequence
// always concatenates back to text.
func cutNonHan(text string) []string {
	var tokens []string
	pos := 0
	for _, idx := range alnumRun.FindAllStringIndex(text, -1) {
		if idx[0] > pos {
			tokens = append(tokens, splitRunes(text[pos:idx[0]])...)
		}
		tokens = append(tokens, text[idx[0]:idx[1]])
		pos = idx[1]
	}
	if pos < len(text) {
		tokens = append(tokens, splitRunes(text[pos:])...)
	}
	return tokens
}

func splitRunes(text string) []string {
	var tokens []string
	for _, r := range text {
		tokens = append(tokens, string(r))
	}
	return tokens
}
