package jieba

import (
	"math"
	"sort"
	"unicode/utf8"
)

// Keyword is one extracted token with its relevance weight.
type Keyword struct {
	Word   string
	Weight float64
}

// ExtractTFIDF ranks tokens by term frequency times inverse document
// frequency, where the IDF is derived from the embedded word list's own
// frequency counts (words missing from the list get the highest IDF):
// common words score low, distinctive content words score high. Tokens shorter than two runes are dropped, matching jieba's
// analyse.ExtractTags default stop-length.
func ExtractTFIDF(tokens []string, topK int) []Keyword {
	tf := make(map[string]int, len(tokens))
	for _, t := range tokens {
		if utf8.RuneCountInString(t) < 2 {
			continue
		}
		tf[t]++
	}

	pd, err := defaultPrefixDict()
	weights := make([]Keyword, 0, len(tf))
	for word, count := range tf {
		idf := 1.0
		if err == nil {
			if freq, ok := pd.freq[word]; ok && freq > 0 {
				idf = math.Log(float64(maxInt(pd.total, 1)) / float64(freq+1))
			} else {
				idf = math.Log(float64(maxInt(pd.total, 1)))
			}
		}
		weights = append(weights, Keyword{Word: word, Weight: float64(count) * idf})
	}
	return topN(weights, topK)
}

// ExtractTextRank ranks tokens by a windowed co-occurrence graph, scored
// with the PageRank power iteration, in the style of jieba's
// analyse.TextRank. Edges connect tokens within a fixed window of each
// other in the token stream; more central tokens (bridging many
// neighbours) score higher than merely frequent ones.
func ExtractTextRank(tokens []string, topK, window int) []Keyword {
	filtered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if utf8.RuneCountInString(t) >= 2 {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	edges := make(map[string]map[string]float64)
	addEdge := func(a, b string) {
		if a == b {
			return
		}
		if edges[a] == nil {
			edges[a] = make(map[string]float64)
		}
		if edges[b] == nil {
			edges[b] = make(map[string]float64)
		}
		edges[a][b]++
		edges[b][a]++
	}
	for i := range filtered {
		for j := i + 1; j < len(filtered) && j <= i+window; j++ {
			addEdge(filtered[i], filtered[j])
		}
	}

	const damping = 0.85
	const iterations = 10
	score := make(map[string]float64, len(edges))
	for node := range edges {
		score[node] = 1.0
	}
	for iter := 0; iter < iterations; iter++ {
		next := make(map[string]float64, len(score))
		for node := range score {
			sum := 0.0
			for neighbor, weight := range edges[node] {
				outWeight := 0.0
				for _, w := range edges[neighbor] {
					outWeight += w
				}
				if outWeight > 0 {
					sum += weight / outWeight * score[neighbor]
				}
			}
			next[node] = (1 - damping) + damping*sum
		}
		score = next
	}

	weights := make([]Keyword, 0, len(score))
	for word, w := range score {
		weights = append(weights, Keyword{Word: word, Weight: w})
	}
	return topN(weights, topK)
}

func topN(weights []Keyword, n int) []Keyword {
	sort.Slice(weights, func(i, j int) bool {
		if weights[i].Weight != weights[j].Weight {
			return weights[i].Weight > weights[j].Weight
		}
		return weights[i].Word < weights[j].Word
	})
	if n > 0 && n < len(weights) {
		weights = weights[:n]
	}
	return weights
}
