package jieba

import "math"

// tailProba pairs a DAG node index with the log-probability of the best
// path from that index to the end of the chunk.
type tailProba struct {
	index int
	proba float64
}

const minLogProba = -3.14e100

// buildDAG returns, for every rune index i in runes, the set of rune
// indices j such that runes[i:j] is a word known to pd. Prefix-only entries
// extend the scan but add no edge. An index with no word edge (including an
// unknown single rune) gets the single edge {i+1}, so every index has at
// least one outgoing edge.
func buildDAG(pd *prefixDict, runes []rune) map[int][]int {
	dag := make(map[int][]int, len(runes))
	for i := range runes {
		if _, ok := pd.freq[string(runes[i])]; !ok {
			dag[i] = []int{i + 1}
			continue
		}
		for j := i + 1; j <= len(runes); j++ {
			part := string(runes[i:j])
			val, ok := pd.freq[part]
			if !ok {
				break
			}
			if val > 0 {
				dag[i] = append(dag[i], j)
			}
		}
		if len(dag[i]) == 0 {
			dag[i] = []int{i + 1}
		}
	}
	return dag
}

// bestPath runs the dynamic-programming longest-weighted-path search over
// dag, working backward from the end of runes, and returns the sequence of
// [start, end) rune index pairs that make up the highest-probability cut.
func bestPath(pd *prefixDict, runes []rune, dag map[int][]int) [][2]int {
	n := len(runes)
	total := math.Log(float64(maxInt(pd.total, 1)))

	bestProbaFrom := make([]float64, n+1)
	bestNextFrom := make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		best := tailProba{index: -1, proba: minLogProba}
		for _, j := range dag[i] {
			freq := 1.0
			if v, ok := pd.freq[string(runes[i:j])]; ok && v > 0 {
				freq = float64(v)
			}
			pieceProba := math.Log(freq) - total
			candidate := pieceProba + bestProbaFrom[j]
			if candidate >= best.proba {
				best = tailProba{index: j, proba: candidate}
			}
		}
		bestProbaFrom[i] = best.proba
		bestNextFrom[i] = best.index
	}

	path := make([][2]int, 0, n)
	for i := 0; i < n; {
		j := bestNextFrom[i]
		if j <= i {
			j = i + 1
		}
		path = append(path, [2]int{i, j})
		i = j
	}
	return path
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
