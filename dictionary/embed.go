package dictionary

import "embed"

// embeddedDicts holds the sixteen source text files and the packaged,
// Zstd-compressed JSON blob built from them. Both are committed as real
// data files under dicts/ and read via go:embed, matching the spec's two
// documented load paths (packaged blob, source text files).
//
//go:embed dicts/*.txt dicts/dictionary.json.zst
var embeddedDicts embed.FS

const packagedBlobPath = "dicts/dictionary.json.zst"

// sourceFileNames maps each DictMap's canonical name to its source text
// file name, matching spec section 6's sixteen canonical file names.
var sourceFileNames = map[string]string{
	"st_characters":            "STCharacters.txt",
	"st_phrases":               "STPhrases.txt",
	"ts_characters":            "TSCharacters.txt",
	"ts_phrases":               "TSPhrases.txt",
	"tw_phrases":               "TWPhrases.txt",
	"tw_phrases_rev":           "TWPhrasesRev.txt",
	"tw_variants":              "TWVariants.txt",
	"tw_variants_rev":          "TWVariantsRev.txt",
	"tw_variants_rev_phrases":  "TWVariantsRevPhrases.txt",
	"hk_variants":              "HKVariants.txt",
	"hk_variants_rev":          "HKVariantsRev.txt",
	"hk_variants_rev_phrases":  "HKVariantsRevPhrases.txt",
	"jps_characters":           "JPShinjitaiCharacters.txt",
	"jps_phrases":              "JPShinjitaiPhrases.txt",
	"jp_variants":              "JPVariants.txt",
	"jp_variants_rev":          "JPVariantsRev.txt",
}

// sourceFileOrder fixes iteration order for source-file loading, purely
// for deterministic logging; map order in Go is randomized otherwise.
var sourceFileOrder = []string{
	"st_characters", "st_phrases", "ts_characters", "ts_phrases",
	"tw_phrases", "tw_phrases_rev", "tw_variants", "tw_variants_rev",
	"tw_variants_rev_phrases", "hk_variants", "hk_variants_rev",
	"hk_variants_rev_phrases", "jps_characters", "jps_phrases",
	"jp_variants", "jp_variants_rev",
}
