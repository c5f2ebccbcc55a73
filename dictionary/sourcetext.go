package dictionary

import (
	"bufio"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/laisuk/opencc-jieba-go/dictmap"
)

// NewFromEmbeddedSourceTexts builds a Dictionary from the sixteen embedded
// source text files, rather than the packaged Zstd blob. Both paths are
// built from the same on-disk files in this repo (see dicts/), so they
// agree by construction; this entry point mainly exists for hosts that
// want to skip Zstd decompression or regenerate the packaged blob.
func NewFromEmbeddedSourceTexts() (*Dictionary, error) {
	return fromSourceFS(embeddedDicts, "dicts")
}

// NewFromSourceDir builds a Dictionary from sixteen canonically-named
// source text files in an on-disk directory, per spec section 6.
func NewFromSourceDir(dir string) (*Dictionary, error) {
	return fromSourceFS(os.DirFS(dir), ".")
}

func fromSourceFS(fsys fs.FS, root string) (*Dictionary, error) {
	d := empty()
	for _, name := range sourceFileOrder {
		dm, err := loadSourceFile(fsys, root, sourceFileNames[name])
		if err != nil {
			return nil, errors.Wrapf(err, "dictionary: load %s", name)
		}
		*fieldFor(d, name) = dm
	}
	return d, nil
}

func loadSourceFile(fsys fs.FS, root, fileName string) (*dictmap.DictMap, error) {
	path := fileName
	if root != "." && root != "" {
		path = root + "/" + fileName
	}
	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	dm := dictmap.New()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			log.Printf("dictionary: %s:%d: malformed line, skipping: %q", fileName, lineNo, line)
			continue
		}
		key, value := fields[0], fields[1]
		dm.Insert(key, value, uint16(len([]rune(key))))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "scan %q", path)
	}
	return dm, nil
}

// fieldFor returns a pointer to the Dictionary field named by its canonical
// (snake_case) name, so the source-file loader can iterate generically
// instead of repeating sixteen near-identical assignments.
func fieldFor(d *Dictionary, name string) **dictmap.DictMap {
	switch name {
	case "st_characters":
		return &d.StCharacters
	case "st_phrases":
		return &d.StPhrases
	case "ts_characters":
		return &d.TsCharacters
	case "ts_phrases":
		return &d.TsPhrases
	case "tw_phrases":
		return &d.TwPhrases
	case "tw_phrases_rev":
		return &d.TwPhrasesRev
	case "tw_variants":
		return &d.TwVariants
	case "tw_variants_rev":
		return &d.TwVariantsRev
	case "tw_variants_rev_phrases":
		return &d.TwVariantsRevPhrases
	case "hk_variants":
		return &d.HkVariants
	case "hk_variants_rev":
		return &d.HkVariantsRev
	case "hk_variants_rev_phrases":
		return &d.HkVariantsRevPhrases
	case "jps_characters":
		return &d.JpsCharacters
	case "jps_phrases":
		return &d.JpsPhrases
	case "jp_variants":
		return &d.JpVariants
	case "jp_variants_rev":
		return &d.JpVariantsRev
	default:
		panic("dictionary: unknown field name " + name)
	}
}
