// Command capi builds as a C shared library (cgo c-shared), exposing a C
// ABI over OpenCC conversion, segmentation, and keyword extraction for
// non-Go callers. It matches the historical opencc_jieba_capi surface.
package main

/*
#include <stdlib.h>
#include <stdint.h>
*/
import "C"

import (
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
	"unsafe"

	"github.com/laisuk/opencc-jieba-go/dictionary"
	"github.com/laisuk/opencc-jieba-go/internal/jieba"
	"github.com/laisuk/opencc-jieba-go/keyword"
	"github.com/laisuk/opencc-jieba-go/opencc"
	"github.com/laisuk/opencc-jieba-go/variant"
)

// abiVersion increments only on a breaking change to this C ABI surface.
const abiVersion = 1

// instances is a registry of live OpenCC handles keyed by an opaque
// uintptr token, since cgo callers must not hold a Go pointer directly.
var (
	instancesMu sync.Mutex
	instances   = make(map[uintptr]*opencc.OpenCC)
	nextHandle  uintptr
)

func registerInstance(o *opencc.OpenCC) uintptr {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	nextHandle++
	instances[nextHandle] = o
	return nextHandle
}

func lookupInstance(handle uintptr) *opencc.OpenCC {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	return instances[handle]
}

func releaseInstance(handle uintptr) {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	delete(instances, handle)
}

//export OpenccJiebaNew
func OpenccJiebaNew() C.uintptr_t {
	dict, err := dictionary.New()
	if err != nil {
		return 0
	}
	o := opencc.New(dict, jieba.NewCutter())
	return C.uintptr_t(registerInstance(o))
}

//export OpenccJiebaDelete
func OpenccJiebaDelete(handle C.uintptr_t) {
	releaseInstance(uintptr(handle))
}

//export OpenccJiebaAbiVersion
func OpenccJiebaAbiVersion() C.int {
	return C.int(abiVersion)
}

//export OpenccJiebaConvert
func OpenccJiebaConvert(handle C.uintptr_t, input, config *C.char, punctuation C.int) *C.char {
	o := lookupInstance(uintptr(handle))
	if o == nil || input == nil || config == nil {
		return nil
	}
	text := C.GoString(input)
	if !utf8.ValidString(text) {
		return nil
	}
	result := o.Convert(text, C.GoString(config), punctuation != 0)
	return C.CString(result)
}

//export OpenccJiebaZhoCheck
func OpenccJiebaZhoCheck(handle C.uintptr_t, input *C.char) C.int {
	o := lookupInstance(uintptr(handle))
	if o == nil || input == nil {
		return C.int(variant.Other)
	}
	text := C.GoString(input)
	if !utf8.ValidString(text) {
		return C.int(variant.Other)
	}
	dict := dictFor(o)
	if dict == nil {
		return C.int(variant.Other)
	}
	return C.int(variant.Check(text, dict.TsCharacters, dict.StCharacters))
}

//export OpenccJiebaCut
func OpenccJiebaCut(handle C.uintptr_t, input *C.char, hmm C.int) **C.char {
	tokens, ok := cutTokens(handle, input, hmm != 0)
	if !ok {
		return nil
	}
	return tokensToCArray(tokens)
}

//export OpenccJiebaCutAndJoin
func OpenccJiebaCutAndJoin(handle C.uintptr_t, input *C.char, hmm C.int, delimiter *C.char) *C.char {
	tokens, ok := cutTokens(handle, input, hmm != 0)
	if !ok {
		return nil
	}
	delim := " "
	if delimiter != nil {
		delim = C.GoString(delimiter)
	}
	return C.CString(strings.Join(tokens, delim))
}

//export OpenccJiebaJoinStr
func OpenccJiebaJoinStr(array **C.char, delimiter *C.char) *C.char {
	if delimiter == nil {
		return nil
	}
	delim := C.GoString(delimiter)
	tokens := cArrayToTokens(array)
	return C.CString(strings.Join(tokens, delim))
}

//export OpenccJiebaKeywords
func OpenccJiebaKeywords(handle C.uintptr_t, input *C.char, topK C.int) **C.char {
	pairs, ok := keywordPairs(handle, input, int(topK))
	if !ok {
		return nil
	}
	words := make([]string, len(pairs))
	for i, p := range pairs {
		words[i] = p.Word
	}
	return tokensToCArray(words)
}

//export OpenccJiebaKeywordsAndWeights
func OpenccJiebaKeywordsAndWeights(handle C.uintptr_t, input *C.char, topK C.int) **C.char {
	pairs, ok := keywordPairs(handle, input, int(topK))
	if !ok {
		return nil
	}
	formatted := make([]string, len(pairs))
	for i, p := range pairs {
		formatted[i] = p.Word + "\t" + strconv.FormatFloat(p.Weight, 'f', -1, 64)
	}
	return tokensToCArray(formatted)
}

//export OpenccJiebaFreeString
func OpenccJiebaFreeString(ptr *C.char) {
	if ptr != nil {
		C.free(unsafe.Pointer(ptr))
	}
}

//export OpenccJiebaFreeStringArray
func OpenccJiebaFreeStringArray(array **C.char) {
	if array == nil {
		return
	}
	for _, p := range cArrayPointers(array) {
		C.free(unsafe.Pointer(p))
	}
	C.free(unsafe.Pointer(array))
}

func dictFor(o *opencc.OpenCC) *dictionary.Dictionary {
	return opencc.DictionaryOf(o)
}

func cutTokens(handle C.uintptr_t, input *C.char, hmm bool) ([]string, bool) {
	o := lookupInstance(uintptr(handle))
	if o == nil || input == nil {
		return nil, false
	}
	text := C.GoString(input)
	if !utf8.ValidString(text) {
		return nil, false
	}
	tokens, err := opencc.CutterOf(o).Cut(text, hmm)
	if err != nil {
		return nil, false
	}
	return tokens, true
}

func keywordPairs(handle C.uintptr_t, input *C.char, topK int) ([]keyword.Pair, bool) {
	o := lookupInstance(uintptr(handle))
	if o == nil || input == nil {
		return nil, false
	}
	text := C.GoString(input)
	if !utf8.ValidString(text) {
		return nil, false
	}
	extractor := keyword.New(opencc.CutterOf(o))
	pairs, err := extractor.ExtractTagsWithWeight(text, topK)
	if err != nil {
		return nil, false
	}
	return pairs, true
}

func main() {}
