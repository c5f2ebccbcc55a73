package main

/*
#include <stdlib.h>
*/
import "C"
import "unsafe"

// tokensToCArray allocates a null-terminated C array of C strings from
// tokens. Callers must eventually free it with OpenccJiebaFreeStringArray.
func tokensToCArray(tokens []string) **C.char {
	size := C.size_t(len(tokens)+1) * C.size_t(unsafe.Sizeof(uintptr(0)))
	array := (**C.char)(C.malloc(size))
	slice := unsafe.Slice(array, len(tokens)+1)
	for i, t := range tokens {
		slice[i] = C.CString(t)
	}
	slice[len(tokens)] = nil
	return array
}

// cArrayPointers returns every non-nil *C.char in a null-terminated array,
// for freeing.
func cArrayPointers(array **C.char) []*C.char {
	var out []*C.char
	for i := 0; ; i++ {
		p := indexCArray(array, i)
		if p == nil {
			break
		}
		out = append(out, p)
	}
	return out
}

// cArrayToTokens copies every string out of a null-terminated C array.
func cArrayToTokens(array **C.char) []string {
	var tokens []string
	for i := 0; ; i++ {
		p := indexCArray(array, i)
		if p == nil {
			break
		}
		tokens = append(tokens, C.GoString(p))
	}
	return tokens
}

func indexCArray(array **C.char, i int) *C.char {
	if array == nil {
		return nil
	}
	base := uintptr(unsafe.Pointer(array))
	elem := (**C.char)(unsafe.Pointer(base + uintptr(i)*unsafe.Sizeof(uintptr(0))))
	return *elem
}
