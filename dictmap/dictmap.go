// Package dictmap implements a single directional phrase-to-phrase mapping
// table with per-key-length fast-gating, used throughout the conversion
// pipeline to answer "could any key of length N possibly be in this table"
// in O(1) without a lookup.
package dictmap

import "sort"

// DictMap is a phrase->phrase table plus length bookkeeping.
//
// Lengths are measured in Unicode scalar values (runes), not bytes. A
// DictMap is built once when a Dictionary loads and is read-only for the
// rest of its life, so it is safe to share across goroutines without
// synchronization.
type DictMap struct {
	entries     map[string]string
	minLen      uint16
	maxLen      uint16
	keyLenMask  uint64
	longLengths map[uint16]struct{}
}

// New returns an empty DictMap ready for Insert calls.
func New() *DictMap {
	return &DictMap{entries: make(map[string]string)}
}

// NewFromEntries builds a DictMap from a fully-formed key/value map,
// computing scalar lengths and stats for every key. The packaged (JSON)
// load path does not use it: UnmarshalJSON reads the stats stored in the
// document.
func NewFromEntries(entries map[string]string) *DictMap {
	d := &DictMap{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		d.Insert(k, v, uint16(len([]rune(k))))
	}
	return d
}

// Insert sets entries[key] = value and updates length bookkeeping.
// scalarLen must equal the number of Unicode scalar values in key; callers
// that already know the length (e.g. the source-text-file parser) pass it
// directly to avoid a second scan. Duplicate keys: last write wins.
func (d *DictMap) Insert(key, value string, scalarLen uint16) {
	if d.entries == nil {
		d.entries = make(map[string]string)
	}
	d.entries[key] = value

	if scalarLen == 0 {
		return
	}
	if scalarLen <= 64 {
		d.keyLenMask |= 1 << (scalarLen - 1)
	} else {
		if d.longLengths == nil {
			d.longLengths = make(map[uint16]struct{})
		}
		d.longLengths[scalarLen] = struct{}{}
	}
	if d.minLen == 0 || scalarLen < d.minLen {
		d.minLen = scalarLen
	}
	if scalarLen > d.maxLen {
		d.maxLen = scalarLen
	}
}

// Get returns the mapped value for key and whether it was present.
func (d *DictMap) Get(key string) (string, bool) {
	if d == nil || d.entries == nil {
		return "", false
	}
	v, ok := d.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (d *DictMap) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// MinLen and MaxLen return the shortest/longest key length in scalars,
// or 0 if the DictMap is empty.
func (d *DictMap) MinLen() uint16 {
	if d == nil {
		return 0
	}
	return d.minLen
}

func (d *DictMap) MaxLen() uint16 {
	if d == nil {
		return 0
	}
	return d.maxLen
}

// HasKeyLen reports whether any key has exactly n scalars. It is an O(1)
// oracle: for n in [1,64] it tests a bitmask; for n > 64 it tests a set.
// HasKeyLen(0) is always false.
func (d *DictMap) HasKeyLen(n uint16) bool {
	if d == nil || n == 0 {
		return false
	}
	if n <= 64 {
		return d.keyLenMask&(1<<(n-1)) != 0
	}
	_, ok := d.longLengths[n]
	return ok
}

// LongLengths returns the sorted set of key lengths greater than 64. Used
// only by the packaged-form serializer; callers generally want HasKeyLen.
func (d *DictMap) LongLengths() []uint16 {
	out := make([]uint16, 0, len(d.longLengths))
	for n := range d.longLengths {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// KeyLenMask returns the raw 64-bit bitmask for lengths 1..64.
func (d *DictMap) KeyLenMask() uint64 {
	if d == nil {
		return 0
	}
	return d.keyLenMask
}

// Entries returns the underlying key/value map. Callers must not mutate it;
// it is exposed read-only for serialization and range-based iteration.
func (d *DictMap) Entries() map[string]string {
	if d == nil {
		return nil
	}
	return d.entries
}
