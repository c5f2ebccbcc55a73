package dictmap

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// jsonForm mirrors the packaged on-disk shape of a DictMap:
//
//	{ "map": {k:v, ...}, "min_len": u16, "max_len": u16,
//	  "key_len_mask": u64, "long_lengths": [u16, ...] }
type jsonForm struct {
	Map         map[string]string `json:"map"`
	MinLen      uint16            `json:"min_len"`
	MaxLen      uint16            `json:"max_len"`
	KeyLenMask  uint64            `json:"key_len_mask"`
	LongLengths []uint16          `json:"long_lengths"`
}

// MarshalJSON encodes the DictMap in its packaged on-disk shape.
func (d *DictMap) MarshalJSON() ([]byte, error) {
	jf := jsonForm{
		Map:         d.entries,
		MinLen:      d.minLen,
		MaxLen:      d.maxLen,
		KeyLenMask:  d.keyLenMask,
		LongLengths: d.LongLengths(),
	}
	if jf.Map == nil {
		jf.Map = map[string]string{}
	}
	if jf.LongLengths == nil {
		jf.LongLengths = []uint16{}
	}
	return json.Marshal(jf)
}

// UnmarshalJSON decodes a DictMap from its packaged on-disk shape. Unknown
// fields are rejected: the packaged schema is strict.
func (d *DictMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var jf jsonForm
	if err := dec.Decode(&jf); err != nil {
		return errors.Wrapf(err, "dictmap: decode")
	}

	d.entries = jf.Map
	if d.entries == nil {
		d.entries = make(map[string]string)
	}
	d.minLen = jf.MinLen
	d.maxLen = jf.MaxLen
	d.keyLenMask = jf.KeyLenMask
	if len(jf.LongLengths) > 0 {
		d.longLengths = make(map[uint16]struct{}, len(jf.LongLengths))
		for _, n := range jf.LongLengths {
			d.longLengths[n] = struct{}{}
		}
	}
	return nil
}
