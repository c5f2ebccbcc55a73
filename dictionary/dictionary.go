// Package dictionary holds the sixteen directional DictMap tables that back
// every conversion pass, plus their load/save paths.
package dictionary

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/laisuk/opencc-jieba-go/dictmap"
)

// SchemaVersion is the compiled-in packaged-document schema version. A
// packaged Dictionary whose schema_version field does not equal this value
// fails to load with ErrSchemaMismatch.
const SchemaVersion uint16 = 1

// Dictionary is the named bundle of all sixteen directional DictMaps.
// It is immutable after construction and safe to share across goroutines.
type Dictionary struct {
	StCharacters         *dictmap.DictMap
	StPhrases            *dictmap.DictMap
	TsCharacters         *dictmap.DictMap
	TsPhrases            *dictmap.DictMap
	TwPhrases            *dictmap.DictMap
	TwPhrasesRev         *dictmap.DictMap
	TwVariants           *dictmap.DictMap
	TwVariantsRev        *dictmap.DictMap
	TwVariantsRevPhrases *dictmap.DictMap
	HkVariants           *dictmap.DictMap
	HkVariantsRev        *dictmap.DictMap
	HkVariantsRevPhrases *dictmap.DictMap
	JpsCharacters        *dictmap.DictMap
	JpsPhrases           *dictmap.DictMap
	JpVariants           *dictmap.DictMap
	JpVariantsRev        *dictmap.DictMap
}

func empty() *Dictionary {
	return &Dictionary{
		StCharacters:         dictmap.New(),
		StPhrases:            dictmap.New(),
		TsCharacters:         dictmap.New(),
		TsPhrases:            dictmap.New(),
		TwPhrases:            dictmap.New(),
		TwPhrasesRev:         dictmap.New(),
		TwVariants:           dictmap.New(),
		TwVariantsRev:        dictmap.New(),
		TwVariantsRevPhrases: dictmap.New(),
		HkVariants:           dictmap.New(),
		HkVariantsRev:        dictmap.New(),
		HkVariantsRevPhrases: dictmap.New(),
		JpsCharacters:        dictmap.New(),
		JpsPhrases:           dictmap.New(),
		JpVariants:           dictmap.New(),
		JpVariantsRev:        dictmap.New(),
	}
}

// jsonDoc is the strict packaged-document shape: schema_version plus the
// sixteen named DictMaps, no more and no fewer.
type jsonDoc struct {
	SchemaVersion        uint16           `json:"schema_version"`
	StCharacters         *dictmap.DictMap `json:"st_characters"`
	StPhrases            *dictmap.DictMap `json:"st_phrases"`
	TsCharacters         *dictmap.DictMap `json:"ts_characters"`
	TsPhrases            *dictmap.DictMap `json:"ts_phrases"`
	TwPhrases            *dictmap.DictMap `json:"tw_phrases"`
	TwPhrasesRev         *dictmap.DictMap `json:"tw_phrases_rev"`
	TwVariants           *dictmap.DictMap `json:"tw_variants"`
	TwVariantsRev        *dictmap.DictMap `json:"tw_variants_rev"`
	TwVariantsRevPhrases *dictmap.DictMap `json:"tw_variants_rev_phrases"`
	HkVariants           *dictmap.DictMap `json:"hk_variants"`
	HkVariantsRev        *dictmap.DictMap `json:"hk_variants_rev"`
	HkVariantsRevPhrases *dictmap.DictMap `json:"hk_variants_rev_phrases"`
	JpsCharacters        *dictmap.DictMap `json:"jps_characters"`
	JpsPhrases           *dictmap.DictMap `json:"jps_phrases"`
	JpVariants           *dictmap.DictMap `json:"jp_variants"`
	JpVariantsRev        *dictmap.DictMap `json:"jp_variants_rev"`
}

func (d *Dictionary) toDoc() jsonDoc {
	return jsonDoc{
		SchemaVersion:        SchemaVersion,
		StCharacters:         d.StCharacters,
		StPhrases:            d.StPhrases,
		TsCharacters:         d.TsCharacters,
		TsPhrases:            d.TsPhrases,
		TwPhrases:            d.TwPhrases,
		TwPhrasesRev:         d.TwPhrasesRev,
		TwVariants:           d.TwVariants,
		TwVariantsRev:        d.TwVariantsRev,
		TwVariantsRevPhrases: d.TwVariantsRevPhrases,
		HkVariants:           d.HkVariants,
		HkVariantsRev:        d.HkVariantsRev,
		HkVariantsRevPhrases: d.HkVariantsRevPhrases,
		JpsCharacters:        d.JpsCharacters,
		JpsPhrases:           d.JpsPhrases,
		JpVariants:           d.JpVariants,
		JpVariantsRev:        d.JpVariantsRev,
	}
}

func fromDoc(doc jsonDoc) (*Dictionary, error) {
	if doc.SchemaVersion != SchemaVersion {
		return nil, errors.Wrapf(ErrSchemaMismatch, "got %d, want %d", doc.SchemaVersion, SchemaVersion)
	}
	return &Dictionary{
		StCharacters:         nonNil(doc.StCharacters),
		StPhrases:            nonNil(doc.StPhrases),
		TsCharacters:         nonNil(doc.TsCharacters),
		TsPhrases:            nonNil(doc.TsPhrases),
		TwPhrases:            nonNil(doc.TwPhrases),
		TwPhrasesRev:         nonNil(doc.TwPhrasesRev),
		TwVariants:           nonNil(doc.TwVariants),
		TwVariantsRev:        nonNil(doc.TwVariantsRev),
		TwVariantsRevPhrases: nonNil(doc.TwVariantsRevPhrases),
		HkVariants:           nonNil(doc.HkVariants),
		HkVariantsRev:        nonNil(doc.HkVariantsRev),
		HkVariantsRevPhrases: nonNil(doc.HkVariantsRevPhrases),
		JpsCharacters:        nonNil(doc.JpsCharacters),
		JpsPhrases:           nonNil(doc.JpsPhrases),
		JpVariants:           nonNil(doc.JpVariants),
		JpVariantsRev:        nonNil(doc.JpVariantsRev),
	}, nil
}

func nonNil(d *dictmap.DictMap) *dictmap.DictMap {
	if d == nil {
		return dictmap.New()
	}
	return d
}

// MarshalPlainJSON serializes the Dictionary to plain (uncompressed) JSON,
// the "plain JSON" save path from spec section 4.2.
func (d *Dictionary) MarshalPlainJSON() ([]byte, error) {
	b, err := json.Marshal(d.toDoc())
	if err != nil {
		return nil, errors.Wrapf(err, "dictionary: marshal")
	}
	return b, nil
}

// unmarshalPlainJSON decodes a Dictionary from plain JSON with a strict
// schema: unknown fields and missing fields are both rejected.
func unmarshalPlainJSON(data []byte) (*Dictionary, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc jsonDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrapf(ErrDictionaryParse, "%v", err)
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err != nil {
		return nil, errors.Wrapf(ErrDictionaryParse, "%v", err)
	}
	for _, name := range append([]string{"schema_version"}, sourceFileOrder...) {
		if _, ok := present[name]; !ok {
			return nil, errors.Wrapf(ErrDictionaryParse, "missing field %q", name)
		}
	}
	return fromDoc(doc)
}
