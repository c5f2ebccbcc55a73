package dictionary

import (
	"io"

	"github.com/google/renameio/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// New loads the Dictionary from the embedded, Zstd-compressed packaged
// blob. This is the fast path used by production callers; a schema_version
// mismatch or a malformed document is fatal, per spec section 4.2.
func New() (*Dictionary, error) {
	blob, err := embeddedDicts.ReadFile(packagedBlobPath)
	if err != nil {
		return nil, errors.Wrapf(err, "dictionary: read embedded packaged blob")
	}
	return FromPackagedBytes(blob)
}

// FromPackagedBytes decompresses and strictly decodes a packaged Zstd+JSON
// blob, such as one produced by ToPackagedBytes or loaded from disk.
func FromPackagedBytes(blob []byte) (*Dictionary, error) {
	json, err := decompressZstd(blob)
	if err != nil {
		return nil, errors.Wrapf(ErrDictionaryParse, "zstd decompress: %v", err)
	}
	return unmarshalPlainJSON(json)
}

// ToPackagedBytes serializes the Dictionary to JSON and Zstd-compresses it
// at the fixed level used for the packaged form (spec section 4.2: level 19).
func (d *Dictionary) ToPackagedBytes() ([]byte, error) {
	plain, err := d.MarshalPlainJSON()
	if err != nil {
		return nil, err
	}
	return compressZstd(plain)
}

// SavePackaged writes the packaged (Zstd+JSON) form to path, atomically
// (write-to-temp-then-rename) so a concurrent reader never observes a
// partially-written file.
func (d *Dictionary) SavePackaged(path string) error {
	blob, err := d.ToPackagedBytes()
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(path, blob, 0o644); err != nil {
		return errors.Wrapf(err, "dictionary: write packaged file %q", path)
	}
	return nil
}

// SavePlainJSON writes the plain (uncompressed) JSON form to path,
// atomically.
func (d *Dictionary) SavePlainJSON(path string) error {
	data, err := d.MarshalPlainJSON()
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "dictionary: write JSON file %q", path)
	}
	return nil
}

func compressZstd(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, errors.Wrapf(err, "dictionary: new zstd encoder")
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func decompressZstd(blob []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrapf(err, "dictionary: new zstd decoder")
	}
	defer dec.Close()

	out, err := dec.DecodeAll(blob, nil)
	if err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "dictionary: zstd decode")
	}
	return out, nil
}
