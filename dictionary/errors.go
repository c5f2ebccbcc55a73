package dictionary

import "errors"

// Error kinds surfaced by Dictionary load/save paths. These are fatal for
// the packaged-load path; individual malformed source lines are instead
// logged and skipped (not returned).
var (
	// ErrSchemaMismatch is returned when a packaged Dictionary's
	// schema_version does not match SchemaVersion.
	ErrSchemaMismatch = errors.New("dictionary: schema version mismatch")

	// ErrDictionaryParse is returned when the packaged JSON document is
	// malformed, carries unknown fields, or lacks a required field.
	ErrDictionaryParse = errors.New("dictionary: malformed packaged document")
)
