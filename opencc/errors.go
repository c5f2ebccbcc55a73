package opencc

import "fmt"

// unknownConfigError is returned by ParseConfig for a name outside the
// closed routing set.
type unknownConfigError struct {
	name string
}

func (e unknownConfigError) Error() string {
	return fmt.Sprintf("opencc: unknown config %q", e.name)
}

// ErrUnknownConfig constructs the error ParseConfig returns for an
// unrecognized routing name.
func ErrUnknownConfig(name string) error {
	return unknownConfigError{name: name}
}
