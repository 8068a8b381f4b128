package format

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeText interprets b as UTF-8. When latin1 is set, runs that are not
// valid UTF-8 are re-decoded as ISO 8859-1 instead of failing; histories
// written by QIP builds predating UTF-8 storage carry such text. With
// latin1 unset a bad run is ErrInvalidEncoding.
func DecodeText(b []byte, latin1 bool) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	if !latin1 {
		return "", ErrInvalidEncoding
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("latin1 fallback: %w", ErrInvalidEncoding)
	}
	return string(s), nil
}
