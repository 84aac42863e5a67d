// Package charset resolves text encodings by name and decodes source files to UTF-8.
package charset

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Default is the encoding used when none is configured. Source data is
// commonly exported from spreadsheets and is not guaranteed to be UTF-8.
const Default = "ISO-8859-1"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Lookup resolves an encoding by IANA or WHATWG name, case-insensitively.
// IANA names take precedence so that "latin1" is true ISO-8859-1 rather than
// the WHATWG windows-1252 alias.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = Default
	}

	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil && enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", name)
}

// Decode converts data in the named encoding to UTF-8. UTF-8 input is
// validated strictly and its byte order mark is dropped; single-byte
// encodings decode every byte sequence.
func Decode(data []byte, name string) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	if enc == unicode.UTF8 {
		data = bytes.TrimPrefix(data, utf8BOM)
		if off := invalidUTF8Offset(data); off >= 0 {
			return nil, &DecodeError{Encoding: name, Offset: off}
		}
		return data, nil
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return out, nil
}

// DecodeError reports the first byte offset that is invalid in the encoding
type DecodeError struct {
	Encoding string
	Offset   int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s byte sequence at offset %d", e.Encoding, e.Offset)
}

func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for off := 0; off < len(data); {
		r, size := utf8.DecodeRune(data[off:])
		if r == utf8.RuneError && size <= 1 {
			return off
		}
		off += size
	}
	return -1
}
