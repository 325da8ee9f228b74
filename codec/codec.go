// Package codec implements the closed table of named text encodings consumed
// by the fixedbuf package
//
// the set of encodings is fixed and small, so the table is a plain
// enumeration dispatched with a switch rather than a registry. The codec
// algorithms themselves are not implemented here: utf8 and ucs2 are driven by
// golang.org/x/text, hex and base64 by the standard library, and the legacy
// one-byte-per-unit encodings by unicode/utf16 code unit mapping.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"unicode/utf16"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
)

// Encoding represents an enumerated type for the named text encodings
type Encoding int

// values for Encoding, UTF8 is the zero value and the default everywhere
const (
	UTF8 Encoding = iota
	ASCII
	UCS2
	Base64
	Hex

	// Binary is the legacy lossy encoding that keeps only the low byte of
	// each UTF-16 code unit, avoid in new code
	Binary
)

// ErrUnknownEncoding is returned when an encoding name or value is not part
// of the table
var ErrUnknownEncoding = errors.New("unknown encoding")

// ErrInvalidText is returned when text cannot be interpreted under the
// requested encoding, which only happens for Hex and Base64
var ErrInvalidText = errors.New("text is not valid for encoding")

// utf16le is the wire format behind UCS2
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Parse maps an encoding name to its Encoding value, case insensitively,
// accepting the common aliases for utf8, ucs2 and binary
func Parse(name string) (Encoding, error) {
	switch strings.ToLower(name) {
	case "utf8", "utf-8":
		return UTF8, nil
	case "ascii":
		return ASCII, nil
	case "ucs2", "ucs-2", "utf16le", "utf-16le":
		return UCS2, nil
	case "base64":
		return Base64, nil
	case "hex":
		return Hex, nil
	case "binary", "latin1":
		return Binary, nil
	}

	return UTF8, errors.Wrap(ErrUnknownEncoding, name)
}

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf8"
	case ASCII:
		return "ascii"
	case UCS2:
		return "ucs2"
	case Base64:
		return "base64"
	case Hex:
		return "hex"
	case Binary:
		return "binary"
	}

	return "unknown"
}

// Encode maps text to the byte sequence it represents under e.
//
// Hex and Base64 interpret the text as a transport representation of bytes
// and fail with a wrapped ErrInvalidText when it is malformed. ASCII and
// Binary are lossy: each UTF-16 code unit of the text is reduced to its low
// 7 or 8 bits.
func Encode(s string, e Encoding) ([]byte, error) {
	switch e {
	case UTF8:
		return []byte(s), nil
	case ASCII:
		units := utf16.Encode([]rune(s))
		b := make([]byte, len(units))
		for i, u := range units {
			b[i] = byte(u) & 0x7F
		}
		return b, nil
	case UCS2:
		b, err := utf16le.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, errors.Wrap(err, "ucs2 encode failed")
		}
		return b, nil
	case Base64:
		b, err := base64.RawStdEncoding.DecodeString(normalizeBase64(s))
		if err != nil {
			return nil, errors.Wrap(ErrInvalidText, err.Error())
		}
		return b, nil
	case Hex:
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidText, err.Error())
		}
		return b, nil
	case Binary:
		units := utf16.Encode([]rune(s))
		b := make([]byte, len(units))
		for i, u := range units {
			b[i] = byte(u)
		}
		return b, nil
	}

	return nil, errors.Wrapf(ErrUnknownEncoding, "%d", int(e))
}

// Decode maps a byte sequence to the text it represents under e.
//
// Decoding is permissive: byte ranges that split a multi byte sequence, or
// that are not valid for the encoding, come back with U+FFFD replacement
// runes instead of an error. The only error is an unknown encoding.
func Decode(b []byte, e Encoding) (string, error) {
	switch e {
	case UTF8:
		s, err := unicode.UTF8.NewDecoder().Bytes(b)
		if err != nil {
			return "", errors.Wrap(err, "utf8 decode failed")
		}
		return string(s), nil
	case ASCII:
		r := make([]rune, len(b))
		for i, c := range b {
			r[i] = rune(c & 0x7F)
		}
		return string(r), nil
	case UCS2:
		s, err := utf16le.NewDecoder().Bytes(b)
		if err != nil {
			return "", errors.Wrap(err, "ucs2 decode failed")
		}
		return string(s), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(b), nil
	case Hex:
		return hex.EncodeToString(b), nil
	case Binary:
		r := make([]rune, len(b))
		for i, c := range b {
			r[i] = rune(c)
		}
		return string(r), nil
	}

	return "", errors.Wrapf(ErrUnknownEncoding, "%d", int(e))
}

// ByteLength computes the number of bytes Encode would produce for s under e
// without materializing the encoded sequence. It fails on exactly the inputs
// Encode fails on.
func ByteLength(s string, e Encoding) (int, error) {
	switch e {
	case UTF8:
		return len(s), nil
	case ASCII, Binary:
		return utf16Length(s), nil
	case UCS2:
		return 2 * utf16Length(s), nil
	case Base64:
		return base64Length(normalizeBase64(s))
	case Hex:
		if len(s)%2 != 0 {
			return 0, errors.Wrap(ErrInvalidText, "odd length hex string")
		}
		for i := 0; i < len(s); i++ {
			if !isHexDigit(s[i]) {
				return 0, errors.Wrapf(ErrInvalidText, "byte %q", s[i])
			}
		}
		return len(s) / 2, nil
	}

	return 0, errors.Wrapf(ErrUnknownEncoding, "%d", int(e))
}

// CompleteUnits returns the length of the largest prefix of encoded, at most
// max bytes long, that ends on a unit boundary of e: a rune boundary for
// UTF8, a code unit boundary for UCS2, any byte for the rest. It is what
// keeps partial writes from splitting a multi byte character.
func CompleteUnits(e Encoding, encoded []byte, max int) int {
	if max >= len(encoded) {
		return len(encoded)
	}
	if max <= 0 {
		return 0
	}

	switch e {
	case UTF8:
		n := max
		// walk back over continuation bytes to the start of the rune that
		// straddles the cut, then drop that rune entirely
		for n > 0 && encoded[n]&0xC0 == 0x80 {
			n--
		}
		return n
	case UCS2:
		return max &^ 1
	}

	return max
}

// utf16Length counts UTF-16 code units the way utf16.Encode would produce
// them, one per rune plus one more for every rune beyond the BMP
func utf16Length(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r >= 0x10000 {
			n++
		}
	}
	return n
}

// normalizeBase64 removes the characters the base64 decoder skips over and
// the trailing padding, so that Encode and ByteLength see the exact same
// text and fail on the exact same inputs
func normalizeBase64(s string) string {
	if strings.ContainsAny(s, "\r\n") {
		s = strings.NewReplacer("\r", "", "\n", "").Replace(s)
	}

	return strings.TrimRight(s, "=")
}

func base64Length(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '+' || c == '/' {
			continue
		}
		return 0, errors.Wrapf(ErrInvalidText, "byte %q", c)
	}

	rem := len(s) % 4
	if rem == 1 {
		return 0, errors.Wrap(ErrInvalidText, "truncated base64 string")
	}

	n := len(s) / 4 * 3
	if rem > 0 {
		n += rem - 1
	}
	return n, nil
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
