// Package wide implements the UTF-16LE string conventions used by
// registry-policy files: null-terminated strings for key and value names,
// and double-null-terminated multi-string blocks for REG_MULTI_SZ payloads.
//
// The in-memory representation is always terminator-free UTF-8. Decoding
// strips terminators; encoding appends them fresh.
package wide

import (
	"errors"
	"strings"
	"unicode/utf16"

	"github.com/joshuapare/gpokit/internal/buf"
)

// ErrUnterminated indicates a null-terminated string ran past the end of
// the buffer without a terminator.
var ErrUnterminated = errors.New("wide: missing null terminator")

// ErrOddLength indicates a UTF-16 payload with an odd byte count.
var ErrOddLength = errors.New("wide: utf16 data has odd length")

const asciiThreshold = 0x80

// Decode converts UTF-16LE bytes to a UTF-8 string. No terminator handling;
// data must already be terminator-free.
func Decode(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", ErrOddLength
	}
	return decodeUTF16LE(data), nil
}

// decodeUTF16LE decodes UTF-16LE bytes to a UTF-8 string without
// intermediate allocations. Registry names are overwhelmingly ASCII, so an
// ASCII fast path is worth the extra scan.
func decodeUTF16LE(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	allASCII := len(data)%2 == 0
	for i := 0; allASCII && i < len(data); i += 2 {
		if data[i+1] != 0 || data[i] >= asciiThreshold {
			allASCII = false
		}
	}
	if allASCII {
		var b strings.Builder
		b.Grow(len(data) / 2)
		for i := 0; i < len(data); i += 2 {
			b.WriteByte(data[i])
		}
		return b.String()
	}

	// Slow path: full UTF-16 decode with surrogate-pair handling.
	var b strings.Builder
	b.Grow(len(data))
	for i := 0; i+1 < len(data); i += 2 {
		r := rune(data[i]) | rune(data[i+1])<<8
		if r >= 0xD800 && r <= 0xDBFF && i+3 < len(data) {
			r2 := rune(data[i+2]) | rune(data[i+3])<<8
			if r2 >= 0xDC00 && r2 <= 0xDFFF {
				r = 0x10000 + ((r-0xD800)<<10 | (r2 - 0xDC00))
				i += 2
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ReadNullTerminated decodes the UTF-16LE string starting at off and ending
// at the first null code unit. It returns the string without the terminator
// and the offset of the first byte past the terminator. ErrUnterminated is
// returned when the buffer ends before a terminator appears.
func ReadNullTerminated(b []byte, off int) (string, int, error) {
	i := off
	for {
		u, ok := buf.Slice(b, i, 2)
		if !ok {
			return "", 0, ErrUnterminated
		}
		if u[0] == 0 && u[1] == 0 {
			break
		}
		i += 2
	}
	s := decodeUTF16LE(b[off:i])
	return s, i + 2, nil
}

// SplitMulti decodes a REG_MULTI_SZ payload into its component strings.
// The payload is zero-separated UTF-16LE text terminated by a double null;
// the terminator is stripped, not returned. Payloads missing the final
// double null are tolerated (some policy writers omit it) and split on
// whatever separators are present. Empty components are dropped, matching
// how the registry itself treats a doubled separator as end-of-list.
func SplitMulti(data []byte) ([]string, error) {
	if len(data)%2 != 0 {
		return nil, ErrOddLength
	}
	var parts []string
	start := 0
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			if i == start {
				break
			}
			parts = append(parts, decodeUTF16LE(data[start:i]))
			start = i + 2
		}
	}
	if start < len(data) && !isAllZero(data[start:]) {
		parts = append(parts, decodeUTF16LE(data[start:]))
	}
	return parts, nil
}

func isAllZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// Append appends the UTF-16LE encoding of s to dst, without a terminator.
func Append(dst []byte, s string) []byte {
	for _, u := range utf16.Encode([]rune(s)) {
		dst = append(dst, byte(u), byte(u>>8))
	}
	return dst
}

// AppendNullTerminated appends the UTF-16LE encoding of s plus one null
// code unit.
func AppendNullTerminated(dst []byte, s string) []byte {
	dst = Append(dst, s)
	return append(dst, 0, 0)
}

// EncodeString returns the UTF-16LE encoding of s with a single trailing
// null code unit, the REG_SZ / REG_EXPAND_SZ payload shape.
func EncodeString(s string) []byte {
	return AppendNullTerminated(nil, s)
}

// EncodeMulti returns the REG_MULTI_SZ payload for parts: components joined
// by single null code units with a double null terminator. Empty components
// are dropped so they cannot prematurely terminate the list.
func EncodeMulti(parts []string) []byte {
	var dst []byte
	for _, p := range parts {
		if p == "" {
			continue
		}
		dst = AppendNullTerminated(dst, p)
	}
	return append(dst, 0, 0)
}
