package types

import (
	"strings"
)

// ValueKind tags the active arm of a PolicyValue.
type ValueKind uint8

const (
	ValueNone        ValueKind = iota // no payload (REG_NONE, empty data)
	ValueDword                        // 32-bit little-endian signed integer
	ValueQword                        // 64-bit little-endian signed integer
	ValueString                       // single string (REG_SZ, REG_EXPAND_SZ)
	ValueMultiString                  // zero-separated string list (REG_MULTI_SZ)
	ValueRaw                          // opaque bytes (REG_BINARY, unknown types)
)

// String implements the Stringer interface for ValueKind
func (k ValueKind) String() string {
	switch k {
	case ValueNone:
		return "none"
	case ValueDword:
		return "dword"
	case ValueQword:
		return "qword"
	case ValueString:
		return "string"
	case ValueMultiString:
		return "multi"
	case ValueRaw:
		return "raw"
	default:
		return "invalid"
	}
}

// PolicyValue is the decoded payload of a policy entry. Exactly one arm is
// meaningful, selected by Kind; the entry's RegType fully determines which.
// Strings are terminator-free UTF-8: decoding strips the null terminators
// the wire format carries, and encoding appends them fresh.
type PolicyValue struct {
	Kind  ValueKind
	Dword int32
	Qword int64
	Str   string
	Multi []string
	Raw   []byte
}

// NoValue returns the empty PolicyValue.
func NoValue() PolicyValue { return PolicyValue{Kind: ValueNone} }

// DwordValue returns a PolicyValue holding a 32-bit integer.
func DwordValue(v int32) PolicyValue { return PolicyValue{Kind: ValueDword, Dword: v} }

// QwordValue returns a PolicyValue holding a 64-bit integer.
func QwordValue(v int64) PolicyValue { return PolicyValue{Kind: ValueQword, Qword: v} }

// StringValue returns a PolicyValue holding a single string.
func StringValue(s string) PolicyValue { return PolicyValue{Kind: ValueString, Str: s} }

// MultiStringValue returns a PolicyValue holding a string list.
func MultiStringValue(parts []string) PolicyValue {
	return PolicyValue{Kind: ValueMultiString, Multi: parts}
}

// RawValue returns a PolicyValue holding opaque bytes.
func RawValue(b []byte) PolicyValue { return PolicyValue{Kind: ValueRaw, Raw: b} }

// CoerceBinary converts the loose inputs accepted for REG_BINARY data into a
// byte payload: a byte slice passes through, a hex string (optional "0x"
// prefix, whitespace ignored, two digits per byte) is decoded, and a slice
// of small integers is narrowed to bytes. Anything else yields an empty
// payload rather than an error; binary policy data is best-effort by
// contract.
func CoerceBinary(v any) []byte {
	switch b := v.(type) {
	case nil:
		return nil
	case []byte:
		return b
	case string:
		return parseHexBytes(b)
	case []int:
		out := make([]byte, len(b))
		for i, n := range b {
			out[i] = byte(n)
		}
		return out
	case []any:
		out := make([]byte, 0, len(b))
		for _, e := range b {
			switch n := e.(type) {
			case int:
				out = append(out, byte(n))
			case float64: // JSON numbers arrive as float64
				out = append(out, byte(int(n)))
			default:
				return nil
			}
		}
		return out
	default:
		return nil
	}
}

// CoerceMultiString converts the loose inputs accepted for REG_MULTI_SZ
// data into a string list: a string slice passes through, a single string is
// split on line breaks with empty lines dropped, and a slice of strings in
// any form is flattened. Anything else yields nil.
func CoerceMultiString(v any) []string {
	switch s := v.(type) {
	case nil:
		return nil
	case []string:
		return s
	case string:
		return splitLines(s)
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil
			}
			out = append(out, str)
		}
		return out
	default:
		return nil
	}
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func parseHexBytes(s string) []byte {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == ',' {
			return -1
		}
		return r
	}, s)
	if len(s)%2 != 0 {
		return nil
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok1 := hexDigit(s[i])
		lo, ok2 := hexDigit(s[i+1])
		if !ok1 || !ok2 {
			return nil
		}
		out[i/2] = hi<<4 | lo
	}
	return out
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
