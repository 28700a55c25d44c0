package types

import (
	"bytes"
	"testing"
)

func TestCoerceBinary(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []byte
	}{
		{"nil", nil, nil},
		{"bytes passthrough", []byte{1, 2, 3}, []byte{1, 2, 3}},
		{"hex string", "0102ff", []byte{0x01, 0x02, 0xFF}},
		{"hex with prefix", "0xDEADBEEF", []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{"hex with whitespace", "01 02\t03\n04", []byte{1, 2, 3, 4}},
		{"hex with commas", "01,02,03", []byte{1, 2, 3}},
		{"int slice", []int{0, 255, 16}, []byte{0, 255, 16}},
		{"json number slice", []any{float64(1), float64(2)}, []byte{1, 2}},
		{"odd hex", "abc", nil},
		{"bad hex", "zz", nil},
		{"unsupported", 42, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceBinary(tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("CoerceBinary(%v) = % X, want % X", tt.in, got, tt.want)
			}
		})
	}
}

func TestCoerceMultiString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"nil", nil, nil},
		{"slice passthrough", []string{"a", "b"}, []string{"a", "b"}},
		{"newline split", "a\nb", []string{"a", "b"}},
		{"crlf split drops empties", "a\r\n\r\nb\r\n", []string{"a", "b"}},
		{"any slice", []any{"x", "y"}, []string{"x", "y"}},
		{"mixed any slice", []any{"x", 1}, nil},
		{"unsupported", 42, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceMultiString(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("CoerceMultiString(%v) = %q, want %q", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("part %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParsePolicyClass(t *testing.T) {
	tests := []struct {
		in   string
		want PolicyClass
	}{
		{"Machine", ClassMachine},
		{"user", ClassUser},
		{"BOTH", ClassBoth},
		{"", ClassMachine},
		{"garbage", ClassMachine},
	}
	for _, tt := range tests {
		if got := ParsePolicyClass(tt.in); got != tt.want {
			t.Errorf("ParsePolicyClass(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
