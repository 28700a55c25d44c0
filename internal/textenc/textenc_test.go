package textenc

import (
	"testing"
	"unicode/utf16"
)

func utf16le(s string, withBOM bool) []byte {
	var b []byte
	if withBOM {
		b = append(b, 0xFF, 0xFE)
	}
	for _, u := range utf16.Encode([]rune(s)) {
		b = append(b, byte(u), byte(u>>8))
	}
	return b
}

func utf16be(s string, withBOM bool) []byte {
	var b []byte
	if withBOM {
		b = append(b, 0xFE, 0xFF)
	}
	for _, u := range utf16.Encode([]rune(s)) {
		b = append(b, byte(u>>8), byte(u))
	}
	return b
}

func TestDecode(t *testing.T) {
	const sample = `<?xml version="1.0"?><root>héllo</root>`

	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain utf8", []byte(sample), sample},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, sample...), sample},
		{"utf16le bom", utf16le(sample, true), sample},
		{"utf16be bom", utf16be(sample, true), sample},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Decode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeNoBOMPassthrough(t *testing.T) {
	// UTF-16 without a BOM is indistinguishable from arbitrary bytes; it
	// passes through untouched and fails later at the XML layer.
	in := utf16le("<root/>", false)
	got, err := Decode(in)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(got) != string(in) {
		t.Errorf("expected passthrough for BOM-less input")
	}
}
