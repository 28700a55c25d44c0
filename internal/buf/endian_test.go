package buf

import "testing"

func TestU16LE(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want uint16
	}{
		{"empty", nil, 0},
		{"short", []byte{0x01}, 0},
		{"exact", []byte{0x34, 0x12}, 0x1234},
		{"longer", []byte{0xFF, 0xFF, 0x00}, 0xFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := U16LE(tt.in); got != tt.want {
				t.Errorf("U16LE(%v) = 0x%X, want 0x%X", tt.in, got, tt.want)
			}
		})
	}
}

func TestI32LE(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want int32
	}{
		{"empty", nil, 0},
		{"short", []byte{0x01, 0x00, 0x00}, 0},
		{"one", []byte{0x01, 0x00, 0x00, 0x00}, 1},
		{"negative", []byte{0xFF, 0xFF, 0xFF, 0xFF}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := I32LE(tt.in); got != tt.want {
				t.Errorf("I32LE(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestI64LE(t *testing.T) {
	if got := I64LE([]byte{0x08, 0, 0, 0, 0, 0, 0, 0}); got != 8 {
		t.Errorf("I64LE = %d, want 8", got)
	}
	if got := I64LE([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}); got != -1 {
		t.Errorf("I64LE = %d, want -1", got)
	}
	if got := I64LE([]byte{0x01}); got != 0 {
		t.Errorf("I64LE short = %d, want 0", got)
	}
}
