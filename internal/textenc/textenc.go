// Package textenc decodes policy definition and resource files to UTF-8.
//
// ADMX/ADML files shipped by vendors are a mix of UTF-8 (with or without
// BOM) and UTF-16 (LE and BE, always with BOM). The XML decoder wants plain
// UTF-8, so everything is transcoded up front based on the BOM.
package textenc

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode transcodes data to UTF-8 based on its byte-order mark. Input
// without a BOM is returned unchanged and assumed to already be UTF-8.
func Decode(data []byte) ([]byte, error) {
	switch {
	case hasPrefix(data, bomUTF8):
		return data[len(bomUTF8):], nil
	case hasPrefix(data, bomUTF16LE):
		return transcode(data, unicode.LittleEndian)
	case hasPrefix(data, bomUTF16BE):
		return transcode(data, unicode.BigEndian)
	default:
		return data, nil
	}
}

func transcode(data []byte, endian unicode.Endianness) ([]byte, error) {
	dec := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, data)
	return out, err
}

func hasPrefix(data, bom []byte) bool {
	if len(data) < len(bom) {
		return false
	}
	for i := range bom {
		if data[i] != bom[i] {
			return false
		}
	}
	return true
}
