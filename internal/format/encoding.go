package format

import "encoding/binary"

// Little-endian append helpers for the encoder. The decoder uses internal/buf
// for the read direction; these exist so record framing reads as a sequence
// of Append* calls rather than inline shift arithmetic.

// AppendU16 appends a little-endian uint16 to dst.
func AppendU16(dst []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(dst, v)
}

// AppendU32 appends a little-endian uint32 to dst.
func AppendU32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// AppendI32 appends a little-endian int32 to dst.
func AppendI32(dst []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(dst, uint32(v))
}

// AppendI64 appends a little-endian int64 to dst.
func AppendI64(dst []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(v))
}
