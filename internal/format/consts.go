// Package format defines the binary layout of registry-policy (PReg) files.
//
// A registry-policy file is a flat little-endian stream:
//
//	[Signature - 4 bytes "PReg"] [Version - int32 LE] [record]*
//
// Each record is a bracketed sequence of UTF-16LE fields:
//
//	'[' key ';' value ';' type ';' length ';' payload ']'
//
// where '[' ';' ']' are single UTF-16LE code units, key and value are
// null-terminated UTF-16LE strings, type and length are int32 LE, and
// payload is exactly length bytes (except REG_SZ/REG_EXPAND_SZ, whose
// payload is delimited by its own null terminator).
package format

const (
	// Signature is the 4-byte magic at offset 0 of every policy file.
	Signature = "PReg"

	// SignatureSize is the byte length of the magic tag.
	SignatureSize = 4

	// VersionSize is the byte length of the version field.
	VersionSize = 4

	// HeaderSize is the total fixed header length (signature + version).
	HeaderSize = SignatureSize + VersionSize

	// DefaultVersion is the version written by the encoder. The decoder
	// reads the field but does not validate it; real-world writers have
	// never bumped it.
	DefaultVersion = int32(1)
)

// Record framing code units. Each occupies CodeUnitSize bytes on disk.
const (
	OpenBracket  = uint16('[')
	CloseBracket = uint16(']')
	Separator    = uint16(';')
)

const (
	// CodeUnitSize is the byte width of one UTF-16 code unit.
	CodeUnitSize = 2

	// DWORDSize is the payload length of a REG_DWORD value.
	DWORDSize = 4

	// QWORDSize is the payload length of a REG_QWORD value.
	QWORDSize = 8

	// TypeFieldSize is the byte width of the record's value-type field.
	TypeFieldSize = 4

	// LengthFieldSize is the byte width of the record's value-length field.
	LengthFieldSize = 4
)
