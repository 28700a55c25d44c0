// Package preg reads and writes Windows registry-policy files (the binary
// "PReg" format stored as Registry.pol inside Group Policy objects).
//
// # File Structure
//
// A policy file is a flat little-endian stream with no index or alignment:
//
//	[Signature "PReg" - 4 bytes] [Version - int32 LE] [record]*
//
// Each record frames one registry value assignment:
//
//	'[' KeyName ';' ValueName ';' Type ';' Length ';' Payload ']'
//
// The brackets and separators are single UTF-16LE code units, KeyName and
// ValueName are null-terminated UTF-16LE strings, Type and Length are int32
// LE, and Payload is Length bytes interpreted per Type.
//
// # Decoding
//
// Decoder iterates records one at a time without loading them all:
//
//	d, err := preg.Open("Registry.pol")
//	if err != nil {
//	    return err
//	}
//	defer d.Close()
//	for {
//	    entry, err := d.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use entry
//	}
//
// A bad signature fails with ErrInvalidHeader before any entry is produced.
// A short read inside a record fails with ErrTruncatedRecord. The version
// field is read and exposed via Version but deliberately not validated:
// the platform's policy loader accepts any version, and rejecting one here
// would refuse files Windows itself applies.
//
// Value types without a defined payload interpretation (REG_DWORD_BE,
// REG_LINK, the resource types, and anything out of range) are preserved
// opaquely as raw bytes and reported through Diagnostics rather than lost.
//
// # Encoding
//
// Encode is the exact inverse of decode for the canonical in-memory
// representation: strings are terminator-free, and the payload length field
// is always recomputed from the data, never copied from an input entry.
//
//	var buf bytes.Buffer
//	e := preg.NewEncoder(&buf)
//	for _, entry := range entries {
//	    if err := e.Write(entry); err != nil {
//	        return err
//	    }
//	}
//	if err := e.Flush(); err != nil {
//	    return err
//	}
//
// WriteFile wraps the same loop with durable file output.
package preg
