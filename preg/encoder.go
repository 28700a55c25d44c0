package preg

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/gpokit/internal/format"
	"github.com/joshuapare/gpokit/internal/fsync"
	"github.com/joshuapare/gpokit/internal/wide"
	"github.com/joshuapare/gpokit/pkg/types"
)

// Encoder streams registry-policy records to an io.Writer. The header is
// written before the first record (or by Flush when no records are written,
// so an empty policy file is still well-formed).
type Encoder struct {
	w          io.Writer
	headerDone bool
	scratch    []byte
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Write appends one record. The payload length field is recomputed from the
// entry's data; a zero-length payload writes a length field of 0 and no
// payload bytes.
func (e *Encoder) Write(entry types.PolicyEntry) error {
	if err := e.writeHeader(); err != nil {
		return err
	}
	e.scratch = AppendEntry(e.scratch[:0], entry)
	if _, err := e.w.Write(e.scratch); err != nil {
		return fmt.Errorf("preg: write record: %w", err)
	}
	return nil
}

// Flush ensures the header has been written. It is only needed when no
// records were written; Write emits the header itself.
func (e *Encoder) Flush() error {
	return e.writeHeader()
}

func (e *Encoder) writeHeader() error {
	if e.headerDone {
		return nil
	}
	hdr := appendHeader(make([]byte, 0, format.HeaderSize))
	if _, err := e.w.Write(hdr); err != nil {
		return fmt.Errorf("preg: write header: %w", err)
	}
	e.headerDone = true
	return nil
}

func appendHeader(dst []byte) []byte {
	dst = append(dst, format.Signature...)
	return format.AppendI32(dst, format.DefaultVersion)
}

// AppendEntry appends the wire encoding of one record to dst.
func AppendEntry(dst []byte, entry types.PolicyEntry) []byte {
	payload := appendPayload(nil, entry)

	dst = format.AppendU16(dst, format.OpenBracket)
	dst = wide.AppendNullTerminated(dst, entry.KeyName)
	dst = format.AppendU16(dst, format.Separator)
	dst = wide.AppendNullTerminated(dst, entry.ValueName)
	dst = format.AppendU16(dst, format.Separator)
	dst = format.AppendU32(dst, uint32(entry.Type))
	dst = format.AppendU16(dst, format.Separator)
	dst = format.AppendU32(dst, uint32(len(payload)))
	dst = format.AppendU16(dst, format.Separator)
	dst = append(dst, payload...)
	dst = format.AppendU16(dst, format.CloseBracket)
	return dst
}

// appendPayload builds the type-dependent payload. The switch is permissive
// on the encode side: an entry whose value kind does not match its declared
// type falls through to raw bytes when present, or an empty payload, rather
// than failing the whole file.
func appendPayload(dst []byte, entry types.PolicyEntry) []byte {
	data := entry.Data
	switch entry.Type {
	case types.REG_DWORD:
		if data.Kind == types.ValueDword {
			return format.AppendI32(dst, data.Dword)
		}
	case types.REG_QWORD:
		if data.Kind == types.ValueQword {
			return format.AppendI64(dst, data.Qword)
		}
	case types.REG_SZ, types.REG_EXPAND_SZ:
		if data.Kind == types.ValueString {
			return wide.AppendNullTerminated(dst, data.Str)
		}
	case types.REG_MULTI_SZ:
		switch data.Kind {
		case types.ValueMultiString:
			return append(dst, wide.EncodeMulti(data.Multi)...)
		case types.ValueString:
			// A single string is split on line breaks, empty lines dropped.
			return append(dst, wide.EncodeMulti(types.CoerceMultiString(data.Str))...)
		}
	case types.REG_BINARY:
		switch data.Kind {
		case types.ValueRaw:
			return append(dst, data.Raw...)
		case types.ValueString:
			// Hex text ("0x" prefix and whitespace tolerated).
			return append(dst, types.CoerceBinary(data.Str)...)
		}
	}
	if data.Kind == types.ValueRaw {
		return append(dst, data.Raw...)
	}
	return dst
}

// EncodeAll returns the complete wire encoding of entries, header included.
// An empty slice encodes to a valid policy file containing only the header.
func EncodeAll(entries []types.PolicyEntry) []byte {
	dst := appendHeader(nil)
	for _, entry := range entries {
		dst = AppendEntry(dst, entry)
	}
	return dst
}

// WriteFile encodes entries to path, syncing data to stable storage before
// the handle is released. On error the partially written file is removed.
func WriteFile(path string, entries []types.PolicyEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(EncodeAll(entries)); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("preg: write %s: %w", path, err)
	}
	if err := fsync.File(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("preg: sync %s: %w", path, err)
	}
	return f.Close()
}
