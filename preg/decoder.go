package preg

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/gpokit/internal/buf"
	"github.com/joshuapare/gpokit/internal/format"
	"github.com/joshuapare/gpokit/internal/mmfile"
	"github.com/joshuapare/gpokit/internal/wide"
	"github.com/joshuapare/gpokit/pkg/types"
)

// Decoder iterates the records of a registry-policy byte stream. It holds a
// read cursor; entries are decoded on demand by Next. Decoded entries own
// their data and remain valid after Close.
type Decoder struct {
	data    []byte
	off     int
	version int32
	cleanup func() error
	diags   []types.Diagnostic
	err     error // sticky: first fatal error ends iteration
}

// NewDecoder validates the header of data and returns a decoder positioned
// at the first record. ErrInvalidHeader is returned when the magic tag is
// wrong; no entries are produced in that case.
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < format.SignatureSize || string(data[:format.SignatureSize]) != format.Signature {
		return nil, ErrInvalidHeader
	}
	if len(data) < format.HeaderSize {
		return nil, fmt.Errorf("preg: header missing version field: %w", ErrTruncatedRecord)
	}
	return &Decoder{
		data:    data,
		off:     format.HeaderSize,
		version: buf.I32LE(data[format.SignatureSize:]),
	}, nil
}

// Open maps the policy file at path and returns a decoder over it. The
// caller must Close the decoder to release the mapping; Close is safe on
// every path, including after a decode error.
func Open(path string) (*Decoder, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	d, err := NewDecoder(data)
	if err != nil {
		cleanup()
		return nil, err
	}
	d.cleanup = cleanup
	return d, nil
}

// Version reports the header's version field. It is informational only;
// see the package documentation for why mismatches are not rejected.
func (d *Decoder) Version() int32 { return d.version }

// Diagnostics returns the non-fatal issues met so far, in record order.
func (d *Decoder) Diagnostics() []types.Diagnostic { return d.diags }

// Close releases the underlying file mapping, if any. Safe to call more
// than once.
func (d *Decoder) Close() error {
	if d.cleanup == nil {
		return nil
	}
	c := d.cleanup
	d.cleanup = nil
	d.data = nil
	return c()
}

// Next decodes and returns the next entry. It returns io.EOF when the
// cursor reaches the end of the stream, and a fatal error (wrapping
// ErrTruncatedRecord or ErrMalformedRecord) if the stream ends or misframes
// mid-record. After a fatal error every subsequent call returns it again.
func (d *Decoder) Next() (types.PolicyEntry, error) {
	if d.err != nil {
		return types.PolicyEntry{}, d.err
	}
	if d.off >= len(d.data) {
		return types.PolicyEntry{}, io.EOF
	}
	start := d.off
	entry, err := d.decodeRecord()
	if err != nil {
		d.err = fmt.Errorf("preg: record at offset %d: %w", start, err)
		return types.PolicyEntry{}, d.err
	}
	return entry, nil
}

func (d *Decoder) decodeRecord() (types.PolicyEntry, error) {
	if err := d.expect(format.OpenBracket); err != nil {
		return types.PolicyEntry{}, err
	}
	keyName, err := d.readString()
	if err != nil {
		return types.PolicyEntry{}, fmt.Errorf("key name: %w", err)
	}
	if err := d.expect(format.Separator); err != nil {
		return types.PolicyEntry{}, err
	}
	valueName, err := d.readString()
	if err != nil {
		return types.PolicyEntry{}, fmt.Errorf("value name: %w", err)
	}
	if err := d.expect(format.Separator); err != nil {
		return types.PolicyEntry{}, err
	}
	rawType, err := d.readU32()
	if err != nil {
		return types.PolicyEntry{}, fmt.Errorf("value type: %w", err)
	}
	if err := d.expect(format.Separator); err != nil {
		return types.PolicyEntry{}, err
	}
	length, err := d.readU32()
	if err != nil {
		return types.PolicyEntry{}, fmt.Errorf("value length: %w", err)
	}
	if err := d.expect(format.Separator); err != nil {
		return types.PolicyEntry{}, err
	}

	vt := types.RegType(rawType)
	data, err := d.decodePayload(vt, valueName, int(length))
	if err != nil {
		return types.PolicyEntry{}, err
	}
	if err := d.expect(format.CloseBracket); err != nil {
		return types.PolicyEntry{}, err
	}
	return types.PolicyEntry{
		KeyName:   keyName,
		ValueName: valueName,
		Type:      vt,
		Data:      data,
	}, nil
}

// decodePayload consumes the type-dependent payload and advances the cursor.
// For all types except REG_SZ/REG_EXPAND_SZ, exactly length bytes are
// consumed so the cursor stays aligned with the closing bracket; strings are
// delimited by their own null terminator instead, matching the platform
// loader.
func (d *Decoder) decodePayload(vt types.RegType, valueName string, length int) (types.PolicyValue, error) {
	switch vt {
	case types.REG_SZ, types.REG_EXPAND_SZ:
		s, err := d.readString()
		if err != nil {
			return types.PolicyValue{}, fmt.Errorf("string payload: %w", err)
		}
		return types.StringValue(s), nil

	case types.REG_DWORD:
		window, err := d.window(length)
		if err != nil {
			return types.PolicyValue{}, err
		}
		if len(window) < format.DWORDSize {
			return types.PolicyValue{}, fmt.Errorf("REG_DWORD payload is %d bytes: %w", len(window), ErrTruncatedRecord)
		}
		return types.DwordValue(buf.I32LE(window)), nil

	case types.REG_QWORD:
		window, err := d.window(length)
		if err != nil {
			return types.PolicyValue{}, err
		}
		if len(window) < format.QWORDSize {
			return types.PolicyValue{}, fmt.Errorf("REG_QWORD payload is %d bytes: %w", len(window), ErrTruncatedRecord)
		}
		return types.QwordValue(buf.I64LE(window)), nil

	case types.REG_MULTI_SZ:
		window, err := d.window(length)
		if err != nil {
			return types.PolicyValue{}, err
		}
		parts, err := wide.SplitMulti(window)
		if err != nil {
			return types.PolicyValue{}, fmt.Errorf("REG_MULTI_SZ payload: %w: %w", ErrMalformedRecord, err)
		}
		return types.MultiStringValue(parts), nil

	case types.REG_BINARY:
		window, err := d.window(length)
		if err != nil {
			return types.PolicyValue{}, err
		}
		return types.RawValue(cloneBytes(window)), nil

	case types.REG_NONE:
		window, err := d.window(length)
		if err != nil {
			return types.PolicyValue{}, err
		}
		if len(window) == 0 {
			return types.NoValue(), nil
		}
		return types.RawValue(cloneBytes(window)), nil

	default:
		// No defined payload interpretation. Consume the declared length to
		// keep the cursor aligned, preserve the bytes opaquely, and surface
		// a diagnostic instead of silently losing data.
		window, err := d.window(length)
		if err != nil {
			return types.PolicyValue{}, err
		}
		d.diags = append(d.diags, types.Diagnostic{
			Severity: types.SevWarning,
			Category: types.DiagUnknownValueType,
			Subject:  valueName,
			Message:  fmt.Sprintf("no payload interpretation for %s; %d bytes preserved opaquely", vt, len(window)),
		})
		return types.RawValue(cloneBytes(window)), nil
	}
}

// expect consumes one code unit and checks it against want.
func (d *Decoder) expect(want uint16) error {
	u, ok := buf.Slice(d.data, d.off, format.CodeUnitSize)
	if !ok {
		return fmt.Errorf("expected %q: %w", rune(want), ErrTruncatedRecord)
	}
	got := buf.U16LE(u)
	if got != want {
		return fmt.Errorf("expected %q, found U+%04X: %w", rune(want), got, ErrMalformedRecord)
	}
	d.off += format.CodeUnitSize
	return nil
}

// readString consumes a null-terminated UTF-16LE string.
func (d *Decoder) readString() (string, error) {
	s, next, err := wide.ReadNullTerminated(d.data, d.off)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTruncatedRecord, err)
	}
	d.off = next
	return s, nil
}

// readU32 consumes a 4-byte little-endian unsigned integer.
func (d *Decoder) readU32() (uint32, error) {
	w, ok := buf.Slice(d.data, d.off, 4)
	if !ok {
		return 0, ErrTruncatedRecord
	}
	d.off += 4
	return buf.U32LE(w), nil
}

// window bounds-checks and consumes exactly n payload bytes.
func (d *Decoder) window(n int) ([]byte, error) {
	w, ok := buf.Slice(d.data, d.off, n)
	if !ok {
		return nil, fmt.Errorf("payload of %d bytes: %w", n, ErrTruncatedRecord)
	}
	d.off += n
	return w, nil
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// DecodeAll decodes every record of data, returning the entries plus any
// non-fatal diagnostics. A fatal error returns no entries for a bad header
// and the entries decoded so far for a truncated tail.
func DecodeAll(data []byte) ([]types.PolicyEntry, []types.Diagnostic, error) {
	d, err := NewDecoder(data)
	if err != nil {
		return nil, nil, err
	}
	var entries []types.PolicyEntry
	for {
		entry, err := d.Next()
		if errors.Is(err, io.EOF) {
			return entries, d.Diagnostics(), nil
		}
		if err != nil {
			return entries, d.Diagnostics(), err
		}
		entries = append(entries, entry)
	}
}

// DecodeFile decodes the policy file at path. The file mapping is released
// before return on every path.
func DecodeFile(path string) ([]types.PolicyEntry, []types.Diagnostic, error) {
	d, err := Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer d.Close()

	var entries []types.PolicyEntry
	for {
		entry, err := d.Next()
		if errors.Is(err, io.EOF) {
			return entries, d.Diagnostics(), nil
		}
		if err != nil {
			return entries, d.Diagnostics(), err
		}
		entries = append(entries, entry)
	}
}
