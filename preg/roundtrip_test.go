package preg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/gpokit/pkg/types"
)

func TestRoundTripSingleDwordRecord(t *testing.T) {
	// decode(bytes) then encode(result) must reproduce the original bytes
	// exactly for a well-formed file.
	original := append(header(),
		buildRecord(`Software\Test`, "Enabled", 4, []byte{0x01, 0x00, 0x00, 0x00})...)

	entries, diags, err := DecodeAll(original)
	require.NoError(t, err)
	require.Empty(t, diags)

	assert.Equal(t, original, EncodeAll(entries))
}

func TestRoundTripAllValueTypes(t *testing.T) {
	entries := []types.PolicyEntry{
		{KeyName: `Software\Policies\A`, ValueName: "Dword", Type: types.REG_DWORD, Data: types.DwordValue(-5)},
		{KeyName: `Software\Policies\A`, ValueName: "Qword", Type: types.REG_QWORD, Data: types.QwordValue(1 << 50)},
		{KeyName: `Software\Policies\B`, ValueName: "Str", Type: types.REG_SZ, Data: types.StringValue("héllo wörld")},
		{KeyName: `Software\Policies\B`, ValueName: "Exp", Type: types.REG_EXPAND_SZ, Data: types.StringValue("%SystemRoot%\\x")},
		{KeyName: `Software\Policies\B`, ValueName: "Multi", Type: types.REG_MULTI_SZ, Data: types.MultiStringValue([]string{"one", "two", "three"})},
		{KeyName: `Software\Policies\C`, ValueName: "Bin", Type: types.REG_BINARY, Data: types.RawValue([]byte{0, 1, 2, 0xFF})},
		{KeyName: `Software\Policies\C`, ValueName: "", Type: types.REG_NONE, Data: types.NoValue()},
	}

	wire := EncodeAll(entries)
	decoded, diags, err := DecodeAll(wire)
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Len(t, decoded, len(entries))

	for i := range entries {
		assert.Equal(t, entries[i], decoded[i], "entry %d", i)
	}

	// And byte-for-byte on the second pass.
	assert.Equal(t, wire, EncodeAll(decoded))
}

func TestRoundTripUnknownType(t *testing.T) {
	// Unknown payloads survive a decode/encode cycle byte-for-byte.
	original := append(header(), buildRecord("K", "V", 9, []byte{1, 2, 3})...)

	entries, diags, err := DecodeAll(original)
	require.NoError(t, err)
	require.Len(t, diags, 1)

	assert.Equal(t, original, EncodeAll(entries))
}

func TestRoundTripEmptyMulti(t *testing.T) {
	// An empty multi-string encodes to the bare double terminator and
	// decodes back to an empty list.
	entry := types.PolicyEntry{
		KeyName: "K", ValueName: "V",
		Type: types.REG_MULTI_SZ,
		Data: types.MultiStringValue(nil),
	}
	wire := EncodeAll([]types.PolicyEntry{entry})
	decoded, _, err := DecodeAll(wire)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Empty(t, decoded[0].Data.Multi)
	assert.Equal(t, wire, EncodeAll(decoded))
}
