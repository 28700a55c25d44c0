package preg

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/gpokit/pkg/types"
)

func TestPrintText(t *testing.T) {
	entries := []types.PolicyEntry{
		{KeyName: `Software\A`, ValueName: "Enabled", Type: types.REG_DWORD, Data: types.DwordValue(1)},
		{KeyName: `Software\A`, ValueName: "", Type: types.REG_SZ, Data: types.StringValue("x")},
		{KeyName: `Software\B`, ValueName: "Blob", Type: types.REG_BINARY, Data: types.RawValue(bytes.Repeat([]byte{0xAB}, 40))},
	}

	var out bytes.Buffer
	require.NoError(t, Print(&out, entries, PrintOptions{}))
	s := out.String()

	// Consecutive entries under one key are grouped under one heading.
	assert.Equal(t, 1, strings.Count(s, "Software\\A\n"))
	assert.Contains(t, s, "Enabled (REG_DWORD) = 1")
	assert.Contains(t, s, `(default) (REG_SZ) = "x"`)
	// Binary truncated at the default 32 bytes.
	assert.Contains(t, s, "... (40 bytes)")
}

func TestPrintJSON(t *testing.T) {
	entries := []types.PolicyEntry{
		{KeyName: "K", ValueName: "V", Type: types.REG_DWORD, Data: types.DwordValue(3)},
	}
	var out bytes.Buffer
	require.NoError(t, Print(&out, entries, PrintOptions{Format: FormatJSON}))

	var round []types.PolicyEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &round))
	require.Len(t, round, 1)
	assert.Equal(t, int32(3), round[0].Data.Dword)
}

func TestPrintUnknownFormat(t *testing.T) {
	err := Print(&bytes.Buffer{}, nil, PrintOptions{Format: "yaml"})
	assert.Error(t, err)
}
