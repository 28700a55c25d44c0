package admx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringTableResolve(t *testing.T) {
	table := make(StringTable)
	table.Add("inetres", "IE", "Internet Explorer")
	table.Add("windows", "IE", "Wrong Scope")

	tests := []struct {
		name  string
		scope string
		text  string
		want  string
	}{
		{"plain token", "inetres", "$(string.IE)", "Internet Explorer"},
		{"embedded token", "inetres", "Configure $(string.IE) now", "Configure Internet Explorer now"},
		{"policy token", "inetres", "$(policy.IE)", "Internet Explorer"},
		{"scoped lookup", "windows", "$(string.IE)", "Wrong Scope"},
		{"missing degrades to id", "inetres", "$(string.Nope)", "Nope"},
		{"no tokens", "inetres", "literal text", "literal text"},
		{"multiple tokens", "inetres", "$(string.IE)/$(string.Nope)", "Internet Explorer/Nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Resolve(tt.scope, tt.text))
		})
	}
}

func TestStringTableAddResourceData(t *testing.T) {
	table := make(StringTable)
	data := []byte(`<?xml version="1.0" encoding="utf-8"?>
<policyDefinitionResources>
  <resources>
    <stringTable>
      <string id="Cat">Category Text</string>
      <string id="Pol">Policy Text</string>
    </stringTable>
  </resources>
</policyDefinitionResources>`)
	require.NoError(t, table.addResourceData("base", data))

	got, ok := table.Lookup("base", "Cat")
	require.True(t, ok)
	assert.Equal(t, "Category Text", got)

	_, ok = table.Lookup("other", "Cat")
	assert.False(t, ok)
}

func TestStringTableAddResourceDataMalformed(t *testing.T) {
	table := make(StringTable)
	err := table.addResourceData("base", []byte("<policyDefinitionResources><resources>"))
	require.Error(t, err)
}
