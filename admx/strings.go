package admx

import (
	"encoding/xml"
	"fmt"

	"github.com/joshuapare/gpokit/internal/textenc"
)

// StringRef is the composite key of the localized string table: the base
// name of the resource file that defines the string, plus the string's
// local identifier.
type StringRef struct {
	Scope string
	ID    string
}

// StringTable maps scoped string identifiers to resolved display text. It
// is fully built from every resource file before any definition file is
// interpreted, and read-only from then on.
type StringTable map[StringRef]string

// Add registers one string resource.
func (t StringTable) Add(scope, id, text string) {
	t[StringRef{Scope: scope, ID: id}] = text
}

// Lookup returns the text registered for (scope, id).
func (t StringTable) Lookup(scope, id string) (string, bool) {
	s, ok := t[StringRef{Scope: scope, ID: id}]
	return s, ok
}

// Resolve substitutes every $(string.ID) and $(policy.ID) token in text
// with the table entry for (scope, ID). A token with no matching entry
// degrades to the literal ID.
func (t StringTable) Resolve(scope, text string) string {
	return refToken.ReplaceAllStringFunc(text, func(tok string) string {
		sub := refToken.FindStringSubmatch(tok)
		id := sub[2]
		if s, ok := t.Lookup(scope, id); ok {
			return s
		}
		return id
	})
}

// addResourceData parses one resource file's bytes into the table. The
// scope is the file's base name without extension.
func (t StringTable) addResourceData(scope string, data []byte) error {
	utf8Data, err := textenc.Decode(data)
	if err != nil {
		return fmt.Errorf("admx: transcode resource file: %w", err)
	}
	var res resourceFile
	if err := xml.Unmarshal(utf8Data, &res); err != nil {
		return fmt.Errorf("admx: parse resource file: %w", err)
	}
	for _, s := range res.Strings {
		t.Add(scope, s.ID, s.Text)
	}
	return nil
}
