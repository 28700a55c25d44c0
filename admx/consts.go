package admx

import "regexp"

const (
	// File extensions recognized by the directory scan, matched
	// case-insensitively.
	extDefinition = ".admx"
	extResource   = ".adml"

	// NamespaceMarker separates an explicit file namespace from a local
	// identifier in a cross-file reference ("windows:WindowsComponents").
	NamespaceMarker = ":"

	// ScopeJoin joins a file's base name with a local identifier to form a
	// catalog-wide unique ID.
	ScopeJoin = "_"

	// PathSeparator joins category display names root to leaf in a
	// resolved category path.
	PathSeparator = " / "
)

// refToken matches the $(string.ID) and $(policy.ID) reference tokens that
// definition files embed in display text attributes.
var refToken = regexp.MustCompile(`\$\((string|policy)\.([^)\s]+)\)`)
