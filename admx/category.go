package admx

import (
	"strings"

	"github.com/joshuapare/gpokit/pkg/types"
)

// ErrCategoryCycle is returned by ResolvePath when a category's parent chain
// loops back on itself.
var ErrCategoryCycle = &types.Error{Kind: types.ErrKindCycle, Msg: "admx: category parent chain forms a cycle"}

// CycleError reports which category closed the loop. It unwraps to
// ErrCategoryCycle so callers can match with errors.Is.
type CycleError struct {
	ID string
}

func (e *CycleError) Error() string {
	return "admx: category cycle detected at " + e.ID
}

func (e *CycleError) Unwrap() error { return ErrCategoryCycle }

// ScopeID forms the catalog-wide unique identifier for a locally declared
// category or policy: the declaring file's base name joined to the local ID.
func ScopeID(fileBase, id string) string {
	return fileBase + ScopeJoin + id
}

// ScopeRef resolves a reference written inside fileBase to a catalog-wide
// identifier. A plain reference lands in the referencing file's own
// namespace; a "targetFile:name" reference lands in the target file's.
func ScopeRef(fileBase, ref string) string {
	if i := strings.Index(ref, NamespaceMarker); i >= 0 {
		return ref[:i] + ScopeJoin + ref[i+len(NamespaceMarker):]
	}
	return ScopeID(fileBase, ref)
}

// ResolvePath walks parent references from startID to the hierarchy root and
// returns the root-to-leaf display path joined with PathSeparator. A parent
// reference with no matching category terminates the path with the raw
// reference ID. A looping parent chain returns a *CycleError.
func ResolvePath(categories map[string]types.Category, startID string) (string, error) {
	var segments []string
	seen := make(map[string]bool)

	id := startID
	for id != "" {
		if seen[id] {
			return "", &CycleError{ID: id}
		}
		seen[id] = true

		cat, ok := categories[id]
		if !ok {
			segments = append(segments, id)
			break
		}
		segments = append(segments, cat.DisplayName)
		id = cat.ParentRef
	}

	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, PathSeparator), nil
}
