package types

import "fmt"

// Severity classifies how serious a diagnostic issue is.
type Severity int

const (
	SevInfo    Severity = iota // informational (unusual but handled)
	SevWarning                 // data degraded or preserved opaquely
	SevError                   // a file or resolution was skipped entirely
)

// String implements the Stringer interface for Severity
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return "unknown"
	}
}

// DiagCategory classifies the type of issue found.
type DiagCategory int

const (
	DiagUnknownValueType    DiagCategory = iota // decoder met a type with no payload interpretation
	DiagResourceParse                           // a resource (.adml) file failed to parse
	DiagDefinitionParse                         // a definition (.admx) file failed to parse
	DiagUnresolvedReference                     // string or category ref degraded to its literal ID
	DiagCategoryCycle                           // a category parent chain loops
)

// String implements the Stringer interface for DiagCategory
func (c DiagCategory) String() string {
	switch c {
	case DiagUnknownValueType:
		return "unknown-value-type"
	case DiagResourceParse:
		return "resource-parse"
	case DiagDefinitionParse:
		return "definition-parse"
	case DiagUnresolvedReference:
		return "unresolved-reference"
	case DiagCategoryCycle:
		return "category-cycle"
	default:
		return "unknown"
	}
}

// Diagnostic records a recoverable issue met while decoding a policy file or
// building a catalog. Diagnostics never abort the operation that produced
// them; they accumulate so callers get a best-effort result plus the full
// account of what was skipped or degraded.
type Diagnostic struct {
	Severity Severity     `json:"severity"`
	Category DiagCategory `json:"category"`
	File     string       `json:"file,omitempty"`    // source file, when the issue is file-scoped
	Subject  string       `json:"subject,omitempty"` // policy, category, or value involved
	Message  string       `json:"message"`
}

// String implements the Stringer interface for Diagnostic
func (d Diagnostic) String() string {
	where := d.File
	if d.Subject != "" {
		if where != "" {
			where += ": "
		}
		where += d.Subject
	}
	if where != "" {
		return fmt.Sprintf("[%s] %s: %s: %s", d.Severity, d.Category, where, d.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", d.Severity, d.Category, d.Message)
}

// MarshalJSON renders Severity as its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// MarshalJSON renders DiagCategory as its string form.
func (c DiagCategory) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}
