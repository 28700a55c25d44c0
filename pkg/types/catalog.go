package types

import "strings"

// PolicyClass identifies which registry hive a policy targets.
type PolicyClass int

const (
	ClassMachine PolicyClass = iota // HKLM policies (the default when unspecified)
	ClassUser                       // HKCU policies
	ClassBoth                       // applies to both hives
)

// String implements the Stringer interface for PolicyClass
func (c PolicyClass) String() string {
	switch c {
	case ClassMachine:
		return "Machine"
	case ClassUser:
		return "User"
	case ClassBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

// ParsePolicyClass maps a definition file's class attribute to a
// PolicyClass. Matching is case-insensitive; anything unrecognized
// (including the empty string) defaults to Machine.
func ParsePolicyClass(s string) PolicyClass {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return ClassUser
	case "both":
		return ClassBoth
	default:
		return ClassMachine
	}
}

// Category is one grouping node in the policy hierarchy. ID and ParentRef
// are scoped strings: same-file identifiers carry their source file's base
// name as a prefix, and cross-file references are rewritten into the target
// file's namespace before the Category reaches the catalog.
type Category struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	ParentRef   string `json:"parentRef,omitempty"`
}

// PolicyElement is one input element of a policy's schema: the value (or
// values) the policy writes and the constraints the UI enforces on it.
// Concrete types are DecimalElement, BooleanElement, EnumElement,
// TextElement, MultiTextElement, ListElement, and UnknownElement.
type PolicyElement interface{ isElement() }

// DecimalElement is a bounded numeric element. It doubles as the synthetic
// on/off toggle for policies that declare no elements of their own, in which
// case TrueValue/FalseValue carry the enabled/disabled registry data.
type DecimalElement struct {
	ID         string `json:"id,omitempty"`
	ValueName  string `json:"valueName,omitempty"`
	Required   bool   `json:"required,omitempty"`
	MinValue   string `json:"minValue,omitempty"`
	MaxValue   string `json:"maxValue,omitempty"`
	TrueValue  string `json:"trueValue,omitempty"`
	FalseValue string `json:"falseValue,omitempty"`
}

// BooleanElement is a checkbox element with explicit true/false registry data.
type BooleanElement struct {
	ID         string `json:"id,omitempty"`
	ValueName  string `json:"valueName,omitempty"`
	Required   bool   `json:"required,omitempty"`
	TrueValue  string `json:"trueValue,omitempty"`
	FalseValue string `json:"falseValue,omitempty"`
}

// EnumItem is one choice of an EnumElement. DisplayName is resolved text,
// Value the literal registry data written when the item is selected.
type EnumItem struct {
	DisplayName string `json:"displayName"`
	Value       string `json:"value"`
}

// EnumElement is a dropdown element.
type EnumElement struct {
	ID        string     `json:"id,omitempty"`
	ValueName string     `json:"valueName,omitempty"`
	Required  bool       `json:"required,omitempty"`
	Items     []EnumItem `json:"items,omitempty"`
}

// TextElement is a free-text element.
type TextElement struct {
	ID         string `json:"id,omitempty"`
	ValueName  string `json:"valueName,omitempty"`
	Required   bool   `json:"required,omitempty"`
	MaxLength  string `json:"maxLength,omitempty"`
	Expandable bool   `json:"expandable,omitempty"`
}

// MultiTextElement is a multi-line text element stored as REG_MULTI_SZ.
type MultiTextElement struct {
	ID        string `json:"id,omitempty"`
	ValueName string `json:"valueName,omitempty"`
	Required  bool   `json:"required,omitempty"`
}

// ListElement writes a set of values under a subkey, one registry value per
// list entry.
type ListElement struct {
	ID            string `json:"id,omitempty"`
	RegistryKey   string `json:"registryKey,omitempty"`
	ValuePrefix   string `json:"valuePrefix,omitempty"`
	Additive      bool   `json:"additive,omitempty"`
	Expandable    bool   `json:"expandable,omitempty"`
	ExplicitValue bool   `json:"explicitValue,omitempty"`
}

// UnknownElement preserves an element node whose tag the parser does not
// recognize. Raw holds the node's inner XML verbatim so nothing is lost on
// round trips through the catalog.
type UnknownElement struct {
	Tag string `json:"tag"`
	Raw string `json:"raw,omitempty"`
}

func (DecimalElement) isElement()   {}
func (BooleanElement) isElement()   {}
func (EnumElement) isElement()      {}
func (TextElement) isElement()      {}
func (MultiTextElement) isElement() {}
func (ListElement) isElement()      {}
func (UnknownElement) isElement()   {}

// PolicyDefinition is one fully resolved policy setting: display text and
// category path substituted from the localized string table, class resolved,
// and the element schema extracted. Definitions are created by the catalog
// parser and read-only thereafter.
type PolicyDefinition struct {
	Name         string
	SourceFile   string
	DisplayName  string
	ExplainText  string
	Class        PolicyClass
	RegistryKey  string
	ValueName    string
	CategoryPath string
	SupportedOn  string
	Elements     []PolicyElement
}

// CatalogStats summarizes a built catalog.
type CatalogStats struct {
	PolicyCount   int `json:"policyCount"`
	CategoryCount int `json:"categoryCount"`
	MachineCount  int `json:"machineCount"`
	UserCount     int `json:"userCount"`
	BothCount     int `json:"bothCount"`
}

// PolicyCatalog is the aggregate root owning every Category and
// PolicyDefinition parsed from a template set, plus the diagnostics for
// files that were skipped or references that degraded. Built once per
// invocation; immutable once returned.
type PolicyCatalog struct {
	Categories  []Category
	Policies    []PolicyDefinition
	Stats       CatalogStats
	Diagnostics []Diagnostic
}
