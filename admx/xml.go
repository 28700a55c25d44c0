package admx

import "encoding/xml"

// XML shapes for the subset of the ADMX/ADML schemas the catalog consumes.
// Upstream schema validation is out of scope: unknown attributes and nodes
// are ignored by the decoder except inside <elements>, where unrecognized
// tags are preserved opaquely.

// definitionFile is the root of an .admx file.
type definitionFile struct {
	XMLName    xml.Name       `xml:"policyDefinitions"`
	Categories []categoryNode `xml:"categories>category"`
	Policies   []policyNode   `xml:"policies>policy"`
}

type categoryNode struct {
	Name           string  `xml:"name,attr"`
	DisplayName    string  `xml:"displayName,attr"`
	ParentCategory refNode `xml:"parentCategory"`
}

// refNode is a child element whose only payload is a ref attribute, used by
// parentCategory and supportedOn.
type refNode struct {
	Ref string `xml:"ref,attr"`
}

type policyNode struct {
	Name           string        `xml:"name,attr"`
	Class          string        `xml:"class,attr"`
	DisplayName    string        `xml:"displayName,attr"`
	ExplainText    string        `xml:"explainText,attr"`
	Key            string        `xml:"key,attr"`
	ValueName      string        `xml:"valueName,attr"`
	ParentCategory refNode       `xml:"parentCategory"`
	SupportedOn    refNode       `xml:"supportedOn"`
	EnabledValue   *valueNode    `xml:"enabledValue"`
	DisabledValue  *valueNode    `xml:"disabledValue"`
	Elements       *elementsNode `xml:"elements"`
}

// elementsNode captures every child of <elements> regardless of tag, so
// unrecognized element kinds reach the mapper instead of being dropped by
// the decoder.
type elementsNode struct {
	Nodes []elementNode `xml:",any"`
}

// elementNode is the union of the attributes and children carried by the
// known element kinds. Raw preserves the node's inner XML for the Unknown
// fallback.
type elementNode struct {
	XMLName       xml.Name
	ID            string     `xml:"id,attr"`
	Key           string     `xml:"key,attr"`
	ValueName     string     `xml:"valueName,attr"`
	Required      bool       `xml:"required,attr"`
	MinValue      string     `xml:"minValue,attr"`
	MaxValue      string     `xml:"maxValue,attr"`
	MaxLength     string     `xml:"maxLength,attr"`
	Expandable    bool       `xml:"expandable,attr"`
	Additive      bool       `xml:"additive,attr"`
	ExplicitValue bool       `xml:"explicitValue,attr"`
	ValuePrefix   string     `xml:"valuePrefix,attr"`
	TrueValue     *valueNode `xml:"trueValue"`
	FalseValue    *valueNode `xml:"falseValue"`
	Items         []itemNode `xml:"item"`
	Raw           string     `xml:",innerxml"`
}

type itemNode struct {
	DisplayName string     `xml:"displayName,attr"`
	Value       *valueNode `xml:"value"`
}

// valueNode is the literal-value wrapper used by enabledValue,
// disabledValue, boolean true/false values, and enum item values.
type valueNode struct {
	Decimal *decimalValue `xml:"decimal"`
	String  *stringValue  `xml:"string"`
	Delete  *struct{}     `xml:"delete"`
}

type decimalValue struct {
	Value string `xml:"value,attr"`
}

type stringValue struct {
	Text string `xml:",chardata"`
}

// literal flattens a valueNode to the text form stored on catalog elements.
// A <delete/> marker and an absent node both flatten to the empty string.
func (v *valueNode) literal() string {
	if v == nil {
		return ""
	}
	switch {
	case v.Decimal != nil:
		return v.Decimal.Value
	case v.String != nil:
		return v.String.Text
	default:
		return ""
	}
}

// resourceFile is the root of an .adml file.
type resourceFile struct {
	XMLName xml.Name          `xml:"policyDefinitionResources"`
	Strings []stringTableNode `xml:"resources>stringTable>string"`
}

type stringTableNode struct {
	ID   string `xml:"id,attr"`
	Text string `xml:",chardata"`
}
