package types

// PolicyEntry is one record of a registry-policy file: the registry key and
// value it targets, the value's type discriminant, and the decoded payload.
//
// The wire format also carries a payload byte length; it is deliberately not
// part of the model. Decoding uses it only to bound reads, and encoding
// always recomputes it from Data, so a stale length can never be written
// back out.
type PolicyEntry struct {
	KeyName   string
	ValueName string
	Type      RegType
	Data      PolicyValue
}
