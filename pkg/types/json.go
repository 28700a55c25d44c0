package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
)

// JSON wire shape for a policy entry. Data is loosely typed on input: the
// coercion helpers accept hex strings or integer arrays for binary data and
// a newline-joined string or array for multi-strings.
type entryJSON struct {
	Key   string          `json:"key"`
	Value string          `json:"value,omitempty"`
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// MarshalJSON renders the entry with its REG_* type name and a data shape
// natural for the value kind: numbers for DWORD/QWORD, a string for SZ, an
// array for MULTI_SZ, a hex string for binary or unknown payloads.
func (e PolicyEntry) MarshalJSON() ([]byte, error) {
	var data any
	switch e.Data.Kind {
	case ValueNone:
		data = nil
	case ValueDword:
		data = e.Data.Dword
	case ValueQword:
		data = e.Data.Qword
	case ValueString:
		data = e.Data.Str
	case ValueMultiString:
		data = e.Data.Multi
	case ValueRaw:
		data = hex.EncodeToString(e.Data.Raw)
	}
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return json.Marshal(entryJSON{
		Key:   e.KeyName,
		Value: e.ValueName,
		Type:  e.Type.String(),
		Data:  raw,
	})
}

// UnmarshalJSON parses the shape written by MarshalJSON, accepting the loose
// data forms CoerceBinary and CoerceMultiString allow.
func (e *PolicyEntry) UnmarshalJSON(b []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	t, err := ParseRegType(raw.Type)
	if err != nil {
		return err
	}
	var data any
	if len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, &data); err != nil {
			return err
		}
	}
	val, err := valueFromLoose(t, data)
	if err != nil {
		return err
	}
	*e = PolicyEntry{KeyName: raw.Key, ValueName: raw.Value, Type: t, Data: val}
	return nil
}

func valueFromLoose(t RegType, data any) (PolicyValue, error) {
	switch t {
	case REG_DWORD:
		n, err := looseInt(data)
		if err != nil {
			return PolicyValue{}, fmt.Errorf("types: REG_DWORD data: %w", err)
		}
		return DwordValue(int32(n)), nil
	case REG_QWORD:
		n, err := looseInt(data)
		if err != nil {
			return PolicyValue{}, fmt.Errorf("types: REG_QWORD data: %w", err)
		}
		return QwordValue(n), nil
	case REG_SZ, REG_EXPAND_SZ:
		s, _ := data.(string)
		return StringValue(s), nil
	case REG_MULTI_SZ:
		return MultiStringValue(CoerceMultiString(data)), nil
	case REG_BINARY:
		return RawValue(CoerceBinary(data)), nil
	default:
		if data == nil {
			return NoValue(), nil
		}
		if raw := CoerceBinary(data); raw != nil {
			return RawValue(raw), nil
		}
		return NoValue(), nil
	}
}

func looseInt(data any) (int64, error) {
	switch n := data.(type) {
	case nil:
		return 0, nil
	case float64:
		return int64(n), nil
	case string:
		v, err := strconv.ParseInt(n, 0, 64)
		if err != nil {
			return 0, err
		}
		return v, nil
	default:
		return 0, fmt.Errorf("unsupported value %v", data)
	}
}

// MarshalJSON tags each element with its kind so catalog consumers can
// dispatch without reflection.
func (d PolicyDefinition) MarshalJSON() ([]byte, error) {
	elems := make([]any, 0, len(d.Elements))
	for _, e := range d.Elements {
		elems = append(elems, taggedElement(e))
	}
	return json.Marshal(struct {
		Name         string `json:"name"`
		SourceFile   string `json:"sourceFile,omitempty"`
		DisplayName  string `json:"displayName,omitempty"`
		ExplainText  string `json:"explainText,omitempty"`
		Class        string `json:"class"`
		RegistryKey  string `json:"registryKey,omitempty"`
		ValueName    string `json:"valueName,omitempty"`
		CategoryPath string `json:"categoryPath,omitempty"`
		SupportedOn  string `json:"supportedOn,omitempty"`
		Elements     []any  `json:"elements,omitempty"`
	}{
		Name:         d.Name,
		SourceFile:   d.SourceFile,
		DisplayName:  d.DisplayName,
		ExplainText:  d.ExplainText,
		Class:        d.Class.String(),
		RegistryKey:  d.RegistryKey,
		ValueName:    d.ValueName,
		CategoryPath: d.CategoryPath,
		SupportedOn:  d.SupportedOn,
		Elements:     elems,
	})
}

func taggedElement(e PolicyElement) any {
	switch el := e.(type) {
	case DecimalElement:
		return struct {
			Kind string `json:"kind"`
			DecimalElement
		}{"decimal", el}
	case BooleanElement:
		return struct {
			Kind string `json:"kind"`
			BooleanElement
		}{"boolean", el}
	case EnumElement:
		return struct {
			Kind string `json:"kind"`
			EnumElement
		}{"enum", el}
	case TextElement:
		return struct {
			Kind string `json:"kind"`
			TextElement
		}{"text", el}
	case MultiTextElement:
		return struct {
			Kind string `json:"kind"`
			MultiTextElement
		}{"multiText", el}
	case ListElement:
		return struct {
			Kind string `json:"kind"`
			ListElement
		}{"list", el}
	case UnknownElement:
		return struct {
			Kind string `json:"kind"`
			UnknownElement
		}{"unknown", el}
	default:
		return nil
	}
}
