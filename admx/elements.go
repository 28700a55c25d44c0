package admx

import (
	"github.com/joshuapare/gpokit/pkg/types"
)

// extractElements maps a policy node's input schema to catalog elements.
//
// Policies with no <elements> block get a synthesized on/off toggle on the
// policy's own value name: enabledValue/disabledValue literals when the file
// declares them, the conventional 1/0 pair otherwise. Unrecognized element
// tags are preserved opaquely rather than dropped.
func extractElements(p policyNode, scope string, table StringTable) []types.PolicyElement {
	if p.Elements == nil || len(p.Elements.Nodes) == 0 {
		return []types.PolicyElement{synthesizeToggle(p)}
	}

	out := make([]types.PolicyElement, 0, len(p.Elements.Nodes))
	for _, n := range p.Elements.Nodes {
		out = append(out, mapElement(n, scope, table))
	}
	return out
}

// synthesizeToggle builds the implicit enable/disable element for a policy
// that declares no elements of its own.
func synthesizeToggle(p policyNode) types.PolicyElement {
	el := types.DecimalElement{
		ValueName:  p.ValueName,
		TrueValue:  "1",
		FalseValue: "0",
	}
	if p.EnabledValue != nil || p.DisabledValue != nil {
		el.TrueValue = p.EnabledValue.literal()
		el.FalseValue = p.DisabledValue.literal()
	}
	return el
}

func mapElement(n elementNode, scope string, table StringTable) types.PolicyElement {
	switch n.XMLName.Local {
	case "decimal":
		return types.DecimalElement{
			ID:        n.ID,
			ValueName: n.ValueName,
			Required:  n.Required,
			MinValue:  n.MinValue,
			MaxValue:  n.MaxValue,
		}
	case "boolean":
		return types.BooleanElement{
			ID:         n.ID,
			ValueName:  n.ValueName,
			Required:   n.Required,
			TrueValue:  n.TrueValue.literal(),
			FalseValue: n.FalseValue.literal(),
		}
	case "enum":
		items := make([]types.EnumItem, 0, len(n.Items))
		for _, it := range n.Items {
			items = append(items, types.EnumItem{
				DisplayName: table.Resolve(scope, it.DisplayName),
				Value:       it.Value.literal(),
			})
		}
		return types.EnumElement{
			ID:        n.ID,
			ValueName: n.ValueName,
			Required:  n.Required,
			Items:     items,
		}
	case "text":
		return types.TextElement{
			ID:         n.ID,
			ValueName:  n.ValueName,
			Required:   n.Required,
			MaxLength:  n.MaxLength,
			Expandable: n.Expandable,
		}
	case "multiText":
		return types.MultiTextElement{
			ID:        n.ID,
			ValueName: n.ValueName,
			Required:  n.Required,
		}
	case "list":
		return types.ListElement{
			ID:            n.ID,
			RegistryKey:   n.Key,
			ValuePrefix:   n.ValuePrefix,
			Additive:      n.Additive,
			Expandable:    n.Expandable,
			ExplicitValue: n.ExplicitValue,
		}
	default:
		return types.UnknownElement{Tag: n.XMLName.Local, Raw: n.Raw}
	}
}
