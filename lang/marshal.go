package lang

import (
	"encoding/json"
)

// NodeType returns the lower-case kind of n, e.g. "element".
func NodeType(n Node) string {
	switch n.(type) {
	case *Text:
		return "text"
	case *Element:
		return "element"
	case *ComponentCall:
		return "component_call"
	case *FunctionCall:
		return "function_call"
	case *Variable:
		return "variable"
	default:
		return "unknown"
	}
}

// NodeMap converts n to a native Go map structure.
// Empty collections are omitted.
func NodeMap(n Node) map[string]any {
	if n == nil {
		return nil
	}

	m := map[string]any{
		"type": NodeType(n),
		"pos":  n.Position().String(),
	}

	switch n := n.(type) {
	case *Text:
		m["value"] = n.Value

	case *Element:
		m["tag"] = n.Tag

		if n.Attributes.Len() > 0 {
			m["attributes"] = n.Attributes
		}

		if len(n.Classes) > 0 {
			m["classes"] = n.Classes
		}

		if len(n.Calls) > 0 {
			calls := make([]any, len(n.Calls))
			for i, call := range n.Calls {
				calls[i] = NodeMap(call)
			}

			m["calls"] = calls
		}

		if len(n.Children) > 0 {
			m["children"] = resultsToNative(n.Children)
		}

	case *ComponentCall:
		m["name"] = n.Name

		if len(n.Args) > 0 {
			m["args"] = n.Args
		}

	case *FunctionCall:
		m["name"] = n.Name

		if n.Args.Len() > 0 {
			m["args"] = n.Args
		}

	case *Variable:
		m["name"] = n.Name
	}

	return m
}

// ToMap converts r to a native Go map structure.
func (r Result) ToMap() map[string]any {
	if r.Err != nil {
		return r.Err.ToMap()
	}

	return NodeMap(r.Node)
}

// ToMap converts e to a native Go map structure.
func (e *Error) ToMap() map[string]any {
	m := map[string]any{
		"type":  "error",
		"error": e.msg,
	}

	if e.anchored {
		m["pos"] = e.lexeme.Pos.String()
		m["near"] = e.lexeme.Surface()
	}

	if e.err != nil {
		m["cause"] = e.err.Error()
	}

	return m
}

// ToMap converts c to a native Go map structure.
func (c *Component) ToMap() map[string]any {
	m := map[string]any{
		"name": c.Name,
		"pos":  c.Pos.String(),
	}

	if len(c.Params) > 0 {
		m["params"] = c.Params
	}

	if len(c.Body) > 0 {
		m["body"] = resultsToNative(c.Body)
	}

	return m
}

// ToMap converts c to a map from component name to component.
func (c Components) ToMap() map[string]any {
	m := make(map[string]any, len(c))
	for name, comp := range c {
		m[name] = comp.ToMap()
	}

	return m
}

// ToMap converts d to a native Go map structure.
func (d *Document) ToMap() map[string]any {
	m := map[string]any{
		"results": resultsToNative(d.Results),
	}

	if len(d.Components) > 0 {
		m["components"] = d.Components.ToMap()
	}

	return m
}

func resultsToNative(results []Result) []any {
	out := make([]any, len(results))
	for i, r := range results {
		out[i] = r.ToMap()
	}

	return out
}

// MarshalJSON implements json.Marshaler for Document.
func (d *Document) MarshalJSON() ([]byte, error) { return json.Marshal(d.ToMap()) }

// MarshalJSON implements json.Marshaler for Result.
func (r Result) MarshalJSON() ([]byte, error) { return json.Marshal(r.ToMap()) }

// MarshalJSON implements json.Marshaler for Component.
func (c *Component) MarshalJSON() ([]byte, error) { return json.Marshal(c.ToMap()) }

// MarshalJSON implements json.Marshaler for Text.
func (n *Text) MarshalJSON() ([]byte, error) { return json.Marshal(NodeMap(n)) }

// MarshalJSON implements json.Marshaler for Element.
func (n *Element) MarshalJSON() ([]byte, error) { return json.Marshal(NodeMap(n)) }

// MarshalJSON implements json.Marshaler for ComponentCall.
func (n *ComponentCall) MarshalJSON() ([]byte, error) { return json.Marshal(NodeMap(n)) }

// MarshalJSON implements json.Marshaler for FunctionCall.
func (n *FunctionCall) MarshalJSON() ([]byte, error) { return json.Marshal(NodeMap(n)) }

// MarshalJSON implements json.Marshaler for Variable.
func (n *Variable) MarshalJSON() ([]byte, error) { return json.Marshal(NodeMap(n)) }
