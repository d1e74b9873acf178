package lang

import (
	"context"
	"log/slog"

	"github.com/expr-lang/expr"
)

// Select returns the nodes of results, in [Walk] order, for which the
// expr-lang predicate evaluates to true.
//
// The predicate sees the fields of the node being tested:
//
//	type      "text", "element", "component_call", "function_call", "variable"
//	depth     nesting depth, 0 at top level
//	line      source line
//	column    source column
//	value     text content (text)
//	tag       tag name (element)
//	classes   class names (element)
//	attrs     attribute map (element)
//	calls     attached component names (element)
//	children  number of child results (element)
//	name      namespaced name (calls, variables)
//	args      positional names (component call) or map of bound references
//	          in source form (function call)
//
// Fields that do not apply to a node hold their zero value. For example:
//
//	type == "element" && "card" in classes
//	type == "variable" && name startsWith "user."
func Select(ctx context.Context, results []Result, predicate string) ([]Node, error) {
	program, err := expr.Compile(predicate,
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
		// The node field shadows the builtin of the same name.
		expr.DisableBuiltin("type"),
	)
	if err != nil {
		return nil, ErrInvalidQuery.Wrap(err).
			With(slog.String("predicate", predicate))
	}

	var out []Node

	for depth, n := range Walk(results) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v, err := expr.Run(program, queryEnv(n, depth))
		if err != nil {
			return nil, ErrQuery.Wrap(err).
				With(slog.String("predicate", predicate))
		}

		if ok, _ := v.(bool); ok {
			out = append(out, n)
		}
	}

	return out, nil
}

func queryEnv(n Node, depth int) map[string]any {
	pos := n.Position()
	env := map[string]any{
		"type":   NodeType(n),
		"depth":  depth,
		"line":   pos.Line,
		"column": pos.Column,

		"value":    "",
		"tag":      "",
		"classes":  []string(nil),
		"attrs":    map[string]string(nil),
		"calls":    []string(nil),
		"children": 0,
		"name":     "",
		"args":     nil,
	}

	switch n := n.(type) {
	case *Text:
		env["value"] = n.Value

	case *Element:
		calls := make([]string, len(n.Calls))
		for i, c := range n.Calls {
			calls[i] = c.Name
		}

		env["tag"] = n.Tag
		env["classes"] = n.Classes
		env["attrs"] = n.Attributes.Std()
		env["calls"] = calls
		env["children"] = len(n.Children)

	case *ComponentCall:
		env["name"] = n.Name
		env["args"] = n.Args

	case *FunctionCall:
		args := make(map[string]string, n.Args.Len())
		for k, v := range n.Args.All() {
			args[k] = v.String()
		}

		env["name"] = n.Name
		env["args"] = args

	case *Variable:
		env["name"] = n.Name
	}

	return env
}
