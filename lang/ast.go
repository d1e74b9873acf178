package lang

import (
	"github.com/ardnew/stencil/lang/token"
)

// Node is one unit of parsed document content.
//
// The set of nodes is closed: [*Text], [*Element], [*ComponentCall],
// [*FunctionCall] and [*Variable].
type Node interface {
	// Position returns the position of the lexeme that introduced the node.
	Position() token.Position

	node()
}

// Text is literal content.
type Text struct {
	Value string
	Pos   token.Position
}

// Element is a markup element introduced by "/".
type Element struct {
	Tag        string
	Attributes Map[string]
	Classes    []string
	Children   []Result
	Calls      []*ComponentCall
	Pos        token.Position
}

// ComponentCall invokes a component by name with positional arguments.
type ComponentCall struct {
	Name string
	Args []string
	Pos  token.Position
}

// FunctionCall invokes a function with named arguments.
type FunctionCall struct {
	Name string
	Args Map[Arg]
	Pos  token.Position
}

// Variable references a runtime value by namespaced name.
type Variable struct {
	Name string
	Pos  token.Position
}

func (n *Text) Position() token.Position          { return n.Pos }
func (n *Element) Position() token.Position       { return n.Pos }
func (n *ComponentCall) Position() token.Position { return n.Pos }
func (n *FunctionCall) Position() token.Position  { return n.Pos }
func (n *Variable) Position() token.Position      { return n.Pos }

func (*Text) node()          {}
func (*Element) node()       {}
func (*ComponentCall) node() {}
func (*FunctionCall) node()  {}
func (*Variable) node()      {}

// ArgKind tells what a function argument is bound to.
type ArgKind int

const (
	ArgVariable  ArgKind = iota // bound variable reference
	ArgComponent                // bound component reference
)

// String returns "variable" or "component".
func (k ArgKind) String() string {
	if k == ArgComponent {
		return "component"
	}

	return "variable"
}

// Arg is the value bound to a named function argument.
type Arg struct {
	Name string
	Kind ArgKind
}

// String returns the argument in source form, e.g. "@value" or "&widget".
func (a Arg) String() string {
	if a.Kind == ArgComponent {
		return token.Ampersand.String() + a.Name
	}

	return token.At.String() + a.Name
}

// MarshalText implements encoding.TextMarshaler using the source form.
func (a Arg) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Result is either a parsed node or the error that replaced it.
type Result struct {
	Node Node
	Err  *Error
}

// OK reports whether r holds a node.
func (r Result) OK() bool { return r.Err == nil }
