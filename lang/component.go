package lang

import (
	"github.com/ardnew/stencil/lang/token"
)

// Component is a named, parameterized, reusable body of nodes.
type Component struct {
	Name   string
	Params []string
	Body   []Result
	Pos    token.Position
}

// Components maps namespaced names to component definitions.
type Components map[string]*Component

// Names returns the component names in lexical order.
func (c Components) Names() []string { return sortedKeys(c) }

// Get returns the component with the given name.
func (c Components) Get(name string) (*Component, bool) {
	comp, ok := c[name]

	return comp, ok
}
