package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes d as an indented tree, one node per line, followed by the
// registered components and their bodies.
func (d *Document) Format(_ context.Context, w io.Writer, indent int) error {
	err := formatResults(w, d.Results, indent, 0)
	if err != nil {
		return err
	}

	for i, name := range d.Components.Names() {
		if i == 0 && len(d.Results) > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		comp := d.Components[name]

		_, err := fmt.Fprintf(w, "%s  component %s(%s)\n",
			comp.Pos, comp.Name, strings.Join(comp.Params, ", "))
		if err != nil {
			return err
		}

		err = formatResults(w, comp.Body, indent, 1)
		if err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes d as JSON to the writer.
func (d *Document) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(d, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(d)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes d as YAML to the writer.
func (d *Document) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, d.ToMap(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

func formatResults(w io.Writer, results []Result, indent, depth int) error {
	pad := strings.Repeat(" ", indent*depth)

	for _, r := range results {
		if r.Err != nil {
			_, err := fmt.Fprintf(w, "%s  %serror %s\n",
				r.Err.Position(), pad, r.Err.msg)
			if err != nil {
				return err
			}

			continue
		}

		_, err := fmt.Fprintf(w, "%s  %s%s\n",
			r.Node.Position(), pad, Describe(r.Node))
		if err != nil {
			return err
		}

		if el, ok := r.Node.(*Element); ok {
			err := formatResults(w, el.Children, indent, depth+1)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// Describe returns a one-line summary of n in source-like notation, such as
//
//	element div .card id="main"
//	function call $fmt(x=@value, y=&widget)
func Describe(n Node) string {
	var b strings.Builder

	b.WriteString(strings.ReplaceAll(NodeType(n), "_", " "))
	b.WriteByte(' ')

	switch n := n.(type) {
	case *Text:
		b.WriteString(strconv.Quote(n.Value))

	case *Element:
		b.WriteString(n.Tag)

		for _, class := range n.Classes {
			b.WriteString(" .")
			b.WriteString(class)
		}

		for k, v := range n.Attributes.All() {
			b.WriteByte(' ')
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(strconv.Quote(v))
		}

		for _, call := range n.Calls {
			b.WriteByte(' ')
			b.WriteString(callString(call))
		}

	case *ComponentCall:
		b.WriteString(callString(n))

	case *FunctionCall:
		b.WriteByte('$')
		b.WriteString(n.Name)
		b.WriteByte('(')

		i := 0
		for k, v := range n.Args.All() {
			if i > 0 {
				b.WriteString(", ")
			}

			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(v.String())

			i++
		}

		b.WriteByte(')')

	case *Variable:
		b.WriteByte('@')
		b.WriteString(n.Name)
	}

	return b.String()
}

func callString(c *ComponentCall) string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = "@" + a
	}

	return "&" + c.Name + "(" + strings.Join(args, ", ") + ")"
}
