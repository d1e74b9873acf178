package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/stencil/lang"
)

// Styles for parameter hints.
var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
)

// componentCall represents a component argument list under the cursor.
type componentCall struct {
	name     string // namespaced component name (e.g., "card.title")
	argIndex int    // current argument index (0-based)
	inCall   bool   // true if cursor is inside the argument list
}

// detectComponentCall reports whether the cursor is inside the argument list
// of "&name(", and if so which argument it is on.
func detectComponentCall(input string, cursor int) componentCall {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Scan backward for the unmatched opening parenthesis.
	depth := 0
	open := -1

	for i := cursor; i > 0 && open < 0; {
		r, size := utf8.DecodeLastRuneInString(input[:i])
		i -= size

		switch r {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				open = i
			}

			depth--
		}
	}

	if open < 0 {
		return componentCall{}
	}

	start := open

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	name := input[start:open]
	if name == "" || sigilBefore(input, start) != '&' {
		return componentCall{}
	}

	argIndex := strings.Count(input[open+1:cursor], ",")

	return componentCall{name: name, argIndex: argIndex, inCall: true}
}

// getSignature returns the parameters of the named component.
func getSignature(comps lang.Components, name string) ([]string, bool) {
	comp, ok := comps.Get(name)
	if !ok {
		return nil, false
	}

	return comp.Params, true
}

// renderSignatureHint renders "&name(@a, @b)" with the current parameter
// highlighted.
func renderSignatureHint(name string, params []string, current int) string {
	var b strings.Builder

	b.WriteString(signatureNameStyle.Render("&" + name))
	b.WriteString(signatureStyle.Render("("))

	for i, param := range params {
		if i > 0 {
			b.WriteString(signatureStyle.Render(", "))
		}

		if i == current {
			b.WriteString(currentParamStyle.Render("@" + param))
		} else {
			b.WriteString(signatureStyle.Render("@" + param))
		}
	}

	b.WriteString(signatureStyle.Render(")"))

	return b.String()
}
