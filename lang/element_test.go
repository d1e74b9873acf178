package lang

import (
	"testing"
)

func TestParseString_Element(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Result
	}{
		{
			name:  "bare tag",
			input: "/br",
			want:  []Result{{Node: &Element{Tag: "br"}}},
		},
		{
			name:  "whitespace ends element",
			input: "/br /hr",
			want: []Result{
				{Node: &Element{Tag: "br"}},
				text(" "),
				{Node: &Element{Tag: "hr"}},
			},
		},
		{
			name:  "shorthand class and id",
			input: "/div.card.wide#main(lang=en){x}",
			want: []Result{{Node: &Element{
				Tag:        "div",
				Classes:    []string{"card", "wide"},
				Attributes: attrs("id", "main", "lang", "en"),
				Children:   []Result{text("x")},
			}}},
		},
		{
			name:  "valueless and spaced attributes",
			input: "/p(a b = c){x}",
			want: []Result{{Node: &Element{
				Tag:        "p",
				Attributes: attrs("a", "", "b", "c"),
				Children:   []Result{text("x")},
			}}},
		},
		{
			name:  "quoted value and key",
			input: `/a&tip(@t)(href="/x y" "raw")`,
			want: []Result{{Node: &Element{
				Tag:        "a",
				Attributes: attrs("href", "/x y", `"raw"`, ""),
				Calls:      []*ComponentCall{{Name: "tip", Args: []string{"t"}}},
			}}},
		},
		{
			name:  "attached call without arguments",
			input: "/section&layout.main{x}",
			want: []Result{{Node: &Element{
				Tag:      "section",
				Calls:    []*ComponentCall{{Name: "layout.main"}},
				Children: []Result{text("x")},
			}}},
		},
		{
			name:  "attributes without body",
			input: "/img(src=a) tail",
			want: []Result{
				{Node: &Element{Tag: "img", Attributes: attrs("src", "a")}},
				text(" tail"),
			},
		},
		{
			name:  "repeated attribute keeps first position",
			input: "/p(a=1 b=2 a=3)",
			want: []Result{{Node: &Element{
				Tag:        "p",
				Attributes: attrs("a", "3", "b", "2"),
			}}},
		},
		{
			name:  "input ends in attribute list",
			input: "/div(a=x",
			want:  []Result{{Node: &Element{Tag: "div", Attributes: attrs("a", "x")}}},
		},
		{
			name:  "input ends after open paren",
			input: "/div(",
			want:  []Result{{Node: &Element{Tag: "div"}}},
		},
		{
			name:  "input ends in call arguments",
			input: "/div&c(@a",
			want: []Result{{Node: &Element{
				Tag:   "div",
				Calls: []*ComponentCall{{Name: "c", Args: []string{"a"}}},
			}}},
		},
		{
			name:  "input ends after call open paren",
			input: "/div&c(",
			want: []Result{{Node: &Element{
				Tag:   "div",
				Calls: []*ComponentCall{{Name: "c"}},
			}}},
		},
		{
			name:  "empty body",
			input: "/div{}",
			want:  []Result{{Node: &Element{Tag: "div"}}},
		},
		{
			name:  "nested elements",
			input: "/ul{/li{@a}/li{@b}}",
			want: []Result{{Node: &Element{
				Tag: "ul",
				Children: []Result{
					{Node: &Element{Tag: "li", Children: []Result{variable("a")}}},
					{Node: &Element{Tag: "li", Children: []Result{variable("b")}}},
				},
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diffResults(t, tt.want, parse(t, tt.input).Results)
		})
	}
}

func TestParseString_ElementErrors(t *testing.T) {
	runErrCases(t, []errCase{
		{"missing tag", "/", ErrUnexpectedEOF, 0},
		{"symbol tag", "/@", ErrInvalidElement, 1},
		{"blank tag", "/ div", ErrInvalidElement, 1},
		{"class at end", "/div.", ErrUnexpectedEOF, 4},
		{"class without name", "/div.@", ErrClassWithNoName, 5},
		{"id without name", "/div#{", ErrIDWithNoName, 5},
		{"stray symbol", "/div,", ErrUnexpectedToken, 4},
		{"invalid attribute token", "/div(,", ErrInvalidTokenInAttributes, 5},
		{"key at end", "/div(a", ErrUnexpectedEOF, 5},
		{"equals at end", "/div(a=", ErrUnexpectedEOF, 6},
		{"invalid value", "/div(a=,", ErrInvalidTokenInAttributes, 7},
		{"invalid token after key", "/div(a@", ErrInvalidTokenInAttributes, 6},
		{"class in attributes", "/div(.)", ErrClassWithNoName, 6},
		{"id in attributes", "/div(#)", ErrIDWithNoName, 6},
		{"call at end", "/div&", ErrUnexpectedEOF, 4},
		{"call without name", "/div&,", ErrExpectedComponentCall, 5},
		{"call argument without name", "/div&x(@,", ErrExpectedVariable, 8},
		{"call argument without at", "/div&x(a", ErrUnexpectedToken, 7},
	})
}
