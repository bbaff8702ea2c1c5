package figmagen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDeclarationBlock(t *testing.T) {
	tests := []struct {
		name     string
		block    string
		expected []Declaration
	}{
		{
			name:  "simple declarations",
			block: "color: red; background: blue;",
			expected: []Declaration{
				{Property: "color", Value: "red"},
				{Property: "background", Value: "blue"},
			},
		},
		{
			name:  "whitespace trimmed",
			block: "  color :  red  ;\n  padding:8px  ",
			expected: []Declaration{
				{Property: "color", Value: "red"},
				{Property: "padding", Value: "8px"},
			},
		},
		{
			name:  "malformed segment skipped",
			block: "color: red; nonsense; background: blue",
			expected: []Declaration{
				{Property: "color", Value: "red"},
				{Property: "background", Value: "blue"},
			},
		},
		{
			name:  "value keeps inner colons",
			block: "background: url(https://example.com/x.png)",
			expected: []Declaration{
				{Property: "background", Value: "url(https://example.com/x.png)"},
			},
		},
		{
			name:  "duplicates retained in order",
			block: "display: flex; display: flex;",
			expected: []Declaration{
				{Property: "display", Value: "flex"},
				{Property: "display", Value: "flex"},
			},
		},
		{
			name:     "empty block",
			block:    "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseDeclarationBlock(tt.block))
		})
	}
}

func TestParseFigmaBlock(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Declaration
	}{
		{
			name: "one declaration per line",
			text: "display: flex;\npadding: 8px;",
			expected: []Declaration{
				{Property: "display", Value: "flex"},
				{Property: "padding", Value: "8px"},
			},
		},
		{
			name: "multi-line value continuation",
			text: "box-shadow: 0px 1px 2px rgba(0, 0, 0, 0.05),\n0px 4px 8px rgba(0, 0, 0, 0.1);",
			expected: []Declaration{
				{Property: "box-shadow", Value: "0px 1px 2px rgba(0, 0, 0, 0.05), 0px 4px 8px rgba(0, 0, 0, 0.1)"},
			},
		},
		{
			name: "comment-only lines skipped",
			text: "display: flex;\n/* identical to box height */\nheight: 42px;",
			expected: []Declaration{
				{Property: "display", Value: "flex"},
				{Property: "height", Value: "42px"},
			},
		},
		{
			name: "trailing semicolon stripped",
			text: "color: #FFFFFF;",
			expected: []Declaration{
				{Property: "color", Value: "#FFFFFF"},
			},
		},
		{
			name:     "continuation before any property dropped",
			text:     "stray line\ncolor: red;",
			expected: []Declaration{{Property: "color", Value: "red"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseFigmaBlock(tt.text))
		})
	}
}

// For brace-balanced input, the combined property count never exceeds
// the number of colons outside comments.
func TestDeclarationCountBoundedByColons(t *testing.T) {
	tests := []struct {
		name string
		css  string
	}{
		{
			name: "figma convention",
			css:  "/* Button */\ndisplay: flex;\npadding: 8px;",
		},
		{
			name: "selector rules",
			css:  ".card { color: red; background: blue } .card .title { font-size: 14px }",
		},
		{
			name: "unbalanced braces",
			css:  ".broken { color: red;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Parse(tt.css)

			colons := strings.Count(tt.css, ":")
			total := 0
			for _, rule := range parsed.Rules {
				total += len(rule.Declarations)
			}
			assert.LessOrEqual(t, total, colons)
		})
	}
}
