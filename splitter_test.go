package figmagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCommentBlocks(t *testing.T) {
	tests := []struct {
		name     string
		css      string
		expected []commentBlock
	}{
		{
			name: "single labeled block",
			css: `/* Button */
display: flex;
padding: 8px;`,
			expected: []commentBlock{
				{Label: "Button", Text: "\ndisplay: flex;\npadding: 8px;"},
			},
		},
		{
			name: "two blocks split at second comment",
			css: `/* Card */
display: flex;
/* Card Title */
font-size: 14px;`,
			expected: []commentBlock{
				{Label: "Card", Text: "\ndisplay: flex;\n"},
				{Label: "Card Title", Text: "\nfont-size: 14px;"},
			},
		},
		{
			name:     "noise label dropped",
			css:      "/* Auto layout */ display: flex;",
			expected: nil,
		},
		{
			name:     "noise substring dropped",
			css:      "/* Inside auto layout wrapper */ gap: 8px;",
			expected: nil,
		},
		{
			name:     "empty label dropped",
			css:      "/*   */ color: red;",
			expected: nil,
		},
		{
			name:     "label without declarations dropped",
			css:      "/* Button */   \n\t",
			expected: nil,
		},
		{
			name: "noise block does not swallow the next label",
			css: `/* Auto layout */
gap: 10px;
/* Icon */
width: 16px;`,
			expected: []commentBlock{
				{Label: "Icon", Text: "\nwidth: 16px;"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitCommentBlocks(tt.css)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSynthesizeSelector(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{"Button", ".button"},
		{"Button Label", ".button-label"},
		{"Frame 427318906", ".frame-427318906"},
		{"Nav / Item", ".nav-item"},
		{"  Spaced   Out  ", ".spaced-out"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, synthesizeSelector(tt.label))
		})
	}
}

func TestFigmaRules(t *testing.T) {
	css := `/* Primary Button */
display: flex;
padding: 8px 24px;`

	rules := figmaRules(css)
	require.Len(t, rules, 1)

	assert.Equal(t, ".primary-button", rules[0].Selector)
	assert.Equal(t, "Primary Button", rules[0].FigmaComponentName)
	assert.Equal(t, []Declaration{
		{Property: "display", Value: "flex"},
		{Property: "padding", Value: "8px 24px"},
	}, rules[0].Declarations)
}
