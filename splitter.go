package figmagen

import (
	"regexp"
	"strings"
)

// noiseLabels are Figma boilerplate comment phrases that never name a
// component. A label matching any of these (case-sensitive substring) is
// dropped by the splitter and skipped by the component namer.
var noiseLabels = []string{
	"Auto layout",
	"Inside auto layout",
	"Hug contents",
	"Fill container",
}

var commentPattern = regexp.MustCompile(`(?s)/\*(.*?)\*/`)

// isNoiseLabel reports whether a trimmed comment label is Figma
// boilerplate rather than a component name.
func isNoiseLabel(label string) bool {
	for _, noise := range noiseLabels {
		if strings.Contains(label, noise) {
			return true
		}
	}
	return false
}

// commentBlock pairs a comment label with the declaration text that
// follows it, up to the next comment or end of input.
type commentBlock struct {
	Label string
	Text  string
}

// splitCommentBlocks recovers (label, declaration-text) pairs from the
// Figma export convention, where /* Name */ comments act as selectors.
// Empty labels, noise labels, and labels with no trailing declaration
// text are dropped, not reported.
func splitCommentBlocks(cssText string) []commentBlock {
	matches := commentPattern.FindAllStringSubmatchIndex(cssText, -1)

	var blocks []commentBlock
	for i, m := range matches {
		label := strings.TrimSpace(cssText[m[2]:m[3]])
		if label == "" || isNoiseLabel(label) {
			continue
		}

		end := len(cssText)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		text := cssText[m[1]:end]
		if strings.TrimSpace(text) == "" {
			continue
		}

		blocks = append(blocks, commentBlock{Label: label, Text: text})
	}

	return blocks
}

// synthesizeSelector converts a Figma component label into a class
// selector: "Button Label" becomes ".button-label".
func synthesizeSelector(label string) string {
	name := strings.ToLower(label)
	name = strings.Join(strings.Fields(name), "-")

	var b strings.Builder
	var last rune
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			if r == '-' && last == '-' {
				continue
			}
			b.WriteRune(r)
			last = r
		}
	}

	return "." + strings.Trim(b.String(), "-")
}

// figmaRules converts comment blocks into style rules with synthesized
// selectors. Blocks whose declaration text parses to nothing are still
// emitted; an empty rule is harmless downstream.
func figmaRules(cssText string) []StyleRule {
	blocks := splitCommentBlocks(cssText)

	rules := make([]StyleRule, 0, len(blocks))
	for _, block := range blocks {
		rules = append(rules, StyleRule{
			Selector:           synthesizeSelector(block.Label),
			Declarations:       parseFigmaBlock(block.Text),
			FigmaComponentName: block.Label,
		})
	}

	return rules
}
