package figmagen

import (
	"regexp"
	"strings"
)

var customPropertyPattern = regexp.MustCompile(`--([A-Za-z_][A-Za-z0-9_-]*)\s*:\s*([^;{}]+);`)

// extractMediaBlocks captures every @media rule as an opaque text span.
// One level of nested braces is tolerated; anything deeper is treated as
// malformed and silently skipped.
func extractMediaBlocks(cssText string) []string {
	return extractAtRuleSpans(cssText, "@media")
}

// extractKeyframes captures every @keyframes rule with its name and full
// raw definition.
func extractKeyframes(cssText string) []Animation {
	spans := extractAtRuleSpans(cssText, "@keyframes")

	animations := make([]Animation, 0, len(spans))
	for _, span := range spans {
		prelude := span[len("@keyframes"):]
		if brace := strings.IndexByte(prelude, '{'); brace >= 0 {
			prelude = prelude[:brace]
		}
		animations = append(animations, Animation{
			Name:       strings.TrimSpace(prelude),
			Definition: span,
		})
	}

	return animations
}

// extractCustomProperties finds every --name: value; occurrence anywhere
// in the text, regardless of nesting. Declarations already captured
// inside a rule are captured here again on purpose: the CSS emitter
// re-emits all variables in a top-level :root block.
func extractCustomProperties(cssText string) []CustomProperty {
	matches := customPropertyPattern.FindAllStringSubmatch(cssText, -1)

	props := make([]CustomProperty, 0, len(matches))
	for _, m := range matches {
		props = append(props, CustomProperty{
			Name:  m[1],
			Value: strings.TrimSpace(m[2]),
		})
	}

	return props
}

// extractAtRuleSpans finds keyword-prefixed at-rules and captures each
// whole span, from the keyword through the brace that closes it.
func extractAtRuleSpans(cssText, keyword string) []string {
	var spans []string

	offset := 0
	for {
		idx := strings.Index(cssText[offset:], keyword)
		if idx < 0 {
			break
		}
		start := offset + idx

		brace := strings.IndexByte(cssText[start:], '{')
		if brace < 0 {
			break
		}

		end, ok := matchBracedSpan(cssText[start:], brace)
		if !ok {
			// Unbalanced or too deeply nested: skip this keyword.
			offset = start + len(keyword)
			continue
		}

		spans = append(spans, cssText[start:start+end])
		offset = start + end
	}

	return spans
}

// matchBracedSpan scans forward from the opening brace at braceIdx and
// returns the offset just past the matching closing brace. Spans nested
// more than one level deep do not match.
func matchBracedSpan(text string, braceIdx int) (end int, ok bool) {
	depth := 0
	for i := braceIdx; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
			if depth > 2 {
				return 0, false
			}
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}
