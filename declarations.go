package figmagen

import "strings"

// parseDeclarationBlock parses the body of a conventional rule: segments
// split on ";", each split on the first ":". Segments without a colon are
// malformed and silently skipped. Order is preserved and duplicates are
// retained.
func parseDeclarationBlock(block string) []Declaration {
	var decls []Declaration

	for _, segment := range strings.Split(block, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		idx := strings.Index(segment, ":")
		if idx < 0 {
			continue
		}

		property := strings.TrimSpace(segment[:idx])
		value := strings.TrimSpace(segment[idx+1:])
		if property == "" {
			continue
		}

		decls = append(decls, Declaration{Property: property, Value: value})
	}

	return decls
}

// parseFigmaBlock parses a comment-derived declaration block line by
// line. A line containing ":" starts a new declaration; following lines
// without one continue the current value (Figma emits multi-line
// box-shadow and gradient values). Comment-only lines are skipped and a
// trailing ";" is stripped from each value.
func parseFigmaBlock(text string) []Declaration {
	var decls []Declaration
	var property string
	var value []string

	flush := func() {
		if property == "" {
			return
		}
		joined := strings.TrimSpace(strings.Join(value, " "))
		joined = strings.TrimSpace(strings.TrimSuffix(joined, ";"))
		decls = append(decls, Declaration{Property: property, Value: joined})
		property = ""
		value = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/*") && strings.HasSuffix(line, "*/") {
			continue
		}

		if idx := strings.Index(line, ":"); idx >= 0 {
			flush()
			property = strings.TrimSpace(line[:idx])
			value = []string{strings.TrimSpace(line[idx+1:])}
			continue
		}

		// Continuation of a multi-line value. Lines before the first
		// declaration have nothing to attach to and are dropped.
		if property != "" {
			value = append(value, line)
		}
	}

	flush()
	return decls
}
