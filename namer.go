package figmagen

import (
	"regexp"
	"strings"
	"unicode"
)

// maxCommentNameLength rejects long prose comments when scanning for a
// usable component name.
const maxCommentNameLength = 50

var classSelectorPattern = regexp.MustCompile(`\.([A-Za-z][A-Za-z0-9_-]*)`)

// deriveComponentName picks a component name from the raw CSS text.
// Fallback chain, first success wins:
//
//  1. the first comment, unless empty, noise, or the literal "button"
//  2. any comment under 50 characters that is not noise
//  3. the first class selector, kebab-case converted to PascalCase
//  4. DefaultComponentName
//
// The class-selector fallback deliberately skips the noise and length
// filters of steps 1-2; class names in an export are assumed to already
// be clean.
func deriveComponentName(cssText string) string {
	comments := commentPattern.FindAllStringSubmatch(cssText, -1)

	if len(comments) > 0 {
		first := strings.TrimSpace(comments[0][1])
		if first != "" && first != "button" && !isNoiseLabel(first) {
			if name := sanitizeComponentName(first); name != "" {
				return name
			}
		}
	}

	for _, c := range comments {
		label := strings.TrimSpace(c[1])
		if label == "" || isNoiseLabel(label) || len(label) >= maxCommentNameLength {
			continue
		}
		if name := sanitizeComponentName(label); name != "" {
			return name
		}
	}

	if m := classSelectorPattern.FindStringSubmatch(cssText); m != nil {
		return classToComponentName(m[1])
	}

	return DefaultComponentName
}

// sanitizeComponentName reduces a comment label to an identifier: strip
// everything that is not a letter or digit, drop leading digits, and
// uppercase the first letter. Returns "" when nothing usable remains.
func sanitizeComponentName(label string) string {
	var b strings.Builder
	for _, r := range label {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	name := strings.TrimLeftFunc(b.String(), unicode.IsDigit)
	if name == "" {
		return ""
	}

	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// classToComponentName converts a kebab-case class name to PascalCase:
// "primary-button" becomes "PrimaryButton".
func classToComponentName(className string) string {
	parts := strings.Split(className, "-")
	for i, part := range parts {
		if len(part) > 0 {
			runes := []rune(part)
			runes[0] = unicode.ToUpper(runes[0])
			parts[i] = string(runes)
		}
	}
	return strings.Join(parts, "")
}
