package figmagen

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// scanSelectorRules finds conventional `selector { ... }` rules in the
// full text. At-rules are skipped here; @media and @keyframes spans are
// the extractor's concern and are captured verbatim elsewhere. Stray
// top-level declarations (the Figma comment convention) never reach a
// left brace and so never produce a rule.
func scanSelectorRules(cssText string) []StyleRule {
	lexer := css.NewLexer(parse.NewInputString(cssText))

	var rules []StyleRule
	var selector strings.Builder
	inAtRule := false

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just stop
			break
		}

		switch tt {
		case css.CommentToken:
			// Comments are the splitter's domain, never selector text.

		case css.AtKeywordToken:
			inAtRule = true
			selector.Reset()

		case css.SemicolonToken:
			inAtRule = false
			selector.Reset()

		case css.LeftBraceToken:
			if inAtRule {
				skipBlock(lexer)
				inAtRule = false
				selector.Reset()
				continue
			}

			sel := normalizeSelector(selector.String())
			body := readRuleBody(lexer)
			selector.Reset()

			if sel == "" {
				continue
			}
			rules = append(rules, StyleRule{
				Selector:     sel,
				Declarations: parseDeclarationBlock(body),
			})

		case css.RightBraceToken:
			selector.Reset()

		default:
			if !inAtRule {
				selector.Write(text)
			}
		}
	}

	return rules
}

// skipBlock consumes tokens until the brace that closes the block the
// lexer just entered.
func skipBlock(lexer *css.Lexer) {
	depth := 1
	for depth > 0 {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
	}
}

// readRuleBody collects the raw text of a declaration block, up to the
// matching closing brace. Comments inside the body are dropped.
func readRuleBody(lexer *css.Lexer) string {
	var body strings.Builder
	depth := 1

	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return body.String()
		case css.CommentToken:
			continue
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
			if depth == 0 {
				return body.String()
			}
		}
		body.Write(text)
	}
}

// normalizeSelector collapses internal whitespace so that nesting depth
// equals the number of space-separated segments.
func normalizeSelector(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
