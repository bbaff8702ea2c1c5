package figmagen

import (
	"sort"
	"strings"
)

// tagGuess pairs a selector substring with the HTML tag it suggests.
type tagGuess struct {
	hint string
	tag  string
}

// tagGuesses is checked in order; the first substring hit wins. The
// order is the priority: "button" must beat the bare "a" and "p" hints,
// which match almost anything.
var tagGuesses = []tagGuess{
	{"button", "button"},
	{"btn", "button"},
	{"header", "header"},
	{"footer", "footer"},
	{"nav", "nav"},
	{"main", "main"},
	{"section", "section"},
	{"article", "article"},
	{"aside", "aside"},
	{"h1", "h1"},
	{"title", "h1"},
	{"h2", "h2"},
	{"h3", "h3"},
	{"p", "p"},
	{"text", "p"},
	{"span", "span"},
	{"img", "img"},
	{"image", "img"},
	{"a", "a"},
	{"link", "a"},
	{"ul", "ul"},
	{"list", "ul"},
	{"li", "li"},
	{"item", "li"},
}

// inferElementTag guesses an HTML tag from selector text.
func inferElementTag(selector string) string {
	for _, g := range tagGuesses {
		if strings.Contains(selector, g.hint) {
			return g.tag
		}
	}
	return "div"
}

// inferStructure guesses an element tree from rule selectors. Depth is
// the number of whitespace-separated selector segments; the result is
// sorted shallow-first with scan order preserved between equals, so less
// specific selectors come out on top.
func inferStructure(rules []StyleRule) []ElementGuess {
	guesses := make([]ElementGuess, 0, len(rules))
	for _, rule := range rules {
		segments := strings.Fields(rule.Selector)
		if len(segments) == 0 {
			continue
		}
		guesses = append(guesses, ElementGuess{
			Selector: rule.Selector,
			Depth:    len(segments),
			Elements: segments,
		})
	}

	sort.SliceStable(guesses, func(i, j int) bool {
		return guesses[i].Depth < guesses[j].Depth
	})

	return guesses
}

// extractClassName returns the first class token in a selector, or the
// fixed fallback used when a selector has none.
func extractClassName(selector string) string {
	if m := classSelectorPattern.FindStringSubmatch(selector); m != nil {
		return m[1]
	}
	return "figma-element"
}
