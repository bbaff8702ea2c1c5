package figmagen

import "fmt"

// tokenProperties are the declarations harvested as design tokens.
var tokenProperties = map[string]bool{
	"color":            true,
	"background":       true,
	"background-color": true,
	"border-radius":    true,
	"font-size":        true,
	"font-weight":      true,
}

// Parse converts raw Figma-exported CSS into the intermediate
// representation consumed by Generate. It never fails: the worst
// malformed input yields a sheet with empty lists and the default
// component name.
//
// Rule order is discovery order: comment-derived blocks first, then
// conventional selector rules found by the lexer scan. Later stages rely
// on that order.
func Parse(cssText string) *ParsedStyleSheet {
	rules := figmaRules(cssText)
	rules = append(rules, scanSelectorRules(cssText)...)

	return &ParsedStyleSheet{
		ComponentName:     deriveComponentName(cssText),
		Rules:             rules,
		ResponsiveRules:   extractMediaBlocks(cssText),
		Animations:        extractKeyframes(cssText),
		CustomProperties:  extractCustomProperties(cssText),
		LayoutType:        detectLayoutType(rules),
		DesignTokens:      extractDesignTokens(rules),
		InferredStructure: inferStructure(rules),
	}
}

// detectLayoutType scans all declarations in order. The first flex or
// grid display wins outright; position: absolute only counts when no
// flex/grid display exists anywhere; otherwise the sheet is static.
func detectLayoutType(rules []StyleRule) LayoutType {
	sawAbsolute := false

	for _, rule := range rules {
		for _, d := range rule.Declarations {
			if d.Property == "display" {
				switch d.Value {
				case "flex", "inline-flex":
					return LayoutFlexbox
				case "grid", "inline-grid":
					return LayoutGrid
				}
			}
			if d.Property == "position" && d.Value == "absolute" {
				sawAbsolute = true
			}
		}
	}

	if sawAbsolute {
		return LayoutAbsolute
	}
	return LayoutStatic
}

// extractDesignTokens harvests color, surface, radius, and type values
// for display and export. Keys carry the global declaration index so
// repeated properties never collide; values are not deduplicated.
func extractDesignTokens(rules []StyleRule) map[string]string {
	tokens := make(map[string]string)

	idx := 0
	for _, rule := range rules {
		for _, d := range rule.Declarations {
			if tokenProperties[d.Property] && d.Value != "" {
				tokens[fmt.Sprintf("%s-%d", d.Property, idx)] = d.Value
			}
			idx++
		}
	}

	return tokens
}
