package figmagen

import (
	"encoding/json"
	"io"
)

// JSONReport is the structured export schema for inspect results.
type JSONReport struct {
	Version         string            `json:"version"`
	Component       string            `json:"component"`
	LayoutType      string            `json:"layout_type"`
	Stats           JSONStats         `json:"stats"`
	TailwindClasses string            `json:"tailwind_classes"`
	CustomStyles    []string          `json:"custom_styles"`
	DesignTokens    map[string]string `json:"design_tokens"`
	Rules           []JSONRule        `json:"rules"`
	Structure       []JSONElement     `json:"structure"`
}

// JSONStats contains parse counts.
type JSONStats struct {
	Rules            int `json:"rules"`
	Declarations     int `json:"declarations"`
	Animations       int `json:"animations"`
	ResponsiveRules  int `json:"responsive_rules"`
	CustomProperties int `json:"custom_properties"`
}

// JSONRule is one parsed rule.
type JSONRule struct {
	Selector     string `json:"selector"`
	FigmaName    string `json:"figma_name,omitempty"`
	Declarations int    `json:"declarations"`
}

// JSONElement is one inferred structure element.
type JSONElement struct {
	Selector string `json:"selector"`
	Depth    int    `json:"depth"`
	Tag      string `json:"tag"`
	Class    string `json:"class"`
}

// WriteJSONReport writes the parse/generate result as indented JSON.
func WriteJSONReport(w io.Writer, parsed *ParsedStyleSheet, code GeneratedComponentCode) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONReport(parsed, code))
}

func buildJSONReport(parsed *ParsedStyleSheet, code GeneratedComponentCode) JSONReport {
	declarations := 0
	rules := make([]JSONRule, len(parsed.Rules))
	for i, rule := range parsed.Rules {
		declarations += len(rule.Declarations)
		rules[i] = JSONRule{
			Selector:     rule.Selector,
			FigmaName:    rule.FigmaComponentName,
			Declarations: len(rule.Declarations),
		}
	}

	structure := make([]JSONElement, len(parsed.InferredStructure))
	for i, guess := range parsed.InferredStructure {
		structure[i] = JSONElement{
			Selector: guess.Selector,
			Depth:    guess.Depth,
			Tag:      inferElementTag(guess.Selector),
			Class:    extractClassName(guess.Selector),
		}
	}

	_, customStyles := TranslateTailwind(parsed.Rules)

	return JSONReport{
		Version:         "1.0",
		Component:       parsed.ComponentName,
		LayoutType:      string(parsed.LayoutType),
		Stats: JSONStats{
			Rules:            len(parsed.Rules),
			Declarations:     declarations,
			Animations:       len(parsed.Animations),
			ResponsiveRules:  len(parsed.ResponsiveRules),
			CustomProperties: len(parsed.CustomProperties),
		},
		TailwindClasses: code.TailwindClasses,
		CustomStyles:    customStyles,
		DesignTokens:    parsed.DesignTokens,
		Rules:           rules,
		Structure:       structure,
	}
}
