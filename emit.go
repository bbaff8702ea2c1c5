package figmagen

import (
	"fmt"
	"strings"
)

// Generate renders all four artifacts from a parsed sheet. It is a pure
// function: identical input yields byte-identical output.
func Generate(parsed *ParsedStyleSheet) GeneratedComponentCode {
	tailwind, customStyles := TranslateTailwind(parsed.Rules)

	return GeneratedComponentCode{
		JSX:             emitJSX(parsed, tailwind, customStyles),
		CSS:             emitCSS(parsed),
		HTML:            emitHTML(parsed),
		TailwindClasses: tailwind,
	}
}

// emitJSX renders the React component source. The inner structure uses
// its own label heuristic, separate from the HTML structure inferrer:
// the two can disagree, and that divergence is kept on purpose (see
// DESIGN.md).
func emitJSX(parsed *ParsedStyleSheet, tailwind string, customStyles []string) string {
	name := parsed.ComponentName

	var b strings.Builder
	b.WriteString("import React from 'react';\n\n")

	if len(customStyles) > 0 {
		b.WriteString("// Declarations with no Tailwind equivalent, kept as inline styles.\n")
		b.WriteString("const customStyles: React.CSSProperties = {\n")
		for _, style := range customStyles {
			prop, value, ok := strings.Cut(style, ": ")
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "  %s: '%s',\n", cssPropertyToCamel(prop), value)
		}
		b.WriteString("};\n\n")
	}

	fmt.Fprintf(&b, "export interface %sProps {\n", name)
	b.WriteString("  className?: string;\n")
	b.WriteString("  children?: React.ReactNode;\n")
	b.WriteString("  text?: string;\n")
	b.WriteString("  variant?: 'primary' | 'secondary' | 'ghost';\n")
	b.WriteString("  size?: 'sm' | 'md' | 'lg';\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "export const %s: React.FC<%sProps> = ({\n", name, name)
	b.WriteString("  className = '',\n")
	b.WriteString("  children,\n")
	b.WriteString("  text,\n")
	b.WriteString("  variant = 'primary',\n")
	b.WriteString("  size = 'md',\n")
	b.WriteString("}) => {\n")
	b.WriteString("  return (\n")

	styleAttr := ""
	if len(customStyles) > 0 {
		styleAttr = " style={customStyles}"
	}
	fmt.Fprintf(&b, "    <div className={`%s ${className}`}%s>\n", tailwind, styleAttr)
	b.WriteString(emitJSXInner(parsed))
	b.WriteString("    </div>\n")
	b.WriteString("  );\n")
	b.WriteString("};\n\n")
	fmt.Fprintf(&b, "export default %s;\n", name)

	return b.String()
}

// emitJSXInner guesses the component's inner markup from the Figma
// labels on its rules. Button- and frame-like components get a label
// span and a checkmark icon; everything else passes children through.
func emitJSXInner(parsed *ParsedStyleSheet) string {
	if hasFigmaRole(parsed.Rules, "button") || hasFigmaRole(parsed.Rules, "frame") {
		var b strings.Builder
		b.WriteString("      <div className=\"figma-inner\">\n")
		b.WriteString("        {text && <span>{text}</span>}\n")
		b.WriteString("        <svg width=\"16\" height=\"16\" viewBox=\"0 0 16 16\" fill=\"none\" xmlns=\"http://www.w3.org/2000/svg\">\n")
		b.WriteString("          <path d=\"M3 8.5L6.5 12L13 4.5\" stroke=\"currentColor\" strokeWidth=\"2\" strokeLinecap=\"round\" strokeLinejoin=\"round\" />\n")
		b.WriteString("        </svg>\n")
		b.WriteString("      </div>\n")
		return b.String()
	}

	return "      {children}\n"
}

// hasFigmaRole reports whether any comment-derived rule's label contains
// the given role word, case-insensitively.
func hasFigmaRole(rules []StyleRule, role string) bool {
	for _, rule := range rules {
		if rule.FigmaComponentName == "" {
			continue
		}
		if strings.Contains(strings.ToLower(rule.FigmaComponentName), role) {
			return true
		}
	}
	return false
}

// emitCSS reassembles the stylesheet: a :root block for custom
// properties when any exist, every rule in discovery order, then the raw
// responsive and animation spans verbatim. No minification, no
// deduplication.
func emitCSS(parsed *ParsedStyleSheet) string {
	var sections []string

	if len(parsed.CustomProperties) > 0 {
		var b strings.Builder
		b.WriteString(":root {\n")
		for _, prop := range parsed.CustomProperties {
			fmt.Fprintf(&b, "  --%s: %s;\n", prop.Name, prop.Value)
		}
		b.WriteString("}")
		sections = append(sections, b.String())
	}

	for _, rule := range parsed.Rules {
		var b strings.Builder
		fmt.Fprintf(&b, "%s {\n", rule.Selector)
		for _, d := range rule.Declarations {
			fmt.Fprintf(&b, "  %s: %s;\n", d.Property, d.Value)
		}
		b.WriteString("}")
		sections = append(sections, b.String())
	}

	for _, media := range parsed.ResponsiveRules {
		sections = append(sections, media)
	}
	for _, anim := range parsed.Animations {
		sections = append(sections, anim.Definition)
	}

	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// emitHTML renders a minimal standalone document around the inferred
// structure, one line per guess annotated with its source selector. With
// nothing inferred it falls back to a fixed placeholder.
func emitHTML(parsed *ParsedStyleSheet) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("  <meta charset=\"UTF-8\" />\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\" />\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", parsed.ComponentName)
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")

	if len(parsed.InferredStructure) == 0 {
		b.WriteString("  <div class=\"figma-content\">...</div>\n")
	} else {
		for _, guess := range parsed.InferredStructure {
			tag := inferElementTag(guess.Selector)
			class := extractClassName(guess.Selector)
			fmt.Fprintf(&b, "  <%s class=\"%s\"></%s> <!-- %s -->\n", tag, class, tag, guess.Selector)
		}
	}

	b.WriteString("</body>\n")
	b.WriteString("</html>\n")

	return b.String()
}

// cssPropertyToCamel converts a CSS property name to its JS style-object
// form: "background-color" becomes "backgroundColor".
func cssPropertyToCamel(property string) string {
	parts := strings.Split(property, "-")
	for i := 1; i < len(parts); i++ {
		if len(parts[i]) > 0 {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
