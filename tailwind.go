package figmagen

import "strings"

// tailwindStatic maps exact "property: value" declarations to Tailwind
// utility classes. Declarations that miss this table fall through to the
// per-property heuristics in TranslateTailwind.
var tailwindStatic = map[string]string{
	// Display
	"display: flex":         "flex",
	"display: inline-flex":  "inline-flex",
	"display: grid":         "grid",
	"display: block":        "block",
	"display: inline-block": "inline-block",
	"display: none":         "hidden",

	// Flex direction
	"flex-direction: row":    "flex-row",
	"flex-direction: column": "flex-col",

	// Justify content
	"justify-content: center":        "justify-center",
	"justify-content: space-between": "justify-between",
	"justify-content: flex-start":    "justify-start",
	"justify-content: flex-end":      "justify-end",

	// Align items
	"align-items: center":     "items-center",
	"align-items: flex-start": "items-start",
	"align-items: flex-end":   "items-end",
	"align-items: stretch":    "items-stretch",

	// Text alignment
	"text-align: center": "text-center",
	"text-align: left":   "text-left",
	"text-align: right":  "text-right",

	// Font weight
	"font-weight: bold": "font-bold",
	"font-weight: 700":  "font-bold",
	"font-weight: 600":  "font-semibold",
	"font-weight: 500":  "font-medium",
	"font-weight: 400":  "font-normal",

	// Position
	"position: absolute": "absolute",
	"position: relative": "relative",
	"position: fixed":    "fixed",

	// Overflow
	"overflow: hidden": "overflow-hidden",
	"overflow: auto":   "overflow-auto",

	// Misc
	"border-radius: 50%":      "rounded-full",
	"cursor: pointer":         "cursor-pointer",
	"box-sizing: border-box":  "box-border",
	"box-sizing: content-box": "box-content",
	"isolation: isolate":      "isolate",
}

// TranslateTailwind maps the declarations of all rules, in order, onto
// Tailwind utility classes. Declarations that hit neither the static
// table nor a heuristic and are not size/surface properties produce no
// output at all; that silence is the contract.
//
// Repeated declarations repeat their class in the output: no
// deduplication happens here, the class string is a literal trace of the
// input.
func TranslateTailwind(rules []StyleRule) (mainClasses string, customStyles []string) {
	var classes strings.Builder

	for _, rule := range rules {
		for _, d := range rule.Declarations {
			if class, ok := tailwindStatic[d.Property+": "+d.Value]; ok {
				classes.WriteString(class + " ")
				continue
			}

			switch d.Property {
			case "border-radius":
				if d.Value == "100px" || d.Value == "90px" {
					classes.WriteString("rounded-full ")
				} else {
					classes.WriteString("rounded-lg ")
				}

			case "padding":
				// Three- and four-value shorthands are unhandled.
				switch len(strings.Fields(d.Value)) {
				case 1:
					classes.WriteString("p-4 ")
				case 2:
					classes.WriteString("py-3 px-6 ")
				}

			case "gap":
				switch d.Value {
				case "10px":
					classes.WriteString("gap-2.5 ")
				case "8px":
					classes.WriteString("gap-2 ")
				}

			case "background":
				value := d.Value
				property := "background"
				if strings.HasPrefix(value, "#") {
					property = "background-color"
				}
				customStyles = append(customStyles, property+": "+value)

			case "width", "height", "box-shadow", "backdrop-filter":
				customStyles = append(customStyles, d.Property+": "+d.Value)
			}
		}
	}

	return strings.TrimSpace(classes.String()), customStyles
}
