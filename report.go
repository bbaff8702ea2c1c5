package figmagen

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// DetermineOutputFormat selects the inspect report format from the flag
// value. Invalid or empty values fall back to the full text report;
// quiet mode collapses to the summary.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputSummary
	}

	switch formatFlag {
	case "text":
		return OutputText
	case "summary":
		return OutputSummary
	case "json":
		return OutputJSON
	}
	return OutputText
}

// Reporter formats a parse result for the terminal.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// ShouldUseColors determines if colored output should be enabled.
func ShouldUseColors(forceColor bool) bool {
	if forceColor {
		return true
	}

	// CI systems that support color announce themselves.
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// WriteReport writes the parse/generate result in the given format.
func WriteReport(w io.Writer, parsed *ParsedStyleSheet, code GeneratedComponentCode, format OutputFormat, useColors bool) error {
	switch format {
	case OutputJSON:
		return WriteJSONReport(w, parsed, code)
	case OutputSummary:
		r := NewReporter(w, useColors)
		r.printSummary(parsed)
		return nil
	default:
		r := NewReporter(w, useColors)
		r.printFull(parsed, code)
		return nil
	}
}

func (r *Reporter) printSummary(parsed *ParsedStyleSheet) {
	declarations := 0
	for _, rule := range parsed.Rules {
		declarations += len(rule.Declarations)
	}

	fmt.Fprintf(r.w, "%s: %d rules, %d declarations, %d animations, %d media blocks, %d tokens\n",
		RenderStyle(StyleHeader, parsed.ComponentName, r.useColors),
		len(parsed.Rules), declarations, len(parsed.Animations),
		len(parsed.ResponsiveRules), len(parsed.DesignTokens))
}

func (r *Reporter) printFull(parsed *ParsedStyleSheet, code GeneratedComponentCode) {
	fmt.Fprintf(r.w, "%s %s\n",
		RenderStyle(StyleHeader, "Component:", r.useColors), parsed.ComponentName)
	fmt.Fprintf(r.w, "%s %s\n",
		RenderStyle(StyleHeader, "Layout:", r.useColors), parsed.LayoutType)

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleHeader, "Rules", r.useColors))
	for _, rule := range parsed.Rules {
		label := ""
		if rule.FigmaComponentName != "" {
			label = fmt.Sprintf(" (from %q)", rule.FigmaComponentName)
		}
		fmt.Fprintf(r.w, "  %s%s: %d declarations\n",
			RenderStyle(StyleDim, rule.Selector, r.useColors), label, len(rule.Declarations))
	}

	if code.TailwindClasses != "" {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleHeader, "Tailwind classes", r.useColors))
		fmt.Fprintf(r.w, "  %s\n", RenderStyle(StyleGood, code.TailwindClasses, r.useColors))
	}

	if len(parsed.DesignTokens) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleHeader, "Design tokens", r.useColors))

		keys := make([]string, 0, len(parsed.DesignTokens))
		for key := range parsed.DesignTokens {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			fmt.Fprintf(r.w, "  %s: %s\n",
				RenderStyle(StyleDim, key, r.useColors), parsed.DesignTokens[key])
		}
	}

	if len(parsed.Animations) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleHeader, "Animations", r.useColors))
		for _, anim := range parsed.Animations {
			fmt.Fprintf(r.w, "  %s\n", anim.Name)
		}
	}

	if len(parsed.InferredStructure) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleHeader, "Inferred structure", r.useColors))
		for _, guess := range parsed.InferredStructure {
			fmt.Fprintf(r.w, "  <%s> depth %d  %s\n",
				inferElementTag(guess.Selector), guess.Depth,
				RenderStyle(StyleDim, guess.Selector, r.useColors))
		}
	}

	fmt.Fprintln(r.w, "")
	r.printSummary(parsed)
}
