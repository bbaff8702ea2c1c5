package figmagen

// DefaultComponentName is used when no usable name can be derived from
// the input.
const DefaultComponentName = "FigmaComponent"

// LayoutType classifies the dominant layout model of a parsed sheet.
type LayoutType string

// Layout types, from most to least specific.
const (
	LayoutFlexbox  LayoutType = "flexbox"
	LayoutGrid     LayoutType = "grid"
	LayoutAbsolute LayoutType = "absolute"
	LayoutStatic   LayoutType = "static"
)

// Declaration is a single property: value pair. Duplicates within a rule
// are retained in source order; resolution is left to code generation.
type Declaration struct {
	Property string
	Value    string
}

// StyleRule is one selector with its declarations. Comment-derived blocks
// carry the original Figma label in FigmaComponentName and a synthesized
// kebab-case selector; rules found via real selectors leave it empty.
type StyleRule struct {
	Selector           string
	Declarations       []Declaration
	FigmaComponentName string
}

// Animation is a @keyframes block captured verbatim.
type Animation struct {
	Name       string
	Definition string
}

// CustomProperty is a CSS variable declaration. Name excludes the
// leading "--".
type CustomProperty struct {
	Name  string
	Value string
}

// ElementGuess is one inferred HTML element, derived from a selector.
// Depth counts whitespace-separated selector segments; Elements holds
// those segments in order.
type ElementGuess struct {
	Selector string
	Depth    int
	Elements []string
}

// ParsedStyleSheet is the intermediate representation produced by Parse
// and consumed by all emitters. It is constructed once per input and not
// mutated afterwards.
type ParsedStyleSheet struct {
	ComponentName     string
	Rules             []StyleRule
	ResponsiveRules   []string
	Animations        []Animation
	CustomProperties  []CustomProperty
	LayoutType        LayoutType
	DesignTokens      map[string]string
	InferredStructure []ElementGuess
}

// GeneratedComponentCode holds the four rendered artifacts. Each is an
// independent, deterministic function of the ParsedStyleSheet.
type GeneratedComponentCode struct {
	JSX             string
	CSS             string
	HTML            string
	TailwindClasses string
}

// Config holds batch transpiler configuration.
type Config struct {
	SourceDir string   // Directory containing Figma CSS exports
	OutputDir string   // Output directory for generated component files
	Includes  []string // Glob patterns relative to SourceDir
	Format    string   // Component extension: "tsx" (default) or "jsx"
	EmitCSS   bool     // Write the reassembled stylesheet
	EmitHTML  bool     // Write the standalone HTML preview
	Verbose   bool     // Enable progress logging
}

// TranspileResult contains batch transpilation stats.
type TranspileResult struct {
	FilesScanned        int
	ComponentsGenerated int
	RulesParsed         int
	AnimationsFound     int
	Warnings            []string
}

// OutputFormat represents the inspect report format.
type OutputFormat string

const (
	// OutputText shows the full styled report (interactive development).
	OutputText OutputFormat = "text"
	// OutputSummary shows counts only (scripting, quick checks).
	OutputSummary OutputFormat = "summary"
	// OutputJSON exports structured data for tooling integration.
	OutputJSON OutputFormat = "json"
)
