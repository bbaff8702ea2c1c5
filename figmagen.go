// Package figmagen converts Figma-exported CSS into React component code.
//
// Figma's CSS export marks component boundaries with /* Name */ comments
// instead of real selectors. figmagen parses that convention (alongside
// conventional selector rules) into a ParsedStyleSheet, then emits a
// JSX/TSX component, reassembled CSS, a standalone HTML document, and a
// Tailwind utility-class string from it.
//
// # Core API
//
// Parse and generate a single export:
//
//	parsed := figmagen.Parse(cssText)
//	code := figmagen.Generate(parsed)
//	fmt.Println(code.JSX)
//
// Parse never fails: malformed input degrades to an empty sheet with the
// default component name. Generate is a pure function of its input.
//
// # Batch pipeline
//
// Transpile a directory of exports to component files:
//
//	config := figmagen.Config{
//		SourceDir: "design/exports",
//		OutputDir: "src/components",
//		Includes:  []string{"**/*.css"},
//	}
//	result, err := figmagen.Transpile(config)
//
// # CLI Tool
//
// figmagen also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/figmagen/cmd/figmagen@latest
package figmagen
