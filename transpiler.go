package figmagen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ArtifactWriter receives generated artifacts. The default writes to the
// output directory; callers with their own persistence (a project store,
// a job record) can substitute it.
type ArtifactWriter interface {
	WriteArtifact(name string, data []byte) error
}

// fsArtifactWriter writes artifacts under a root directory.
type fsArtifactWriter struct {
	dir string
}

func (w *fsArtifactWriter) WriteArtifact(name string, data []byte) error {
	path := filepath.Join(w.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	// #nosec G306 - generated source files, world-readable on purpose
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// Transpile is the batch entry point: scan CSS exports, transpile each,
// and write the component artifacts to the output directory.
func Transpile(config Config) (*TranspileResult, error) {
	files, stats, err := scanCSSFiles(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Found %d CSS files (%d skipped)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	writer := &fsArtifactWriter{dir: config.OutputDir}
	return TranspileFiles(files, writer, config)
}

// TranspileFiles transpiles the given files through an explicit writer.
// Unreadable files and write failures become warnings, not errors; one
// bad export must not sink a batch.
func TranspileFiles(files []string, writer ArtifactWriter, config Config) (*TranspileResult, error) {
	result := &TranspileResult{FilesScanned: len(files)}

	ext := config.Format
	if ext == "" {
		ext = "tsx"
	}

	seenNames := make(map[string]string)
	for _, file := range files {
		if config.Verbose {
			fmt.Printf("Transpiling %s\n", file)
		}

		// #nosec G304 - path comes from the configured source glob
		content, err := os.ReadFile(file)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to read %s: %v", file, err))
			continue
		}

		parsed := Parse(string(content))
		code := Generate(parsed)

		name := parsed.ComponentName
		if prev, dup := seenNames[name]; dup {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"Duplicate component name %q from %s and %s - later output wins",
				name, prev, file,
			))
		}
		seenNames[name] = file

		artifacts := map[string][]byte{
			name + "." + ext:       []byte(code.JSX),
			name + ".tailwind.txt": []byte(code.TailwindClasses + "\n"),
		}
		if config.EmitCSS {
			artifacts[name+".gen.css"] = []byte(code.CSS)
		}
		if config.EmitHTML {
			artifacts[name+".html"] = []byte(code.HTML)
		}

		if err := writeArtifacts(writer, artifacts); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to write %s: %v", name, err))
			continue
		}

		result.ComponentsGenerated++
		result.RulesParsed += len(parsed.Rules)
		result.AnimationsFound += len(parsed.Animations)
	}

	return result, nil
}

// writeArtifacts writes a component's artifacts in a fixed name order so
// failures are deterministic.
func writeArtifacts(writer ArtifactWriter, artifacts map[string][]byte) error {
	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writer.WriteArtifact(name, artifacts[name]); err != nil {
			return err
		}
	}
	return nil
}
