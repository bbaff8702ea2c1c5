package figmagen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memArtifactWriter struct {
	artifacts map[string][]byte
	failOn    string
}

func newMemArtifactWriter() *memArtifactWriter {
	return &memArtifactWriter{artifacts: make(map[string][]byte)}
}

func (w *memArtifactWriter) WriteArtifact(name string, data []byte) error {
	if w.failOn != "" && name == w.failOn {
		return errors.New("disk full")
	}
	w.artifacts[name] = data
	return nil
}

func writeSourceFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTranspileBatch(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()

	writeSourceFile(t, srcDir, "button.css", `/* button */
display: flex;
padding: 8px;
border-radius: 100px;`)
	writeSourceFile(t, srcDir, "card.css", `/* Profile Card */
display: grid;`)
	// A previous run's artifact must not be picked up as a source.
	writeSourceFile(t, srcDir, "Button.gen.css", ".button { display: flex; }")

	result, err := Transpile(Config{
		SourceDir: srcDir,
		OutputDir: outDir,
		Includes:  []string{"**/*.css"},
		Format:    "tsx",
		EmitCSS:   true,
		EmitHTML:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 2, result.ComponentsGenerated)
	assert.Empty(t, result.Warnings)

	for _, name := range []string{
		"Button.tsx", "Button.tailwind.txt", "Button.gen.css", "Button.html",
		"ProfileCard.tsx", "ProfileCard.tailwind.txt", "ProfileCard.gen.css", "ProfileCard.html",
	} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}

	classes, err := os.ReadFile(filepath.Join(outDir, "Button.tailwind.txt"))
	require.NoError(t, err)
	assert.Equal(t, "flex p-4 rounded-full\n", string(classes))
}

func TestTranspileFilesEmitFlags(t *testing.T) {
	srcDir := t.TempDir()
	file := writeSourceFile(t, srcDir, "badge.css", "/* Badge */ display: flex;")

	writer := newMemArtifactWriter()
	result, err := TranspileFiles([]string{file}, writer, Config{Format: "jsx"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.ComponentsGenerated)
	assert.Contains(t, writer.artifacts, "Badge.jsx")
	assert.Contains(t, writer.artifacts, "Badge.tailwind.txt")
	assert.NotContains(t, writer.artifacts, "Badge.gen.css")
	assert.NotContains(t, writer.artifacts, "Badge.html")
}

func TestTranspileFilesDuplicateNames(t *testing.T) {
	srcDir := t.TempDir()
	a := writeSourceFile(t, srcDir, "a.css", "/* button */ display: flex;")
	b := writeSourceFile(t, srcDir, "b.css", "/* Button */ display: grid;")

	writer := newMemArtifactWriter()
	result, err := TranspileFiles([]string{a, b}, writer, Config{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.ComponentsGenerated)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `Duplicate component name "Button"`)

	// Later output wins.
	assert.Contains(t, string(writer.artifacts["Button.tsx"]), "grid")
}

func TestTranspileFilesUnreadableFile(t *testing.T) {
	srcDir := t.TempDir()
	good := writeSourceFile(t, srcDir, "good.css", "/* Badge */ display: flex;")
	missing := filepath.Join(srcDir, "missing.css")

	writer := newMemArtifactWriter()
	result, err := TranspileFiles([]string{missing, good}, writer, Config{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 1, result.ComponentsGenerated)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Failed to read")
}

func TestTranspileFilesWriteFailure(t *testing.T) {
	srcDir := t.TempDir()
	file := writeSourceFile(t, srcDir, "badge.css", "/* Badge */ display: flex;")

	writer := newMemArtifactWriter()
	writer.failOn = "Badge.tsx"
	result, err := TranspileFiles([]string{file}, writer, Config{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.ComponentsGenerated)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Failed to write Badge")
}
