package figmagen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanCSSFiles(t *testing.T) {
	srcDir := t.TempDir()
	writeSourceFile(t, srcDir, "one.css", ".a {}")
	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "nested"), 0o755))
	writeSourceFile(t, srcDir, filepath.Join("nested", "two.css"), ".b {}")
	writeSourceFile(t, srcDir, "old.gen.css", ".c {}")
	writeSourceFile(t, srcDir, "readme.txt", "not css")

	files, stats, err := scanCSSFiles(srcDir, []string{"**/*.css"})
	require.NoError(t, err)

	assert.Len(t, files, 2)
	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)
}

func TestScanCSSFilesDeduplicates(t *testing.T) {
	srcDir := t.TempDir()
	writeSourceFile(t, srcDir, "one.css", ".a {}")

	files, stats, err := scanCSSFiles(srcDir, []string{"**/*.css", "*.css"})
	require.NoError(t, err)

	assert.Len(t, files, 1)
	assert.Equal(t, 1, stats.FilesScanned)
}

func TestScanCSSFilesBadPattern(t *testing.T) {
	_, _, err := scanCSSFiles(t.TempDir(), []string{"["})
	require.Error(t, err)
}

func TestIsGeneratedArtifact(t *testing.T) {
	assert.True(t, isGeneratedArtifact("out/Button.gen.css"))
	assert.False(t, isGeneratedArtifact("design/button.css"))
	assert.False(t, isGeneratedArtifact("design/button.gen.css.bak"))
}
