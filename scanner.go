package figmagen

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isGeneratedArtifact reports whether a path is a stylesheet figmagen
// itself emitted. Re-transpiling our own output would loop when source
// and output directories overlap.
func isGeneratedArtifact(path string) bool {
	return strings.HasSuffix(path, ".gen.css")
}

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning.
//
// Two-layer filtering:
//  1. Pattern check (fast): skip *.gen.css artifacts
//  2. Gitignore check: skip gitignored files (relative paths only)
func shouldSkipFile(path string) bool {
	if isGeneratedArtifact(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are outside the project and not
	// subject to its gitignore.
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// scanCSSFiles finds all CSS files matching the include patterns under
// sourceDir, deduplicated, with generated artifacts and gitignored files
// filtered out.
func scanCSSFiles(sourceDir string, includes []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range includes {
		fullPattern := filepath.Join(sourceDir, pattern)

		matches, err := doublestar.FilepathGlob(fullPattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}

			stats.FilesDiscovered++
			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}

			files = append(files, match)
			seen[match] = true
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}
