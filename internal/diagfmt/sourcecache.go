package diagfmt

import (
	"os"
	"path/filepath"
	"strings"
)

// lineCache lazily loads and caches source files by path, so Pretty can
// quote the offending line without every caller threading file contents
// through the diag.Bag itself.
type lineCache struct {
	files map[string][]string
}

func newLineCache() *lineCache {
	return &lineCache{files: make(map[string][]string)}
}

// line returns the 1-indexed line n of path, or "" if the file can't be
// read or n is out of range. Diagnostics from stdin or synthetic sources
// simply get no context line, matching a best-effort pretty printer.
func (c *lineCache) line(path string, n int) string {
	lines, ok := c.files[path]
	if !ok {
		lines = readLines(path)
		c.files[path] = lines
	}
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

func readLines(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return strings.Split(string(data), "\n")
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	default:
		return path
	}
}
