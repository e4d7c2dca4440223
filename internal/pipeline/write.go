package pipeline

import (
	"os"
	"path/filepath"

	"github.com/uysalibov/ibORB/internal/emitter"
)

// writeGenerated writes res's header (and source, if generated) under
// outDir, creating the directory if needed.
func writeGenerated(outDir string, res emitter.Result) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	headerPath := filepath.Join(outDir, res.HeaderName)
	if err := os.WriteFile(headerPath, []byte(res.HeaderContent), 0o644); err != nil {
		return err
	}
	if res.SourceName != "" {
		sourcePath := filepath.Join(outDir, res.SourceName)
		if err := os.WriteFile(sourcePath, []byte(res.SourceContent), 0o644); err != nil {
			return err
		}
	}
	return nil
}
