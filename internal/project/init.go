package project

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultManifestTemplate = `[package]
name = %q
version = "0.1.0"

[compiler]
sources = ["*.idl"]
include_paths = []
defines = []
preprocess = false
namespace_prefix = ""

[output]
dir = "generated"
header_extension = ".hpp"
source_extension = ".cpp"
generate_implementation = true
`

// WriteDefault writes a starter iborb.toml under dir, named packageName, or
// filepath.Base(dir) when packageName is empty. Fails if a manifest already
// exists there.
func WriteDefault(dir, packageName string) (string, error) {
	if packageName == "" {
		packageName = filepath.Base(dir)
	}
	path := filepath.Join(dir, ManifestFile)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}
	content := fmt.Sprintf(defaultManifestTemplate, packageName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
