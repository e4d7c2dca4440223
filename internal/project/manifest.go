// Package project locates and parses iborb.toml, the manifest that lets a
// directory of IDL files be compiled as a unit instead of one file at a
// time on the command line.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestFile is the name of the manifest iborb looks for.
const ManifestFile = "iborb.toml"

// Manifest is a parsed iborb.toml plus the filesystem location it was
// found at.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config is the decoded TOML document.
type Config struct {
	Package  PackageConfig  `toml:"package"`
	Compiler CompilerConfig `toml:"compiler"`
	Output   OutputConfig   `toml:"output"`
}

// PackageConfig names the module being generated.
type PackageConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// CompilerConfig controls preprocessing and namespace mapping.
type CompilerConfig struct {
	Sources       []string `toml:"sources"`
	IncludePaths  []string `toml:"include_paths"`
	Defines       []string `toml:"defines"`
	Preprocess    bool     `toml:"preprocess"`
	NamespacePrefix string `toml:"namespace_prefix"`
}

// OutputConfig controls the emitted C++.
type OutputConfig struct {
	Dir                    string `toml:"dir"`
	HeaderExtension        string `toml:"header_extension"`
	SourceExtension        string `toml:"source_extension"`
	GenerateImplementation bool   `toml:"generate_implementation"`
}

// Find walks up from startDir looking for iborb.toml, the way `go.mod`
// resolution walks up a tree. Returns ok=false, err=nil if no manifest is
// found before the filesystem root.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestFile)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the manifest starting from startDir.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("compiler") || len(cfg.Compiler.Sources) == 0 {
		return Config{}, fmt.Errorf("%s: [compiler].sources must list at least one IDL file or glob", path)
	}
	if cfg.Output.HeaderExtension == "" {
		cfg.Output.HeaderExtension = ".hpp"
	}
	if cfg.Output.SourceExtension == "" {
		cfg.Output.SourceExtension = ".cpp"
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "generated"
	}
	return cfg, nil
}

// ResolveSources expands m.Config.Compiler.Sources (plain paths or globs,
// relative to m.Root) into absolute file paths.
func (m *Manifest) ResolveSources() ([]string, error) {
	var out []string
	for _, pattern := range m.Config.Compiler.Sources {
		abs := pattern
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(m.Root, pattern)
		}
		matches, err := filepath.Glob(abs)
		if err != nil {
			return nil, fmt.Errorf("%s: bad source pattern %q: %w", m.Path, pattern, err)
		}
		if matches == nil {
			return nil, fmt.Errorf("%s: source pattern %q matched no files", m.Path, pattern)
		}
		out = append(out, matches...)
	}
	return out, nil
}
