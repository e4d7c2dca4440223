// Package preprocess runs source text through the system C preprocessor
// before it reaches the lexer, giving IDL files #include and #define
// support for free.
package preprocess

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Result is the outcome of one preprocessing run.
type Result struct {
	Success bool
	Output  string
	Stderr  string
}

// Preprocessor wraps an auto-detected (or explicitly chosen) system C
// compiler invoked in preprocess-only mode (-E).
type Preprocessor struct {
	compilerPath string
	includePaths []string
	defines      []define
}

type define struct {
	name  string
	value string
}

// candidates lists compilers tried in order; the first one found on PATH
// wins. Unlike the CORBA-style preprocessor this is ported from, ibORB
// only targets Unix-like toolchains, so the Windows cl.exe fallback is
// dropped.
var candidates = []string{"cc", "gcc", "clang"}

// New auto-detects a system preprocessor, trying cc, then gcc, then clang.
func New() *Preprocessor {
	return &Preprocessor{compilerPath: detectCompiler()}
}

// NewWithCompiler builds a Preprocessor around an explicit compiler path,
// bypassing auto-detection.
func NewWithCompiler(path string) *Preprocessor {
	return &Preprocessor{compilerPath: path}
}

func detectCompiler() string {
	for _, c := range candidates {
		if _, err := exec.LookPath(c); err == nil {
			return c
		}
	}
	return ""
}

// AddIncludePath registers a -I search directory.
func (p *Preprocessor) AddIncludePath(path string) {
	p.includePaths = append(p.includePaths, path)
}

// AddDefine registers a -D macro definition. value may be empty for a
// flag-style macro (`-DNAME` with no `=value`).
func (p *Preprocessor) AddDefine(name, value string) {
	p.defines = append(p.defines, define{name: name, value: value})
}

// IsAvailable reports whether a usable compiler was found.
func (p *Preprocessor) IsAvailable() bool {
	if p.compilerPath == "" {
		return false
	}
	_, err := exec.LookPath(p.compilerPath)
	return err == nil
}

// CompilerPath returns the compiler this Preprocessor invokes.
func (p *Preprocessor) CompilerPath() string { return p.compilerPath }

func (p *Preprocessor) buildArgs(inputFile string) []string {
	args := []string{"-E", "-x", "c"}
	for _, inc := range p.includePaths {
		args = append(args, "-I"+inc)
	}
	for _, d := range p.defines {
		if d.value == "" {
			args = append(args, "-D"+d.name)
		} else {
			args = append(args, "-D"+d.name+"="+d.value)
		}
	}
	args = append(args, inputFile)
	return args
}

// PreprocessFile runs the preprocessor over an on-disk file.
func (p *Preprocessor) PreprocessFile(ctx context.Context, inputFile string) (Result, error) {
	if !p.IsAvailable() {
		return Result{}, fmt.Errorf("no suitable C preprocessor found (tried %s)", strings.Join(candidates, ", "))
	}
	if _, err := os.Stat(inputFile); err != nil {
		return Result{}, fmt.Errorf("input file not found: %s", inputFile)
	}
	return p.run(ctx, p.buildArgs(inputFile))
}

// PreprocessString preprocesses in-memory content by staging it to a
// temporary file first, emitting a leading #line directive so downstream
// diagnostics still report filename, not the temp path.
func (p *Preprocessor) PreprocessString(ctx context.Context, content, filename string) (Result, error) {
	if !p.IsAvailable() {
		return Result{}, fmt.Errorf("no suitable C preprocessor found (tried %s)", strings.Join(candidates, ", "))
	}
	if filename == "" {
		filename = "<stdin>"
	}

	tmp, err := os.CreateTemp("", "iborb-idl-*.idl")
	if err != nil {
		return Result{}, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	fmt.Fprintf(tmp, "#line 1 %q\n", filename)
	tmp.WriteString(content)
	if err := tmp.Close(); err != nil {
		return Result{}, fmt.Errorf("failed to write temporary file: %w", err)
	}

	return p.run(ctx, p.buildArgs(tmp.Name()))
}

func (p *Preprocessor) run(ctx context.Context, args []string) (Result, error) {
	cmd := exec.CommandContext(ctx, p.compilerPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Output: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		res.Success = false
		return res, fmt.Errorf("preprocessor failed: %w", err)
	}
	res.Success = true
	return res, nil
}
