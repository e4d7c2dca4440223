// Package pipeline wires lexer, parser, and emitter into a single
// compile-a-file operation, and fans that operation out across a
// directory of IDL sources.
package pipeline

import (
	"context"
	"os"

	"github.com/uysalibov/ibORB/internal/diag"
	"github.com/uysalibov/ibORB/internal/emitter"
	"github.com/uysalibov/ibORB/internal/idlast"
	"github.com/uysalibov/ibORB/internal/lexer"
	"github.com/uysalibov/ibORB/internal/parser"
	"github.com/uysalibov/ibORB/internal/preprocess"
	"github.com/uysalibov/ibORB/internal/symtab"
)

// Options configures a single-file compile.
type Options struct {
	Preprocess      bool
	Preprocessor    *preprocess.Preprocessor
	EmitterConfig   emitter.Config
}

// Result is the outcome of compiling one IDL file.
type Result struct {
	Path       string
	Unit       *idlast.TranslationUnit
	Symbols    *symtab.Table
	Diagnostics *diag.Bag
	Generated  emitter.Result
}

// CompileFile reads path, optionally preprocesses it, parses it, and
// (if there are no errors) generates C++ from the result.
func CompileFile(path string, opts Options) (Result, error) {
	result := Result{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		return result, err
	}
	source := string(content)

	if opts.Preprocess {
		pp := opts.Preprocessor
		if pp == nil {
			pp = preprocess.New()
		}
		if pp.IsAvailable() {
			ppResult, ppErr := pp.PreprocessFile(context.Background(), path)
			if ppErr == nil && ppResult.Success {
				source = ppResult.Output
			}
			// A preprocessor failure or absence falls back to the raw
			// file contents rather than aborting the compile — #include
			// and #define support is a convenience, not a requirement.
		}
	}

	lx := lexer.New(source, path)
	p := parser.New(lx)
	unit := p.Parse()
	unit.Filename = path

	bag := diag.NewBag()
	bag.Merge(p.Diagnostics())
	bag.Sort()

	result.Unit = unit
	result.Symbols = p.Symbols()
	result.Diagnostics = bag

	if bag.HasErrors() {
		return result, nil
	}

	gen := emitter.New(opts.EmitterConfig)
	result.Generated = gen.Generate(unit)
	return result, nil
}
