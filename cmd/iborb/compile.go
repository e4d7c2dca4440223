package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/uysalibov/ibORB/internal/diagfmt"
	"github.com/uysalibov/ibORB/internal/emitter"
	"github.com/uysalibov/ibORB/internal/pipeline"
	"github.com/uysalibov/ibORB/internal/preprocess"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] file.idl",
	Short: "Compile a single IDL file to C++11",
	Long:  `Compile parses one IDL file and writes the generated C++11 header (and source) alongside it, or to -out-dir if given.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().String("out-dir", "", "directory to write generated files into (default: alongside the input)")
	compileCmd.Flags().Bool("preprocess", false, "run the input through the system C preprocessor first")
	compileCmd.Flags().String("namespace-prefix", "", "prefix for generated include guards")
	compileCmd.Flags().Bool("no-impl", false, "only emit the header, not a .cpp source file")
	compileCmd.Flags().String("format", "pretty", "diagnostics output format (pretty|json)")
}

func runCompile(cmd *cobra.Command, args []string) error {
	path := args[0]

	outDir, err := cmd.Flags().GetString("out-dir")
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = filepath.Dir(path)
	}

	runPreprocess, err := cmd.Flags().GetBool("preprocess")
	if err != nil {
		return err
	}
	nsPrefix, err := cmd.Flags().GetString("namespace-prefix")
	if err != nil {
		return err
	}
	noImpl, err := cmd.Flags().GetBool("no-impl")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	cfg := emitter.DefaultConfig()
	cfg.NamespacePrefix = nsPrefix
	cfg.GenerateImplementation = !noImpl

	opts := pipeline.Options{
		Preprocess:    runPreprocess,
		Preprocessor:  preprocess.New(),
		EmitterConfig: cfg,
	}

	result, err := pipeline.CompileFile(path, opts)
	if err != nil {
		return fmt.Errorf("failed to compile %s: %w", path, err)
	}

	if result.Diagnostics.Len() > 0 {
		result.Diagnostics.Sort()
		switch format {
		case "json":
			if err := diagfmt.JSON(os.Stderr, result.Diagnostics, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
				return err
			}
		default:
			diagfmt.Pretty(os.Stderr, result.Diagnostics, diagfmt.PrettyOpts{
				Color:   colorEnabled(cmd, os.Stderr),
				Context: 1,
			})
		}
	}

	if result.Diagnostics.HasErrors() {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	headerPath := outDir + string(os.PathSeparator) + result.Generated.HeaderName
	if err := os.WriteFile(headerPath, []byte(result.Generated.HeaderContent), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", headerPath, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), headerPath)

	if result.Generated.SourceName != "" {
		sourcePath := outDir + string(os.PathSeparator) + result.Generated.SourceName
		if err := os.WriteFile(sourcePath, []byte(result.Generated.SourceContent), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", sourcePath, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), sourcePath)
	}

	return nil
}
