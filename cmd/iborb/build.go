package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/uysalibov/ibORB/internal/diagfmt"
	"github.com/uysalibov/ibORB/internal/emitter"
	"github.com/uysalibov/ibORB/internal/pipeline"
	"github.com/uysalibov/ibORB/internal/preprocess"
	"github.com/uysalibov/ibORB/internal/project"
	"github.com/uysalibov/ibORB/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [directory]",
	Short: "Compile every IDL file under a directory (or an iborb.toml project)",
	Long:  `Build discovers *.idl files under a directory and compiles them concurrently. If an iborb.toml manifest is found, the build walks every *.idl file under the manifest's directory and takes its output and compiler settings from it; the manifest's sources globs, include paths and defines are not applied.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().Int("jobs", 0, "max parallel workers (0 = auto)")
	buildCmd.Flags().Bool("progress", false, "show a live progress display")
	buildCmd.Flags().Bool("preprocess", false, "run each input through the system C preprocessor first")
}

func runBuild(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	showProgress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return err
	}
	runPreprocess, err := cmd.Flags().GetBool("preprocess")
	if err != nil {
		return err
	}

	cfg := emitter.DefaultConfig()
	outDir := "generated"

	manifest, found, err := project.Load(dir)
	if err != nil {
		return err
	}
	if found {
		dir = manifest.Root
		outDir = manifest.Config.Output.Dir
		cfg.HeaderExtension = manifest.Config.Output.HeaderExtension
		cfg.SourceExtension = manifest.Config.Output.SourceExtension
		cfg.GenerateImplementation = manifest.Config.Output.GenerateImplementation
		cfg.NamespacePrefix = manifest.Config.Compiler.NamespacePrefix
		runPreprocess = runPreprocess || manifest.Config.Compiler.Preprocess
	}

	opts := pipeline.BuildDirOptions{
		Options: pipeline.Options{
			Preprocess:    runPreprocess,
			Preprocessor:  preprocess.New(),
			EmitterConfig: cfg,
		},
		Jobs:       jobs,
		OutputDir:  outDir,
		WriteFiles: true,
	}

	ctx := context.Background()

	if showProgress {
		return runBuildWithProgress(ctx, dir, opts)
	}
	return runBuildPlain(ctx, dir, opts)
}

func runBuildPlain(ctx context.Context, dir string, opts pipeline.BuildDirOptions) error {
	results, err := pipeline.BuildDir(ctx, dir, opts)
	if err != nil {
		return err
	}

	failed := false
	for _, r := range results {
		if r.Diagnostics != nil && r.Diagnostics.Len() > 0 {
			r.Diagnostics.Sort()
			fmt.Fprintf(os.Stderr, "== %s ==\n", r.Path)
			diagfmt.Pretty(os.Stderr, r.Diagnostics, diagfmt.PrettyOpts{Context: 1})
		}
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			failed = true
		}
		if r.Diagnostics != nil && r.Diagnostics.HasErrors() {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("build failed")
	}
	fmt.Printf("compiled %d file(s)\n", len(results))
	return nil
}

func runBuildWithProgress(ctx context.Context, dir string, opts pipeline.BuildDirOptions) error {
	files, err := pipeline.ListIDLFiles(dir)
	if err != nil {
		return err
	}

	events := make(chan pipeline.Event, len(files)*4+1)
	opts.Progress = events

	var buildErr error
	var results []pipeline.DirResult
	done := make(chan struct{})
	go func() {
		defer close(done)
		results, buildErr = pipeline.BuildDir(ctx, dir, opts)
	}()

	model := ui.NewProgressModel("iborb build", files, events)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return err
	}
	<-done
	if buildErr != nil {
		return buildErr
	}

	failed := false
	for _, r := range results {
		if r.Err != nil || (r.Diagnostics != nil && r.Diagnostics.HasErrors()) {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("build failed")
	}
	return nil
}
