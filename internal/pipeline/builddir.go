package pipeline

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DirResult is one file's outcome within a BuildDir run.
type DirResult struct {
	Result
	Err error
}

// BuildDirOptions configures a directory-wide compile.
type BuildDirOptions struct {
	Options
	Jobs       int // 0 = runtime.NumCPU()
	OutputDir  string
	WriteFiles bool
	// Progress, if non-nil, receives an Event at each stage transition
	// for each file. BuildDir closes it once every file has reported a
	// terminal (done or error) status.
	Progress chan<- Event
}

// BuildDir compiles every *.idl file under dir concurrently, bounded by
// Jobs (or runtime.NumCPU() when unset), and optionally writes each
// file's generated header/source under OutputDir. Results are returned in
// the same sorted order the files were discovered in, regardless of which
// goroutine finished first.
func BuildDir(ctx context.Context, dir string, opts BuildDirOptions) ([]DirResult, error) {
	files, err := ListIDLFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		if opts.Progress != nil {
			close(opts.Progress)
		}
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusQueued})
	}

	results := make([]DirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
			res, err := CompileFile(path, opts.Options)
			results[i] = DirResult{Result: res, Err: err}

			if err == nil && res.Generated.HeaderName != "" {
				emit(opts.Progress, Event{File: path, Stage: StageEmit, Status: StatusWorking})
				if opts.WriteFiles {
					emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
					if writeErr := writeGenerated(opts.OutputDir, res.Generated); writeErr != nil {
						results[i].Err = writeErr
					}
				}
			}

			if results[i].Err != nil || (res.Diagnostics != nil && res.Diagnostics.HasErrors()) {
				emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusError, Err: results[i].Err})
			} else {
				emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusDone})
			}
			return nil
		})
	}

	waitErr := g.Wait()
	if opts.Progress != nil {
		close(opts.Progress)
	}
	if waitErr != nil {
		return results, waitErr
	}
	return results, nil
}

// ListIDLFiles returns the sorted set of *.idl files found under dir.
func ListIDLFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".idl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
