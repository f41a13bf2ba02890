package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"gloss/internal/pipeline"
)

// SourceExt is the gloss source file extension.
const SourceExt = ".gls"

// ListSourceFiles walks dir and returns every .gls path, sorted for
// deterministic output order.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories (VCS metadata, editor state) never hold
			// checkable sources.
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == SourceExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every .gls file under dir with a bounded worker pool.
// Results come back in path order regardless of which worker finished
// first. The error covers walking and loading; per-file semantic failures
// stay in each result's bag.
func CheckDir(ctx context.Context, dir string, opts Options) ([]*CheckResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	for _, path := range files {
		emit(opts.Sink, pipeline.Event{File: path, Stage: pipeline.StageLex, Status: pipeline.StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]*CheckResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := CheckFile(path, opts)
			if err != nil {
				emit(opts.Sink, pipeline.Event{
					File: path, Stage: pipeline.StageLex, Status: pipeline.StatusError, Err: err,
				})
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CheckPath dispatches on whether path is a file or a directory.
func CheckPath(ctx context.Context, path string, opts Options) ([]*CheckResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return CheckDir(ctx, path, opts)
	}
	res, err := CheckFile(path, opts)
	if err != nil {
		return nil, err
	}
	return []*CheckResult{res}, nil
}
