package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-grid/internal/debug"
	"github.com/grindlemire/go-grid/pkg/gridfile"
)

// runCheck implements the check subcommand. Every file is loaded, errors are
// reported per file, and the command fails if any file failed.
func runCheck(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs, logPath := newFlagSet("check", stderr)
	verbose := fs.Bool("v", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := startDebug(*logPath); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectLayoutFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no layout files found")
	}

	errs := checkFiles(ctx, files)

	var errorCount int
	for i, path := range files {
		if errs[i] != nil {
			fmt.Fprintf(stderr, "%v\n", errs[i])
			errorCount++
			continue
		}
		if *verbose {
			fmt.Fprintf(stdout, "ok  %s\n", path)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if *verbose {
		fmt.Fprintf(stdout, "All %d file(s) passed checks\n", len(files))
	}
	return nil
}

// checkFiles loads files concurrently. The result is indexed like files.
func checkFiles(ctx context.Context, files []string) []error {
	errs := make([]error, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return err
			}
			l, err := gridfile.Load(path)
			if err != nil {
				errs[i] = err
				return nil
			}
			debug.Log("check: %s ok, %d named nodes", path, len(l.Names()))
			return nil
		})
	}
	// Load failures are recorded per file; only cancellation stops the group.
	_ = g.Wait()
	return errs
}
