// Package main provides the grid command for inspecting layout files.
//
// Usage:
//
//	grid layout [-what names|sizes|positions] [-fit] file   Print a laid-out table
//	grid check [path...]                                     Load layout files and report errors
//	grid snapshot -o out.png file                            Draw a layout to PNG
//	grid help                                                Show help
//
// Examples:
//
//	grid layout -what sizes testdata/four.toml
//	grid check ./...
//	grid snapshot -o four.png testdata/four.toml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/grindlemire/go-grid/internal/debug"
)

const version = "0.1.0"

const usage = `grid - grid geometry engine tools

Usage:
  grid <command> [options] [path...]

Commands:
  layout      Build a layout file and print its table
  check       Load layout files and report errors
  snapshot    Draw a layout file to a PNG image
  version     Print version information
  help        Show this help message

Options:
  -debug path Append debug logging to path (also set by GRID_DEBUG)

Layout files are .toml, .yaml/.yml or .js (scripted).

Examples:
  grid layout four.toml                   Print widget names per cell
  grid layout -what sizes four.toml       Print assigned sizes per cell
  grid layout -fit four.toml              Size the root to the terminal first
  grid check ./...                        Recursively check all layout files
  grid snapshot -o four.png four.toml     Write a PNG snapshot
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "layout":
		err = runLayout(args, os.Stdout)
	case "check":
		err = runCheck(ctx, args, os.Stdout, os.Stderr)
	case "snapshot":
		err = runSnapshot(args, os.Stdout)
	case "version":
		fmt.Printf("grid version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}

	debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet returns a flag set for a subcommand with the shared -debug flag
// registered. Call startDebug after parsing.
func newFlagSet(name string, out io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	logPath := fs.String("debug", "", "append debug logging to `path`")
	return fs, logPath
}

func startDebug(path string) error {
	if path == "" {
		return nil
	}
	if err := debug.Init(path); err != nil {
		return err
	}
	debug.Log("grid %s started", version)
	return nil
}
