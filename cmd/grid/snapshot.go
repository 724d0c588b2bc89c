package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/grindlemire/go-grid/internal/snapshot"
	"github.com/grindlemire/go-grid/pkg/gridfile"
)

// runSnapshot implements the snapshot subcommand.
func runSnapshot(args []string, out io.Writer) error {
	fs, logPath := newFlagSet("snapshot", out)
	output := fs.String("o", "grid.png", "output PNG `path`")
	scale := fs.Int("scale", snapshot.DefaultScale, "pixels per layout unit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := startDebug(*logPath); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("snapshot takes exactly one file")
	}

	l, err := gridfile.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	r, err := snapshot.NewRenderer(l.Tree, l.Root, *scale)
	if err != nil {
		return err
	}
	r.Render(l.Root)
	if err := r.SavePNG(*output); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", *output)
	return nil
}
