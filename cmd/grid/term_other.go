//go:build !unix

package main

// terminalSize returns the conventional 80x24 size.
func terminalSize() (width, height int) {
	return 80, 24
}
