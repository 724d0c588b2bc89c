// Package layout holds the integer geometry shared by the grid engine and the
// code that draws its results.
package layout
