// Package puzzlekit collects small helpers for solving text puzzles:
// extracting numbers from free-form text (this package) and working with
// fixed-width character grids (package grid).
//
// The helpers fail fast by design. Errors here almost always indicate a bug
// in the calling code, so the convenience entry points panic instead of
// returning errors; fallible variants exist where validation is expected.
package puzzlekit
