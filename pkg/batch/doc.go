// Package batch implements the glob-filter-act loop shared by the pxtools
// commands.
//
// A run expands each argument as a glob pattern, drops excluded matches,
// re-checks that every match still exists, filters by extension and applies
// an Action to each accepted file, one at a time and in order. Every file
// that reaches the extension filter produces exactly one notice on the
// processor's output: "Processing <path>" or "Skipping <path>". Missing and
// excluded files produce none.
package batch
