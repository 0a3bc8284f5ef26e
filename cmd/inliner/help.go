package main

import (
	"fmt"
	"io"
)

// printUsage writes CLI usage to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `inliner - fold a static site's JS, CSS, fonts, and favicon into its HTML

Usage:
  inliner [flags] [target-dir]

The target directory defaults to "dist" and must contain an index.html.
External scripts, stylesheets, web fonts (.ttf, .woff2), and favicon.ico
directly inside the directory are minified, embedded into the document,
and deleted. Files that fail to convert are left in place with their
references untouched.

Flags:
  -c, --config string   YAML config file path
      --entry string    entry HTML filename (default: index.html)
      --dry-run         report without writing or deleting
  -q, --quiet           only show errors
  -v, --verbose         show per-file detail
      --version         print version and exit

Examples:
  inliner                  # inline ./dist in place
  inliner build            # inline ./build in place
  inliner --dry-run -v     # show what would change
`)
}
