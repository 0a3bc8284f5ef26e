// Package inliner folds a static site's external JavaScript, CSS,
// web-font, and favicon files into a single self-contained HTML document.
//
// # Quick Start
//
// Create a service and run one pass over the site output directory:
//
//	svc := inliner.New()
//	result, err := svc.Run(ctx, inliner.Input{TargetDir: "dist"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("inlined %d files\n", len(result.Inlined))
//
// The result lists the files that were folded into the document, the
// files whose conversion failed (left untouched on disk), and the
// per-file outcome of the final deletions.
//
// # Pipeline
//
// A run proceeds in these stages:
//
//  1. Precondition checks: target directory and entry HTML file exist
//  2. Binary-asset pass: favicon and web fonts encoded as data-URIs
//  3. Text pass: JS minified; CSS font references rewritten, then minified
//  4. HTML assembly: script, stylesheet, and favicon references replaced
//     with inline equivalents, whole document minified and written back
//  5. Consumed files deleted concurrently
//
// Binary assets are encoded before any CSS is processed, so a stylesheet
// always sees the complete font table regardless of directory listing
// order.
//
// # Error Handling
//
// Per-file conversion failures are logged and skipped: the file stays on
// disk and its reference stays in the document, so a partially broken
// site still inlines everything that converts cleanly. Only precondition
// failures and errors on the entry document itself (read, minify, write)
// abort a run.
//
// # Layout Contract
//
// The target directory is treated as a flat collection of sibling files.
// Subdirectories are not descended into, and CSS url() font references
// resolve against the target root rather than the stylesheet's own
// location.
package inliner
