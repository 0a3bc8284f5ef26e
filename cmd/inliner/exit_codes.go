package main

import (
	"errors"

	inliner "github.com/alnah/go-inliner"
	"github.com/alnah/go-inliner/internal/config"
)

// Exit codes for the inliner CLI.
//
// Precondition failures (missing target directory or entry file) exit 0:
// the run logs the problem and leaves the tree untouched, so a build
// script that runs the tool unconditionally does not break when there is
// nothing to inline.
const (
	ExitSuccess = 0 // successful run, or precondition failure (nothing to do)
	ExitGeneral = 1 // unexpected error during assembly or minification
	ExitUsage   = 2 // invalid flags or config
)

// exitCodeFor maps an error to an exit code.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Precondition failures (exit 0, see above)
	if errors.Is(err, inliner.ErrTargetDirNotFound) ||
		errors.Is(err, inliner.ErrEntryFileNotFound) {
		return ExitSuccess
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) {
		return ExitUsage
	}

	return ExitGeneral
}
