package inliner

import "errors"

// Sentinel errors for library operations.
var (
	// Precondition errors. Neither modifies the target directory.
	ErrTargetDirNotFound = errors.New("target directory not found")
	ErrEntryFileNotFound = errors.New("entry HTML file not found")

	// Entry-document errors. These abort the run; per-file conversion
	// failures never do.
	ErrReadEntry  = errors.New("failed to read entry HTML file")
	ErrWriteEntry = errors.New("failed to write entry HTML file")
)
