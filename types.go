package inliner

import (
	"os"

	"github.com/rs/zerolog"
)

// Defaults for the fixed filesystem contract: a site output directory
// containing one entry HTML document.
const (
	DefaultTargetDir = "dist"
	DefaultEntryFile = "index.html"
)

// Input contains run parameters. The zero value targets DefaultTargetDir
// and DefaultEntryFile.
type Input struct {
	TargetDir string // site output directory (default: "dist")
	Entry     string // entry HTML filename (default: "index.html")
	DryRun    bool   // report what would happen without writing or deleting
}

// Result reports what a run did.
type Result struct {
	Inlined    []string   // files folded into the document (then deleted)
	Skipped    []string   // files whose conversion failed, left in place
	Deletions  []Deletion // per-file deletion outcomes (empty on dry run)
	EntryPath  string     // path of the rewritten document
	SizeBefore int        // entry document size in bytes before assembly
	SizeAfter  int        // entry document size in bytes after minification
}

// Deletion records one file removal attempt. Err is nil on success.
type Deletion struct {
	Path string
	Err  error
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for per-file warnings and progress.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// defaultLogger writes human-readable output to stderr at Info level.
func defaultLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}
