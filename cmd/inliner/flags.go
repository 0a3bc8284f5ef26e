package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the inliner CLI.
type cliFlags struct {
	config  string
	entry   string
	dryRun  bool
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses CLI flags and returns the remaining positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("inliner", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "YAML config file path")
	fs.StringVar(&f.entry, "entry", "", "entry HTML filename (default: index.html)")
	fs.BoolVar(&f.dryRun, "dry-run", false, "report without writing or deleting")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file detail")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
