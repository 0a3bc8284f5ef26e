package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"

	inliner "github.com/alnah/go-inliner"
	"github.com/alnah/go-inliner/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, args, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Println("inliner " + Version)
		os.Exit(ExitSuccess)
	}

	logger := newLogger(flags)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			logger.Debug().Msgf(format, args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	err = run(flags, args, logger)
	switch code := exitCodeFor(err); {
	case err == nil:
	case code == ExitSuccess:
		// Precondition failure: the reason is logged, nothing was
		// modified, and build scripts keep going.
		logger.Error().Err(err).Msg("nothing to do")
	default:
		logger.Error().Err(err).Msg("run failed")
		os.Exit(code)
	}
}

// newLogger builds the console logger from verbosity flags.
func newLogger(flags *cliFlags) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case flags.quiet:
		level = zerolog.ErrorLevel
	case flags.verbose:
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// run resolves configuration and executes one inlining pass.
func run(flags *cliFlags, args []string, logger zerolog.Logger) error {
	var input inliner.Input

	if flags.config != "" {
		cfg, err := config.Load(flags.config)
		if err != nil {
			return err
		}
		input.TargetDir = cfg.Target
		input.Entry = cfg.Entry
		input.DryRun = cfg.DryRun
	}

	// Flags and positional args override config.
	if len(args) > 0 {
		input.TargetDir = args[0]
	}
	if flags.entry != "" {
		input.Entry = flags.entry
	}
	if flags.dryRun {
		input.DryRun = true
	}

	svc := inliner.New(inliner.WithLogger(logger))
	_, err := svc.Run(context.Background(), input)
	return err
}
