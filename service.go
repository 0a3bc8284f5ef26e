package inliner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/alnah/go-inliner/internal/asset"
	"github.com/alnah/go-inliner/internal/fileutil"
	"github.com/alnah/go-inliner/internal/rewrite"
	"github.com/alnah/go-inliner/internal/textmin"
)

// faviconName is the only icon filename whose <link> reference is
// rewritten; other icon tags are left alone.
const faviconName = "favicon.ico"

// Service orchestrates the asset-inlining pipeline.
type Service struct {
	log zerolog.Logger
	min *textmin.Minifier
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithLogger).
func New(opts ...Option) *Service {
	s := &Service{log: defaultLogger()}

	for _, opt := range opts {
		opt(s)
	}

	s.min = textmin.New(s.log)
	return s
}

// Run executes one inlining pass over input.TargetDir.
//
// The pass encodes binary assets, minifies text assets, substitutes every
// resolvable reference in the entry document, minifies the document, and
// deletes the consumed files. A file is deleted if and only if its
// conversion succeeded; failed conversions are skipped and their
// references preserved. The returned Result is non-nil whenever err is
// nil.
func (s *Service) Run(ctx context.Context, input Input) (*Result, error) {
	target := input.TargetDir
	if target == "" {
		target = DefaultTargetDir
	}
	entry := input.Entry
	if entry == "" {
		entry = DefaultEntryFile
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("resolving target directory: %w", err)
	}

	// Preconditions: nothing is modified unless both hold.
	if !fileutil.DirExists(absTarget) {
		return nil, fmt.Errorf("%w: %s", ErrTargetDirNotFound, target)
	}
	entryPath := filepath.Join(absTarget, entry)
	if !fileutil.FileExists(entryPath) {
		return nil, fmt.Errorf("%w: %s", ErrEntryFileNotFound, entryPath)
	}

	files, err := fileutil.ListFiles(absTarget)
	if err != nil {
		return nil, fmt.Errorf("listing target directory: %w", err)
	}

	res := &Result{EntryPath: entryPath}
	tables := rewrite.Tables{
		Assets: make(map[string]string),
		Text:   make(map[string]string),
	}
	var consumed []string

	// Substituted data-URIs travel as placeholder tokens until the
	// document-level minification pass is done; the minifiers rewrite
	// any data-URI they see directly.
	ph := textmin.NewPlaceholders()

	// Pass 1: binary assets. Encoding these before any CSS is processed
	// guarantees the font table is complete regardless of listing order.
	for _, path := range files {
		if !asset.IsEmbeddable(path) {
			continue
		}
		uri, err := asset.Encode(path)
		if err != nil {
			s.log.Warn().Err(err).Str("file", path).Msg("asset skipped")
			res.Skipped = append(res.Skipped, path)
			continue
		}
		tables.Assets[path] = uri
		consumed = append(consumed, path)
		s.log.Debug().Str("file", path).Msg("asset encoded")
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Pass 2: text assets.
	for _, path := range files {
		ext := strings.ToLower(filepath.Ext(path))
		if path == entryPath || (ext != ".js" && ext != ".css") {
			continue
		}

		src, err := os.ReadFile(path)
		if err != nil {
			s.log.Warn().Err(err).Str("file", path).Msg("read failed, file skipped")
			res.Skipped = append(res.Skipped, path)
			continue
		}

		var minified string
		if ext == ".js" {
			minified, err = s.min.JS(string(src))
		} else {
			minified, err = s.min.CSS(string(src), absTarget, tables.Assets, ph)
		}
		if err != nil {
			s.log.Warn().Err(err).Str("file", path).Msg("minification failed, file skipped")
			res.Skipped = append(res.Skipped, path)
			continue
		}

		tables.Text[path] = minified
		consumed = append(consumed, path)
		s.log.Debug().Str("file", path).Int("bytes", len(minified)).Msg("minified")
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Favicon data-URI (may be absent). The href is substituted as a
	// placeholder token for the same reason as the font URIs.
	faviconRef := ""
	if uri, ok := tables.Assets[filepath.Join(absTarget, faviconName)]; ok {
		faviconRef = ph.Hold(uri)
	}

	// Assemble and minify the entry document.
	docBytes, err := os.ReadFile(entryPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadEntry, err)
	}
	res.SizeBefore = len(docBytes)

	assembler := rewrite.NewAssembler(absTarget, s.log)
	doc := assembler.Assemble(string(docBytes), tables, faviconRef)

	minDoc, err := s.min.HTML(doc)
	if err != nil {
		return nil, err
	}
	minDoc = ph.Restore(minDoc)
	res.SizeAfter = len(minDoc)
	res.Inlined = consumed

	if input.DryRun {
		s.log.Info().
			Int("inlined", len(res.Inlined)).
			Int("skipped", len(res.Skipped)).
			Msg("dry run: document not written, files not deleted")
		return res, nil
	}

	if err := os.WriteFile(entryPath, []byte(minDoc), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteEntry, err)
	}

	res.Deletions = deleteAll(consumed)
	for _, d := range res.Deletions {
		if d.Err != nil {
			s.log.Error().Err(d.Err).Str("file", d.Path).Msg("delete failed")
		}
	}

	s.log.Info().
		Int("inlined", len(res.Inlined)).
		Int("skipped", len(res.Skipped)).
		Int("before", res.SizeBefore).
		Int("after", res.SizeAfter).
		Msg("inlining complete")

	return res, nil
}

// deleteAll removes paths concurrently, capturing each outcome
// individually. One failure never blocks the others.
func deleteAll(paths []string) []Deletion {
	results := make([]Deletion, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			results[i] = Deletion{Path: path, Err: os.Remove(path)}
		}(i, path)
	}
	wg.Wait()

	return results
}
