// Package rewrite performs the HTML-side substitutions: script and
// stylesheet tags are replaced with inline equivalents and the favicon
// reference is swapped for a data-URI.
//
// Matching is textual pattern matching over the exact forms below; any
// tag that does not match passes through byte-for-byte. Swapping in a
// real HTML tokenizer would not change the external contract.
package rewrite

import (
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog"
)

// Recognized tag patterns (case-insensitive).
var (
	// scriptPattern matches <script src="PATH.js"></script> with an
	// optional type="text/javascript" attribute. Captures: 1=src path.
	scriptPattern = regexp.MustCompile(`(?i)<script\s+(?:type=["']text/javascript["']\s+)?src=["']([^"']+\.js)["']\s*>\s*</script>`)

	// stylesheetPattern matches <link rel="stylesheet" href="PATH.css">
	// with an optional self-closing slash. Captures: 1=href path.
	stylesheetPattern = regexp.MustCompile(`(?i)<link\s+rel=["']stylesheet["']\s+href=["']([^"']+\.css)["']\s*/?>`)

	// iconLinkPattern matches any <link> tag whose rel value is "icon"
	// or "shortcut icon", regardless of attribute order.
	iconLinkPattern = regexp.MustCompile(`(?i)<link\b[^>]*\brel=["'](?:shortcut\s+)?icon["'][^>]*>`)

	// hrefAttrPattern extracts an href attribute inside a single tag.
	// Captures: 1=value.
	hrefAttrPattern = regexp.MustCompile(`(?i)\bhref=["']([^"']*)["']`)
)

// Tables holds the per-run lookup state produced by the directory scan.
// Keys are absolute file paths.
type Tables struct {
	Assets map[string]string // path -> data-URI (ico, ttf, woff2)
	Text   map[string]string // path -> minified source (js, css)
}

// Assembler substitutes external references in an HTML document with
// inline equivalents. Reference paths resolve relative to the document's
// directory by simple joining; no further normalization is applied.
type Assembler struct {
	baseDir string
	log     zerolog.Logger
}

// NewAssembler creates an Assembler for a document inside baseDir.
func NewAssembler(baseDir string, log zerolog.Logger) *Assembler {
	return &Assembler{baseDir: baseDir, log: log}
}

// Assemble applies all substitutions: scripts, stylesheets, favicon.
// A document with no matches for a given step passes through that step
// unchanged.
func (a *Assembler) Assemble(doc string, t Tables, faviconURI string) string {
	doc = a.InlineScripts(doc, t.Text)
	doc = a.InlineStylesheets(doc, t.Text)
	doc = a.RewriteFavicon(doc, faviconURI)
	return doc
}

// InlineScripts replaces script tags referencing local .js files with
// inline script tags wrapping the minified code. A reference missing
// from the table keeps its original tag and logs a warning.
func (a *Assembler) InlineScripts(doc string, text map[string]string) string {
	return scriptPattern.ReplaceAllStringFunc(doc, func(tag string) string {
		src := scriptPattern.FindStringSubmatch(tag)[1]

		code, ok := text[a.resolve(src)]
		if !ok {
			a.log.Warn().Str("src", src).Msg("script not in minified table, tag left unchanged")
			return tag
		}
		return "<script>" + code + "</script>"
	})
}

// InlineStylesheets replaces stylesheet link tags referencing local .css
// files with inline style tags, under the same lookup/fallback rule as
// InlineScripts.
func (a *Assembler) InlineStylesheets(doc string, text map[string]string) string {
	return stylesheetPattern.ReplaceAllStringFunc(doc, func(tag string) string {
		href := stylesheetPattern.FindStringSubmatch(tag)[1]

		code, ok := text[a.resolve(href)]
		if !ok {
			a.log.Warn().Str("href", href).Msg("stylesheet not in minified table, tag left unchanged")
			return tag
		}
		return "<style>" + code + "</style>"
	})
}

// RewriteFavicon replaces the href value of the first icon link whose
// href basename is literally "favicon.ico" with uri. The rest of the tag
// is preserved verbatim and other icon tags are left alone. An empty uri
// returns the document unchanged.
func (a *Assembler) RewriteFavicon(doc, uri string) string {
	if uri == "" {
		return doc
	}

	done := false
	return iconLinkPattern.ReplaceAllStringFunc(doc, func(tag string) string {
		if done {
			return tag
		}

		m := hrefAttrPattern.FindStringSubmatch(tag)
		if m == nil || filepath.Base(m[1]) != "favicon.ico" {
			return tag
		}
		done = true

		return hrefAttrPattern.ReplaceAllStringFunc(tag, func(attr string) string {
			quote := attr[len(attr)-1:]
			return "href=" + quote + uri + quote
		})
	})
}

// resolve joins a reference path with the document's directory.
func (a *Assembler) resolve(ref string) string {
	return filepath.Join(a.baseDir, ref)
}
