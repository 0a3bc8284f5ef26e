// Package textmin wraps the minifiers used by the inlining pipeline,
// performs the CSS font-reference rewrite that precedes CSS
// minification, and shields substituted data-URIs from the minifiers
// until the final document pass is done.
package textmin

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

// Media types registered on the shared minifier instance.
const (
	mimeJS   = "application/javascript"
	mimeCSS  = "text/css"
	mimeHTML = "text/html"
)

// Sentinel errors for minification failures. A minifier error means the
// file failed conversion: no partial output is produced.
var (
	ErrMinifyJS   = errors.New("JS minification failed")
	ErrMinifyCSS  = errors.New("CSS minification failed")
	ErrMinifyHTML = errors.New("HTML minification failed")
)

// fontURLPattern matches url(...) references to web fonts, quotes
// optional. Captures: 1=font path.
var fontURLPattern = regexp.MustCompile(`(?i)url\(\s*['"]?([^'")]+\.(?:ttf|woff2))['"]?\s*\)`)

// Minifier minifies JS, CSS, and HTML text. HTML minification also
// minifies any inline <script>/<style> blocks through the same instance.
type Minifier struct {
	m   *minify.M
	log zerolog.Logger
}

// New creates a Minifier with JS, CSS, and HTML minifiers registered.
func New(log zerolog.Logger) *Minifier {
	m := minify.New()
	m.AddFunc(mimeJS, js.Minify)
	m.AddFunc(mimeCSS, css.Minify)
	m.AddFunc(mimeHTML, html.Minify)

	return &Minifier{m: m, log: log}
}

// JS minifies JavaScript source with compression, name shortening, and
// comment stripping.
func (mn *Minifier) JS(src string) (string, error) {
	out, err := mn.m.String(mimeJS, src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMinifyJS, err)
	}
	return out, nil
}

// CSS rewrites font url() references against the asset table, then
// minifies the result. Substituted data-URIs enter the output as
// placeholder tokens; the caller restores them after the document-level
// minification pass.
func (mn *Minifier) CSS(src, root string, assets map[string]string, ph *Placeholders) (string, error) {
	rewritten := mn.RewriteFontURLs(src, root, assets, ph)

	out, err := mn.m.String(mimeCSS, rewritten)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMinifyCSS, err)
	}
	return out, nil
}

// HTML minifies a full document: whitespace collapse, comment removal,
// and nested minification of inline script and style blocks.
func (mn *Minifier) HTML(src string) (string, error) {
	out, err := mn.m.String(mimeHTML, src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMinifyHTML, err)
	}
	return out, nil
}

// RewriteFontURLs replaces url() font references that have an asset
// table entry with placeholder tokens standing for the full quoted
// url('data:...') expression. References without a table entry are left
// unchanged and logged. Paths resolve against root (the target
// directory), not the stylesheet's own location; the flat layout
// contract makes the two identical.
func (mn *Minifier) RewriteFontURLs(src, root string, assets map[string]string, ph *Placeholders) string {
	return fontURLPattern.ReplaceAllStringFunc(src, func(match string) string {
		ref := fontURLPattern.FindStringSubmatch(match)[1]

		uri, ok := assets[filepath.Join(root, ref)]
		if !ok {
			mn.log.Warn().Str("ref", ref).Msg("font not in asset table, reference left unchanged")
			return match
		}
		return ph.Hold("url('" + uri + "')")
	})
}

// Placeholders holds substituted data-URIs out of the minifiers' reach.
// The registered CSS and HTML minifiers rewrite data-URIs they find in
// url() and href position: quotes are stripped and short payloads are
// re-encoded to percent form. Values are swapped for opaque tokens
// before any minifier runs and swapped back after the final document
// pass, so the embedded URIs come out byte-for-byte.
type Placeholders struct {
	pairs []string // alternating token, value for strings.NewReplacer
}

// NewPlaceholders creates an empty set. One set serves one run; tokens
// are numbered per set.
func NewPlaceholders() *Placeholders {
	return &Placeholders{}
}

// Hold stores value and returns a token that passes through every
// registered minifier unchanged, both in CSS value position and in HTML
// attribute values. Fixed-width numbering keeps every token prefix-free.
func (p *Placeholders) Hold(value string) string {
	token := fmt.Sprintf("inliner-hold-%06d", len(p.pairs)/2)
	p.pairs = append(p.pairs, token, value)
	return token
}

// Restore swaps every issued token in doc back to its held value.
func (p *Placeholders) Restore(doc string) string {
	if len(p.pairs) == 0 {
		return doc
	}
	return strings.NewReplacer(p.pairs...).Replace(doc)
}
