// Package html serializes a rendered résumé to an HTML page. The node tree
// is turned into sanitized markup and placed in a pongo2 page template
// carrying the resolved theme as CSS custom properties.
package html

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// DefaultPage is the page template used when none is configured.
const DefaultPage = "page.html.tpl"

// TemplatesFS exposes the bundled page templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

type Option func(*config)

type config struct {
	baseDir     string
	templates   fs.FS
	page        string
	lang        string
	stylesheets []string
}

// WithBaseDir loads page templates from a directory on disk ahead of the
// bundled ones.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads page templates from files ahead of the bundled ones.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithPage selects the page template by name.
func WithPage(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.page = trimmed
		}
	}
}

// WithLang sets the html lang attribute.
func WithLang(lang string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(lang); trimmed != "" {
			cfg.lang = trimmed
		}
	}
}

// WithStylesheets links extra stylesheets. Keys are passed through the
// theme's asset resolver.
func WithStylesheets(keys ...string) Option {
	return func(cfg *config) {
		for _, key := range keys {
			if trimmed := strings.TrimSpace(key); trimmed != "" {
				cfg.stylesheets = append(cfg.stylesheets, trimmed)
			}
		}
	}
}

// Renderer writes complete HTML pages.
type Renderer struct {
	mu sync.RWMutex

	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	cfg       config
}

// New constructs a Renderer. Without options it uses the bundled page.
func New(options ...Option) (*Renderer, error) {
	cfg := config{page: DefaultPage, lang: "en"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("html: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}
	loaders = append(loaders, pongo2.NewFSLoader(TemplatesFS()))

	registerFilters()

	return &Renderer{
		set:       pongo2.NewSet("resumegen", loaders...),
		templates: make(map[string]*pongo2.Template),
		cfg:       cfg,
	}, nil
}

// Render writes the page for out and returns it. Extra writers receive a
// copy of the page.
func (r *Renderer) Render(out *render.Output, writers ...io.Writer) ([]byte, error) {
	if r == nil || r.set == nil {
		return nil, errors.New("html: renderer is nil")
	}
	if out == nil || out.Root == nil {
		return nil, errors.New("html: output is empty")
	}

	tmpl, err := r.template(r.cfg.page)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(r.pageContext(out), &buf); err != nil {
		return nil, fmt.Errorf("html: execute page %q: %w", r.cfg.page, err)
	}

	page := buf.Bytes()
	for _, w := range writers {
		if _, err := w.Write(page); err != nil {
			return nil, err
		}
	}
	return page, nil
}

// Fragment returns the sanitized body markup without the page shell.
func Fragment(out *render.Output) string {
	if out == nil || out.Root == nil {
		return ""
	}
	var b strings.Builder
	writeNode(&b, out.Root)
	return sanitizeBody(b.String())
}

type cssVar struct {
	name  string
	value string
}

func (r *Renderer) pageContext(out *render.Output) pongo2.Context {
	cfg := theme.RendererConfig(out.Theme)

	vars := make([]map[string]string, 0, len(cfg.CSSVars)+2)
	for _, v := range sortedVars(cfg.CSSVars) {
		vars = append(vars, map[string]string{"name": v.name, "value": v.value})
	}
	for _, key := range []string{render.AttrSpacing} {
		if value := out.Root.Attr(key); value != "" {
			vars = append(vars, map[string]string{"name": "--" + key, "value": value})
		}
	}

	stylesheets := make([]string, 0, len(r.cfg.stylesheets))
	for _, key := range r.cfg.stylesheets {
		if href := cfg.AssetURL(key); href != "" {
			stylesheets = append(stylesheets, href)
		}
	}

	return pongo2.Context{
		"lang":        r.cfg.lang,
		"title":       pageTitle(out),
		"template_id": out.TemplateID,
		"family":      string(out.Family),
		"density":     string(out.Theme.Density),
		"vars":        vars,
		"stylesheets": stylesheets,
		"body":        pongo2.AsSafeValue(Fragment(out)),
	}
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.templates[name]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("html: load page %q: %w", name, err)
	}
	r.templates[name] = tmpl
	return tmpl, nil
}

func sortedVars(vars map[string]string) []cssVar {
	out := make([]cssVar, 0, len(vars))
	for name, value := range vars {
		out = append(out, cssVar{name: name, value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func pageTitle(out *render.Output) string {
	var title string
	out.Root.Walk(func(n *render.Node) bool {
		if title == "" && n.Kind == render.KindText && n.Role == "name" {
			title = n.Text
			return false
		}
		return true
	})
	if title == "" {
		return "Résumé"
	}
	return title
}
