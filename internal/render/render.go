// Package render serves the portal views as server-rendered HTML pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/imobiliaria/portal-locacao/internal/format"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names.
const (
	PageStatement = "statement"
	PageMonthly   = "monthly"
	PageProfile   = "profile"
	PageEntity    = "entity"
	PageSearch    = "search"
	PageError     = "error"
)

var pages = []string{PageStatement, PageMonthly, PageProfile, PageEntity, PageSearch, PageError}

// ErrorData is the content of the error page: the message is shown in place
// of the content that failed to load.
type ErrorData struct {
	Titulo   string
	Mensagem string
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"placeholder": format.OrPlaceholder,
	"nodata":      func() string { return format.NoData },
	"pageLink":    PageLink,
}

// PageLink maps an entity API link onto its HTML page.
func PageLink(apiLink string) string {
	if rest, ok := strings.CutPrefix(apiLink, "/api/entities/"); ok {
		return "/entidades/" + rest
	}
	return apiLink
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		tpl, err := clone.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = tpl
	}
	return r, nil
}

// Render executes page with data and writes the result to w. The page is
// buffered first so a template error never produces a half-written response.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
