package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/joestump/cryptolab/internal/build"
)

// BasePage carries layout-level data available to every template.
type BasePage struct {
	Theme   string // "cryptolab-light", "cryptolab-dark", or "" (let the inline script decide)
	Version string
	Active  string // nav entry to highlight
}

func newBasePage(r *http.Request, active string) BasePage {
	return BasePage{Theme: themeFromRequest(r), Version: build.Version, Active: active}
}

// themeFromRequest reads the "theme" cookie. Returns "" if absent or invalid,
// so the server omits data-theme and lets the anti-flash inline script handle it.
func themeFromRequest(r *http.Request) string {
	c, err := r.Cookie(themeCookie)
	if err != nil {
		return ""
	}
	if validTheme(c.Value) {
		return c.Value
	}
	return ""
}

var funcMap = template.FuncMap{
	"timeAgo": timeAgo,
}

func timeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	default:
		return plural(int(d/(24*time.Hour)), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Renderer holds one compiled template set per page: base.html, every
// partial and that page file, so {{define "content"}} blocks don't collide.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer compiles the templates in fsys. The layout is base.html,
// partials/*.html and pages/**/*.html; pages are keyed by their path
// relative to pages/ (e.g. "index.html").
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	partials, err := fs.Glob(fsys, "partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob partials: %w", err)
	}

	rn := &Renderer{pages: make(map[string]*template.Template)}
	err = fs.WalkDir(fsys, "pages", func(p string, d fs.DirEntry, e error) error {
		if e != nil || d.IsDir() || path.Ext(p) != ".html" {
			return e
		}

		files := make([]string, 0, 2+len(partials))
		files = append(files, "base.html")
		files = append(files, partials...)
		files = append(files, p)

		t, err := template.New("").Funcs(funcMap).ParseFS(fsys, files...)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		rel, _ := strings.CutPrefix(p, "pages/")
		rn.pages[rel] = t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("build page cache: %w", err)
	}
	return rn, nil
}

// Render executes a full-page template (base layout + named page) and writes
// it with status. The page is rendered to a buffer first so a template error
// becomes a clean 500 carrying the error text.
func (rn *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := rn.pages[page]
	if !ok {
		http.Error(w, "template not found: "+page, http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
