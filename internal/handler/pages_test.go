package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/joestump/cryptolab/internal/catalog"
)

const fixtureBase = `{{define "base"}}<main data-theme="{{.Theme}}">{{template "content" .}}</main>{{end}}`

func newIndexFixture(t *testing.T, files fstest.MapFS) *IndexHandler {
	t.Helper()
	rn, err := NewRenderer(files)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	return NewIndexHandler(cat, rn)
}

func TestIndex_RendersTemplate(t *testing.T) {
	h := newIndexFixture(t, fstest.MapFS{
		"base.html":        {Data: []byte(fixtureBase)},
		"partials/x.html":  {Data: []byte(`{{define "sep"}} {{end}}`)},
		"pages/index.html": {Data: []byte(`{{define "content"}}{{range .Symmetric}}{{.Name}}{{template "sep"}}{{end}}{{len .KeyExchange}}{{end}}`)},
	})

	want := `<main data-theme="">railfence vigenere playfair aes des 2</main>`
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
		}
		if got := rec.Body.String(); got != want {
			t.Errorf("body = %q, want %q", got, want)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
			t.Errorf("Content-Type = %q, want text/html", ct)
		}
	}
}

func TestIndex_ThemeCookie(t *testing.T) {
	h := newIndexFixture(t, fstest.MapFS{
		"base.html":        {Data: []byte(fixtureBase)},
		"pages/index.html": {Data: []byte(`{{define "content"}}{{end}}`)},
	})

	tests := []struct {
		cookie string
		want   string
	}{
		{cookie: "cryptolab-dark", want: `data-theme="cryptolab-dark"`},
		{cookie: "cryptolab-light", want: `data-theme="cryptolab-light"`},
		{cookie: "hacker-green", want: `data-theme=""`},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "theme", Value: tt.cookie})
		rec := httptest.NewRecorder()
		h.Index(rec, req)
		if !strings.Contains(rec.Body.String(), tt.want) {
			t.Errorf("cookie %q: body = %q, want %s", tt.cookie, rec.Body, tt.want)
		}
	}
}

func TestIndex_TemplateFailures(t *testing.T) {
	tests := []struct {
		name  string
		files fstest.MapFS
		want  string
	}{
		{
			name:  "missing page",
			files: fstest.MapFS{"base.html": {Data: []byte(fixtureBase)}, "pages/other.html": {Data: []byte(`{{define "content"}}{{end}}`)}},
			want:  "template not found: index.html",
		},
		{
			name:  "execution error",
			files: fstest.MapFS{"base.html": {Data: []byte(fixtureBase)}, "pages/index.html": {Data: []byte(`{{define "content"}}{{.Missing}}{{end}}`)}},
			want:  "template error:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newIndexFixture(t, tt.files)
			rec := httptest.NewRecorder()
			h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			if rec.Code != http.StatusInternalServerError {
				t.Errorf("status = %d, want 500", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("body = %q, want containing %q", rec.Body, tt.want)
			}
			if strings.Contains(rec.Body.String(), "<main") {
				t.Errorf("body = %q, want no partial page output", rec.Body)
			}
		})
	}
}

func TestNewRenderer_ParseError(t *testing.T) {
	_, err := NewRenderer(fstest.MapFS{
		"base.html":        {Data: []byte(fixtureBase)},
		"pages/index.html": {Data: []byte(`{{define "content"}}{{if}}{{end}}`)},
	})
	if err == nil || !strings.Contains(err.Error(), "index.html") {
		t.Errorf("err = %v, want parse error naming index.html", err)
	}
}

func TestTimeAgo(t *testing.T) {
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{ago: 10 * time.Second, want: "just now"},
		{ago: 90 * time.Second, want: "1 minute ago"},
		{ago: 5 * time.Minute, want: "5 minutes ago"},
		{ago: 3 * time.Hour, want: "3 hours ago"},
		{ago: 49 * time.Hour, want: "2 days ago"},
	}
	for _, tt := range tests {
		if got := timeAgo(time.Now().Add(-tt.ago)); got != tt.want {
			t.Errorf("timeAgo(-%v) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}
