package handler

import (
	"io/fs"
	"math/rand/v2"
	"net/http"
	"os"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/joestump/cryptolab/docs/swagger"
	"github.com/joestump/cryptolab/internal/api"
	"github.com/joestump/cryptolab/internal/catalog"
	"github.com/joestump/cryptolab/internal/history"
	"github.com/joestump/cryptolab/internal/logging"
	"github.com/joestump/cryptolab/internal/store"
	"github.com/joestump/cryptolab/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Log        *zap.Logger
	DB         *sqlx.DB
	Catalog    *catalog.Catalog
	Renderer   *Renderer
	StaticDir  string // absolute path, or empty for the embedded assets
	Sessions   *scs.SessionManager
	Operations *store.OperationStore
	Recorder   history.Recorder
	Rand       *rand.Rand
}

// TemplatesFS returns dir as a file system, or the embedded templates when
// dir is empty.
func TemplatesFS(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	return fs.Sub(web.TemplateFS, "templates")
}

// StaticFS returns dir as a file system, or the embedded static assets when
// dir is empty.
func StaticFS(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	return fs.Sub(web.StaticFS, "static")
}

// NewRouter assembles the full chi router with all middleware and routes.
// Unregistered paths fall through to chi's default 404.
func NewRouter(deps Deps) (http.Handler, error) {
	static, err := StaticFS(deps.StaticDir)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(deps.Log.Named("http")))
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(static)))
	r.Get("/healthz", NewHealthHandler(deps.DB, deps.Log).Check)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/debug-static", NewDebugHandler(deps.StaticDir, deps.Log.Named("debug")).Static)
	r.Get("/api/docs/*", httpSwagger.WrapHandler)

	// Everything below may read or create the visitor session.
	r.Group(func(r chi.Router) {
		r.Use(deps.Sessions.LoadAndSave)

		r.Get("/", NewIndexHandler(deps.Catalog, deps.Renderer).Index)
		r.Get("/algorithms/{name}", NewAlgorithmHandler(deps.Catalog, deps.Renderer).Show)
		r.Get("/history", NewHistoryHandler(deps.Sessions, deps.Operations, deps.Renderer, deps.Log.Named("handler")).Show)
		r.Post("/theme", NewThemeHandler().Toggle)

		r.Mount("/api/v1", api.NewAPIRouter(api.Deps{
			Log:        deps.Log.Named("api"),
			Catalog:    deps.Catalog,
			Sessions:   deps.Sessions,
			Operations: deps.Operations,
			Recorder:   deps.Recorder,
			Rand:       deps.Rand,
		}))
	})

	return r, nil
}
