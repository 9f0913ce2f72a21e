package api

import (
	"math/rand/v2"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/joestump/cryptolab/internal/catalog"
	"github.com/joestump/cryptolab/internal/history"
	"github.com/joestump/cryptolab/internal/store"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Log        *zap.Logger
	Catalog    *catalog.Catalog
	Sessions   *scs.SessionManager
	Operations *store.OperationStore
	Recorder   history.Recorder
	// Rand is shared by all requests; build it with cipher.NewRand.
	Rand *rand.Rand
}

// NewAPIRouter creates a chi sub-router for /api/v1.
// All routes return application/json. The parent router must load the
// session (Sessions.LoadAndSave) so operations can be attributed to a visitor.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(jsonContentType)

	ops := newOperations(deps)

	registerAlgorithmRoutes(r, deps.Catalog)
	registerCipherRoutes(r, ops)
	registerRSARoutes(r, ops)
	registerECCRoutes(r, ops)
	registerDHRoutes(r, ops)
	registerHistoryRoutes(r, deps.Sessions, deps.Operations, deps.Log)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
