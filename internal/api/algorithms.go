package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/cryptolab/internal/catalog"
)

type algorithmsAPIHandler struct {
	catalog *catalog.Catalog
}

func registerAlgorithmRoutes(r chi.Router, c *catalog.Catalog) {
	h := &algorithmsAPIHandler{catalog: c}
	r.Get("/algorithms", h.List)
	r.Get("/algorithms/{name}", h.Get)
}

// List returns every catalog entry in display order.
//
// @Summary      List algorithms
// @Tags         Algorithms
// @Produce      json
// @Success      200  {object}  AlgorithmListResponse
// @Router       /algorithms [get]
func (h *algorithmsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, AlgorithmListResponse{Algorithms: h.catalog.All()})
}

// Get returns one catalog entry.
//
// @Summary      Get an algorithm
// @Tags         Algorithms
// @Produce      json
// @Param        name  path      string  true  "Algorithm name"
// @Success      200   {object}  catalog.Algorithm
// @Failure      404   {object}  ErrorResponse
// @Router       /algorithms/{name} [get]
func (h *algorithmsAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, ok := h.catalog.Get(chi.URLParam(r, "name"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown algorithm", "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, a)
}
