package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/cryptolab/internal/catalog"
)

// AlgorithmPage is the template data for an algorithm's detail view.
type AlgorithmPage struct {
	BasePage
	Algorithm catalog.Algorithm
}

// NotFoundPage is the template data for the 404 page.
type NotFoundPage struct {
	BasePage
	Name string
}

// AlgorithmHandler serves the per-algorithm explanation pages.
type AlgorithmHandler struct {
	catalog  *catalog.Catalog
	renderer *Renderer
}

// NewAlgorithmHandler creates a new AlgorithmHandler.
func NewAlgorithmHandler(c *catalog.Catalog, rn *Renderer) *AlgorithmHandler {
	return &AlgorithmHandler{catalog: c, renderer: rn}
}

// Show serves GET /algorithms/{name}.
func (h *AlgorithmHandler) Show(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	a, ok := h.catalog.Get(name)
	if !ok {
		h.renderer.Render(w, http.StatusNotFound, "404.html", NotFoundPage{
			BasePage: newBasePage(r, ""),
			Name:     name,
		})
		return
	}
	h.renderer.Render(w, http.StatusOK, "algorithm.html", AlgorithmPage{
		BasePage:  newBasePage(r, a.Name),
		Algorithm: a,
	})
}
