package handler

import (
	"net/http"

	"github.com/joestump/cryptolab/internal/catalog"
)

// IndexPage is the template data for the workbench.
type IndexPage struct {
	BasePage
	Symmetric   []catalog.Algorithm
	Asymmetric  []catalog.Algorithm
	KeyExchange []catalog.Algorithm
}

// IndexHandler serves the workbench page.
type IndexHandler struct {
	catalog  *catalog.Catalog
	renderer *Renderer
}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler(c *catalog.Catalog, rn *Renderer) *IndexHandler {
	return &IndexHandler{catalog: c, renderer: rn}
}

// Index serves GET / by rendering index.html with the catalog grouped by family.
func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "index.html", IndexPage{
		BasePage:    newBasePage(r, "index"),
		Symmetric:   h.catalog.ByFamily(catalog.FamilySymmetric),
		Asymmetric:  h.catalog.ByFamily(catalog.FamilyAsymmetric),
		KeyExchange: h.catalog.ByFamily(catalog.FamilyKeyExchange),
	})
}
