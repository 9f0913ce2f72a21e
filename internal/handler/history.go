package handler

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"go.uber.org/zap"

	"github.com/joestump/cryptolab/internal/session"
	"github.com/joestump/cryptolab/internal/store"
)

const historyPageSize = 50

// HistoryPage is the template data for the visitor's history view.
type HistoryPage struct {
	BasePage
	Operations []*store.Operation
	Counts     []store.AlgorithmCount
}

// HistoryHandler shows the visitor's recent operations.
type HistoryHandler struct {
	sessions   *scs.SessionManager
	operations *store.OperationStore
	renderer   *Renderer
	log        *zap.Logger
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(sm *scs.SessionManager, ops *store.OperationStore, rn *Renderer, log *zap.Logger) *HistoryHandler {
	return &HistoryHandler{sessions: sm, operations: ops, renderer: rn, log: log}
}

// Show serves GET /history with the latest operations and per-algorithm counts.
func (h *HistoryHandler) Show(w http.ResponseWriter, r *http.Request) {
	visitor := session.VisitorID(r.Context(), h.sessions)

	ops, err := h.operations.ListByVisitor(r.Context(), visitor, "", historyPageSize)
	if err != nil {
		h.log.Error("list history", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	counts, err := h.operations.CountByAlgorithm(r.Context(), visitor)
	if err != nil {
		h.log.Error("count history", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, http.StatusOK, "history.html", HistoryPage{
		BasePage:   newBasePage(r, "history"),
		Operations: ops,
		Counts:     counts,
	})
}
