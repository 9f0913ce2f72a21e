package api

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/joestump/cryptolab/internal/session"
	"github.com/joestump/cryptolab/internal/store"
)

type historyAPIHandler struct {
	sessions   *scs.SessionManager
	operations *store.OperationStore
	log        *zap.Logger
}

func registerHistoryRoutes(r chi.Router, sessions *scs.SessionManager, operations *store.OperationStore, log *zap.Logger) {
	h := &historyAPIHandler{sessions: sessions, operations: operations, log: log}
	r.Get("/history", h.List)
	r.Get("/history/summary", h.Summary)
	r.Get("/history/{id}", h.Get)
}

// List returns the visitor's operations, newest first.
//
// @Summary      List operation history
// @Description  Inputs, keys and outputs are never stored; entries carry sizes, status and timing.
// @Tags         History
// @Produce      json
// @Param        limit   query     int     false  "Page size (default 50, max 200)"
// @Param        cursor  query     string  false  "Opaque cursor from next_cursor"
// @Success      200     {object}  HistoryResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /history [get]
func (h *historyAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parseHistoryPage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	}
	limit := page.Limit
	visitor := session.VisitorID(r.Context(), h.sessions)

	// Fetch one extra row to learn whether another page exists.
	ops, err := h.operations.ListByVisitor(r.Context(), visitor, page.Before, limit+1)
	if err != nil {
		h.log.Error("list history", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := HistoryResponse{Operations: make([]*store.Operation, 0, limit)}
	if len(ops) > limit {
		ops = ops[:limit]
		next := nextCursor(ops[len(ops)-1].ID)
		resp.NextCursor = &next
	}
	resp.Operations = append(resp.Operations, ops...)
	writeJSON(w, http.StatusOK, resp)
}

// Summary counts the visitor's operations per algorithm.
//
// @Summary      Operation counts per algorithm
// @Tags         History
// @Produce      json
// @Success      200  {object}  HistorySummaryResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /history/summary [get]
func (h *historyAPIHandler) Summary(w http.ResponseWriter, r *http.Request) {
	counts, err := h.operations.CountByAlgorithm(r.Context(), session.VisitorID(r.Context(), h.sessions))
	if err != nil {
		h.log.Error("count history", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	if counts == nil {
		counts = []store.AlgorithmCount{}
	}
	writeJSON(w, http.StatusOK, HistorySummaryResponse{Algorithms: counts})
}

// Get returns one of the visitor's operations. Other visitors' operations
// are reported as not found.
//
// @Summary      Get an operation
// @Tags         History
// @Produce      json
// @Param        id   path      string  true  "Operation ID"
// @Success      200  {object}  store.Operation
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /history/{id} [get]
func (h *historyAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	op, err := h.operations.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "operation not found", "NOT_FOUND")
		return
	}
	if err != nil {
		h.log.Error("get operation", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	if op.VisitorID != session.VisitorID(r.Context(), h.sessions) {
		writeError(w, http.StatusNotFound, "operation not found", "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, op)
}
