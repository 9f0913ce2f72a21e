package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/joestump/cryptolab/internal/metrics"
)

// EmbeddedStaticDir is reported in place of a path when static assets are
// served from the binary.
const EmbeddedStaticDir = "web/static (embedded)"

const staticDebugFormat = "Flask is looking for the static folder at this location on your computer: <br><strong>%s</strong>"

// DebugHandler reports where static assets are served from.
type DebugHandler struct {
	staticDir string
	log       *zap.Logger
}

// NewDebugHandler creates a DebugHandler. staticDir is the absolute static
// directory, or empty for the embedded assets.
func NewDebugHandler(staticDir string, log *zap.Logger) *DebugHandler {
	if staticDir == "" {
		staticDir = EmbeddedStaticDir
	}
	return &DebugHandler{staticDir: staticDir, log: log}
}

// Static serves GET /debug-static. The path is not checked for existence.
func (h *DebugHandler) Static(w http.ResponseWriter, r *http.Request) {
	metrics.DebugStaticRequestsTotal.Inc()

	rule := strings.Repeat("=", 60)
	h.log.Info(rule + " static folder debug")
	h.log.Info("static folder", zap.String("path", h.staticDir))
	h.log.Info(rule)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, staticDebugFormat, template.HTMLEscapeString(h.staticDir))
}
