package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/joestump/cryptolab/internal/cipher"
)

// writeError writes a JSON error response with the given HTTP status code.
func writeError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message, Code: code})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeCipherError maps algorithm errors to 422; anything else is a 500.
func writeCipherError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, cipher.ErrEmptyInput),
		errors.Is(err, cipher.ErrInvalidKey),
		errors.Is(err, cipher.ErrCiphertext),
		errors.Is(err, cipher.ErrPadding),
		errors.Is(err, cipher.ErrNotOnCurve),
		errors.Is(err, cipher.ErrPointAtInfinity):
		writeError(w, http.StatusUnprocessableEntity, err.Error(), "UNPROCESSABLE")
	default:
		log.Error("operation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
	}
}
