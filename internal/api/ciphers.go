package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/cryptolab/internal/cipher"
)

const (
	actionEncrypt      = "encrypt"
	actionDecrypt      = "decrypt"
	actionKeygen       = "keygen"
	actionPublicKey    = "public-key"
	actionSharedSecret = "shared-secret"
)

type ciphersAPIHandler struct {
	ops *operations
}

func registerCipherRoutes(r chi.Router, ops *operations) {
	h := &ciphersAPIHandler{ops: ops}
	r.Post("/ciphers/{algorithm}/encrypt", h.Encrypt)
	r.Post("/ciphers/{algorithm}/decrypt", h.Decrypt)
}

// Encrypt runs a text cipher forward.
//
// @Summary      Encrypt with a text cipher
// @Description  Supported algorithms: railfence, vigenere, playfair, aes, des. Rail fence and Playfair responses include a grid.
// @Tags         Ciphers
// @Accept       json
// @Produce      json
// @Param        algorithm  path      string         true  "Algorithm name"
// @Param        body       body      CipherRequest  true  "Text and key"
// @Success      200        {object}  CipherResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      422        {object}  ErrorResponse
// @Router       /ciphers/{algorithm}/encrypt [post]
func (h *ciphersAPIHandler) Encrypt(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, actionEncrypt)
}

// Decrypt runs a text cipher backward.
//
// @Summary      Decrypt with a text cipher
// @Tags         Ciphers
// @Accept       json
// @Produce      json
// @Param        algorithm  path      string         true  "Algorithm name"
// @Param        body       body      CipherRequest  true  "Ciphertext and key"
// @Success      200        {object}  CipherResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      422        {object}  ErrorResponse
// @Router       /ciphers/{algorithm}/decrypt [post]
func (h *ciphersAPIHandler) Decrypt(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, actionDecrypt)
}

func (h *ciphersAPIHandler) handle(w http.ResponseWriter, r *http.Request, action string) {
	c, err := cipher.Lookup(chi.URLParam(r, "algorithm"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error(), "NOT_FOUND")
		return
	}

	var req CipherRequest
	if !h.ops.decode(w, r, &req) {
		return
	}

	fn := c.Encrypt
	if action == actionDecrypt {
		fn = c.Decrypt
	}
	out, err := h.ops.run(r, c.Name(), action, len(req.Text), func() (string, error) {
		return fn(req.Text, req.Key)
	})
	if err != nil {
		writeCipherError(w, h.ops.log, err)
		return
	}

	resp := CipherResponse{Algorithm: c.Name(), Action: action, Result: out}
	if action == actionEncrypt {
		resp.Visual = visualFor(c.Name(), req.Text, req.Key)
	}
	writeJSON(w, http.StatusOK, resp)
}

// visualFor returns the grid shown next to an encryption, if the algorithm has
// one. The key has already been accepted by Encrypt.
func visualFor(algorithm, text, key string) []string {
	switch algorithm {
	case "railfence":
		rails, _ := strconv.Atoi(strings.TrimSpace(key))
		return cipher.RailFencePattern(text, rails)
	case "playfair":
		sq := cipher.PlayfairSquare(key)
		return sq[:]
	}
	return nil
}
