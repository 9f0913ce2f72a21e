package api

import (
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/cryptolab/internal/cipher"
)

type rsaAPIHandler struct {
	ops *operations
}

func registerRSARoutes(r chi.Router, ops *operations) {
	h := &rsaAPIHandler{ops: ops}
	r.Post("/rsa/keys", h.GenerateKey)
	r.Post("/rsa/encrypt", h.Encrypt)
	r.Post("/rsa/decrypt", h.Decrypt)
}

// GenerateKey returns a fresh toy key pair.
//
// @Summary      Generate an RSA key pair
// @Description  Primes are drawn from [50,150); the keys are for teaching only.
// @Tags         RSA
// @Produce      json
// @Success      200  {object}  cipher.RSAKey
// @Router       /rsa/keys [post]
func (h *rsaAPIHandler) GenerateKey(w http.ResponseWriter, r *http.Request) {
	var key cipher.RSAKey
	_, _ = h.ops.run(r, "rsa", actionKeygen, 0, func() (string, error) {
		key = cipher.GenerateRSAKey(h.ops.rng)
		return "", nil
	})
	writeJSON(w, http.StatusOK, key)
}

// Encrypt encrypts each byte of the text under (n, e).
//
// @Summary      RSA encrypt
// @Tags         RSA
// @Accept       json
// @Produce      json
// @Param        body  body      RSAEncryptRequest  true  "Plaintext and public key"
// @Success      200   {object}  ResultResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /rsa/encrypt [post]
func (h *rsaAPIHandler) Encrypt(w http.ResponseWriter, r *http.Request) {
	var req RSAEncryptRequest
	if !h.ops.decode(w, r, &req) {
		return
	}
	out, err := h.ops.run(r, "rsa", actionEncrypt, len(req.Text), func() (string, error) {
		return cipher.RSAEncrypt(req.Text, big.NewInt(req.N), big.NewInt(req.E))
	})
	if err != nil {
		writeCipherError(w, h.ops.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ResultResponse{Algorithm: "rsa", Action: actionEncrypt, Result: out})
}

// Decrypt reverses Encrypt with the private exponent.
//
// @Summary      RSA decrypt
// @Tags         RSA
// @Accept       json
// @Produce      json
// @Param        body  body      RSADecryptRequest  true  "Comma-separated ciphertext and private key"
// @Success      200   {object}  ResultResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /rsa/decrypt [post]
func (h *rsaAPIHandler) Decrypt(w http.ResponseWriter, r *http.Request) {
	var req RSADecryptRequest
	if !h.ops.decode(w, r, &req) {
		return
	}
	out, err := h.ops.run(r, "rsa", actionDecrypt, len(req.Text), func() (string, error) {
		return cipher.RSADecrypt(req.Text, big.NewInt(req.N), big.NewInt(req.D))
	})
	if err != nil {
		writeCipherError(w, h.ops.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ResultResponse{Algorithm: "rsa", Action: actionDecrypt, Result: out})
}
