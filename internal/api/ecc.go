package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/cryptolab/internal/cipher"
)

type eccAPIHandler struct {
	ops *operations
}

func registerECCRoutes(r chi.Router, ops *operations) {
	h := &eccAPIHandler{ops: ops}
	r.Post("/ecc/keys", h.GenerateKey)
	r.Post("/ecdh/shared-secret", h.SharedSecret)
	r.Post("/ecies/encrypt", h.Encrypt)
	r.Post("/ecies/decrypt", h.Decrypt)
}

// GenerateKey returns a key pair on the toy curve y^2 = x^3 + 17 mod 3851.
//
// @Summary      Generate an ECC key pair
// @Tags         ECC
// @Produce      json
// @Success      200  {object}  cipher.ECCKey
// @Router       /ecc/keys [post]
func (h *eccAPIHandler) GenerateKey(w http.ResponseWriter, r *http.Request) {
	var key cipher.ECCKey
	_, _ = h.ops.run(r, "ecdh", actionKeygen, 0, func() (string, error) {
		key = cipher.GenerateECCKey(h.ops.rng)
		return "", nil
	})
	writeJSON(w, http.StatusOK, key)
}

// SharedSecret returns the x coordinate of private*public.
//
// @Summary      ECDH shared secret
// @Tags         ECC
// @Accept       json
// @Produce      json
// @Param        body  body      ECDHRequest  true  "Own private key and the peer's public point"
// @Success      200   {object}  SecretResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /ecdh/shared-secret [post]
func (h *eccAPIHandler) SharedSecret(w http.ResponseWriter, r *http.Request) {
	var req ECDHRequest
	if !h.ops.decode(w, r, &req) {
		return
	}
	var secret int64
	_, err := h.ops.run(r, "ecdh", actionSharedSecret, 0, func() (string, error) {
		var err error
		secret, err = cipher.ECDHSharedSecret(req.Private, req.Public)
		return strconv.FormatInt(secret, 10), err
	})
	if err != nil {
		writeCipherError(w, h.ops.log, err)
		return
	}
	writeJSON(w, http.StatusOK, SecretResponse{Secret: secret})
}

// Encrypt encrypts text to a public point.
//
// @Summary      ECIES encrypt
// @Description  Output is "Rx,Ry,<base64 AES ciphertext>".
// @Tags         ECC
// @Accept       json
// @Produce      json
// @Param        body  body      ECIESEncryptRequest  true  "Plaintext and recipient public point"
// @Success      200   {object}  ResultResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /ecies/encrypt [post]
func (h *eccAPIHandler) Encrypt(w http.ResponseWriter, r *http.Request) {
	var req ECIESEncryptRequest
	if !h.ops.decode(w, r, &req) {
		return
	}
	out, err := h.ops.run(r, "ecies", actionEncrypt, len(req.Text), func() (string, error) {
		return cipher.ECIESEncrypt(h.ops.rng, req.Text, req.Public)
	})
	if err != nil {
		writeCipherError(w, h.ops.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ResultResponse{Algorithm: "ecies", Action: actionEncrypt, Result: out})
}

// Decrypt reverses Encrypt with the recipient's private key.
//
// @Summary      ECIES decrypt
// @Tags         ECC
// @Accept       json
// @Produce      json
// @Param        body  body      ECIESDecryptRequest  true  "Ciphertext and private key"
// @Success      200   {object}  ResultResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /ecies/decrypt [post]
func (h *eccAPIHandler) Decrypt(w http.ResponseWriter, r *http.Request) {
	var req ECIESDecryptRequest
	if !h.ops.decode(w, r, &req) {
		return
	}
	out, err := h.ops.run(r, "ecies", actionDecrypt, len(req.Text), func() (string, error) {
		return cipher.ECIESDecrypt(req.Text, req.Private)
	})
	if err != nil {
		writeCipherError(w, h.ops.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ResultResponse{Algorithm: "ecies", Action: actionDecrypt, Result: out})
}
