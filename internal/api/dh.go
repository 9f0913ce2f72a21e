package api

import (
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/cryptolab/internal/cipher"
)

type dhAPIHandler struct {
	ops *operations
}

func registerDHRoutes(r chi.Router, ops *operations) {
	h := &dhAPIHandler{ops: ops}
	r.Get("/dh/defaults", h.Defaults)
	r.Post("/dh/public-key", h.PublicKey)
	r.Post("/dh/shared-secret", h.SharedSecret)
}

// Defaults returns the group the web page starts with.
//
// @Summary      Default Diffie-Hellman group
// @Tags         Diffie-Hellman
// @Produce      json
// @Success      200  {object}  DHParams
// @Router       /dh/defaults [get]
func (h *dhAPIHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DHParams{P: cipher.DefaultDHPrime, G: cipher.DefaultDHGenerator})
}

// PublicKey computes g^private mod p, choosing a private key when none is given.
//
// @Summary      Diffie-Hellman public key
// @Tags         Diffie-Hellman
// @Accept       json
// @Produce      json
// @Param        body  body      DHPublicKeyRequest  true  "Group and optional private key"
// @Success      200   {object}  DHPublicKeyResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /dh/public-key [post]
func (h *dhAPIHandler) PublicKey(w http.ResponseWriter, r *http.Request) {
	var req DHPublicKeyRequest
	if !h.ops.decode(w, r, &req) {
		return
	}
	var priv int64
	if req.Private != nil {
		priv = *req.Private
	} else {
		priv = cipher.DHPrivateKey(h.ops.rng)
	}

	var pub *big.Int
	_, err := h.ops.run(r, "dh", actionPublicKey, 0, func() (string, error) {
		var err error
		pub, err = cipher.DHPublicKey(big.NewInt(req.G), big.NewInt(req.P), big.NewInt(priv))
		if err != nil {
			return "", err
		}
		return pub.String(), nil
	})
	if err != nil {
		writeCipherError(w, h.ops.log, err)
		return
	}
	writeJSON(w, http.StatusOK, DHPublicKeyResponse{Private: priv, Public: pub.Int64()})
}

// SharedSecret computes public^private mod p.
//
// @Summary      Diffie-Hellman shared secret
// @Tags         Diffie-Hellman
// @Accept       json
// @Produce      json
// @Param        body  body      DHSharedSecretRequest  true  "Prime, the peer's public key and own private key"
// @Success      200   {object}  SecretResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /dh/shared-secret [post]
func (h *dhAPIHandler) SharedSecret(w http.ResponseWriter, r *http.Request) {
	var req DHSharedSecretRequest
	if !h.ops.decode(w, r, &req) {
		return
	}
	var secret *big.Int
	_, err := h.ops.run(r, "dh", actionSharedSecret, 0, func() (string, error) {
		var err error
		secret, err = cipher.DHSharedSecret(big.NewInt(req.Public), big.NewInt(req.P), big.NewInt(req.Private))
		if err != nil {
			return "", err
		}
		return secret.String(), nil
	})
	if err != nil {
		writeCipherError(w, h.ops.log, err)
		return
	}
	writeJSON(w, http.StatusOK, SecretResponse{Secret: secret.Int64()})
}
