package api

import (
	"github.com/joestump/cryptolab/internal/catalog"
	"github.com/joestump/cryptolab/internal/cipher"
	"github.com/joestump/cryptolab/internal/store"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// --- Catalog ---

// AlgorithmListResponse lists the catalog.
type AlgorithmListResponse struct {
	Algorithms []catalog.Algorithm `json:"algorithms"`
}

// --- Text ciphers ---

// CipherRequest is the body for POST /ciphers/{algorithm}/encrypt and /decrypt.
type CipherRequest struct {
	Text string `json:"text"`
	Key  string `json:"key" validate:"required"`
}

// CipherResponse carries the result of a text cipher. On encrypt, Visual holds
// the rail-fence zig-zag rows or the rows of the Playfair key square.
type CipherResponse struct {
	Algorithm string   `json:"algorithm"`
	Action    string   `json:"action"`
	Result    string   `json:"result"`
	Visual    []string `json:"visual,omitempty"`
}

// --- RSA ---

// RSAEncryptRequest is the body for POST /rsa/encrypt.
type RSAEncryptRequest struct {
	Text string `json:"text" validate:"required"`
	N    int64  `json:"n" validate:"required"`
	E    int64  `json:"e" validate:"required"`
}

// RSADecryptRequest is the body for POST /rsa/decrypt.
type RSADecryptRequest struct {
	Text string `json:"text" validate:"required"`
	N    int64  `json:"n" validate:"required"`
	D    int64  `json:"d" validate:"required"`
}

// --- ECC ---

// ECDHRequest is the body for POST /ecdh/shared-secret.
type ECDHRequest struct {
	Private int64        `json:"private" validate:"required"`
	Public  cipher.Point `json:"public"`
}

// ECIESEncryptRequest is the body for POST /ecies/encrypt.
type ECIESEncryptRequest struct {
	Text   string       `json:"text" validate:"required"`
	Public cipher.Point `json:"public"`
}

// ECIESDecryptRequest is the body for POST /ecies/decrypt.
type ECIESDecryptRequest struct {
	Text    string `json:"text" validate:"required"`
	Private int64  `json:"private" validate:"required"`
}

// --- Diffie-Hellman ---

// DHParams is a DH group.
type DHParams struct {
	P int64 `json:"p"`
	G int64 `json:"g"`
}

// DHPublicKeyRequest is the body for POST /dh/public-key. A random private
// key is chosen when Private is omitted.
type DHPublicKeyRequest struct {
	P       int64  `json:"p" validate:"required"`
	G       int64  `json:"g" validate:"required"`
	Private *int64 `json:"private,omitempty"`
}

// DHPublicKeyResponse is one party's key pair.
type DHPublicKeyResponse struct {
	Private int64 `json:"private"`
	Public  int64 `json:"public"`
}

// DHSharedSecretRequest is the body for POST /dh/shared-secret.
type DHSharedSecretRequest struct {
	P       int64 `json:"p" validate:"required"`
	Public  int64 `json:"public" validate:"required"`
	Private int64 `json:"private" validate:"required"`
}

// SecretResponse carries an agreed shared secret.
type SecretResponse struct {
	Secret int64 `json:"secret"`
}

// ResultResponse carries the output of an RSA or ECIES operation.
type ResultResponse struct {
	Algorithm string `json:"algorithm"`
	Action    string `json:"action"`
	Result    string `json:"result"`
}

// --- History ---

// HistoryResponse is one page of the visitor's operations, newest first.
type HistoryResponse struct {
	Operations []*store.Operation `json:"operations"`
	NextCursor *string            `json:"next_cursor"`
}

// HistorySummaryResponse counts the visitor's operations per algorithm.
type HistorySummaryResponse struct {
	Algorithms []store.AlgorithmCount `json:"algorithms"`
}
