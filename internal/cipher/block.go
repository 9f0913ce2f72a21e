package cipher

import (
	"bytes"
	"crypto/aes"
	gocipher "crypto/cipher"
	"crypto/des"
	"encoding/base64"
	"fmt"
)

// AES is AES-128 in ECB mode with PKCS#7 padding. Keys are exactly 16 bytes
// and ciphertext travels as standard base64.
type AES struct{}

func (AES) Name() string { return "aes" }

func (AES) Encrypt(text, key string) (string, error) {
	return blockEncrypt(text, key, aes.BlockSize, newAES)
}

func (AES) Decrypt(text, key string) (string, error) {
	return blockDecrypt(text, key, aes.BlockSize, newAES)
}

// DES is single DES in ECB mode with PKCS#7 padding. Keys are exactly 8 bytes.
type DES struct{}

func (DES) Name() string { return "des" }

func (DES) Encrypt(text, key string) (string, error) {
	return blockEncrypt(text, key, des.BlockSize, des.NewCipher)
}

func (DES) Decrypt(text, key string) (string, error) {
	return blockDecrypt(text, key, des.BlockSize, des.NewCipher)
}

func newAES(key []byte) (gocipher.Block, error) { return aes.NewCipher(key) }

type blockFactory func(key []byte) (gocipher.Block, error)

func blockFor(key string, size int, newBlock blockFactory) (gocipher.Block, error) {
	if len(key) != size {
		return nil, fmt.Errorf("%w: key must be exactly %d characters long", ErrInvalidKey, size)
	}
	b, err := newBlock([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return b, nil
}

func blockEncrypt(text, key string, size int, newBlock blockFactory) (string, error) {
	b, err := blockFor(key, size, newBlock)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyInput
	}
	return base64.StdEncoding.EncodeToString(ECBEncrypt(b, []byte(text))), nil
}

func blockDecrypt(text, key string, size int, newBlock blockFactory) (string, error) {
	b, err := blockFor(key, size, newBlock)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyInput
	}
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return "", fmt.Errorf("%w: not valid base64", ErrCiphertext)
	}
	plain, err := ECBDecrypt(b, data)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// ECBEncrypt pads plain with PKCS#7 and encrypts each block independently.
func ECBEncrypt(b gocipher.Block, plain []byte) []byte {
	data := pkcs7Pad(plain, b.BlockSize())
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += b.BlockSize() {
		b.Encrypt(out[i:], data[i:])
	}
	return out
}

// ECBDecrypt decrypts each block of data and strips the PKCS#7 padding.
func ECBDecrypt(b gocipher.Block, data []byte) ([]byte, error) {
	size := b.BlockSize()
	if len(data) == 0 || len(data)%size != 0 {
		return nil, fmt.Errorf("%w: length must be a multiple of %d", ErrCiphertext, size)
	}
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += size {
		b.Decrypt(out[i:], data[i:])
	}
	return pkcs7Unpad(out, size)
}

func pkcs7Pad(data []byte, size int) []byte {
	n := size - len(data)%size
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, size int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > size || n > len(data) {
		return nil, ErrPadding
	}
	for _, c := range data[len(data)-n:] {
		if int(c) != n {
			return nil, ErrPadding
		}
	}
	return data[:len(data)-n], nil
}
