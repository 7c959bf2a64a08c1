package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

var (
	// ErrInvalidKeyLength is returned when the key is not 16, 24 or 32 bytes.
	ErrInvalidKeyLength = errors.New("encrypter: key must be 16, 24 or 32 bytes")
	// ErrCiphertextTooShort is returned when the ciphertext is shorter than the nonce.
	ErrCiphertextTooShort = errors.New("encrypter: ciphertext too short")
)

// IEncrypter encrypts and decrypts small secrets such as API credentials.
type IEncrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

type encrypterImpl struct {
	key []byte
}

// New creates an AES-GCM encrypter from the given key.
func New(key string) (IEncrypter, error) {
	k := []byte(key)
	switch len(k) {
	case 16, 24, 32:
	default:
		return nil, ErrInvalidKeyLength
	}
	return &encrypterImpl{key: k}, nil
}

// Encrypt encrypts the plaintext and returns a base64 encoded string
// with the nonce prepended.
func (e *encrypterImpl) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt.
func (e *encrypterImpl) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	if len(raw) < gcm.NonceSize() {
		return "", ErrCiphertextTooShort
	}

	nonce, sealed := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
