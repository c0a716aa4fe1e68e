// Package answercrypt seals sensitive free-text answers at rest.
//
// Ciphertexts use XChaCha20-Poly1305 with a fresh 24-byte nonce per call and
// the envelope "v1.<base64url(nonce)>.<base64url(sealed)>". The version prefix
// is authenticated as additional data, so rewriting it fails decryption.
package answercrypt

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"

	dErrors "radar/pkg/domain-errors"
)

const envelopeVersion = "v1"

// Strict decoding rejects non-zero trailing bits, so every envelope byte is
// covered by the tamper check.
var b64 = base64.RawURLEncoding.Strict()

// KeyProvider supplies the 32-byte answer key. Implementations must not log it.
type KeyProvider interface {
	Key() ([]byte, error)
}

// StaticKeyProvider decodes a base64 key taken from configuration.
type StaticKeyProvider struct {
	encoded string
}

func NewStaticKeyProvider(encoded string) StaticKeyProvider {
	return StaticKeyProvider{encoded: encoded}
}

func (p StaticKeyProvider) Key() ([]byte, error) {
	raw := strings.TrimSpace(p.encoded)
	if raw == "" {
		return nil, dErrors.New(dErrors.CodeConfiguration, "answer encryption key is not configured")
	}
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		// Accept URL-safe keys as produced by `radarctl keygen --url`.
		key, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(raw, "="))
		if err != nil {
			return nil, dErrors.New(dErrors.CodeConfiguration, "answer encryption key is not valid base64")
		}
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, dErrors.New(dErrors.CodeConfiguration,
			fmt.Sprintf("answer encryption key must be %d bytes", chacha20poly1305.KeySize))
	}
	return key, nil
}

// Cipher encrypts and decrypts answer text. Safe for concurrent use.
type Cipher struct {
	aead interface {
		Seal(dst, nonce, plaintext, additionalData []byte) []byte
		Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
		NonceSize() int
	}
}

// New builds a Cipher, failing fast with CodeConfiguration when the key is
// missing or malformed.
func New(keys KeyProvider) (*Cipher, error) {
	key, err := keys.Key()
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeConfiguration, "invalid answer encryption key")
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext. Two calls with the same input differ.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate nonce")
	}
	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), []byte(envelopeVersion))
	return envelopeVersion + "." + b64.EncodeToString(nonce) + "." + b64.EncodeToString(sealed), nil
}

// Decrypt opens a ciphertext produced by Encrypt. Any malformed envelope,
// tampering or key mismatch is CodeDecryptionFailed.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	parts := strings.Split(ciphertext, ".")
	if len(parts) != 3 || parts[0] != envelopeVersion {
		return "", decryptionFailed(nil)
	}
	nonce, err := b64.DecodeString(parts[1])
	if err != nil || len(nonce) != c.aead.NonceSize() {
		return "", decryptionFailed(err)
	}
	sealed, err := b64.DecodeString(parts[2])
	if err != nil {
		return "", decryptionFailed(err)
	}
	plain, err := c.aead.Open(nil, nonce, sealed, []byte(parts[0]))
	if err != nil {
		return "", decryptionFailed(err)
	}
	return string(plain), nil
}

func decryptionFailed(err error) error {
	return dErrors.Wrap(err, dErrors.CodeDecryptionFailed, "answer could not be decrypted")
}

// GenerateKey returns a new random key, base64 encoded for configuration.
func GenerateKey() (string, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}
