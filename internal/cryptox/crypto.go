// Package cryptox implements password-based symmetric encryption of poem
// content. Ciphertext is encoded as an opaque string so the storage layer
// cannot tell it apart from plaintext.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/hecreatescode/versekeeper/internal/common"
)

const (
	// keyIterations and keySalt must never change: blobs encrypted with
	// earlier builds would otherwise stop decrypting. A fixed salt weakens
	// protection against precomputed-table attacks, which is acceptable for
	// a single-user local vault with no password database to leak.
	keyIterations = 100000
	keyLen        = 32
	nonceSize     = 12
)

var keySalt = []byte("versekeeper-private-poems")

// DeriveKey derives a 256-bit AES key from the user's password using
// PBKDF2 with SHA-256, the fixed salt, and 100000 iterations.
//
// The same password always yields the same key; the caller should wipe the
// returned slice with common.WipeByteArray when done.
func DeriveKey(password []byte) []byte {
	return pbkdf2.Key(password, keySalt, keyIterations, keyLen, sha256.New)
}

// Encrypt encrypts content under the given password with AES-256-GCM.
//
// A fresh random 12-byte nonce is generated per call, so encrypting the
// same content twice produces different blobs. The result is
// base64(nonce ‖ ciphertext ‖ tag), suitable for storing in a string field.
//
// Example:
//
//	blob, err := cryptox.Encrypt("my private poem", []byte("passw0rd"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	poem.Content = blob
//	poem.IsEncrypted = true
func Encrypt(content string, password []byte) (string, error) {
	key := DeriveKey(password)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrEncryptionFailed, err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrEncryptionFailed, err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrEncryptionFailed, err)
	}

	sealed := aesgcm.Seal(nil, nonce, []byte(content), nil)

	out := make([]byte, 0, len(nonce)+len(sealed))
	out = append(out, nonce...)
	out = append(out, sealed...)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt: base64-decode, split off the 12-byte nonce,
// derive the key from password, then authenticate-and-decrypt.
//
// A wrong password or a tampered blob fails the GCM authentication check
// and surfaces as common.ErrDecryptionFailed; corrupted plaintext is never
// returned silently.
func Decrypt(blob string, password []byte) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrDecryptionFailed, err)
	}
	if len(raw) < nonceSize {
		return "", common.ErrDecryptionFailed
	}

	nonce, sealed := raw[:nonceSize], raw[nonceSize:]

	key := DeriveKey(password)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrDecryptionFailed, err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrDecryptionFailed, err)
	}

	plaintext, err := aesgcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}
