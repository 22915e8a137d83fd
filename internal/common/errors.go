// Package common defines shared constants and sentinel errors used across
// the versekeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound  = errors.New("not found")
	ErrorMissingID = errors.New("entity has no id")

	// Encryption service errors. Decryption failure covers both a wrong
	// password and a tampered blob; AES-GCM cannot tell them apart.
	ErrEncryptionFailed = errors.New("failed to encrypt content")
	ErrDecryptionFailed = errors.New("failed to decrypt content - wrong password?")

	// Backup/import errors (internal flow control; ImportAll reports a
	// boolean to callers, this sentinel carries the cause in logs).
	ErrInvalidSnapshot = errors.New("invalid backup snapshot")
)
