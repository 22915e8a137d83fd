package cryptox

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hecreatescode/versekeeper/internal/common"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password)
	key2 := DeriveKey(password)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != 32 {
		t.Errorf("expected 32-byte key, got %d", len(key1))
	}
}

func TestDeriveKey_DifferentPasswords(t *testing.T) {
	key1 := DeriveKey([]byte("password-1"))
	key2 := DeriveKey([]byte("password-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different keys for different passwords, got same")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"plain text", "roses are red"},
		{"empty content", ""},
		{"unicode", "стихи о любви — 詩 🌹"},
		{"multiline", "line one\nline two\n\nline four"},
	}

	password := []byte("correct horse")

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			blob, err := Encrypt(tc.content, password)
			require.NoError(t, err)

			got, err := Decrypt(blob, password)
			require.NoError(t, err)
			assert.Equal(t, tc.content, got)
		})
	}
}

func TestDecrypt_WrongPassword(t *testing.T) {
	blob, err := Encrypt("my secret poem", []byte("password-1"))
	require.NoError(t, err)

	_, err = Decrypt(blob, []byte("password-2"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDecryptionFailed))
}

func TestDecrypt_TamperedBlob(t *testing.T) {
	password := []byte("pw")
	blob, err := Encrypt("tamper me", password)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	_, err = Decrypt(tampered, password)
	assert.True(t, errors.Is(err, common.ErrDecryptionFailed))
}

func TestDecrypt_MalformedBlob(t *testing.T) {
	_, err := Decrypt("not base64 at all!!!", []byte("pw"))
	assert.True(t, errors.Is(err, common.ErrDecryptionFailed))

	// valid base64 but shorter than one nonce
	short := base64.StdEncoding.EncodeToString([]byte("tiny"))
	_, err = Decrypt(short, []byte("pw"))
	assert.True(t, errors.Is(err, common.ErrDecryptionFailed))
}

func TestEncrypt_FreshNonce(t *testing.T) {
	password := []byte("pw")

	blob1, err := Encrypt("same content", password)
	require.NoError(t, err)
	blob2, err := Encrypt("same content", password)
	require.NoError(t, err)

	assert.NotEqual(t, blob1, blob2)
}
