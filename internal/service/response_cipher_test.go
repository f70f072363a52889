package service

import (
	"bytes"
	"testing"
	"time"

	"brit-matcher/internal/core/domain"
	"brit-matcher/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStretchWalletID_Deterministic(t *testing.T) {
	a := StretchWalletID(testWalletID(1))
	b := StretchWalletID(testWalletID(1))
	c := StretchWalletID(testWalletID(2))

	assert.Len(t, a, stretchKeyLen)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestDeriveResponseKey_BindsSession(t *testing.T) {
	k1, err := deriveResponseKey(testWalletID(1), bytes.Repeat([]byte{1}, 16))
	require.NoError(t, err)
	k2, err := deriveResponseKey(testWalletID(1), bytes.Repeat([]byte{2}, 16))
	require.NoError(t, err)

	assert.Len(t, k1, responseKeyLen)
	assert.NotEqual(t, k1, k2)

	_, err = deriveResponseKey(testWalletID(1), []byte{1, 2, 3})
	assert.Error(t, err)
}

func TestAESResponseCipher_RoundTripByteForByte(t *testing.T) {
	c := NewAESResponseCipher()
	walletID := testWalletID(7)
	sessionKey := testSessionKey()

	replay := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	plaintext := domain.NewMatcherResponse(&replay, []domain.Address{"1B", "1A"}).Serialize()

	ciphertext, err := c.Encrypt(plaintext, walletID, sessionKey)
	require.NoError(t, err)
	assert.Equal(t, responseFormatVersion, ciphertext[0])
	assert.NotContains(t, string(ciphertext), "1A")

	decrypted, err := c.Decrypt(ciphertext, walletID, sessionKey)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestAESResponseCipher_FreshNoncePerCall(t *testing.T) {
	c := NewAESResponseCipher()
	a, err := c.Encrypt([]byte("same"), testWalletID(1), testSessionKey())
	require.NoError(t, err)
	b, err := c.Encrypt([]byte("same"), testWalletID(1), testSessionKey())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestAESResponseCipher_DecryptRejects(t *testing.T) {
	c := NewAESResponseCipher()
	walletID := testWalletID(3)
	sessionKey := testSessionKey()

	ciphertext, err := c.Encrypt([]byte("1\n-1"), walletID, sessionKey)
	require.NoError(t, err)

	tampered := append([]byte(nil), ciphertext...)
	tampered[len(tampered)-1] ^= 0xff

	badVersion := append([]byte(nil), ciphertext...)
	badVersion[0] = 0x02

	tests := []struct {
		name       string
		payload    []byte
		walletID   domain.WalletID
		sessionKey []byte
	}{
		{"wrong wallet", ciphertext, testWalletID(4), sessionKey},
		{"wrong session", ciphertext, walletID, bytes.Repeat([]byte{0x01}, 16)},
		{"tampered", tampered, walletID, sessionKey},
		{"bad version", badVersion, walletID, sessionKey},
		{"too short", ciphertext[:5], walletID, sessionKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.payload, tt.walletID, tt.sessionKey)
			require.Error(t, err)
			assert.True(t, apperror.HasCode(err, apperror.CodeDecryption))
		})
	}
}

func TestAESResponseCipher_BadSessionKeyIsKeyDerivationError(t *testing.T) {
	c := NewAESResponseCipher()
	_, err := c.Encrypt([]byte("x"), testWalletID(1), []byte("short"))
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeKeyDerivation))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, assert.AnError }

func TestAESResponseCipher_NonceFailureIsEncryptionError(t *testing.T) {
	c := &AESResponseCipher{rand: failingReader{}}
	_, err := c.Encrypt([]byte("x"), testWalletID(1), testSessionKey())
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeEncryption))
}
