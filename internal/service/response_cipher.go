package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"brit-matcher/internal/core/domain"
	"brit-matcher/pkg/apperror"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// Wallet id stretching parameters. Changing any of them breaks every deployed Payer.
const (
	stretchTime    = 1
	stretchMemory  = 16 * 1024 // 16MB
	stretchThreads = 1
	stretchKeyLen  = 32

	responseKeyLen        = 32
	responseFormatVersion = byte(0x01)
)

var (
	walletIDSalt    = []byte("brit-wallet-identifier")
	responseKeyInfo = []byte("brit matcher response v1")
)

// StretchWalletID derives a full-width key from a wallet identifier with Argon2id.
func StretchWalletID(walletID domain.WalletID) []byte {
	return argon2.IDKey(walletID[:], walletIDSalt, stretchTime, stretchMemory, stretchThreads, stretchKeyLen)
}

// deriveResponseKey binds the stretched wallet key to one session with HKDF-SHA256.
func deriveResponseKey(walletID domain.WalletID, sessionKey []byte) ([]byte, error) {
	if len(sessionKey) < domain.MinSessionKeySize || len(sessionKey) > domain.MaxSessionKeySize {
		return nil, fmt.Errorf("session key must be %d to %d bytes, got %d",
			domain.MinSessionKeySize, domain.MaxSessionKeySize, len(sessionKey))
	}

	kdf := hkdf.New(sha256.New, StretchWalletID(walletID), sessionKey, responseKeyInfo)
	key := make([]byte, responseKeyLen)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("expanding response key: %w", err)
	}
	return key, nil
}

// AESResponseCipher implements ports.ResponseCipher with AES-256-GCM.
// Output layout: version(1) || nonce(12) || ciphertext+tag. The wallet id is authenticated as AAD.
type AESResponseCipher struct {
	rand io.Reader
}

// NewAESResponseCipher creates a response cipher drawing nonces from crypto/rand.
func NewAESResponseCipher() *AESResponseCipher {
	return &AESResponseCipher{rand: rand.Reader}
}

func (c *AESResponseCipher) gcm(walletID domain.WalletID, sessionKey []byte) (cipher.AEAD, error) {
	key, err := deriveResponseKey(walletID, sessionKey)
	if err != nil {
		return nil, apperror.ErrKeyDerivation(err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, apperror.ErrEncryption(fmt.Errorf("creating cipher: %w", err))
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, apperror.ErrEncryption(fmt.Errorf("creating GCM: %w", err))
	}
	return aead, nil
}

// Encrypt seals plaintext for the holder of walletID and sessionKey.
func (c *AESResponseCipher) Encrypt(plaintext []byte, walletID domain.WalletID, sessionKey []byte) ([]byte, error) {
	aead, err := c.gcm(walletID, sessionKey)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 1+aead.NonceSize(), 1+aead.NonceSize()+len(plaintext)+aead.Overhead())
	out[0] = responseFormatVersion
	nonce := out[1:]
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return nil, apperror.ErrEncryption(fmt.Errorf("generating nonce: %w", err))
	}

	return aead.Seal(out, nonce, plaintext, walletID[:]), nil
}

// Decrypt opens a payload produced by Encrypt.
func (c *AESResponseCipher) Decrypt(payload []byte, walletID domain.WalletID, sessionKey []byte) ([]byte, error) {
	aead, err := c.gcm(walletID, sessionKey)
	if err != nil {
		return nil, err
	}

	headerLen := 1 + aead.NonceSize()
	if len(payload) < headerLen+aead.Overhead() {
		return nil, apperror.ErrDecryption(errors.New("response too short"))
	}
	if payload[0] != responseFormatVersion {
		return nil, apperror.ErrDecryption(fmt.Errorf("unsupported response format 0x%02x", payload[0]))
	}

	plaintext, err := aead.Open(nil, payload[1:headerLen], payload[headerLen:], walletID[:])
	if err != nil {
		return nil, apperror.ErrDecryption(fmt.Errorf("opening response: %w", err))
	}
	return plaintext, nil
}
