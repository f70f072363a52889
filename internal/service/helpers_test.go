package service

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	"brit-matcher/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/packet"
)

var testNow = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func testWalletID(b byte) domain.WalletID {
	var id domain.WalletID
	for i := range id {
		id[i] = b
	}
	return id
}

func testSessionKey() []byte {
	return bytes.Repeat([]byte{0x5a}, domain.MinSessionKeySize)
}

var (
	testEntityOnce sync.Once
	testEntity     *openpgp.Entity
	testEntityErr  error
)

// testKeyring returns a signed RSA entity shared by every test in the package.
func testKeyring(t *testing.T) openpgp.EntityList {
	t.Helper()
	testEntityOnce.Do(func() {
		cfg := &packet.Config{RSABits: 2048}
		testEntity, testEntityErr = openpgp.NewEntity("BRIT Test Matcher", "", "matcher@test.invalid", cfg)
		if testEntityErr == nil {
			// Signs the identities so the public half can be serialized.
			testEntityErr = testEntity.SerializePrivate(io.Discard, cfg)
		}
	})
	require.NoError(t, testEntityErr)
	return openpgp.EntityList{testEntity}
}

// testPublicKeyring returns the public half of testKeyring, as a Payer would hold it.
func testPublicKeyring(t *testing.T) openpgp.EntityList {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, testKeyring(t)[0].Serialize(&buf))
	keyring, err := openpgp.ReadKeyRing(&buf)
	require.NoError(t, err)
	return keyring
}
