package payer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"brit-matcher/internal/core/domain"
	"brit-matcher/internal/core/ports/mocks"
	"brit-matcher/internal/service"
	"brit-matcher/pkg/apperror"
	"brit-matcher/pkg/response"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	keysOnce      sync.Once
	matcherPGP    *service.PGPService
	payerPGP      *service.PGPService
	keysErr       error
	testAddresses = []domain.Address{"addr-1", "addr-2"}
)

func testCiphers(t *testing.T) (*service.PGPService, *service.PGPService) {
	t.Helper()
	keysOnce.Do(func() {
		secret, public, err := service.GenerateKeyPair("Test Matcher", "matcher@test.invalid", 2048)
		if err != nil {
			keysErr = err
			return
		}
		secretRing, err := service.ReadKeyring(secret)
		if err != nil {
			keysErr = err
			return
		}
		publicRing, err := service.ReadKeyring(public)
		if err != nil {
			keysErr = err
			return
		}
		if matcherPGP, keysErr = service.NewPGPService(secretRing, nil); keysErr != nil {
			return
		}
		payerPGP, keysErr = service.NewPGPService(publicRing, nil)
	})
	require.NoError(t, keysErr)
	return matcherPGP, payerPGP
}

// fakeMatcher answers every request with testAddresses and the request's own first transaction date.
func fakeMatcher(t *testing.T, matcher *service.PGPService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, response.ContentTypeEncrypted, r.Header.Get("Content-Type"))

		plaintext, err := matcher.Decrypt(body)
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		req, err := domain.ParsePayerRequest(plaintext)
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		resp := domain.NewMatcherResponse(req.FirstTransactionDate, testAddresses)
		out, err := service.NewAESResponseCipher().Encrypt(resp.Serialize(), req.WalletID, req.SessionKey)
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", response.ContentTypeEncrypted)
		_, _ = w.Write(out)
	}
}

func newTestClient(t *testing.T, endpoint string) *Client {
	_, payer := testCiphers(t)
	return NewClient(
		Config{Endpoint: endpoint, RetryIntervals: []time.Duration{time.Millisecond, time.Millisecond}},
		payer,
		service.NewAESResponseCipher(),
		http.DefaultClient,
		zerolog.New(io.Discard),
	)
}

func TestDeriveWalletID(t *testing.T) {
	a, err := DeriveWalletID([]byte("abandon abandon abandon"))
	require.NoError(t, err)
	b, err := DeriveWalletID([]byte("abandon abandon abandon"))
	require.NoError(t, err)
	c, err := DeriveWalletID([]byte("zoo zoo zoo"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.False(t, a.IsZero())

	_, err = DeriveWalletID(nil)
	assert.Error(t, err)
}

func TestClient_NewRequestUsesFreshSessionKey(t *testing.T) {
	c := newTestClient(t, "http://unused")
	id := domain.WalletID{1}

	r1, err := c.NewRequest(id, nil)
	require.NoError(t, err)
	r2, err := c.NewRequest(id, nil)
	require.NoError(t, err)

	assert.Len(t, r1.SessionKey, SessionKeySize)
	assert.NotEqual(t, r1.SessionKey, r2.SessionKey)
}

func TestClient_RequestRoundTripsThroughMatcherKey(t *testing.T) {
	matcher, _ := testCiphers(t)
	c := newTestClient(t, "http://unused")
	firstTx := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	req, err := c.NewRequest(domain.WalletID{2}, &firstTx)
	require.NoError(t, err)
	payload, err := c.EncryptRequest(req)
	require.NoError(t, err)

	plaintext, err := matcher.Decrypt(payload)
	require.NoError(t, err)
	assert.Equal(t, req.Serialize(), plaintext)
}

func TestClient_Exchange_Success(t *testing.T) {
	matcher, _ := testCiphers(t)
	srv := httptest.NewServer(fakeMatcher(t, matcher))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	firstTx := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	resp, err := c.Exchange(context.Background(), domain.WalletID{3}, &firstTx)
	require.NoError(t, err)
	require.NotNil(t, resp.ReplayDate)
	assert.Equal(t, firstTx, *resp.ReplayDate)
	assert.Equal(t, testAddresses, resp.Addresses)
}

func TestClient_Exchange_RetriesServerErrors(t *testing.T) {
	matcher, _ := testCiphers(t)
	var calls int32
	handler := fakeMatcher(t, matcher)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		handler(w, r)
	}))
	defer srv.Close()

	resp, err := newTestClient(t, srv.URL).Exchange(context.Background(), domain.WalletID{4}, nil)
	require.NoError(t, err)
	assert.Equal(t, testAddresses, resp.Addresses)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_Exchange_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(response.ErrorResponse{
			ErrorCode: apperror.CodeDecryption,
			Message:   "Unable to decrypt payer request",
		})
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Exchange(context.Background(), domain.WalletID{5}, nil)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, apperror.CodeDecryption, statusErr.ErrorCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_Exchange_GivesUpAfterRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Exchange(context.Background(), domain.WalletID{6}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_Exchange_UndecryptableResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte{0x01}, 64))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Exchange(context.Background(), domain.WalletID{7}, nil)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeDecryption))
}

func TestClient_Exchange_ContextCancelledStopsRetrying(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, payer := testCiphers(t)
	c := NewClient(
		Config{Endpoint: srv.URL, RetryIntervals: []time.Duration{time.Hour}},
		payer, service.NewAESResponseCipher(), http.DefaultClient, zerolog.New(io.Discard),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Exchange(ctx, domain.WalletID{8}, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_DecryptResponse_MalformedPlaintext(t *testing.T) {
	ctrl := gomock.NewController(t)
	responses := mocks.NewMockResponseCipher(ctrl)
	requests := mocks.NewMockRequestCipher(ctrl)
	c := NewClient(Config{Endpoint: "http://unused"}, requests, responses, http.DefaultClient, zerolog.New(io.Discard))

	req, err := c.NewRequest(domain.WalletID{9}, nil)
	require.NoError(t, err)
	responses.EXPECT().Decrypt([]byte("sealed"), req.WalletID, req.SessionKey).Return([]byte("garbage"), nil)

	_, err = c.DecryptResponse([]byte("sealed"), req)
	assert.True(t, apperror.HasCode(err, apperror.CodeParse))
}

func TestClient_EncryptRequest_CipherFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	requests := mocks.NewMockRequestCipher(ctrl)
	c := NewClient(Config{Endpoint: "http://unused"}, requests, mocks.NewMockResponseCipher(ctrl), http.DefaultClient, zerolog.New(io.Discard))

	req, err := c.NewRequest(domain.WalletID{10}, nil)
	require.NoError(t, err)
	requests.EXPECT().Encrypt(req.Serialize()).Return(nil, errors.New("no encryption key"))

	_, err = c.EncryptRequest(req)
	assert.True(t, apperror.HasCode(err, apperror.CodeEncryption))
}
