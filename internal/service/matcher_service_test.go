package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"brit-matcher/internal/adapter/storage/memory"
	"brit-matcher/internal/core/domain"
	"brit-matcher/internal/core/ports/mocks"
	"brit-matcher/pkg/apperror"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type matcherTestDeps struct {
	svc       *MatcherServiceImpl
	requests  *mocks.MockRequestCipher
	responses *mocks.MockResponseCipher
	tracker   *mocks.MockEncounterTracker
	rotation  *mocks.MockAddressRotation
}

func setupMatcher(t *testing.T) *matcherTestDeps {
	ctrl := gomock.NewController(t)
	d := &matcherTestDeps{
		requests:  mocks.NewMockRequestCipher(ctrl),
		responses: mocks.NewMockResponseCipher(ctrl),
		tracker:   mocks.NewMockEncounterTracker(ctrl),
		rotation:  mocks.NewMockAddressRotation(ctrl),
	}
	d.svc = NewMatcherService(d.requests, d.responses, d.tracker, d.rotation, clock.NewTestClock(testNow), newTestLogger())
	return d
}

func newTestRequest(t *testing.T, id domain.WalletID, firstTx *time.Time) *domain.PayerRequest {
	t.Helper()
	req, err := domain.NewPayerRequest(id, testSessionKey(), firstTx)
	require.NoError(t, err)
	return req
}

// ==================== DecryptRequest ====================

func TestMatcher_DecryptRequest_Success(t *testing.T) {
	d := setupMatcher(t)
	req := newTestRequest(t, testWalletID(1), nil)

	d.requests.EXPECT().Decrypt([]byte("ciphertext")).Return(req.Serialize(), nil)

	got, err := d.svc.DecryptRequest([]byte("ciphertext"))
	require.NoError(t, err)
	assert.Equal(t, req.Serialize(), got.Serialize())
}

func TestMatcher_DecryptRequest_DecryptionError(t *testing.T) {
	d := setupMatcher(t)
	d.requests.EXPECT().Decrypt(gomock.Any()).Return(nil, errors.New("bad packet"))

	_, err := d.svc.DecryptRequest([]byte("junk"))
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeDecryption))
}

func TestMatcher_DecryptRequest_ParseError(t *testing.T) {
	d := setupMatcher(t)
	d.requests.EXPECT().Decrypt(gomock.Any()).Return([]byte("1\nnot a request"), nil)

	_, err := d.svc.DecryptRequest([]byte("ciphertext"))
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeParse))
}

// ==================== Process ====================

func TestMatcher_Process_Success(t *testing.T) {
	d := setupMatcher(t)
	ctx := context.Background()
	firstTx := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	req := newTestRequest(t, testWalletID(2), &firstTx)

	d.tracker.EXPECT().RecordAndComputeReplayDate(ctx, req.WalletID, req.FirstTransactionDate).Return(firstTx, nil)
	d.rotation.EXPECT().ResolveAddressesForDate(ctx, testNow).Return([]domain.Address{"B", "A"}, nil)

	resp, err := d.svc.Process(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, resp.ReplayDate)
	assert.Equal(t, firstTx, *resp.ReplayDate)
	assert.Equal(t, []domain.Address{"A", "B"}, resp.Addresses)
}

func TestMatcher_Process_PropagatesErrors(t *testing.T) {
	ctx := context.Background()
	storeErr := apperror.ErrStore(errors.New("down"))

	t.Run("tracker", func(t *testing.T) {
		d := setupMatcher(t)
		req := newTestRequest(t, testWalletID(3), nil)
		d.tracker.EXPECT().RecordAndComputeReplayDate(ctx, req.WalletID, nil).Return(time.Time{}, storeErr)

		_, err := d.svc.Process(ctx, req)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("rotation", func(t *testing.T) {
		d := setupMatcher(t)
		req := newTestRequest(t, testWalletID(3), nil)
		d.tracker.EXPECT().RecordAndComputeReplayDate(ctx, req.WalletID, nil).Return(testNow, nil)
		d.rotation.EXPECT().ResolveAddressesForDate(ctx, testNow).Return(nil, storeErr)

		_, err := d.svc.Process(ctx, req)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("nil request", func(t *testing.T) {
		d := setupMatcher(t)
		_, err := d.svc.Process(ctx, nil)
		assert.True(t, apperror.HasCode(err, apperror.CodeParse))
	})
}

// ==================== EncryptResponse ====================

func TestMatcher_EncryptResponse_UsesExplicitWalletAndSession(t *testing.T) {
	d := setupMatcher(t)
	resp := domain.NewMatcherResponse(domain.TimePtr(testNow), []domain.Address{"A"})
	id := testWalletID(4)

	d.responses.EXPECT().Encrypt(resp.Serialize(), id, testSessionKey()).Return([]byte("sealed"), nil)

	out, err := d.svc.EncryptResponse(resp, id, testSessionKey())
	require.NoError(t, err)
	assert.Equal(t, []byte("sealed"), out)
}

func TestMatcher_EncryptResponse_Errors(t *testing.T) {
	resp := domain.NewMatcherResponse(nil, nil)

	t.Run("app error passes through", func(t *testing.T) {
		d := setupMatcher(t)
		d.responses.EXPECT().Encrypt(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperror.ErrKeyDerivation(errors.New("kdf")))

		_, err := d.svc.EncryptResponse(resp, testWalletID(1), testSessionKey())
		assert.True(t, apperror.HasCode(err, apperror.CodeKeyDerivation))
	})

	t.Run("plain error becomes encryption error", func(t *testing.T) {
		d := setupMatcher(t)
		d.responses.EXPECT().Encrypt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("cipher"))

		_, err := d.svc.EncryptResponse(resp, testWalletID(1), testSessionKey())
		assert.True(t, apperror.HasCode(err, apperror.CodeEncryption))
	})
}

// ==================== Exchange ====================

func TestMatcher_Exchange_DecryptFailureChangesNothing(t *testing.T) {
	d := setupMatcher(t)
	d.requests.EXPECT().Decrypt(gomock.Any()).Return(nil, errors.New("bad key"))

	out, req, err := d.svc.Exchange(context.Background(), []byte("junk"))
	assert.Nil(t, out)
	assert.Nil(t, req)
	assert.True(t, apperror.HasCode(err, apperror.CodeDecryption))
}

// newRealMatcher wires the real ciphers, tracker and rotation over a memory store.
func newRealMatcher(t *testing.T, clk clock.Clock, pool []domain.Address) (*MatcherServiceImpl, *memory.Store, *PGPService) {
	t.Helper()
	store := memory.NewStore()
	_, err := store.Add(context.Background(), pool)
	require.NoError(t, err)

	pgp, err := NewPGPService(testKeyring(t), nil)
	require.NoError(t, err)
	payerPGP, err := NewPGPService(testPublicKeyring(t), nil)
	require.NoError(t, err)

	log := newTestLogger()
	svc := NewMatcherService(
		pgp,
		NewAESResponseCipher(),
		NewEncounterTrackerService(store, clk, log),
		NewAddressRotationService(store, store, nil, 4, nil, log),
		clk,
		log,
	)
	return svc, store, payerPGP
}

func payerExchange(t *testing.T, svc *MatcherServiceImpl, payerPGP *PGPService, req *domain.PayerRequest) *domain.MatcherResponse {
	t.Helper()
	payload, err := payerPGP.Encrypt(req.Serialize())
	require.NoError(t, err)

	out, parsed, err := svc.Exchange(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, req.Serialize(), parsed.Serialize())

	plaintext, err := NewAESResponseCipher().Decrypt(out, req.WalletID, req.SessionKey)
	require.NoError(t, err)
	resp, err := domain.ParseMatcherResponse(plaintext)
	require.NoError(t, err)
	return resp
}

func TestMatcher_Exchange_EndToEnd(t *testing.T) {
	clk := clock.NewTestClock(testNow)
	svc, store, payerPGP := newRealMatcher(t, clk, testPool)

	firstTx := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	req := newTestRequest(t, testWalletID(9), &firstTx)

	resp := payerExchange(t, svc, payerPGP, req)
	require.NotNil(t, resp.ReplayDate)
	assert.Equal(t, firstTx, *resp.ReplayDate)
	assert.Len(t, resp.Addresses, 4)
	assertSubsetOfPool(t, resp.Addresses, testPool)

	link, err := store.Lookup(context.Background(), req.WalletID)
	require.NoError(t, err)
	assert.Equal(t, testNow, *link.EncounterDate)

	// A second exchange on the same day sees the same addresses.
	again := payerExchange(t, svc, payerPGP, newTestRequest(t, testWalletID(10), nil))
	assert.Equal(t, resp.Addresses, again.Addresses)
	assert.Equal(t, testNow, *again.ReplayDate)
}

func TestMatcher_Exchange_ResponseBoundToSession(t *testing.T) {
	svc, _, payerPGP := newRealMatcher(t, clock.NewTestClock(testNow), testPool)
	req := newTestRequest(t, testWalletID(11), nil)

	payload, err := payerPGP.Encrypt(req.Serialize())
	require.NoError(t, err)
	out, _, err := svc.Exchange(context.Background(), payload)
	require.NoError(t, err)

	other := make([]byte, len(req.SessionKey))
	copy(other, req.SessionKey)
	other[0] ^= 0xff

	_, err = NewAESResponseCipher().Decrypt(out, req.WalletID, other)
	assert.Error(t, err)
}

func TestMatcher_Exchange_ConcurrentWallets(t *testing.T) {
	svc, store, payerPGP := newRealMatcher(t, clock.NewTestClock(testNow), testPool)
	ctx := context.Background()

	const payers = 8
	requests := make([]*domain.PayerRequest, payers)
	payloads := make([][]byte, payers)
	for i := range requests {
		requests[i] = newTestRequest(t, testWalletID(byte(20+i)), nil)
		payload, err := payerPGP.Encrypt(requests[i].Serialize())
		require.NoError(t, err)
		payloads[i] = payload
	}

	outs := make([][]byte, payers)
	var wg sync.WaitGroup
	for i := 0; i < payers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, _, err := svc.Exchange(ctx, payloads[i])
			assert.NoError(t, err)
			outs[i] = out
		}(i)
	}
	wg.Wait()

	persisted, err := store.LookupForDate(ctx, "2024-01-01")
	require.NoError(t, err)
	for i, out := range outs {
		plaintext, err := NewAESResponseCipher().Decrypt(out, requests[i].WalletID, requests[i].SessionKey)
		require.NoError(t, err)
		resp, err := domain.ParseMatcherResponse(plaintext)
		require.NoError(t, err)
		assert.Equal(t, persisted, resp.Addresses)
	}
}
