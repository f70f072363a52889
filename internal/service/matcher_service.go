package service

import (
	"context"
	"errors"

	"brit-matcher/internal/core/domain"
	"brit-matcher/internal/core/ports"
	"brit-matcher/pkg/apperror"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/rs/zerolog"
)

// MatcherServiceImpl implements ports.MatcherService. It holds no per-exchange
// state: the wallet id and session key travel as explicit arguments.
type MatcherServiceImpl struct {
	requests  ports.RequestCipher
	responses ports.ResponseCipher
	tracker   ports.EncounterTracker
	rotation  ports.AddressRotation
	clock     clock.Clock
	log       zerolog.Logger
}

// NewMatcherService creates the exchange orchestrator.
func NewMatcherService(
	requests ports.RequestCipher,
	responses ports.ResponseCipher,
	tracker ports.EncounterTracker,
	rotation ports.AddressRotation,
	clk clock.Clock,
	log zerolog.Logger,
) *MatcherServiceImpl {
	return &MatcherServiceImpl{
		requests:  requests,
		responses: responses,
		tracker:   tracker,
		rotation:  rotation,
		clock:     clk,
		log:       log,
	}
}

// DecryptRequest opens and parses an EncryptedPayerRequest. No state changes happen here.
func (s *MatcherServiceImpl) DecryptRequest(payload []byte) (*domain.PayerRequest, error) {
	plaintext, err := s.requests.Decrypt(payload)
	if err != nil {
		return nil, apperror.ErrDecryption(err)
	}
	req, err := domain.ParsePayerRequest(plaintext)
	if err != nil {
		return nil, apperror.ErrParse(err)
	}
	return req, nil
}

// Process records the encounter and resolves today's addresses.
func (s *MatcherServiceImpl) Process(ctx context.Context, req *domain.PayerRequest) (*domain.MatcherResponse, error) {
	if req == nil {
		return nil, apperror.ErrParse(errors.New("nil payer request"))
	}

	replay, err := s.tracker.RecordAndComputeReplayDate(ctx, req.WalletID, req.FirstTransactionDate)
	if err != nil {
		return nil, err
	}

	addresses, err := s.rotation.ResolveAddressesForDate(ctx, s.clock.Now())
	if err != nil {
		return nil, err
	}

	return domain.NewMatcherResponse(&replay, addresses), nil
}

// EncryptResponse serializes resp and seals it for walletID and sessionKey.
func (s *MatcherServiceImpl) EncryptResponse(resp *domain.MatcherResponse, walletID domain.WalletID, sessionKey []byte) ([]byte, error) {
	ciphertext, err := s.responses.Encrypt(resp.Serialize(), walletID, sessionKey)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.ErrEncryption(err)
	}
	return ciphertext, nil
}

// Exchange runs one full round: decrypt, process, encrypt.
// The parsed request is returned alongside the response for auditing.
func (s *MatcherServiceImpl) Exchange(ctx context.Context, payload []byte) ([]byte, *domain.PayerRequest, error) {
	req, err := s.DecryptRequest(payload)
	if err != nil {
		return nil, nil, err
	}

	resp, err := s.Process(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", req.WalletID.String()).Msg("exchange processing failed")
		return nil, req, err
	}

	out, err := s.EncryptResponse(resp, req.WalletID, req.SessionKey)
	if err != nil {
		return nil, req, err
	}

	s.log.Debug().
		Str("wallet_id", req.WalletID.String()).
		Int("addresses", len(resp.Addresses)).
		Msg("exchange completed")
	return out, req, nil
}
