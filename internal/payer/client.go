// Package payer implements the wallet side of a BRIT exchange.
package payer

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"brit-matcher/internal/core/domain"
	"brit-matcher/internal/core/ports"
	"brit-matcher/pkg/apperror"
	"brit-matcher/pkg/response"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/scrypt"
)

// SessionKeySize is the session key length a Payer generates per exchange.
const SessionKeySize = 16

// Wallet id derivation parameters.
const (
	walletIDScryptN = 16384
	walletIDScryptR = 8
	walletIDScryptP = 1
)

var walletIDSalt = []byte("brit-wallet-id-salt")

// maxResponseBytes caps how much of a Matcher response is read.
const maxResponseBytes = 1 << 20

// DefaultRetryIntervals are the waits between exchange attempts.
var DefaultRetryIntervals = []time.Duration{
	1 * time.Second,
	5 * time.Second,
	15 * time.Second,
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned when the Matcher answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *StatusError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("matcher returned %d [%s] %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("matcher returned %d", e.StatusCode)
}

// Temporary reports whether repeating the exchange may succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// DeriveWalletID derives the stable wallet identifier from wallet seed bytes.
func DeriveWalletID(seed []byte) (domain.WalletID, error) {
	if len(seed) == 0 {
		return domain.WalletID{}, errors.New("seed must not be empty")
	}
	stretched, err := scrypt.Key(seed, walletIDSalt, walletIDScryptN, walletIDScryptR, walletIDScryptP, sha256.Size)
	if err != nil {
		return domain.WalletID{}, fmt.Errorf("stretching seed: %w", err)
	}
	digest := sha256.Sum256(stretched)
	return domain.WalletIDFromBytes(digest[:domain.WalletIDSize])
}

// Config holds Payer client settings.
type Config struct {
	// Endpoint is the full URL of the Matcher's exchange route.
	Endpoint       string
	RetryIntervals []time.Duration
}

// Client performs BRIT exchanges against one Matcher.
type Client struct {
	cfg        Config
	requests   ports.RequestCipher
	responses  ports.ResponseCipher
	httpClient HTTPClient
	rand       io.Reader
	log        zerolog.Logger
}

// NewClient creates a Payer client. requests must hold the Matcher's public key.
func NewClient(cfg Config, requests ports.RequestCipher, responses ports.ResponseCipher, httpClient HTTPClient, log zerolog.Logger) *Client {
	if cfg.RetryIntervals == nil {
		cfg.RetryIntervals = DefaultRetryIntervals
	}
	return &Client{
		cfg:        cfg,
		requests:   requests,
		responses:  responses,
		httpClient: httpClient,
		rand:       rand.Reader,
		log:        log,
	}
}

// NewRequest builds a request with a fresh random session key.
func (c *Client) NewRequest(walletID domain.WalletID, firstTransactionDate *time.Time) (*domain.PayerRequest, error) {
	sessionKey := make([]byte, SessionKeySize)
	if _, err := io.ReadFull(c.rand, sessionKey); err != nil {
		return nil, fmt.Errorf("generating session key: %w", err)
	}
	return domain.NewPayerRequest(walletID, sessionKey, firstTransactionDate)
}

// EncryptRequest seals req to the Matcher.
func (c *Client) EncryptRequest(req *domain.PayerRequest) ([]byte, error) {
	payload, err := c.requests.Encrypt(req.Serialize())
	if err != nil {
		return nil, apperror.ErrEncryption(err)
	}
	return payload, nil
}

// DecryptResponse opens a response with the wallet id and session key of req.
func (c *Client) DecryptResponse(payload []byte, req *domain.PayerRequest) (*domain.MatcherResponse, error) {
	plaintext, err := c.responses.Decrypt(payload, req.WalletID, req.SessionKey)
	if err != nil {
		return nil, err
	}
	resp, err := domain.ParseMatcherResponse(plaintext)
	if err != nil {
		return nil, apperror.ErrParse(err)
	}
	return resp, nil
}

// Exchange sends a request and returns the Matcher's answer. Transport failures
// and 5xx answers are retried with a fresh session key; anything else is returned at once.
func (c *Client) Exchange(ctx context.Context, walletID domain.WalletID, firstTransactionDate *time.Time) (*domain.MatcherResponse, error) {
	var lastErr error
	for attempt := 0; attempt <= len(c.cfg.RetryIntervals); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.cfg.RetryIntervals[attempt-1]):
			}
		}

		resp, retry, err := c.exchangeOnce(ctx, walletID, firstTransactionDate)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !retry {
			return nil, err
		}
		c.log.Warn().Err(err).Int("attempt", attempt+1).Msg("payer: exchange failed, retrying")
	}

	return nil, fmt.Errorf("exchange failed after %d attempts: %w", len(c.cfg.RetryIntervals)+1, lastErr)
}

func (c *Client) exchangeOnce(ctx context.Context, walletID domain.WalletID, firstTransactionDate *time.Time) (*domain.MatcherResponse, bool, error) {
	req, err := c.NewRequest(walletID, firstTransactionDate)
	if err != nil {
		return nil, false, err
	}
	payload, err := c.EncryptRequest(req)
	if err != nil {
		return nil, false, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, false, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", response.ContentTypeEncrypted)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, ctx.Err() == nil, fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, true, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: httpResp.StatusCode}
		var envelope response.ErrorResponse
		if json.Unmarshal(body, &envelope) == nil {
			statusErr.ErrorCode = envelope.ErrorCode
			statusErr.Message = envelope.Message
		}
		return nil, statusErr.Temporary(), statusErr
	}

	resp, err := c.DecryptResponse(body, req)
	if err != nil {
		return nil, false, err
	}
	return resp, false, nil
}
