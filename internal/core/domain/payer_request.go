package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// WireVersion is the plaintext format version written on the first line of
// every request and response.
const WireVersion = "1"

// Session key bounds, in bytes.
const (
	MinSessionKeySize = 16
	MaxSessionKeySize = 32
)

// PayerRequest is the plaintext a Payer sends to the Matcher for one exchange.
type PayerRequest struct {
	WalletID             WalletID
	SessionKey           []byte
	FirstTransactionDate *time.Time // nil when the wallet has no known transactions
}

// NewPayerRequest validates and copies its inputs.
func NewPayerRequest(walletID WalletID, sessionKey []byte, firstTransactionDate *time.Time) (*PayerRequest, error) {
	if err := validateSessionKey(sessionKey); err != nil {
		return nil, err
	}

	req := &PayerRequest{
		WalletID:   walletID,
		SessionKey: append([]byte(nil), sessionKey...),
	}
	if firstTransactionDate != nil {
		// The wire carries millisecond precision only.
		t := time.UnixMilli(firstTransactionDate.UnixMilli()).UTC()
		req.FirstTransactionDate = &t
	}
	return req, nil
}

// Serialize renders the request in its deterministic line format:
//
//	version
//	wallet id (hex)
//	session key (hex)
//	first transaction date (unix millis, or -1)
func (r *PayerRequest) Serialize() []byte {
	lines := []string{
		WireVersion,
		r.WalletID.String(),
		hex.EncodeToString(r.SessionKey),
		formatOptionalMillis(r.FirstTransactionDate),
	}
	return []byte(strings.Join(lines, "\n"))
}

// ParsePayerRequest is the inverse of Serialize.
func ParsePayerRequest(plaintext []byte) (*PayerRequest, error) {
	lines := strings.Split(string(plaintext), "\n")
	if len(lines) != 4 {
		return nil, fmt.Errorf("%w: payer request has %d lines, want 4", ErrMalformed, len(lines))
	}
	if lines[0] != WireVersion {
		return nil, fmt.Errorf("%w: unsupported payer request version %q", ErrMalformed, lines[0])
	}

	walletID, err := ParseWalletID(lines[1])
	if err != nil {
		return nil, err
	}
	if walletID.String() != lines[1] {
		return nil, fmt.Errorf("%w: wallet id must be %d lowercase hex characters", ErrMalformed, 2*WalletIDSize)
	}

	sessionKey, err := hex.DecodeString(lines[2])
	if err != nil {
		return nil, fmt.Errorf("%w: session key: %v", ErrMalformed, err)
	}
	if err := validateSessionKey(sessionKey); err != nil {
		return nil, err
	}
	if hex.EncodeToString(sessionKey) != lines[2] {
		return nil, fmt.Errorf("%w: session key must be lowercase hex", ErrMalformed)
	}

	firstTx, err := parseOptionalMillis("first transaction date", lines[3])
	if err != nil {
		return nil, err
	}

	return &PayerRequest{
		WalletID:             walletID,
		SessionKey:           sessionKey,
		FirstTransactionDate: firstTx,
	}, nil
}

func validateSessionKey(key []byte) error {
	if len(key) < MinSessionKeySize || len(key) > MaxSessionKeySize {
		return fmt.Errorf("%w: session key must be %d to %d bytes, got %d",
			ErrMalformed, MinSessionKeySize, MaxSessionKeySize, len(key))
	}
	return nil
}
