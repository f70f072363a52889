package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// WalletIDSize is the length in bytes of a wallet identifier.
const WalletIDSize = 20

// WalletID identifies a Payer's wallet across exchanges. It is opaque to the
// Matcher and is rendered as lowercase hex for lookups and logging.
type WalletID [WalletIDSize]byte

// WalletIDFromBytes copies b into a WalletID.
func WalletIDFromBytes(b []byte) (WalletID, error) {
	var id WalletID
	if len(b) != WalletIDSize {
		return id, fmt.Errorf("%w: wallet id must be %d bytes, got %d", ErrMalformed, WalletIDSize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// ParseWalletID decodes the hex rendering of a wallet identifier.
func ParseWalletID(s string) (WalletID, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return WalletID{}, fmt.Errorf("%w: wallet id: %v", ErrMalformed, err)
	}
	return WalletIDFromBytes(raw)
}

// String returns the lowercase hex rendering.
func (w WalletID) String() string {
	return hex.EncodeToString(w[:])
}

// Bytes returns a copy of the raw identifier.
func (w WalletID) Bytes() []byte {
	b := make([]byte, WalletIDSize)
	copy(b, w[:])
	return b
}

// IsZero reports whether w is the all-zero identifier.
func (w WalletID) IsZero() bool {
	return w == WalletID{}
}
