package ports

import (
	"context"
	"time"

	"brit-matcher/internal/core/domain"
)

// --- Crypto Ports ---

// RequestCipher is the public-key layer protecting PayerRequests.
type RequestCipher interface {
	// Encrypt seals plaintext to the Matcher's public key. Used by Payers and tests.
	Encrypt(plaintext []byte) ([]byte, error)
	// Decrypt opens a payload with the Matcher's private keyring.
	Decrypt(payload []byte) ([]byte, error)
}

// ResponseCipher is the symmetric layer binding a MatcherResponse to one wallet and session.
type ResponseCipher interface {
	Encrypt(plaintext []byte, walletID domain.WalletID, sessionKey []byte) ([]byte, error)
	Decrypt(payload []byte, walletID domain.WalletID, sessionKey []byte) ([]byte, error)
}

// TokenService handles JWT token operations for operators.
type TokenService interface {
	Generate(operator string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Operator string
}

// AssignmentCache is the Redis-layer fast path for daily assignments.
type AssignmentCache interface {
	// Get returns the cached set for date, or nil on a miss.
	Get(ctx context.Context, date string) ([]domain.Address, error)
	// SetIfAbsent caches addresses for date unless an entry already exists.
	SetIfAbsent(ctx context.Context, date string, addresses []domain.Address) error
}

// --- Service Ports (Business Logic) ---

// EncounterTracker records wallet encounters and derives replay dates.
type EncounterTracker interface {
	RecordAndComputeReplayDate(ctx context.Context, walletID domain.WalletID, firstTransactionDate *time.Time) (time.Time, error)
}

// AddressRotation resolves the canonical daily address assignment.
type AddressRotation interface {
	ResolveAddressesForDate(ctx context.Context, date time.Time) ([]domain.Address, error)
}

// MatcherService runs one BRIT exchange.
type MatcherService interface {
	DecryptRequest(payload []byte) (*domain.PayerRequest, error)
	Process(ctx context.Context, req *domain.PayerRequest) (*domain.MatcherResponse, error)
	EncryptResponse(resp *domain.MatcherResponse, walletID domain.WalletID, sessionKey []byte) ([]byte, error)
	// Exchange composes the three steps above over one encrypted payload.
	Exchange(ctx context.Context, payload []byte) ([]byte, *domain.PayerRequest, error)
}

// AdminService exposes pool provisioning and read-only reporting to operators.
type AdminService interface {
	ImportAddresses(ctx context.Context, raw []string) (*ImportResult, error)
	PoolStats(ctx context.Context) (*PoolStats, error)
	GetAssignment(ctx context.Context, date string) (*domain.DailyAssignment, error)
	GetEncounter(ctx context.Context, walletID string) (*domain.EncounterLink, error)
}

// ImportResult summarises one pool import.
type ImportResult struct {
	Submitted int
	Added     int
}

// PoolStats describes the provisioned pool.
type PoolStats struct {
	PoolSize        int
	AddressesPerDay int
	Network         string
}

// AuditService records audit entries.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
