package ports

import (
	"context"

	"brit-matcher/internal/core/domain"
)

// EncounterLinkRepository persists one WalletToEncounterDate link per wallet.
type EncounterLinkRepository interface {
	// Lookup returns the stored link, or nil when the wallet has never been seen.
	Lookup(ctx context.Context, walletID domain.WalletID) (*domain.EncounterLink, error)
	// InsertIfAbsent atomically stores link unless one already exists for its wallet.
	// Returns true if this call's link was the one stored.
	InsertIfAbsent(ctx context.Context, link *domain.EncounterLink) (bool, error)
}

// AddressAssignmentRepository persists the daily address assignment keyed by YYYY-MM-DD date.
type AddressAssignmentRepository interface {
	// LookupForDate returns the persisted set, or nil when none exists for date.
	LookupForDate(ctx context.Context, date string) ([]domain.Address, error)
	// StoreForDateIfAbsent atomically persists addresses unless date already has a set.
	// Returns true if this call's set was the one stored.
	StoreForDateIfAbsent(ctx context.Context, date string, addresses []domain.Address) (bool, error)
}

// AddressPoolRepository holds the operator-provisioned address pool.
type AddressPoolRepository interface {
	All(ctx context.Context) ([]domain.Address, error)
	// Add inserts addresses, ignoring ones already present. Returns how many were new.
	Add(ctx context.Context, addresses []domain.Address) (int, error)
}

// Store is the full persistence collaborator of the Matcher.
type Store interface {
	EncounterLinkRepository
	AddressAssignmentRepository
	AddressPoolRepository
}

// AuditRepository persists audit records.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}
