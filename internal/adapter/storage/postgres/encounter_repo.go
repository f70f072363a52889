package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brit-matcher/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EncounterRepo implements ports.EncounterLinkRepository.
type EncounterRepo struct {
	pool Pool
}

// NewEncounterRepo creates a new EncounterRepo.
func NewEncounterRepo(pool Pool) *EncounterRepo {
	return &EncounterRepo{pool: pool}
}

// Lookup fetches the link for walletID, or nil when none exists.
func (r *EncounterRepo) Lookup(ctx context.Context, walletID domain.WalletID) (*domain.EncounterLink, error) {
	query := `SELECT encounter_date, first_transaction_date FROM encounter_links WHERE wallet_id = $1`

	link := &domain.EncounterLink{WalletID: walletID}
	err := r.pool.QueryRow(ctx, query, walletID.Bytes()).Scan(&link.EncounterDate, &link.FirstTransactionDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get encounter link: %w", err)
	}
	link.EncounterDate = inUTC(link.EncounterDate)
	link.FirstTransactionDate = inUTC(link.FirstTransactionDate)
	return link, nil
}

// InsertIfAbsent relies on the wallet_id primary key: a conflicting insert affects no rows.
func (r *EncounterRepo) InsertIfAbsent(ctx context.Context, link *domain.EncounterLink) (bool, error) {
	query := `INSERT INTO encounter_links (wallet_id, encounter_date, first_transaction_date)
		VALUES ($1, $2, $3)
		ON CONFLICT (wallet_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query, link.WalletID.Bytes(), link.EncounterDate, link.FirstTransactionDate)
	if err != nil {
		return false, fmt.Errorf("insert encounter link: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func inUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
