package postgres

import (
	"context"
	"errors"
	"fmt"

	"brit-matcher/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AssignmentRepo implements ports.AddressAssignmentRepository.
type AssignmentRepo struct {
	pool Pool
}

// NewAssignmentRepo creates a new AssignmentRepo.
func NewAssignmentRepo(pool Pool) *AssignmentRepo {
	return &AssignmentRepo{pool: pool}
}

// LookupForDate fetches the assignment for a YYYY-MM-DD date, or nil.
func (r *AssignmentRepo) LookupForDate(ctx context.Context, date string) ([]domain.Address, error) {
	query := `SELECT addresses FROM daily_assignments WHERE assignment_date = $1::date`

	var raw []string
	if err := r.pool.QueryRow(ctx, query, date).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get daily assignment: %w", err)
	}
	return toAddresses(raw), nil
}

// StoreForDateIfAbsent relies on the assignment_date primary key for first-writer-wins.
func (r *AssignmentRepo) StoreForDateIfAbsent(ctx context.Context, date string, addresses []domain.Address) (bool, error) {
	query := `INSERT INTO daily_assignments (assignment_date, addresses)
		VALUES ($1::date, $2)
		ON CONFLICT (assignment_date) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query, date, toStrings(domain.SortedUnique(addresses)))
	if err != nil {
		return false, fmt.Errorf("insert daily assignment: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// AddressPoolRepo implements ports.AddressPoolRepository.
type AddressPoolRepo struct {
	pool Pool
}

// NewAddressPoolRepo creates a new AddressPoolRepo.
func NewAddressPoolRepo(pool Pool) *AddressPoolRepo {
	return &AddressPoolRepo{pool: pool}
}

// All returns every pool address in ascending order.
func (r *AddressPoolRepo) All(ctx context.Context) ([]domain.Address, error) {
	rows, err := r.pool.Query(ctx, `SELECT address FROM address_pool ORDER BY address`)
	if err != nil {
		return nil, fmt.Errorf("list address pool: %w", err)
	}
	defer rows.Close()

	var out []domain.Address
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("scan pool address: %w", err)
		}
		out = append(out, domain.Address(a))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address pool: %w", err)
	}
	return out, nil
}

// Add inserts addresses in one statement, skipping ones already present.
func (r *AddressPoolRepo) Add(ctx context.Context, addresses []domain.Address) (int, error) {
	if len(addresses) == 0 {
		return 0, nil
	}
	query := `INSERT INTO address_pool (address)
		SELECT unnest($1::text[])
		ON CONFLICT (address) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query, toStrings(addresses))
	if err != nil {
		return 0, fmt.Errorf("insert pool addresses: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// Store bundles the repositories into a ports.Store.
type Store struct {
	*EncounterRepo
	*AssignmentRepo
	*AddressPoolRepo
}

// NewStore creates a PostgreSQL-backed Store sharing one pool.
func NewStore(pool Pool) *Store {
	return &Store{
		EncounterRepo:   NewEncounterRepo(pool),
		AssignmentRepo:  NewAssignmentRepo(pool),
		AddressPoolRepo: NewAddressPoolRepo(pool),
	}
}

func toStrings(addresses []domain.Address) []string {
	out := make([]string, len(addresses))
	for i, a := range addresses {
		out[i] = string(a)
	}
	return out
}

func toAddresses(raw []string) []domain.Address {
	out := make([]domain.Address, len(raw))
	for i, s := range raw {
		out[i] = domain.Address(s)
	}
	return out
}
