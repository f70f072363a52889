package service

import (
	"context"
	"fmt"

	"brit-matcher/internal/core/domain"
	"brit-matcher/internal/core/ports"
	"brit-matcher/pkg/apperror"

	"github.com/rs/zerolog"
)

// AdminServiceImpl implements ports.AdminService.
type AdminServiceImpl struct {
	store     ports.Store
	validator *AddressValidator
	perDay    int
	log       zerolog.Logger
}

// NewAdminService creates the operator-facing service.
func NewAdminService(store ports.Store, validator *AddressValidator, perDay int, log zerolog.Logger) *AdminServiceImpl {
	return &AdminServiceImpl{
		store:     store,
		validator: validator,
		perDay:    perDay,
		log:       log,
	}
}

// ImportAddresses validates every address and adds the new ones to the pool.
// One invalid address rejects the whole batch.
func (s *AdminServiceImpl) ImportAddresses(ctx context.Context, raw []string) (*ports.ImportResult, error) {
	if len(raw) == 0 {
		return nil, apperror.Validation("No addresses supplied")
	}

	valid := make([]domain.Address, 0, len(raw))
	for _, r := range raw {
		addr, err := s.validator.Validate(r)
		if err != nil {
			return nil, err
		}
		valid = append(valid, addr)
	}
	valid = domain.SortedUnique(valid)

	added, err := s.store.Add(ctx, valid)
	if err != nil {
		return nil, apperror.ErrStore(fmt.Errorf("adding pool addresses: %w", err))
	}

	s.log.Info().Int("submitted", len(valid)).Int("added", added).Msg("address pool import")
	return &ports.ImportResult{Submitted: len(valid), Added: added}, nil
}

// PoolStats reports the pool size and rotation settings.
func (s *AdminServiceImpl) PoolStats(ctx context.Context) (*ports.PoolStats, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		return nil, apperror.ErrStore(fmt.Errorf("reading address pool: %w", err))
	}
	return &ports.PoolStats{
		PoolSize:        len(all),
		AddressesPerDay: s.perDay,
		Network:         s.validator.Network(),
	}, nil
}

// GetAssignment returns the persisted assignment for a YYYY-MM-DD date.
func (s *AdminServiceImpl) GetAssignment(ctx context.Context, date string) (*domain.DailyAssignment, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, apperror.Validation("Date must be formatted as YYYY-MM-DD")
	}
	key := domain.DateKey(day)

	addresses, err := s.store.LookupForDate(ctx, key)
	if err != nil {
		return nil, apperror.ErrStore(fmt.Errorf("looking up assignment for %s: %w", key, err))
	}
	if len(addresses) == 0 {
		return nil, apperror.ErrNotFound("assignment")
	}
	return &domain.DailyAssignment{Date: key, Addresses: addresses}, nil
}

// GetEncounter returns the encounter link for a hex wallet id.
func (s *AdminServiceImpl) GetEncounter(ctx context.Context, walletID string) (*domain.EncounterLink, error) {
	id, err := domain.ParseWalletID(walletID)
	if err != nil {
		return nil, apperror.ErrInvalidWalletID(err)
	}

	link, err := s.store.Lookup(ctx, id)
	if err != nil {
		return nil, apperror.ErrStore(fmt.Errorf("looking up encounter link: %w", err))
	}
	if link == nil {
		return nil, apperror.ErrNotFound("encounter link")
	}
	return link, nil
}
