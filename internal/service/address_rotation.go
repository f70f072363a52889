package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"brit-matcher/internal/core/domain"
	"brit-matcher/internal/core/ports"
	"brit-matcher/pkg/apperror"

	"github.com/rs/zerolog"
)

// AddressRotationService implements ports.AddressRotation.
// Concurrent callers for one date converge on whichever set the store accepted first.
type AddressRotationService struct {
	pool        ports.AddressPoolRepository
	assignments ports.AddressAssignmentRepository
	cache       ports.AssignmentCache // optional
	perDay      int
	rand        io.Reader
	log         zerolog.Logger
}

// NewAddressRotationService creates the rotation service. cache may be nil.
func NewAddressRotationService(
	pool ports.AddressPoolRepository,
	assignments ports.AddressAssignmentRepository,
	cache ports.AssignmentCache,
	perDay int,
	rnd io.Reader,
	log zerolog.Logger,
) *AddressRotationService {
	if rnd == nil {
		rnd = rand.Reader
	}
	return &AddressRotationService{
		pool:        pool,
		assignments: assignments,
		cache:       cache,
		perDay:      perDay,
		rand:        rnd,
		log:         log,
	}
}

// ResolveAddressesForDate returns the canonical assignment for date's calendar day,
// creating it from the pool on first use. An empty pool yields an empty set, not an error.
func (s *AddressRotationService) ResolveAddressesForDate(ctx context.Context, date time.Time) ([]domain.Address, error) {
	key := domain.DateKey(date)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Str("date", key).Msg("assignment cache read failed")
		} else if len(cached) > 0 {
			return cached, nil
		}
	}

	existing, err := s.assignments.LookupForDate(ctx, key)
	if err != nil {
		return nil, apperror.ErrStore(fmt.Errorf("looking up assignment for %s: %w", key, err))
	}
	if len(existing) > 0 {
		s.warmCache(ctx, key, existing)
		return existing, nil
	}

	all, err := s.pool.All(ctx)
	if err != nil {
		return nil, apperror.ErrStore(fmt.Errorf("reading address pool: %w", err))
	}
	if len(all) == 0 {
		s.log.Error().Str("date", key).Msg("address pool is empty, no addresses available")
		return []domain.Address{}, nil
	}

	candidate, err := sampleDistinct(s.rand, all, s.perDay)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sampling addresses: %w", err))
	}

	won, err := s.assignments.StoreForDateIfAbsent(ctx, key, candidate)
	if err != nil {
		return nil, apperror.ErrStore(fmt.Errorf("storing assignment for %s: %w", key, err))
	}

	// Always answer with what the store holds, winner or not.
	persisted, err := s.assignments.LookupForDate(ctx, key)
	if err != nil {
		return nil, apperror.ErrStore(fmt.Errorf("re-reading assignment for %s: %w", key, err))
	}
	if len(persisted) == 0 {
		return nil, apperror.ErrStore(errors.New("assignment for " + key + " missing after store"))
	}

	s.log.Info().
		Str("date", key).
		Bool("created", won).
		Int("addresses", len(persisted)).
		Msg("daily assignment resolved")

	s.warmCache(ctx, key, persisted)
	return persisted, nil
}

func (s *AddressRotationService) warmCache(ctx context.Context, key string, addresses []domain.Address) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetIfAbsent(ctx, key, addresses); err != nil {
		s.log.Warn().Err(err).Str("date", key).Msg("assignment cache write failed")
	}
}

// sampleDistinct draws min(n, distinct pool size) addresses without replacement
// using a partial Fisher-Yates shuffle driven by rnd.
func sampleDistinct(rnd io.Reader, pool []domain.Address, n int) ([]domain.Address, error) {
	candidates := domain.SortedUnique(pool)
	if n > len(candidates) {
		n = len(candidates)
	}
	for i := 0; i < n; i++ {
		j, err := rand.Int(rnd, big.NewInt(int64(len(candidates)-i)))
		if err != nil {
			return nil, err
		}
		k := i + int(j.Int64())
		candidates[i], candidates[k] = candidates[k], candidates[i]
	}
	return domain.SortedUnique(candidates[:n]), nil
}
