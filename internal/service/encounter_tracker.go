package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brit-matcher/internal/core/domain"
	"brit-matcher/internal/core/ports"
	"brit-matcher/pkg/apperror"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/rs/zerolog"
)

// EncounterTrackerService implements ports.EncounterTracker.
//
// The replay date is the earliest of now, the stored encounter and first
// transaction dates, and the date the Payer reports. An existing link is never
// rewritten, even when the Payer reports an earlier date.
type EncounterTrackerService struct {
	links ports.EncounterLinkRepository
	clock clock.Clock
	log   zerolog.Logger
}

// NewEncounterTrackerService creates the tracker.
func NewEncounterTrackerService(links ports.EncounterLinkRepository, clk clock.Clock, log zerolog.Logger) *EncounterTrackerService {
	return &EncounterTrackerService{links: links, clock: clk, log: log}
}

// RecordAndComputeReplayDate creates the wallet's link on first contact and returns its replay date.
func (s *EncounterTrackerService) RecordAndComputeReplayDate(
	ctx context.Context,
	walletID domain.WalletID,
	firstTransactionDate *time.Time,
) (time.Time, error) {
	now := s.clock.Now().UTC().Truncate(time.Millisecond)

	link, err := s.links.Lookup(ctx, walletID)
	if err != nil {
		return time.Time{}, apperror.ErrStore(fmt.Errorf("looking up encounter link: %w", err))
	}
	if link != nil {
		return domain.EarliestOf(link.EarliestKnownDate(now), firstTransactionDate), nil
	}

	replay := domain.EarliestOf(now, firstTransactionDate)
	created := &domain.EncounterLink{
		WalletID:             walletID,
		EncounterDate:        domain.TimePtr(now),
		FirstTransactionDate: domain.TimePtr(replay),
	}

	inserted, err := s.links.InsertIfAbsent(ctx, created)
	if err != nil {
		return time.Time{}, apperror.ErrStore(fmt.Errorf("inserting encounter link: %w", err))
	}
	if inserted {
		s.log.Info().
			Str("wallet_id", walletID.String()).
			Time("replay_date", replay).
			Msg("new wallet encountered")
		return replay, nil
	}

	// A concurrent first contact stored its link first.
	winner, err := s.links.Lookup(ctx, walletID)
	if err != nil {
		return time.Time{}, apperror.ErrStore(fmt.Errorf("re-reading encounter link: %w", err))
	}
	if winner == nil {
		return time.Time{}, apperror.ErrStore(errors.New("encounter link missing after insert conflict"))
	}
	return domain.EarliestOf(winner.EarliestKnownDate(now), firstTransactionDate), nil
}
