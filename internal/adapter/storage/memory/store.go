// Package memory provides a process-local Store for tests and single-node development.
package memory

import (
	"context"
	"sync"

	"brit-matcher/internal/core/domain"
)

// Store implements ports.Store with maps guarded by one RWMutex.
// Values are copied on the way in and out.
type Store struct {
	mu          sync.RWMutex
	links       map[domain.WalletID]domain.EncounterLink
	assignments map[string][]domain.Address
	pool        map[domain.Address]struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		links:       make(map[domain.WalletID]domain.EncounterLink),
		assignments: make(map[string][]domain.Address),
		pool:        make(map[domain.Address]struct{}),
	}
}

// Lookup returns the encounter link for walletID, or nil.
func (s *Store) Lookup(_ context.Context, walletID domain.WalletID) (*domain.EncounterLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	link, ok := s.links[walletID]
	if !ok {
		return nil, nil
	}
	return copyLink(link), nil
}

// InsertIfAbsent stores link unless its wallet already has one.
func (s *Store) InsertIfAbsent(_ context.Context, link *domain.EncounterLink) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[link.WalletID]; ok {
		return false, nil
	}
	s.links[link.WalletID] = *copyLink(*link)
	return true, nil
}

// LookupForDate returns the assignment for date, or nil.
func (s *Store) LookupForDate(_ context.Context, date string) ([]domain.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addresses, ok := s.assignments[date]
	if !ok {
		return nil, nil
	}
	return append([]domain.Address(nil), addresses...), nil
}

// StoreForDateIfAbsent stores addresses unless date already has an assignment.
func (s *Store) StoreForDateIfAbsent(_ context.Context, date string, addresses []domain.Address) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assignments[date]; ok {
		return false, nil
	}
	s.assignments[date] = domain.SortedUnique(addresses)
	return true, nil
}

// All returns the pool in ascending order.
func (s *Store) All(_ context.Context) ([]domain.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Address, 0, len(s.pool))
	for a := range s.pool {
		out = append(out, a)
	}
	return domain.SortedUnique(out), nil
}

// Add inserts new addresses into the pool.
func (s *Store) Add(_ context.Context, addresses []domain.Address) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, a := range addresses {
		if _, ok := s.pool[a]; ok {
			continue
		}
		s.pool[a] = struct{}{}
		added++
	}
	return added, nil
}

func copyLink(l domain.EncounterLink) *domain.EncounterLink {
	out := domain.EncounterLink{WalletID: l.WalletID}
	if l.EncounterDate != nil {
		out.EncounterDate = domain.TimePtr(*l.EncounterDate)
	}
	if l.FirstTransactionDate != nil {
		out.FirstTransactionDate = domain.TimePtr(*l.FirstTransactionDate)
	}
	return &out
}
