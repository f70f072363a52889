package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"brit-matcher/internal/core/domain"
	"brit-matcher/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.Store = (*Store)(nil)

func TestStore_EncounterLinkInsertIfAbsent(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	id := domain.WalletID{1}

	link, err := s.Lookup(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, link)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first := &domain.EncounterLink{WalletID: id, EncounterDate: &now, FirstTransactionDate: &now}
	inserted, err := s.InsertIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.True(t, inserted)

	later := now.Add(time.Hour)
	inserted, err = s.InsertIfAbsent(ctx, &domain.EncounterLink{WalletID: id, EncounterDate: &later})
	require.NoError(t, err)
	assert.False(t, inserted)

	got, err := s.Lookup(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, now, *got.EncounterDate)

	// Mutating the returned copy must not leak into the store.
	*got.EncounterDate = later
	again, _ := s.Lookup(ctx, id)
	assert.Equal(t, now, *again.EncounterDate)
}

func TestStore_AssignmentStoredOnce(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	stored, err := s.StoreForDateIfAbsent(ctx, "2024-01-01", []domain.Address{"b", "a"})
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = s.StoreForDateIfAbsent(ctx, "2024-01-01", []domain.Address{"c"})
	require.NoError(t, err)
	assert.False(t, stored)

	got, err := s.LookupForDate(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, []domain.Address{"a", "b"}, got)

	missing, err := s.LookupForDate(ctx, "2024-01-02")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_AssignmentConcurrentWriters(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	const writers = 32
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := s.StoreForDateIfAbsent(ctx, "2024-01-01", []domain.Address{domain.Address(fmt.Sprintf("addr-%d", i))})
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestStore_PoolAddIsIdempotent(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	added, err := s.Add(ctx, []domain.Address{"c", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	added, err = s.Add(ctx, []domain.Address{"a", "d"})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Address{"a", "b", "c", "d"}, all)
}
