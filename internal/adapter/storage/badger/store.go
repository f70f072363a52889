// Package badger provides an embedded, single-node Store on BadgerDB.
package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"brit-matcher/internal/core/domain"

	"github.com/dgraph-io/badger/v4"
)

// Key prefixes. Wallet ids are stored raw after the prefix.
var (
	prefixEncounter  = []byte("enc/")
	prefixAssignment = []byte("day/")
	prefixPool       = []byte("pool/")
)

// maxConflictRetries bounds how often an insert-if-absent transaction is
// replayed after badger reports a write conflict.
const maxConflictRetries = 8

type encounterRecord struct {
	EncounterDate        *time.Time `json:"encounter_date,omitempty"`
	FirstTransactionDate *time.Time `json:"first_transaction_date,omitempty"`
}

// Store implements ports.Store on a badger.DB.
//
// Insert-if-absent relies on badger's serializable transactions: two writers
// that both observed a missing key conflict on commit and the loser is replayed,
// at which point it sees the winner's value.
type Store struct {
	db *badger.DB
}

// New wraps an open database.
func New(db *badger.DB) *Store {
	return &Store{db: db}
}

// Open opens (or creates) a database in dir. An empty dir opens an in-memory database.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", dir, err)
	}
	return New(db), nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks that the database still accepts reads.
func (s *Store) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger: database closed")
	}
	return s.db.View(func(*badger.Txn) error { return nil })
}

// Name returns the dependency name.
func (s *Store) Name() string {
	return "badger"
}

// Lookup returns the encounter link for walletID, or nil.
func (s *Store) Lookup(_ context.Context, walletID domain.WalletID) (*domain.EncounterLink, error) {
	var rec *encounterRecord
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = getJSON[encounterRecord](txn, encounterKey(walletID))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get encounter link: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	return &domain.EncounterLink{
		WalletID:             walletID,
		EncounterDate:        inUTC(rec.EncounterDate),
		FirstTransactionDate: inUTC(rec.FirstTransactionDate),
	}, nil
}

// InsertIfAbsent stores link unless its wallet already has one.
func (s *Store) InsertIfAbsent(_ context.Context, link *domain.EncounterLink) (bool, error) {
	rec := encounterRecord{EncounterDate: link.EncounterDate, FirstTransactionDate: link.FirstTransactionDate}
	inserted, err := s.putIfAbsent(encounterKey(link.WalletID), rec)
	if err != nil {
		return false, fmt.Errorf("insert encounter link: %w", err)
	}
	return inserted, nil
}

// LookupForDate returns the assignment for a YYYY-MM-DD date, or nil.
func (s *Store) LookupForDate(_ context.Context, date string) ([]domain.Address, error) {
	var addresses *[]domain.Address
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		addresses, err = getJSON[[]domain.Address](txn, assignmentKey(date))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get daily assignment: %w", err)
	}
	if addresses == nil {
		return nil, nil
	}
	return *addresses, nil
}

// StoreForDateIfAbsent stores addresses unless date already has an assignment.
func (s *Store) StoreForDateIfAbsent(_ context.Context, date string, addresses []domain.Address) (bool, error) {
	stored, err := s.putIfAbsent(assignmentKey(date), domain.SortedUnique(addresses))
	if err != nil {
		return false, fmt.Errorf("insert daily assignment: %w", err)
	}
	return stored, nil
}

// All returns the pool in ascending order. Badger iterates keys sorted, so no
// further sorting is needed.
func (s *Store) All(_ context.Context) ([]domain.Address, error) {
	var out []domain.Address
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefixPool
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefixPool); it.ValidForPrefix(prefixPool); it.Next() {
			key := it.Item().KeyCopy(nil)
			out = append(out, domain.Address(key[len(prefixPool):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list address pool: %w", err)
	}
	return out, nil
}

// Add inserts new addresses into the pool in a single transaction.
func (s *Store) Add(_ context.Context, addresses []domain.Address) (int, error) {
	var added int
	err := s.retryOnConflict(func(txn *badger.Txn) error {
		added = 0
		for _, a := range domain.SortedUnique(addresses) {
			key := poolKey(a)
			_, err := txn.Get(key)
			if err == nil {
				continue
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
			if err := txn.Set(key, nil); err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("insert pool addresses: %w", err)
	}
	return added, nil
}

func (s *Store) putIfAbsent(key []byte, value any) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("marshal value: %w", err)
	}

	var inserted bool
	err = s.retryOnConflict(func(txn *badger.Txn) error {
		inserted = false
		_, err := txn.Get(key)
		if err == nil {
			return nil
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(key, raw); err != nil {
			return err
		}
		inserted = true
		return nil
	})
	return inserted, err
}

func (s *Store) retryOnConflict(fn func(txn *badger.Txn) error) error {
	var err error
	for range maxConflictRetries {
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

func getJSON[T any](txn *badger.Txn, key []byte) (*T, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out T
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func encounterKey(id domain.WalletID) []byte {
	return append(append([]byte(nil), prefixEncounter...), id.Bytes()...)
}

func assignmentKey(date string) []byte {
	return append(append([]byte(nil), prefixAssignment...), date...)
}

func poolKey(a domain.Address) []byte {
	return append(append([]byte(nil), prefixPool...), string(a)...)
}

func inUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
