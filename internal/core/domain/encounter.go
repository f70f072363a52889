package domain

import "time"

// EncounterLink records when the Matcher first saw a wallet and the earliest
// transaction date it has learned for it. One per wallet; never deleted.
type EncounterLink struct {
	WalletID             WalletID   `json:"wallet_id"`
	EncounterDate        *time.Time `json:"encounter_date,omitempty"`
	FirstTransactionDate *time.Time `json:"first_transaction_date,omitempty"`
}

// EarliestKnownDate returns the earliest of now and the link's recorded dates.
func (l *EncounterLink) EarliestKnownDate(now time.Time) time.Time {
	if l == nil {
		return now
	}
	return EarliestOf(now, l.EncounterDate, l.FirstTransactionDate)
}
