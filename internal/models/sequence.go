package models

import "time"

// SequenceCounter represents a per-(scope, date) counter row. The row is
// created lazily on first allocation and mutated only through a locked
// fetch-and-increment; it is never deleted.
type SequenceCounter struct {
	ScopeKey      string    `db:"scope_key"`
	CounterDate   time.Time `db:"counter_date"`
	CurrentValue  int64     `db:"current_value"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
