// Package metrics exposes the Prometheus collectors for the ledger core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EntriesPosted counts journal entries that reached POSTED.
	EntriesPosted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_entries_posted_total",
		Help: "Number of journal entries posted.",
	})

	// EntriesVoided counts posted journal entries that were voided.
	EntriesVoided = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_entries_voided_total",
		Help: "Number of journal entries voided.",
	})

	// VouchersPosted counts cash vouchers bridged into posted entries.
	VouchersPosted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_vouchers_posted_total",
		Help: "Number of cash vouchers posted through the bridge.",
	})

	// SequenceAllocations counts successful counter allocations per scope key.
	SequenceAllocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_sequence_allocations_total",
		Help: "Number of successful sequence counter allocations.",
	}, []string{"scope"})

	// SequenceContention counts allocations that failed on the row lock timeout.
	SequenceContention = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_sequence_contention_total",
		Help: "Number of sequence allocations that timed out waiting for the counter lock.",
	})
)
