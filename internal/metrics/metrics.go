package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessagesTotal counts messages by gateway operation and the event emitted for them
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_messages_total",
			Help: "Total number of messages processed by the gateway",
		},
		[]string{"operation", "event"},
	)

	// CommandsTotal counts outbound commands by target
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_commands_total",
			Help: "Total number of outbound commands emitted",
		},
		[]string{"target"},
	)

	// OutgoingMessagesStored counts writes to the outgoing message store
	OutgoingMessagesStored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_outgoing_messages_stored_total",
			Help: "Total number of outgoing messages saved",
		},
	)

	// OperationDuration tracks gateway operation latency
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_operation_duration_seconds",
			Help:    "Gateway operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// VerifierQueries counts status oracle queries by result
	VerifierQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_verifier_queries_total",
			Help: "Total number of verifier status queries",
		},
		[]string{"result"},
	)

	// VerifierQueryDuration tracks status oracle latency
	VerifierQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gateway_verifier_query_duration_seconds",
			Help:    "Verifier status query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)

	// SupplyChanges counts ledger credits and debits by outcome
	SupplyChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "its_supply_changes_total",
			Help: "Total number of token supply changes",
		},
		[]string{"chain", "direction", "result"},
	)

	// TrackedSupply is the last known tracked supply of a token on a chain
	TrackedSupply = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "its_tracked_supply",
			Help: "Tracked token supply by chain and token",
		},
		[]string{"chain", "token"},
	)

	// ChainFrozen is 1 while a chain is frozen
	ChainFrozen = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "its_chain_frozen",
			Help: "Whether a chain is frozen (1) or not (0)",
		},
		[]string{"chain"},
	)
)
