package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Settlement and transaction metrics. HTTP-level metrics live in the
// adapter middleware.
var (
	TransactionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "banking_transactions_created_total",
			Help: "Total number of transactions created by operation kind",
		},
		[]string{"kind"},
	)

	DebtsSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "banking_debts_settled_total",
		Help: "Total number of debit transactions fully discharged",
	})

	AmountDischarged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "banking_discharged_amount_total",
		Help: "Total amount of debt discharged by incoming credits",
	})

	AccountLockWait = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "banking_account_lock_wait_seconds",
		Help:    "Time spent waiting for a per-account settlement lock",
		Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
	})
)
