package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchJoins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "elitezone_match_joins_total",
		Help: "Successful match joins",
	})

	MatchRefunds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "elitezone_match_refunds_total",
		Help: "Entry fee refunds issued by match cancellations",
	})

	TransactionApprovals = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "elitezone_transaction_approvals_total",
		Help: "Approved deposit and withdrawal requests",
	}, []string{"type"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "elitezone_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})
)
