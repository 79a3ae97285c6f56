package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const namespace = "payroll_engine"

var (
	once sync.Once

	payrollRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payroll_runs_total",
			Help:      "Count of payroll computations by outcome.",
		},
		[]string{"status"},
	)

	employeesPaid = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payroll_employees_total",
			Help:      "Count of employees included in successful payroll runs.",
		},
	)

	amountPaid = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payroll_amount_total",
			Help:      "Sum of all computed pay, in currency units.",
		},
	)

	computeSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "payroll_compute_seconds",
			Help:      "Time spent building the ledger and computing a payroll.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(payrollRuns, employeesPaid, amountPaid, computeSeconds)
	})
}

// ObserveRun records a successful payroll run.
func ObserveRun(employees int, total decimal.Decimal, took time.Duration) {
	payrollRuns.WithLabelValues("ok").Inc()
	employeesPaid.Add(float64(employees))
	amountPaid.Add(total.InexactFloat64())
	computeSeconds.Observe(took.Seconds())
}

// IncRejected records a payroll run refused because of invalid input.
func IncRejected() {
	payrollRuns.WithLabelValues("rejected").Inc()
}
