package runtime

import (
	"errors"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/ezrec/counter/account"
	"github.com/ezrec/counter/program"
)

// Invocation result labels.
const (
	RESULT_SUCCESS         = "success"
	RESULT_MISSING_ACCOUNT = "missing_account"
	RESULT_DECODE          = "decode"
	RESULT_WRITE           = "write"
	RESULT_HOST            = "host"
)

// Metrics collects invocation statistics for a runtime.
type Metrics struct {
	Registry    *prometheus.Registry
	Invocations *prometheus.CounterVec // Invocations by result.
	Value       *prometheus.GaugeVec   // Last counter value by account.
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() (m *Metrics) {
	m = &Metrics{
		Registry: prometheus.NewRegistry(),
		Invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "counter_invocations_total",
			Help: "Counter program invocations by result.",
		}, []string{"result"}),
		Value: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "counter_value",
			Help: "Counter value after the last successful invocation.",
		}, []string{"account"}),
	}

	m.Registry.MustRegister(m.Invocations, m.Value)

	return
}

// Result classifies an invocation error into a result label.
func Result(err error) string {
	switch {
	case err == nil:
		return RESULT_SUCCESS
	case errors.Is(err, program.ErrMissingAccount):
		return RESULT_MISSING_ACCOUNT
	case errors.Is(err, program.ErrDecode):
		return RESULT_DECODE
	case errors.Is(err, program.ErrWriteFailure):
		return RESULT_WRITE
	default:
		return RESULT_HOST
	}
}

// Observe records the outcome of one invocation.
func (m *Metrics) Observe(err error) {
	m.Invocations.WithLabelValues(Result(err)).Inc()
}

// SetValue records the counter held by an account.
func (m *Metrics) SetValue(key account.Pubkey, count uint32) {
	m.Value.WithLabelValues(key.String()).Set(float64(count))
}

// WriteText writes all metrics in the Prometheus text exposition format.
func (m *Metrics) WriteText(out io.Writer) (err error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return
	}

	for _, family := range families {
		_, err = expfmt.MetricFamilyToText(out, family)
		if err != nil {
			return
		}
	}

	return
}
