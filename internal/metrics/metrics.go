package metrics

import (
	"strconv"

	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts resolver outcomes and tool invocations.
type Metrics struct {
	EligibilityChecks *prometheus.CounterVec
	Returns           *prometheus.CounterVec
	Exchanges         *prometheus.CounterVec
	ToolInvocations   *prometheus.CounterVec
}

// New registers the metrics with reg, usually prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		EligibilityChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "returndesk_eligibility_checks_total",
			Help: "Eligibility checks by outcome and denial code",
		}, []string{"eligible", "error_code"}),
		Returns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "returndesk_returns_total",
			Help: "Return requests by category and auto approval",
		}, []string{"category", "auto_approved"}),
		Exchanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "returndesk_exchanges_total",
			Help: "Exchange requests by stock status of the desired option",
		}, []string{"stock_status"}),
		ToolInvocations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "returndesk_tool_invocations_total",
			Help: "Gateway tool invocations by tool and status code",
		}, []string{"tool", "status_code"}),
	}
}

func (m *Metrics) ObserveEligibility(eligible bool, code model.ErrorCode) {
	m.EligibilityChecks.WithLabelValues(strconv.FormatBool(eligible), string(code)).Inc()
}

func (m *Metrics) ObserveReturn(category model.Category, autoApproved bool) {
	m.Returns.WithLabelValues(string(category), strconv.FormatBool(autoApproved)).Inc()
}

func (m *Metrics) ObserveExchange(status model.StockStatus) {
	m.Exchanges.WithLabelValues(string(status)).Inc()
}

func (m *Metrics) ObserveInvocation(tool string, statusCode int) {
	m.ToolInvocations.WithLabelValues(tool, strconv.Itoa(statusCode)).Inc()
}
