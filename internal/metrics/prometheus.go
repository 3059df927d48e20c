package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/InzamanCareem/TeamMate-System/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	answersAccepted    *prometheus.CounterVec
	answersRejected    *prometheus.CounterVec
	answerRetries      *prometheus.HistogramVec
	intakeOutcomes     *prometheus.CounterVec
	registeredGauge    prometheus.Gauge
	formationDuration  *prometheus.HistogramVec
	formationAttempts  *prometheus.CounterVec
	teamCountGauge     prometheus.Gauge
}

var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "teammate" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "teammate"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.answersAccepted = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "intake",
			Name:      "answers_accepted_total",
			Help:      "Total accepted survey answers by response domain.",
		}, []string{"domain"})

		p.answersRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "intake",
			Name:      "answers_rejected_total",
			Help:      "Total rejected survey answers by question number.",
		}, []string{"question"})

		p.answerRetries = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "intake",
			Name:      "answer_retries",
			Help:      "Rejected attempts per question before acceptance or abandonment.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
		}, []string{"question"})

		p.intakeOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "intake",
			Name:      "worker_outcomes_total",
			Help:      "Final intake worker outcomes.",
		}, []string{"outcome"})

		p.registeredGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "registry",
			Name:      "participants",
			Help:      "Current number of registered participants.",
		})

		p.formationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "formation",
			Name:      "duration_seconds",
			Help:      "Team formation run duration in seconds by strategy.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"strategy"})

		p.formationAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "formation",
			Name:      "attempts_total",
			Help:      "Team formation attempts by strategy and result.",
		}, []string{"strategy", "result"})

		p.teamCountGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "formation",
			Name:      "teams",
			Help:      "Number of teams in the current generation.",
		})

		collectors := []prometheus.Collector{
			p.answersAccepted,
			p.answersRejected,
			p.answerRetries,
			p.intakeOutcomes,
			p.registeredGauge,
			p.formationDuration,
			p.formationAttempts,
			p.teamCountGauge,
		}
		for _, c := range collectors {
			// AlreadyRegisteredError is tolerated so multiple coordinators
			// can share one registerer in tests.
			if err := p.reg.Register(c); err != nil {
				if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
					panic(err)
				}
			}
		}
	})
}

// RecordAnswerAccepted increments the accepted-answer counter for the domain.
func (p *PrometheusCollector) RecordAnswerAccepted(domain string) {
	p.ensureRegistered()
	p.answersAccepted.WithLabelValues(domain).Inc()
}

// RecordAnswerRejected increments the rejected-answer counter for the question.
func (p *PrometheusCollector) RecordAnswerRejected(questionNo int) {
	p.ensureRegistered()
	p.answersRejected.WithLabelValues(strconv.Itoa(questionNo)).Inc()
}

// RecordAnswerRetries observes the retry count for the question.
func (p *PrometheusCollector) RecordAnswerRetries(questionNo, retries int) {
	p.ensureRegistered()
	p.answerRetries.WithLabelValues(strconv.Itoa(questionNo)).Observe(float64(retries))
}

// RecordIntakeOutcome increments the outcome counter.
func (p *PrometheusCollector) RecordIntakeOutcome(outcome types.IntakeOutcome) {
	p.ensureRegistered()
	p.intakeOutcomes.WithLabelValues(outcome.String()).Inc()
}

// SetRegisteredParticipants sets the registry size gauge.
func (p *PrometheusCollector) SetRegisteredParticipants(count int) {
	p.ensureRegistered()
	p.registeredGauge.Set(float64(count))
}

// RecordFormationDuration observes a formation run duration.
func (p *PrometheusCollector) RecordFormationDuration(seconds float64, strategyName string) {
	p.ensureRegistered()
	p.formationDuration.WithLabelValues(strategyName).Observe(seconds)
}

// RecordFormationAttempt increments the formation attempt counter.
func (p *PrometheusCollector) RecordFormationAttempt(strategyName string, success bool) {
	p.ensureRegistered()

	result := "success"
	if !success {
		result = "failure"
	}
	p.formationAttempts.WithLabelValues(strategyName, result).Inc()
}

// SetTeamCount sets the current team count gauge.
func (p *PrometheusCollector) SetTeamCount(count int) {
	p.ensureRegistered()
	p.teamCountGauge.Set(float64(count))
}
