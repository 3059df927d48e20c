// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/InzamanCareem/TeamMate-System/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordAnswerAccepted discards the accepted-answer metric.
func (n *NopMetrics) RecordAnswerAccepted(_ /* domain */ string) {
	// No-op
}

// RecordAnswerRejected discards the rejected-answer metric.
func (n *NopMetrics) RecordAnswerRejected(_ /* questionNo */ int) {
	// No-op
}

// RecordAnswerRetries discards the retry-count metric.
func (n *NopMetrics) RecordAnswerRetries(_ /* questionNo */, _ /* retries */ int) {
	// No-op
}

// RecordIntakeOutcome discards the intake outcome metric.
func (n *NopMetrics) RecordIntakeOutcome(_ types.IntakeOutcome) {
	// No-op
}

// SetRegisteredParticipants discards the registry size gauge.
func (n *NopMetrics) SetRegisteredParticipants(_ /* count */ int) {
	// No-op
}

// RecordFormationDuration discards the formation duration metric.
func (n *NopMetrics) RecordFormationDuration(_ /* seconds */ float64, _ /* strategyName */ string) {
	// No-op
}

// RecordFormationAttempt discards the formation attempt metric.
func (n *NopMetrics) RecordFormationAttempt(_ /* strategyName */ string, _ /* success */ bool) {
	// No-op
}

// SetTeamCount discards the team count gauge.
func (n *NopMetrics) SetTeamCount(_ /* count */ int) {
	// No-op
}
