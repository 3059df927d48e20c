package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods are called from worker goroutines and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces so components
// can depend on only the slice they record.
type MetricsCollector interface {
	IntakeMetrics
	FormationMetrics
}

// IntakeMetrics defines metrics for survey intake operations.
type IntakeMetrics interface {
	// RecordAnswerAccepted records an accepted survey answer.
	//
	// Parameters:
	//   - domain: Question domain ("personality" or "interest")
	RecordAnswerAccepted(domain string)

	// RecordAnswerRejected records a rejected survey answer.
	//
	// Parameters:
	//   - questionNo: The question that rejected the answer
	RecordAnswerRejected(questionNo int)

	// RecordAnswerRetries records how many attempts a question took before
	// an answer was accepted or the worker gave up.
	//
	// Parameters:
	//   - questionNo: The question number
	//   - retries: Number of rejected attempts before the final one
	RecordAnswerRetries(questionNo int, retries int)

	// RecordIntakeOutcome records the final outcome of one intake worker.
	RecordIntakeOutcome(outcome IntakeOutcome)

	// SetRegisteredParticipants sets the current registry size (gauge).
	SetRegisteredParticipants(count int)
}

// FormationMetrics defines metrics for team formation operations.
type FormationMetrics interface {
	// RecordFormationDuration records the time taken for a formation run.
	//
	// Parameters:
	//   - seconds: Time taken in seconds
	//   - strategyName: Name of the strategy used ("skill_balanced", ...)
	RecordFormationDuration(seconds float64, strategyName string)

	// RecordFormationAttempt records a formation attempt (success or failure).
	RecordFormationAttempt(strategyName string, success bool)

	// SetTeamCount sets the current number of formed teams (gauge).
	SetTeamCount(count int)
}
