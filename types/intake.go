package types

import "time"

// IntakeOutcome is the typed result an intake worker reports back to the
// coordinator through the result channel.
type IntakeOutcome int

// Worker outcomes, aggregated into an IntakeReport.
const (
	// OutcomeCompleted means the participant finished the survey, qualified,
	// and was persisted.
	OutcomeCompleted IntakeOutcome = iota

	// OutcomeDuplicate means the participant ID was already registered; the
	// worker aborted without further action.
	OutcomeDuplicate

	// OutcomeAbandoned means an answer stayed invalid past the retry cap;
	// the participant was removed.
	OutcomeAbandoned

	// OutcomeExcluded means the personality score did not reach a qualifying
	// category; the participant was removed.
	OutcomeExcluded

	// OutcomeWriteFailed means the participant completed and qualified but
	// persisting the record failed. The participant stays registered.
	OutcomeWriteFailed
)

// String returns the outcome label used in logs and metrics.
func (o IntakeOutcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeAbandoned:
		return "abandoned"
	case OutcomeExcluded:
		return "excluded"
	case OutcomeWriteFailed:
		return "write_failed"
	default:
		return "unknown"
	}
}

// IntakeReport aggregates the outcomes of one intake run.
type IntakeReport struct {
	// Requested is the number of intake workers launched.
	Requested int

	// Completed counts participants that finished, qualified and persisted.
	Completed int

	// Duplicates counts workers aborted because the ID was already present.
	Duplicates int

	// Abandoned counts participants removed after exhausting answer retries.
	Abandoned int

	// Excluded counts participants removed for a non-qualifying personality
	// score.
	Excluded int

	// WriteFailures counts participants whose record persist failed.
	WriteFailures int

	// TimedOut reports whether the run hit the intake timeout before all
	// workers finished. Participants that completed individually remain
	// valid; outcomes of unfinished workers are not counted.
	TimedOut bool

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Accounted returns the number of workers whose outcome was collected.
func (r IntakeReport) Accounted() int {
	return r.Completed + r.Duplicates + r.Abandoned + r.Excluded + r.WriteFailures
}
