package teammate

import "github.com/InzamanCareem/TeamMate-System/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the library's core types and
// interfaces via type aliases. Internal packages depend on `types` without
// depending on the root package, avoiding import cycles, while users get
// convenient `teammate.Participant`, `teammate.Result`, etc.
type (
	Participant     = types.Participant
	Team            = types.Team
	Result          = types.Result
	PersonalityType = types.PersonalityType
	IntakeOutcome   = types.IntakeOutcome
	IntakeReport    = types.IntakeReport
)

// Re-export interfaces from the types package for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	TeamStrategy     = types.TeamStrategy
	Hooks            = types.Hooks
	RecordReader     = types.RecordReader
	RecordWriter     = types.RecordWriter
	TeamWriter       = types.TeamWriter
	Authenticator    = types.Authenticator
	EventPublisher   = types.EventPublisher
)

// Re-export personality categories.
const (
	PersonalityLeader   = types.PersonalityLeader
	PersonalityBalanced = types.PersonalityBalanced
	PersonalityThinker  = types.PersonalityThinker
	PersonalityNone     = types.PersonalityNone
)

// Re-export intake outcomes.
const (
	OutcomeCompleted   = types.OutcomeCompleted
	OutcomeDuplicate   = types.OutcomeDuplicate
	OutcomeAbandoned   = types.OutcomeAbandoned
	OutcomeExcluded    = types.OutcomeExcluded
	OutcomeWriteFailed = types.OutcomeWriteFailed
)
