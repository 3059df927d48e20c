package teammate

import "github.com/InzamanCareem/TeamMate-System/types"

// Sentinel errors returned by the Coordinator, re-exported from the types
// package for errors.Is checks against the public API.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrStrategyRequired is returned when the team strategy is nil.
	ErrStrategyRequired = types.ErrStrategyRequired

	// ErrParticipantNotFound is returned when an operation references an
	// unknown participant ID.
	ErrParticipantNotFound = types.ErrParticipantNotFound

	// ErrIntakeTimeout is returned when an intake run does not finish in
	// time.
	ErrIntakeTimeout = types.ErrIntakeTimeout

	// ErrInvalidTeamSize is returned when the requested team size is not
	// usable for the current registry.
	ErrInvalidTeamSize = types.ErrInvalidTeamSize

	// ErrNoParticipants is returned when formation is requested with an
	// empty registry.
	ErrNoParticipants = types.ErrNoParticipants

	// ErrFormationTimeout is returned when team population does not finish
	// in time.
	ErrFormationTimeout = types.ErrFormationTimeout

	// ErrMalformedRecord is returned when an imported record row cannot be
	// converted into a participant.
	ErrMalformedRecord = types.ErrMalformedRecord
)
