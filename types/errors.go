package types

import "errors"

// Sentinel errors for the TeamMate system.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components wrap them with context using
// fmt.Errorf("...: %w", err).

// Coordinator errors - Public API errors returned by the Coordinator.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStrategyRequired is returned when the team strategy is nil.
	ErrStrategyRequired = errors.New("team strategy is required")

	// ErrParticipantNotFound is returned when an operation references an
	// unknown participant ID.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrIntakeTimeout is returned when an intake run does not finish
	// within the configured timeout. Individually completed participants
	// remain valid.
	ErrIntakeTimeout = errors.New("survey intake timed out")
)

// Formation errors - Returned by the formation engine and its callers.
var (
	// ErrInvalidTeamSize is returned when the requested team size is not
	// usable (must be at least 2 and smaller than the participant count).
	ErrInvalidTeamSize = errors.New("invalid team size")

	// ErrNoParticipants is returned when formation is requested with an
	// empty registry.
	ErrNoParticipants = errors.New("no participants available")

	// ErrFormationTimeout is returned when team population does not finish
	// within the configured timeout. No partial team list is returned.
	ErrFormationTimeout = errors.New("team formation timed out")
)

// Record errors - Returned by the record import/export paths.
var (
	// ErrMalformedRecord is returned when a record row cannot be converted
	// into a participant.
	ErrMalformedRecord = errors.New("malformed participant record")
)
