package types

import "context"

// RecordReader reads participant record rows from a source.
//
// Implementations skip the header row and return each remaining line as a
// positional field slice (see ParticipantFromRecord for the layout).
type RecordReader interface {
	// ReadAll reads every record row from the source.
	//
	// Parameters:
	//   - source: Reader-specific location (e.g., a file path)
	//
	// Returns:
	//   - [][]string: One field slice per record, header excluded
	//   - error: I/O or parse failure
	ReadAll(source string) ([][]string, error)
}

// RecordWriter appends participant records to a destination.
//
// Implementations write a header once if the destination did not previously
// exist, then one row per call. Concurrent callers MUST be serialized by the
// implementation: intake workers persist from many goroutines and an
// interleaved partial write would corrupt the destination.
type RecordWriter interface {
	// Append writes one participant record, creating the destination with a
	// header first if needed.
	Append(destination string, p *Participant) error
}

// TeamWriter persists an entire team generation.
//
// Implementations overwrite the destination on each call: one header-like
// line per team (name + id), one line per member, and a blank line between
// teams.
type TeamWriter interface {
	// WriteAll replaces the destination with the given teams.
	WriteAll(destination string, teams []*Team) error
}

// Authenticator verifies organizer credentials.
type Authenticator interface {
	// Verify reports whether the username/password pair is valid.
	Verify(username, password string) bool
}

// EventPublisher publishes domain events to an external system.
//
// Implementations must be safe for concurrent calls; intake workers publish
// registration events in parallel. Publish failures are logged by the
// coordinator and never fail the triggering operation.
type EventPublisher interface {
	// PublishParticipantRegistered announces a newly registered participant.
	PublishParticipantRegistered(ctx context.Context, p *Participant) error

	// PublishTeamsFormed announces a completed formation run.
	PublishTeamsFormed(ctx context.Context, teams []*Team) error
}
