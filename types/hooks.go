package types

import "context"

// Hooks defines callbacks for coordinator lifecycle events.
//
// All hooks are optional. They are invoked synchronously from the worker or
// caller goroutine that triggered the event, so implementations should
// complete quickly and must be safe for concurrent calls. Hook errors are
// logged but never fail the triggering operation.
type Hooks struct {
	// OnParticipantRegistered is called after a participant is added to the
	// registry during intake.
	OnParticipantRegistered func(ctx context.Context, p *Participant) error

	// OnParticipantExcluded is called when a participant is removed for a
	// non-qualifying personality score.
	OnParticipantExcluded func(ctx context.Context, p *Participant, score int) error

	// OnTeamsFormed is called after a formation run replaces the current
	// team generation.
	OnTeamsFormed func(ctx context.Context, teams []*Team) error
}
