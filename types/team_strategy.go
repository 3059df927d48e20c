package types

// TeamStrategy precomputes team membership for a set of participants.
//
// Strategies implement different matching algorithms:
//   - SkillBalanced: low/high skill interleaving for balanced skill sums
//   - RoundRobin: simple dealing in sorted order
//   - Hashed: deterministic hash-keyed spread
//
// The formation engine calls Assign exactly once per formation run, after
// sorting participants and before any concurrent team population begins.
// Because Assign fully completes first and returns disjoint slots, the
// population phase needs no cross-slot synchronization.
//
// Strategy implementations should:
//   - Be deterministic (same input → same output)
//   - Assign every participant to exactly one slot
//   - Be stateless (no side effects)
type TeamStrategy interface {
	// Name returns a short strategy identifier used in logs and metrics.
	Name() string

	// Assign distributes participants into team slots.
	//
	// Parameters:
	//   - participants: Participants sorted ascending by skill level, ties
	//     broken by registry insertion sequence
	//   - teamSize: Desired number of participants per team
	//
	// Returns:
	//   - [][]*Participant: One disjoint slot per team; slots may be
	//     shorter than teamSize when the division is uneven
	//   - error: Assignment error (e.g., no participants)
	Assign(participants []*Participant, teamSize int) ([][]*Participant, error)
}
