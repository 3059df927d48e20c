package strategy

import (
	"github.com/zeebo/xxh3"

	"github.com/InzamanCareem/TeamMate-System/types"
)

// Hashed assigns participants to teams by a seeded xxh3 hash of their ID.
//
// The distribution is deterministic and independent of input order, which
// makes it reproducible across runs even when the participant snapshot is
// iterated differently. Slot sizes are only statistically even: unlike
// SkillBalanced and RoundRobin, a slot may exceed teamSize.
type Hashed struct {
	seed uint64
}

var _ types.TeamStrategy = (*Hashed)(nil)

// HashedOption configures a Hashed strategy.
type HashedOption func(*Hashed)

// WithHashSeed sets a custom hash seed, changing the distribution while
// remaining deterministic for that seed.
func WithHashSeed(seed uint64) HashedOption {
	return func(h *Hashed) {
		h.seed = seed
	}
}

// NewHashed creates a new hash-spread strategy.
//
// Parameters:
//   - opts: Optional configuration (WithHashSeed)
func NewHashed(opts ...HashedOption) *Hashed {
	h := &Hashed{}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}

	return h
}

// Name returns "hashed".
func (h *Hashed) Name() string { return "hashed" }

// Assign places each participant into slot xxh3(ID, seed) mod teamCount.
//
// Parameters:
//   - participants: Participants to distribute (order does not matter)
//   - teamSize: Used only to derive the team count
//
// Returns:
//   - [][]*types.Participant: Disjoint slots covering every participant
//   - error: ErrNoParticipants or ErrInvalidTeamSize
func (h *Hashed) Assign(participants []*types.Participant, teamSize int) ([][]*types.Participant, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if teamSize <= 0 {
		return nil, ErrInvalidTeamSize
	}

	teamCount := (len(participants) + teamSize - 1) / teamSize
	slots := make([][]*types.Participant, teamCount)
	for i := range slots {
		slots[i] = []*types.Participant{}
	}

	for _, p := range participants {
		idx := int(xxh3.HashStringSeed(p.ID(), h.seed) % uint64(teamCount))
		slots[idx] = append(slots[idx], p)
	}

	return slots, nil
}
