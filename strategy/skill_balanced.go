package strategy

import (
	"github.com/InzamanCareem/TeamMate-System/types"
)

// SkillBalanced implements low/high skill interleaving.
//
// Each team slot takes one participant from the low end of the sorted
// sequence, then one from the high end, alternating until the slot is full.
// Mixing the lowest and highest remaining skills balances each team's skill
// sum.
type SkillBalanced struct{}

var _ types.TeamStrategy = (*SkillBalanced)(nil)

// NewSkillBalanced creates the default skill-interleaving strategy.
//
// Example:
//
//	coord, err := teammate.NewCoordinator(cfg, teammate.WithStrategy(strategy.NewSkillBalanced()))
func NewSkillBalanced() *SkillBalanced {
	return &SkillBalanced{}
}

// Name returns "skill_balanced".
func (s *SkillBalanced) Name() string { return "skill_balanced" }

// Assign precomputes team slots by alternating low/high cursors over the
// sorted participant sequence.
//
// The algorithm:
//  1. n = ceil(len(participants) / teamSize) team slots
//  2. low cursor at index 0, high cursor at the last index
//  3. For each slot in order: take from low, then from high, alternating,
//     until the slot has teamSize members or low > high
//
// When the participant count is not evenly divisible by teamSize the last
// slot(s) naturally come out short via the low > high termination.
//
// Parameters:
//   - participants: Sorted ascending by skill level (stable ties)
//   - teamSize: Desired members per team
//
// Returns:
//   - [][]*types.Participant: Disjoint slots covering every participant
//   - error: ErrNoParticipants or ErrInvalidTeamSize
func (s *SkillBalanced) Assign(participants []*types.Participant, teamSize int) ([][]*types.Participant, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if teamSize <= 0 {
		return nil, ErrInvalidTeamSize
	}

	teamCount := (len(participants) + teamSize - 1) / teamSize
	slots := make([][]*types.Participant, teamCount)

	low := 0
	high := len(participants) - 1

	for i := range slots {
		slot := make([]*types.Participant, 0, teamSize)
		for len(slot) < teamSize && low <= high {
			slot = append(slot, participants[low])
			low++
			if len(slot) < teamSize && low <= high {
				slot = append(slot, participants[high])
				high--
			}
		}
		slots[i] = slot
	}

	return slots, nil
}
