package strategy

import (
	"github.com/InzamanCareem/TeamMate-System/types"
)

// RoundRobin implements simple round-robin team assignment.
type RoundRobin struct{}

var _ types.TeamStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// The strategy deals participants into teams in sorted order. Teams end up
// stratified by skill (each team receives one participant from every
// consecutive skill band) rather than sum-balanced like SkillBalanced.
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Name returns "round_robin".
func (rr *RoundRobin) Name() string { return "round_robin" }

// Assign deals participants into ceil(count/teamSize) slots in order.
//
// Parameters:
//   - participants: Sorted ascending by skill level
//   - teamSize: Desired members per team
//
// Returns:
//   - [][]*types.Participant: Disjoint slots covering every participant
//   - error: ErrNoParticipants or ErrInvalidTeamSize
func (rr *RoundRobin) Assign(participants []*types.Participant, teamSize int) ([][]*types.Participant, error) {
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

	for i, p := range participants {
		idx := i % teamCount
		slots[idx] = append(slots[idx], p)
	}

	return slots, nil
}
