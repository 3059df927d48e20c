package types

import (
	"slices"
	"strconv"
	"sync"
)

// Team is a formed group of participants.
//
// Teams hold shared references to participants; the registry remains the
// owner. The member collection tolerates concurrent append and iteration:
// the formation engine appends from population goroutines while display
// operations may be reading a previous generation.
type Team struct {
	id   int
	name string

	mu      sync.RWMutex
	members []*Participant
}

// NewTeam creates an empty team.
//
// Parameters:
//   - id: Sequential team identifier (1..N)
//   - name: Display name (e.g., "Team")
//
// Returns:
//   - *Team: A new team with no members
func NewTeam(id int, name string) *Team {
	return &Team{id: id, name: name}
}

// ID returns the team's sequential identifier.
func (t *Team) ID() int { return t.id }

// Name returns the team's display name.
func (t *Team) Name() string { return t.name }

// AddMember appends a participant to the team. Safe for concurrent use.
func (t *Team) AddMember(p *Participant) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.members = append(t.members, p)
}

// Members returns a snapshot copy of the team's member list.
func (t *Team) Members() []*Participant {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return slices.Clone(t.members)
}

// Size returns the current member count.
func (t *Team) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.members)
}

// Contains reports whether the team includes the participant with the given ID.
func (t *Team) Contains(participantID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, m := range t.members {
		if m.ID() == participantID {
			return true
		}
	}

	return false
}

// SkillSum returns the sum of member skill levels, used to verify balance.
func (t *Team) SkillSum() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	sum := 0
	for _, m := range t.members {
		sum += m.SkillLevel()
	}

	return sum
}

// String returns the team header line used in save files ("Team 1:").
func (t *Team) String() string {
	return t.name + " " + strconv.Itoa(t.id) + ":"
}
