package types

import (
	"fmt"
	"maps"
	"strconv"
	"sync"
)

// Participant represents an individual taking part in the survey and team
// formation process.
//
// A participant is owned by the registry once added. Identity fields (ID,
// name, email) are immutable after construction. Derived fields (preferred
// game, skill level, preferred role, personality score and type) are set by
// the coordinator after the survey completes, and may be read concurrently
// by display and formation operations, so access is guarded internally.
type Participant struct {
	id    string
	name  string
	email string

	mu               sync.RWMutex
	preferredGame    string
	skillLevel       int
	preferredRole    string
	personalityScore int
	personalityType  PersonalityType
	responses        map[int]string

	// seq is the registry insertion sequence number, used as the documented
	// tie-break when sorting participants with equal skill levels.
	seq uint64
}

// NewParticipant creates a participant with the given identity.
//
// IDs are normally generated by the registry ("P1", "P2", ...); external
// imports supply their own.
//
// Parameters:
//   - id: Unique participant identifier
//   - name: Full name
//   - email: Contact email
//
// Returns:
//   - *Participant: A new participant with no survey responses
func NewParticipant(id, name, email string) *Participant {
	return &Participant{
		id:        id,
		name:      name,
		email:     email,
		responses: make(map[int]string),
	}
}

// ParticipantFromRecord builds a fully specified participant from a raw
// record row as produced by a RecordReader.
//
// The row maps positionally to (id, name, email, preferredGame, skillLevel,
// preferredRole, personalityScore, personalityType).
//
// Returns:
//   - *Participant: Populated participant
//   - error: Parse error for malformed numeric fields or short rows
func ParticipantFromRecord(row []string) (*Participant, error) {
	if len(row) < 8 {
		return nil, fmt.Errorf("%w: expected 8 fields, got %d", ErrMalformedRecord, len(row))
	}

	skill, err := strconv.Atoi(row[4])
	if err != nil {
		return nil, fmt.Errorf("%w: skill level %q: %w", ErrMalformedRecord, row[4], err)
	}

	score, err := strconv.Atoi(row[6])
	if err != nil {
		return nil, fmt.Errorf("%w: personality score %q: %w", ErrMalformedRecord, row[6], err)
	}

	p := NewParticipant(row[0], row[1], row[2])
	p.preferredGame = row[3]
	p.skillLevel = skill
	p.preferredRole = row[5]
	p.personalityScore = score
	p.personalityType = PersonalityType(row[7])

	return p, nil
}

// ID returns the participant's unique identifier.
func (p *Participant) ID() string { return p.id }

// Name returns the participant's full name.
func (p *Participant) Name() string { return p.name }

// Email returns the participant's contact email.
func (p *Participant) Email() string { return p.email }

// SkillLevel returns the participant's skill level (1-10).
func (p *Participant) SkillLevel() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.skillLevel
}

// PreferredGame returns the participant's preferred game.
func (p *Participant) PreferredGame() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.preferredGame
}

// PreferredRole returns the participant's preferred team role.
func (p *Participant) PreferredRole() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.preferredRole
}

// PersonalityScore returns the calculated personality score.
func (p *Participant) PersonalityScore() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.personalityScore
}

// PersonalityType returns the classified personality type, or PersonalityNone
// when the participant has not been classified or did not qualify.
func (p *Participant) PersonalityType() PersonalityType {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.personalityType
}

// SetInterests commits the interest-survey fields onto the participant.
func (p *Participant) SetInterests(game string, skillLevel int, role string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.preferredGame = game
	p.skillLevel = skillLevel
	p.preferredRole = role
}

// SetPersonality commits the derived personality score and type.
func (p *Participant) SetPersonality(score int, personality PersonalityType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.personalityScore = score
	p.personalityType = personality
}

// RecordAnswer stores a raw survey answer on the participant's own response
// record. The survey store keeps the authoritative copy; this duplicate is
// kept for per-participant inspection and record export.
func (p *Participant) RecordAnswer(questionNo int, answer string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.responses[questionNo] = answer
}

// Answer returns the recorded raw answer for a question, if any.
func (p *Participant) Answer(questionNo int) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	answer, ok := p.responses[questionNo]

	return answer, ok
}

// Responses returns a copy of all recorded raw answers keyed by question
// number.
func (p *Participant) Responses() map[int]string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return maps.Clone(p.responses)
}

// SetSequence records the registry insertion sequence number. Called once by
// the registry when the participant is added.
func (p *Participant) SetSequence(seq uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq = seq
}

// Sequence returns the registry insertion sequence number.
func (p *Participant) Sequence() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.seq
}

// Details returns a readable one-line summary used in team save files.
func (p *Participant) Details() string {
	return "ID: " + p.id + ", Name: " + p.name + ", Email: " + p.email
}

// Record converts the participant into a raw record row, the positional
// inverse of ParticipantFromRecord.
func (p *Participant) Record() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return []string{
		p.id,
		p.name,
		p.email,
		p.preferredGame,
		strconv.Itoa(p.skillLevel),
		p.preferredRole,
		strconv.Itoa(p.personalityScore),
		string(p.personalityType),
	}
}
