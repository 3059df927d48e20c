// Package store provides the concurrent survey response store.
package store

import (
	"github.com/puzpuzpuz/xsync/v4"
)

// Store holds per-participant survey answers, split into the two response
// domains (personality and interest).
//
// Both mappings are safe under unbounded concurrent callers with distinct or
// identical participant IDs. The per-participant inner map is created
// atomically via LoadOrStore, so a race between two first-writers for the
// same ID cannot lose an answer or leave two inner maps behind.
//
// The store is process-wide: created once and never cleared. A fresh run
// requires a fresh store.
type Store struct {
	personality *xsync.Map[string, *xsync.Map[int, string]]
	interest    *xsync.Map[string, *xsync.Map[int, string]]
}

// New creates an empty survey response store.
func New() *Store {
	return &Store{
		personality: xsync.NewMap[string, *xsync.Map[int, string]](),
		interest:    xsync.NewMap[string, *xsync.Map[int, string]](),
	}
}

// AddPersonalityAnswer records a personality-domain answer (questions 1-5)
// for a participant. Safe for concurrent use.
func (s *Store) AddPersonalityAnswer(participantID string, questionNo int, answer string) {
	inner, _ := s.personality.LoadOrStore(participantID, xsync.NewMap[int, string]())
	inner.Store(questionNo, answer)
}

// AddInterestAnswer records an interest-domain answer (questions 6-8) for a
// participant. Safe for concurrent use.
func (s *Store) AddInterestAnswer(participantID string, questionNo int, answer string) {
	inner, _ := s.interest.LoadOrStore(participantID, xsync.NewMap[int, string]())
	inner.Store(questionNo, answer)
}

// PersonalityResponses returns a copy of one participant's personality
// answers keyed by question number, or nil if none were recorded.
func (s *Store) PersonalityResponses(participantID string) map[int]string {
	return snapshotInner(s.personality, participantID)
}

// InterestResponses returns a copy of one participant's interest answers
// keyed by question number, or nil if none were recorded.
//
// The coordinator reads this once per participant, after all three interest
// answers have been accepted, to commit the derived fields.
func (s *Store) InterestResponses(participantID string) map[int]string {
	return snapshotInner(s.interest, participantID)
}

// InterestSnapshot returns a copy of the full interest mapping for all
// participants.
func (s *Store) InterestSnapshot() map[string]map[int]string {
	out := make(map[string]map[int]string, s.interest.Size())
	s.interest.Range(func(id string, inner *xsync.Map[int, string]) bool {
		out[id] = snapshotAnswers(inner)
		return true
	})

	return out
}

// PersonalityParticipantCount returns how many participants have at least
// one personality answer recorded.
func (s *Store) PersonalityParticipantCount() int {
	return s.personality.Size()
}

func snapshotInner(m *xsync.Map[string, *xsync.Map[int, string]], participantID string) map[int]string {
	inner, ok := m.Load(participantID)
	if !ok {
		return nil
	}

	return snapshotAnswers(inner)
}

func snapshotAnswers(inner *xsync.Map[int, string]) map[int]string {
	out := make(map[int]string, inner.Size())
	inner.Range(func(questionNo int, answer string) bool {
		out[questionNo] = answer
		return true
	})

	return out
}
