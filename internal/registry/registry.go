// Package registry provides the concurrent participant registry and its
// sequential ID generator.
package registry

import (
	"strconv"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/InzamanCareem/TeamMate-System/types"
)

// Registry is the concurrent set of participants keyed by ID.
//
// The registry owns every participant added to it and generates sequential
// IDs ("P1", "P2", ...) for participants created through NewParticipant.
// The counter belongs to the registry instance rather than a package global,
// so tests get deterministic IDs without cross-test leakage.
type Registry struct {
	participants *xsync.Map[string, *types.Participant]
	prefix       string
	counter      atomic.Uint64
	insertSeq    atomic.Uint64
}

// New creates an empty registry.
//
// Parameters:
//   - idPrefix: Prefix for generated participant IDs (e.g., "P")
//
// Returns:
//   - *Registry: Empty registry with its counter at zero
func New(idPrefix string) *Registry {
	return &Registry{
		participants: xsync.NewMap[string, *types.Participant](),
		prefix:       idPrefix,
	}
}

// NewParticipant creates a participant with the next generated ID. The
// participant is not yet registered; pass it to Add.
func (r *Registry) NewParticipant(name, email string) *types.Participant {
	id := r.prefix + strconv.FormatUint(r.counter.Add(1), 10)

	return types.NewParticipant(id, name, email)
}

// Add inserts the participant only if its ID is absent.
//
// A false return signals "already registered", not an error: under
// concurrent ID reuse a duplicate is an expected outcome and the stored
// participant is left untouched.
//
// Returns:
//   - bool: true if the participant was inserted
func (r *Registry) Add(p *types.Participant) bool {
	// Stamp before publication: the instant LoadOrStore succeeds the
	// participant is visible to Snapshot, and the sort comparator must
	// never observe a zero sequence. A rejected duplicate wastes its
	// number, which is harmless.
	p.SetSequence(r.insertSeq.Add(1))

	if _, loaded := r.participants.LoadOrStore(p.ID(), p); loaded {
		return false
	}

	return true
}

// Remove deletes the participant with the given ID. No-op if absent.
func (r *Registry) Remove(participantID string) {
	r.participants.Delete(participantID)
}

// Get looks up a participant by ID.
func (r *Registry) Get(participantID string) (*types.Participant, bool) {
	return r.participants.Load(participantID)
}

// Snapshot returns the current participants. Iteration order is undefined;
// callers needing a stable order sort by skill level and insertion sequence.
func (r *Registry) Snapshot() []*types.Participant {
	out := make([]*types.Participant, 0, r.participants.Size())
	r.participants.Range(func(_ string, p *types.Participant) bool {
		out = append(out, p)
		return true
	})

	return out
}

// Size returns the current participant count.
func (r *Registry) Size() int {
	return r.participants.Size()
}
