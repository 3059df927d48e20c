// Package formation provides the team assignment engine.
//
// A formation run has three phases:
//
//  1. Collect: sort the participant snapshot ascending by skill level, ties
//     broken by registry insertion sequence. Concurrent-map iteration order
//     is undefined, so the sequence number is what makes results
//     reproducible.
//  2. Precompute: the strategy assigns every participant to exactly one
//     disjoint team slot. This phase is single-threaded and fully completes
//     before any population goroutine starts, which is the program-order
//     barrier that makes phase 3 safe without cross-slot locking.
//  3. Populate: a bounded worker pool appends each slot's participants into
//     its team's member collection concurrently. Only the team's own
//     concurrency-safe append is needed, because slots never overlap.
//
// The engine blocks until every population task finishes or the configured
// timeout elapses. A timeout is fatal to the run: no partial team list is
// returned.
package formation

import (
	"cmp"
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/InzamanCareem/TeamMate-System/types"
)

// Engine builds teams from a participant snapshot using an injectable
// assignment strategy.
type Engine struct {
	strategy types.TeamStrategy
	logger   types.Logger
	metrics  types.FormationMetrics
	timeout  time.Duration
	teamName string
}

// New creates a formation engine.
//
// Parameters:
//   - strategy: Assignment strategy (precompute phase)
//   - logger: Logger for run progress
//   - metrics: Formation metrics sink
//   - timeout: Upper bound on the parallel population phase
//   - teamName: Display name given to every team (e.g., "Team")
//
// Returns:
//   - *Engine: Engine ready for repeated Build calls
func New(strategy types.TeamStrategy, logger types.Logger, metrics types.FormationMetrics, timeout time.Duration, teamName string) *Engine {
	return &Engine{
		strategy: strategy,
		logger:   logger,
		metrics:  metrics,
		timeout:  timeout,
		teamName: teamName,
	}
}

// CompareBySkill orders participants ascending by skill level, breaking
// ties by registry insertion sequence. This is the engine's collection
// comparator; exposing it keeps tie ordering explicit and testable.
func CompareBySkill(a, b *types.Participant) int {
	if c := cmp.Compare(a.SkillLevel(), b.SkillLevel()); c != 0 {
		return c
	}

	return cmp.Compare(a.Sequence(), b.Sequence())
}

// SortParticipants returns a sorted copy of the snapshot using
// CompareBySkill. The input slice is not modified.
func SortParticipants(participants []*types.Participant) []*types.Participant {
	sorted := slices.Clone(participants)
	slices.SortStableFunc(sorted, CompareBySkill)

	return sorted
}

// Build runs one formation: collect, precompute, populate.
//
// Team size validation against the participant count is the caller's
// responsibility; the engine only guards what its own arithmetic needs.
//
// Parameters:
//   - ctx: Context for cancellation of the population phase
//   - participants: Registry snapshot to partition (any order)
//   - teamSize: Desired participants per team
//
// Returns:
//   - []*types.Team: Fully populated teams, ids 1..N
//   - error: Strategy failure, types.ErrFormationTimeout, or context error;
//     the team list is nil on any error
func (e *Engine) Build(ctx context.Context, participants []*types.Participant, teamSize int) ([]*types.Team, error) {
	start := time.Now()

	if len(participants) == 0 {
		e.metrics.RecordFormationAttempt(e.strategy.Name(), false)
		return nil, types.ErrNoParticipants
	}

	// Phase 1: collect.
	sorted := SortParticipants(participants)

	// Phase 2: precompute. Must fully complete before population starts.
	slots, err := e.strategy.Assign(sorted, teamSize)
	if err != nil {
		e.metrics.RecordFormationAttempt(e.strategy.Name(), false)
		return nil, fmt.Errorf("assignment strategy %s: %w", e.strategy.Name(), err)
	}

	teams := make([]*types.Team, len(slots))
	for i := range slots {
		teams[i] = types.NewTeam(i+1, e.teamName)
	}

	e.logger.Debug("assignment precomputed",
		"strategy", e.strategy.Name(),
		"participants", len(sorted),
		"teams", len(slots),
		"team_size", teamSize,
	)

	// Phase 3: populate each slot concurrently on a bounded pool. Each task
	// writes only to its own team, so the team's safe append is the only
	// synchronization needed.
	if err := e.populate(ctx, teams, slots); err != nil {
		e.metrics.RecordFormationAttempt(e.strategy.Name(), false)
		return nil, err
	}

	elapsed := time.Since(start)
	e.metrics.RecordFormationAttempt(e.strategy.Name(), true)
	e.metrics.RecordFormationDuration(elapsed.Seconds(), e.strategy.Name())
	e.logger.Info("teams formed",
		"strategy", e.strategy.Name(),
		"teams", len(teams),
		"participants", len(sorted),
		"elapsed", elapsed,
	)

	return teams, nil
}

func (e *Engine) populate(ctx context.Context, teams []*types.Team, slots [][]*types.Participant) error {
	workers := min(len(slots), runtime.GOMAXPROCS(0))

	tasks := make(chan int, len(slots))
	for i := range slots {
		tasks <- i
	}
	close(tasks)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				for _, p := range slots[i] {
					teams[i].AddMember(p)
				}
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(e.timeout)
	defer timer.Stop()

	select {
	case <-done:
		return nil
	case <-timer.C:
		e.logger.Error("team population timed out", "timeout", e.timeout)
		return fmt.Errorf("%w after %v", types.ErrFormationTimeout, e.timeout)
	case <-ctx.Done():
		return fmt.Errorf("team formation canceled: %w", ctx.Err())
	}
}
