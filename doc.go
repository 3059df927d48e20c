// Package teammate provides concurrent survey intake and skill-balanced
// team formation for gaming events.
//
// Participants register, answer an eight-question survey (five personality
// questions and three gaming-interest questions), and are classified by a
// personality score. Qualified participants are then partitioned into
// balanced teams by a pluggable assignment strategy.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/InzamanCareem/TeamMate-System"
//
//	coord, err := teammate.NewCoordinator(teammate.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := coord.RunIntake(ctx, requests)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	teams, err := coord.FormTeams(ctx, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Features
//
//   - Concurrent Intake: Survey runs fan out to a bounded worker pool with
//     per-question retry handling and a run-level timeout
//   - Personality Classification: Five-answer score with Leader, Balanced,
//     and Thinker tiers; low scorers are excluded before formation
//   - Skill-Balanced Teams: Sorted low/high interleave keeps team skill
//     sums close; round-robin and hash-based strategies are also provided
//   - CSV Persistence: Append-on-completion participant records and batch
//     team exports
//   - Event Publishing: Optional JetStream events on registration and
//     formation
//
// # Team Formation
//
// FormTeams runs in three phases:
//
//	collect → precompute → populate
//
// The registry snapshot is sorted by skill level, the strategy precomputes
// the full member layout for every team, and a bounded goroutine pool then
// populates the teams. The populate phase is bounded by a formation
// timeout; on timeout no partial teams are returned.
//
// # Advanced Usage
//
// Custom strategy with options:
//
//	import (
//	    teammate "github.com/InzamanCareem/TeamMate-System"
//	    "github.com/InzamanCareem/TeamMate-System/strategy"
//	)
//
//	hooks := &teammate.Hooks{
//	    OnTeamsFormed: func(ctx context.Context, teams []*teammate.Team) error {
//	        // Handle new team generation
//	        return nil
//	    },
//	}
//
//	coord, err := teammate.NewCoordinator(cfg,
//	    teammate.WithStrategy(strategy.NewHashed(strategy.WithHashSeed(42))),
//	    teammate.WithHooks(hooks),
//	)
//
// See the examples/ directory for complete working examples.
package teammate
