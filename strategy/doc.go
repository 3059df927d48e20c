// Package strategy provides team assignment strategy implementations.
//
// Available strategies:
//   - SkillBalanced: alternates lowest and highest remaining skill
//     participants per team to balance skill sums (the default)
//   - RoundRobin: deals participants into teams in sorted order
//   - Hashed: spreads participants by a seeded xxh3 hash of their ID for a
//     deterministic, order-independent distribution
//
// All strategies are deterministic, stateless, and assign every participant
// to exactly one disjoint team slot, which is what makes the engine's
// parallel population phase safe without cross-slot locking.
package strategy
