// Package types contains the core data types and interfaces shared across
// the TeamMate system.
//
// This package exists so that internal packages (registry, store, formation)
// and public packages (strategy, survey, csv, events) can share definitions
// without importing the root teammate package, which would create import
// cycles. The root package re-exports the commonly used names via type
// aliases for convenience.
package types
