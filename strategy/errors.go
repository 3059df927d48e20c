package strategy

import "errors"

// ErrNoParticipants indicates that no participants were provided for
// assignment.
var ErrNoParticipants = errors.New("no participants available for assignment")

// ErrInvalidTeamSize indicates a non-positive team size. Callers validate
// the usable range (2..count-1) before invoking a strategy; this guards the
// arithmetic.
var ErrInvalidTeamSize = errors.New("team size must be positive")
