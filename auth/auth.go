// Package auth provides the organizer credential check.
//
// Authentication hardening is out of scope for this system: credentials are
// compared in plaintext against a single fixed pair.
package auth

import "github.com/InzamanCareem/TeamMate-System/types"

// Static verifies credentials against one fixed username/password pair.
type Static struct {
	username string
	password string
}

var _ types.Authenticator = (*Static)(nil)

// New creates a Static authenticator for the given credential pair.
func New(username, password string) *Static {
	return &Static{username: username, password: password}
}

// Verify reports whether both the username and password match.
func (s *Static) Verify(username, password string) bool {
	return s.username == username && s.password == password
}
