// Package testing provides test utilities for the TeamMate system.
//
// It follows Go's convention of a dedicated testing-helper package (similar
// to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger that writes to the testing.T log
//   - StartEmbeddedNATS: In-process NATS server with JetStream for event
//     publisher tests
//   - SimulatedAnswers: Answer generator for intake simulations
//
// Example usage:
//
//	import (
//	    "testing"
//	    tmtest "github.com/InzamanCareem/TeamMate-System/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := tmtest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
