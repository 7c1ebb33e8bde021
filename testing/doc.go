// Package testing provides test utilities for the fairshare library.
//
// This package offers helpers for setting up test environments, particularly
// embedded NATS servers for integration testing, plus household fixtures used
// across package tests. It follows Go's convention of providing testing
// utilities in a dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - CreateJetStreamKV: Convenience wrapper for KV bucket creation
//   - Household, PendingTasks: Canonical member and task fixtures
//
// Example usage:
//
//	import (
//	    "testing"
//	    fairsharetest "github.com/mkarlen/fairshare/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := fairsharetest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
