package notify

import (
	"context"

	"github.com/mkarlen/fairshare/types"
)

// NopPublisher discards all notifications. Useful for testing or when
// the engine runs without a notification pipeline.
type NopPublisher struct{}

// Compile-time assertion that NopPublisher implements AlertPublisher.
var _ types.AlertPublisher = (*NopPublisher)(nil)

// NewNop creates a new no-op publisher.
func NewNop() *NopPublisher {
	return &NopPublisher{}
}

// PublishAlerts discards the alerts.
func (n *NopPublisher) PublishAlerts(_ context.Context, _ string, _ []types.Alert) error {
	return nil
}

// PublishDigest discards the digest.
func (n *NopPublisher) PublishDigest(_ context.Context, _ string, _ types.Digest) error {
	return nil
}
