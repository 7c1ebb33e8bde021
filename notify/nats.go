package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/mkarlen/fairshare/internal/logging"
	"github.com/mkarlen/fairshare/types"
)

// DefaultSubjectPrefix scopes all notification subjects.
const DefaultSubjectPrefix = "fairshare.household"

// NATSPublisher publishes alerts and digests as JSON over core NATS.
//
// Publishing is fire-and-forget: delivery guarantees beyond the NATS
// connection are the notification service's concern.
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
	logger types.Logger
}

// Compile-time assertion that NATSPublisher implements AlertPublisher.
var _ types.AlertPublisher = (*NATSPublisher)(nil)

// Option configures a NATSPublisher.
type Option func(*NATSPublisher)

// WithSubjectPrefix overrides the subject prefix.
func WithSubjectPrefix(prefix string) Option {
	return func(p *NATSPublisher) {
		if prefix != "" {
			p.prefix = prefix
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger types.Logger) Option {
	return func(p *NATSPublisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewNATSPublisher creates a publisher over an existing NATS connection.
//
// Parameters:
//   - conn: Established NATS connection (not owned; the caller closes it)
//   - opts: Optional configuration
//
// Returns:
//   - *NATSPublisher: Initialized publisher
func NewNATSPublisher(conn *nats.Conn, opts ...Option) *NATSPublisher {
	p := &NATSPublisher{
		conn:   conn,
		prefix: DefaultSubjectPrefix,
		logger: logging.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p
}

// PublishAlerts publishes the batch to <prefix>.<householdID>.alerts.
// Empty batches publish nothing.
func (p *NATSPublisher) PublishAlerts(_ context.Context, householdID string, alerts []types.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	data, err := json.Marshal(alerts)
	if err != nil {
		return fmt.Errorf("marshal alerts: %w", err)
	}

	subject := fmt.Sprintf("%s.%s.alerts", p.prefix, householdID)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish alerts to %s: %w", subject, err)
	}

	p.logger.Debug("alerts published", "subject", subject, "count", len(alerts))

	return nil
}

// PublishDigest publishes the digest to <prefix>.<householdID>.digest.
func (p *NATSPublisher) PublishDigest(_ context.Context, householdID string, digest types.Digest) error {
	data, err := json.Marshal(digest)
	if err != nil {
		return fmt.Errorf("marshal digest: %w", err)
	}

	subject := fmt.Sprintf("%s.%s.digest", p.prefix, householdID)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish digest to %s: %w", subject, err)
	}

	p.logger.Debug("digest published", "subject", subject, "entries", len(digest.Entries))

	return nil
}
