package natskv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/mkarlen/fairshare/types"
)

// Audit is a KV-backed AuditStore. Each applied reassignment is one
// immutable JSON record keyed by the record's ID; records are never
// updated or deleted by the engine.
type Audit struct {
	kv jetstream.KeyValue
}

// Compile-time assertion that Audit implements AuditStore.
var _ types.AuditStore = (*Audit)(nil)

// NewAudit creates an audit store over the given bucket.
//
// Parameters:
//   - kv: KV bucket holding audit records
//
// Returns:
//   - *Audit: Initialized store
func NewAudit(kv jetstream.KeyValue) *Audit {
	return &Audit{kv: kv}
}

// Append stores one audit record. Record IDs are unique (UUIDs from the
// applier); a duplicate ID is a programmer error and surfaces as an
// error rather than overwriting history.
func (a *Audit) Append(ctx context.Context, record types.AuditRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal audit record %s: %w", record.ID, err)
	}

	if _, err := a.kv.Create(ctx, record.ID, data); err != nil {
		return fmt.Errorf("append audit record %s: %w", record.ID, err)
	}

	return nil
}

// List returns all stored records ordered by timestamp ascending.
func (a *Audit) List(ctx context.Context) ([]types.AuditRecord, error) {
	lister, err := a.kv.ListKeys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("list audit keys: %w", err)
	}

	var records []types.AuditRecord
	for key := range lister.Keys() {
		entry, err := a.kv.Get(ctx, key)
		if err != nil {
			// Expired or deleted between listing and reading.
			if errors.Is(err, jetstream.ErrKeyNotFound) {
				continue
			}

			return nil, fmt.Errorf("get audit record %s: %w", key, err)
		}

		var record types.AuditRecord
		if err := json.Unmarshal(entry.Value(), &record); err != nil {
			return nil, fmt.Errorf("unmarshal audit record %s: %w", key, err)
		}
		records = append(records, record)
	}

	slices.SortStableFunc(records, func(a, b types.AuditRecord) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	return records, nil
}
