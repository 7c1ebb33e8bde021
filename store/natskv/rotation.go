package natskv

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/mkarlen/fairshare/types"
)

// Rotation is a KV-backed RotationStore. The last assignee of each
// category is one small value keyed by the category name, so rotation
// memory survives process restarts and is shared between engine
// instances. Expiry, when wanted, comes from the bucket TTL.
type Rotation struct {
	kv jetstream.KeyValue
}

// Compile-time assertion that Rotation implements RotationStore.
var _ types.RotationStore = (*Rotation)(nil)

// NewRotation creates a rotation store over the given bucket.
//
// Parameters:
//   - kv: KV bucket holding rotation state
//
// Returns:
//   - *Rotation: Initialized store
func NewRotation(kv jetstream.KeyValue) *Rotation {
	return &Rotation{kv: kv}
}

// LastAssignee returns the member last assigned a task in the category,
// or "" when no assignment is on record (including after TTL expiry).
func (r *Rotation) LastAssignee(ctx context.Context, category types.Category) (string, error) {
	entry, err := r.kv.Get(ctx, string(category))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return "", nil
		}

		return "", fmt.Errorf("get rotation state for %s: %w", category, err)
	}

	return string(entry.Value()), nil
}

// RecordAssignment remembers the member as last assigned for the category.
// Last writer wins; rotation state needs no stronger guarantee.
func (r *Rotation) RecordAssignment(ctx context.Context, category types.Category, memberID string) error {
	if _, err := r.kv.Put(ctx, string(category), []byte(memberID)); err != nil {
		return fmt.Errorf("record rotation state for %s: %w", category, err)
	}

	return nil
}
