package natskv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/mkarlen/fairshare/types"
)

// Tasks is a KV-backed AssignmentSink. Each task is one JSON value keyed
// by its task ID.
type Tasks struct {
	kv jetstream.KeyValue
}

// Compile-time assertion that Tasks implements AssignmentSink.
var _ types.AssignmentSink = (*Tasks)(nil)

// NewTasks creates a task sink over the given bucket.
//
// Parameters:
//   - kv: KV bucket holding task records
//
// Returns:
//   - *Tasks: Initialized sink
func NewTasks(kv jetstream.KeyValue) *Tasks {
	return &Tasks{kv: kv}
}

// Put inserts or replaces a task record. Intended for the boundary layer
// that syncs the task repository into the bucket.
func (t *Tasks) Put(ctx context.Context, task types.Task) error {
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task %s: %w", task.ID, err)
	}

	if _, err := t.kv.Put(ctx, task.ID, data); err != nil {
		return fmt.Errorf("put task %s: %w", task.ID, err)
	}

	return nil
}

// Lookup returns the current task record.
//
// Returns:
//   - types.Task: Current task state
//   - error: types.ErrTaskNotFound when no record exists
func (t *Tasks) Lookup(ctx context.Context, taskID string) (types.Task, error) {
	entry, err := t.kv.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return types.Task{}, types.ErrTaskNotFound
		}

		return types.Task{}, fmt.Errorf("get task %s: %w", taskID, err)
	}

	var task types.Task
	if err := json.Unmarshal(entry.Value(), &task); err != nil {
		return types.Task{}, fmt.Errorf("unmarshal task %s: %w", taskID, err)
	}

	return task, nil
}

// Reassign atomically moves the task between assignees.
//
// The read and the write are tied together by the entry revision: the
// update only commits when no writer touched the key in between, which
// gives the compare-and-swap semantics the applier relies on. Both a
// changed assignee at read time and a lost revision race surface as
// types.ErrTaskReassigned.
func (t *Tasks) Reassign(ctx context.Context, taskID, fromMember, toMember string) error {
	entry, err := t.kv.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return types.ErrTaskNotFound
		}

		return fmt.Errorf("get task %s: %w", taskID, err)
	}

	var task types.Task
	if err := json.Unmarshal(entry.Value(), &task); err != nil {
		return fmt.Errorf("unmarshal task %s: %w", taskID, err)
	}

	if task.AssigneeID != fromMember {
		return types.ErrTaskReassigned
	}

	task.AssigneeID = toMember
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task %s: %w", taskID, err)
	}

	if _, err := t.kv.Update(ctx, taskID, data, entry.Revision()); err != nil {
		// Revision mismatch means a concurrent writer won the race.
		if errors.Is(err, jetstream.ErrKeyExists) {
			return types.ErrTaskReassigned
		}

		return fmt.Errorf("update task %s: %w", taskID, err)
	}

	return nil
}
