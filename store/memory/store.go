// Package memory provides an in-memory store implementing the engine's
// persistence interfaces.
//
// The store backs the assignment sink, audit trail, and rotation state
// with plain maps under a mutex. It is the default for tests and for
// embedding the engine into a process that keeps task state elsewhere.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mkarlen/fairshare/types"
)

// Store is an in-memory AssignmentSink, AuditStore, and RotationStore.
//
// All methods are safe for concurrent use. Reassign is atomic under the
// store mutex, giving the same compare-and-swap semantics as the KV
// backed store.
type Store struct {
	mu       sync.RWMutex
	tasks    map[string]types.Task
	audits   []types.AuditRecord
	rotation map[types.Category]string
}

// Compile-time interface assertions.
var (
	_ types.AssignmentSink = (*Store)(nil)
	_ types.AuditStore     = (*Store)(nil)
	_ types.RotationStore  = (*Store)(nil)
)

// New creates an empty in-memory store.
//
// Parameters:
//   - tasks: Optional initial task records
//
// Returns:
//   - *Store: Ready-to-use store
func New(tasks ...types.Task) *Store {
	s := &Store{
		tasks:    make(map[string]types.Task, len(tasks)),
		rotation: make(map[types.Category]string),
	}
	for _, task := range tasks {
		s.tasks[task.ID] = task
	}

	return s
}

// PutTask inserts or replaces a task record.
func (s *Store) PutTask(task types.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks[task.ID] = task
}

// Lookup returns the current task record.
//
// Returns:
//   - types.Task: Current task state
//   - error: types.ErrTaskNotFound when the task does not exist
func (s *Store) Lookup(_ context.Context, taskID string) (types.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return types.Task{}, types.ErrTaskNotFound
	}

	return task, nil
}

// Reassign atomically moves the task between assignees. The move fails
// with types.ErrTaskReassigned when the current assignee is no longer
// fromMember.
func (s *Store) Reassign(_ context.Context, taskID, fromMember, toMember string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return types.ErrTaskNotFound
	}
	if task.AssigneeID != fromMember {
		return types.ErrTaskReassigned
	}

	task.AssigneeID = toMember
	s.tasks[taskID] = task

	return nil
}

// Append stores one audit record.
func (s *Store) Append(_ context.Context, record types.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.audits = append(s.audits, record)

	return nil
}

// List returns all audit records ordered by timestamp ascending.
func (s *Store) List(_ context.Context) ([]types.AuditRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := slices.Clone(s.audits)
	slices.SortStableFunc(records, func(a, b types.AuditRecord) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	return records, nil
}

// LastAssignee returns the member last assigned a task in the category,
// or "" when no assignment is on record.
func (s *Store) LastAssignee(_ context.Context, category types.Category) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rotation[category], nil
}

// RecordAssignment remembers the member as last assigned for the category.
func (s *Store) RecordAssignment(_ context.Context, category types.Category, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rotation[category] = memberID

	return nil
}
