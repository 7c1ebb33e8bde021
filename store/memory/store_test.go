package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mkarlen/fairshare/types"
)

func TestStore_LookupAndReassign(t *testing.T) {
	ctx := context.Background()
	store := New(types.Task{ID: "t1", Category: types.CategoryDaily, AssigneeID: "alice"})

	t.Run("lookup existing task", func(t *testing.T) {
		task, err := store.Lookup(ctx, "t1")
		require.NoError(t, err)
		require.Equal(t, "alice", task.AssigneeID)
	})

	t.Run("lookup missing task", func(t *testing.T) {
		_, err := store.Lookup(ctx, "missing")
		require.ErrorIs(t, err, types.ErrTaskNotFound)
	})

	t.Run("reassign moves the task", func(t *testing.T) {
		require.NoError(t, store.Reassign(ctx, "t1", "alice", "bob"))

		task, err := store.Lookup(ctx, "t1")
		require.NoError(t, err)
		require.Equal(t, "bob", task.AssigneeID)
	})

	t.Run("reassign with stale expected assignee fails", func(t *testing.T) {
		err := store.Reassign(ctx, "t1", "alice", "carol")
		require.ErrorIs(t, err, types.ErrTaskReassigned)

		// Loser did not overwrite
		task, err := store.Lookup(ctx, "t1")
		require.NoError(t, err)
		require.Equal(t, "bob", task.AssigneeID)
	})

	t.Run("reassign missing task fails", func(t *testing.T) {
		err := store.Reassign(ctx, "missing", "alice", "bob")
		require.ErrorIs(t, err, types.ErrTaskNotFound)
	})
}

func TestStore_ConcurrentReassign(t *testing.T) {
	ctx := context.Background()
	store := New(types.Task{ID: "t1", AssigneeID: "alice"})

	// Two writers race the same compare-and-swap; exactly one wins.
	const writers = 2
	results := make([]error, writers)
	targets := []string{"bob", "carol"}

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1) //nolint:revive // Standard pattern for concurrent operations
		go func(idx int) {
			defer wg.Done()
			results[idx] = store.Reassign(ctx, "t1", "alice", targets[idx])
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
		} else {
			require.ErrorIs(t, err, types.ErrTaskReassigned)
		}
	}
	require.Equal(t, 1, wins, "exactly one writer should win the CAS")
}

func TestStore_AuditTrail(t *testing.T) {
	ctx := context.Background()
	store := New()

	base := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)

	// Append out of timestamp order
	require.NoError(t, store.Append(ctx, types.AuditRecord{ID: "a2", TaskID: "t2", Timestamp: base.Add(time.Hour)}))
	require.NoError(t, store.Append(ctx, types.AuditRecord{ID: "a1", TaskID: "t1", Timestamp: base}))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "a1", records[0].ID, "list is ordered by timestamp ascending")
	require.Equal(t, "a2", records[1].ID)
}

func TestStore_Rotation(t *testing.T) {
	ctx := context.Background()
	store := New()

	last, err := store.LastAssignee(ctx, types.CategoryDaily)
	require.NoError(t, err)
	require.Empty(t, last, "no assignment on record yet")

	require.NoError(t, store.RecordAssignment(ctx, types.CategoryDaily, "alice"))
	require.NoError(t, store.RecordAssignment(ctx, types.CategoryHealth, "bob"))

	last, err = store.LastAssignee(ctx, types.CategoryDaily)
	require.NoError(t, err)
	require.Equal(t, "alice", last)

	// Categories track independently
	last, err = store.LastAssignee(ctx, types.CategoryHealth)
	require.NoError(t, err)
	require.Equal(t, "bob", last)

	// Record overwrites
	require.NoError(t, store.RecordAssignment(ctx, types.CategoryDaily, "carol"))
	last, err = store.LastAssignee(ctx, types.CategoryDaily)
	require.NoError(t, err)
	require.Equal(t, "carol", last)
}
