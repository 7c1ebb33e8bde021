package natskv

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fairsharetest "github.com/mkarlen/fairshare/testing"
	"github.com/mkarlen/fairshare/types"
)

func TestTasks_LookupAndReassign(t *testing.T) {
	ctx := t.Context()
	_, nc := fairsharetest.StartEmbeddedNATS(t)
	tasks := NewTasks(fairsharetest.CreateJetStreamKV(t, nc, "tasks"))

	seed := types.Task{
		ID:         "t1",
		Title:      "school forms",
		Category:   types.CategoryAdmin,
		Weight:     types.Weight{Flat: 2},
		AssigneeID: "alice",
	}
	require.NoError(t, tasks.Put(ctx, seed))

	t.Run("lookup round-trips the record", func(t *testing.T) {
		got, err := tasks.Lookup(ctx, "t1")
		require.NoError(t, err)
		require.Equal(t, seed, got)
	})

	t.Run("lookup missing task", func(t *testing.T) {
		_, err := tasks.Lookup(ctx, "missing")
		require.ErrorIs(t, err, types.ErrTaskNotFound)
	})

	t.Run("reassign moves the task", func(t *testing.T) {
		require.NoError(t, tasks.Reassign(ctx, "t1", "alice", "bob"))

		got, err := tasks.Lookup(ctx, "t1")
		require.NoError(t, err)
		require.Equal(t, "bob", got.AssigneeID)
	})

	t.Run("stale expected assignee fails", func(t *testing.T) {
		err := tasks.Reassign(ctx, "t1", "alice", "carol")
		require.ErrorIs(t, err, types.ErrTaskReassigned)

		got, err := tasks.Lookup(ctx, "t1")
		require.NoError(t, err)
		require.Equal(t, "bob", got.AssigneeID, "loser did not overwrite")
	})

	t.Run("reassign missing task fails", func(t *testing.T) {
		err := tasks.Reassign(ctx, "missing", "alice", "bob")
		require.ErrorIs(t, err, types.ErrTaskNotFound)
	})
}

func TestTasks_ConcurrentReassign(t *testing.T) {
	ctx := t.Context()
	_, nc := fairsharetest.StartEmbeddedNATS(t)
	tasks := NewTasks(fairsharetest.CreateJetStreamKV(t, nc, "tasks-race"))

	require.NoError(t, tasks.Put(ctx, types.Task{ID: "t1", AssigneeID: "alice"}))

	// Two writers race the same compare-and-swap; at most one wins and
	// the loser sees a typed conflict.
	targets := []string{"bob", "carol"}
	results := make([]error, len(targets))

	var wg sync.WaitGroup
	for i := range targets {
		wg.Add(1) //nolint:revive // Standard pattern for concurrent operations
		go func(idx int) {
			defer wg.Done()
			results[idx] = tasks.Reassign(ctx, "t1", "alice", targets[idx])
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

	got, err := tasks.Lookup(ctx, "t1")
	require.NoError(t, err)
	require.Contains(t, targets, got.AssigneeID)
}

func TestAudit_AppendAndList(t *testing.T) {
	ctx := t.Context()
	_, nc := fairsharetest.StartEmbeddedNATS(t)
	audit := NewAudit(fairsharetest.CreateJetStreamKV(t, nc, "audit"))

	t.Run("empty store lists nothing", func(t *testing.T) {
		records, err := audit.List(ctx)
		require.NoError(t, err)
		require.Empty(t, records)
	})

	base := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	second := types.AuditRecord{
		ID: "a2", TaskID: "t2", PreviousAssignee: "alice", NewAssignee: "bob",
		Reason: "rebalance", ActorID: "parent-1", Timestamp: base.Add(time.Hour),
	}
	first := types.AuditRecord{
		ID: "a1", TaskID: "t1", PreviousAssignee: "bob", NewAssignee: "alice",
		Reason: "rebalance", ActorID: "parent-1", Timestamp: base,
	}

	// Append out of timestamp order
	require.NoError(t, audit.Append(ctx, second))
	require.NoError(t, audit.Append(ctx, first))

	t.Run("list orders by timestamp ascending", func(t *testing.T) {
		records, err := audit.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		require.Equal(t, "a1", records[0].ID)
		require.Equal(t, "a2", records[1].ID)
		require.Equal(t, first, records[0])
	})

	t.Run("duplicate record ID is refused", func(t *testing.T) {
		err := audit.Append(ctx, first)
		require.Error(t, err)
	})
}

func TestRotation_RoundTrip(t *testing.T) {
	ctx := t.Context()
	_, nc := fairsharetest.StartEmbeddedNATS(t)
	rotation := NewRotation(fairsharetest.CreateJetStreamKV(t, nc, "rotation"))

	last, err := rotation.LastAssignee(ctx, types.CategoryDaily)
	require.NoError(t, err)
	require.Empty(t, last, "no assignment on record yet")

	require.NoError(t, rotation.RecordAssignment(ctx, types.CategoryDaily, "alice"))
	require.NoError(t, rotation.RecordAssignment(ctx, types.CategoryHealth, "bob"))

	last, err = rotation.LastAssignee(ctx, types.CategoryDaily)
	require.NoError(t, err)
	require.Equal(t, "alice", last)

	// Categories track independently
	last, err = rotation.LastAssignee(ctx, types.CategoryHealth)
	require.NoError(t, err)
	require.Equal(t, "bob", last)

	// Record overwrites
	require.NoError(t, rotation.RecordAssignment(ctx, types.CategoryDaily, "carol"))
	last, err = rotation.LastAssignee(ctx, types.CategoryDaily)
	require.NoError(t, err)
	require.Equal(t, "carol", last)
}
