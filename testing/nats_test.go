package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mkarlen/fairshare/types"
)

func TestStartEmbeddedNATS(t *testing.T) {
	ns, nc := StartEmbeddedNATS(t)

	require.NotNil(t, ns)
	require.NotNil(t, nc)
	require.True(t, nc.IsConnected())

	// Verify server is running
	require.True(t, ns.ReadyForConnections(1*time.Second))

	// Verify JetStream is enabled
	js, err := nc.JetStream()
	require.NoError(t, err)
	require.NotNil(t, js)
}

// TestStartEmbeddedNATS_ParallelTests verifies parallel test execution.
func TestStartEmbeddedNATS_ParallelTests(t *testing.T) {
	t.Parallel()

	// Run multiple tests in parallel to verify no port conflicts
	for range 5 {
		t.Run("parallel", func(t *testing.T) {
			t.Parallel()

			_, nc := StartEmbeddedNATS(t)
			require.NotNil(t, nc)
			require.True(t, nc.IsConnected())
		})
	}
}

func TestCreateJetStreamKV(t *testing.T) {
	ctx := t.Context()
	_, nc := StartEmbeddedNATS(t)

	kv := CreateJetStreamKV(t, nc, "test-bucket")
	require.NotNil(t, kv)

	// Verify KV operations work
	_, err := kv.Put(ctx, "test-key", []byte("test-value"))
	require.NoError(t, err)

	entry, err := kv.Get(ctx, "test-key")
	require.NoError(t, err)
	require.Equal(t, []byte("test-value"), entry.Value())
}

func TestCreateJetStreamKV_MultipleBuckets(t *testing.T) {
	ctx := t.Context()
	_, nc := StartEmbeddedNATS(t)

	// Create multiple buckets to verify isolation
	kv1 := CreateJetStreamKV(t, nc, "rotation")
	kv2 := CreateJetStreamKV(t, nc, "audit")

	// Write to first bucket
	_, err := kv1.Put(ctx, "key", []byte("value1"))
	require.NoError(t, err)

	// Write to second bucket
	_, err = kv2.Put(ctx, "key", []byte("value2"))
	require.NoError(t, err)

	// Verify isolation
	entry1, err := kv1.Get(ctx, "key")
	require.NoError(t, err)
	require.Equal(t, []byte("value1"), entry1.Value())

	entry2, err := kv2.Get(ctx, "key")
	require.NoError(t, err)
	require.Equal(t, []byte("value2"), entry2.Value())
}

func TestHouseholdFixture(t *testing.T) {
	members := Household()

	require.Len(t, members, 3)
	require.Equal(t, "alice", members[0].ID)
	require.True(t, members[0].Prefers(types.CategoryEducation))
	require.True(t, members[1].Blocks(types.CategoryHealth))
	require.Equal(t, 20, members[2].MaxWeeklyLoad)

	// Each call returns a fresh slice
	members[0].Inactive = true
	require.False(t, Household()[0].Inactive)
}

func TestWeekFixture(t *testing.T) {
	week := Week(2025, time.July, 7)

	require.Equal(t, time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC), week.Start)
	require.Equal(t, time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC), week.End)
}
