package scheduler

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/copilot/internal/events"
	"github.com/aristath/copilot/internal/modules/dedup"
	"github.com/aristath/copilot/internal/modules/ledger"
	testhelpers "github.com/aristath/copilot/internal/testing"
)

func TestRolloverJob(t *testing.T) {
	db, cleanup := testhelpers.NewTestDB(t, "ledger")
	t.Cleanup(cleanup)

	bus := events.NewBus()
	var rolled []*events.Event
	bus.Subscribe(events.LedgerRolledOver, func(e *events.Event) { rolled = append(rolled, e) })

	job := NewRolloverJob(ledger.NewRepository(db.Conn(), zerolog.Nop()), bus, zerolog.Nop())
	assert.Equal(t, "ledger_rollover", job.Name())

	require.NoError(t, job.Run())

	require.Len(t, rolled, 1)
	data, ok := rolled[0].Data.(*events.LedgerRolledOverData)
	require.True(t, ok)
	assert.Equal(t, time.Now().Format("2006-01-02"), data.Day)
}

func TestDedupPruneJob(t *testing.T) {
	store := dedup.NewStore(16)
	store.ShouldProcess("notif-1", 100)

	job := NewDedupPruneJob(store, time.Hour, zerolog.Nop())
	assert.Equal(t, "dedup_prune", job.Name())

	// Nothing is an hour old yet.
	require.NoError(t, job.Run())
	assert.Equal(t, 1, store.Len())

	// A zero max age prunes everything seen before now.
	job = NewDedupPruneJob(store, -time.Second, zerolog.Nop())
	require.NoError(t, job.Run())
	assert.Equal(t, 0, store.Len())
}
