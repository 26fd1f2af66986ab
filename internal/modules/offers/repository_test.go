package offers

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/copilot/internal/modules/decision"
	"github.com/aristath/copilot/internal/modules/extraction"
	testhelpers "github.com/aristath/copilot/internal/testing"
)

func setupRepo(t *testing.T) *Repository {
	t.Helper()
	db, cleanup := testhelpers.NewTestDB(t, "cache")
	t.Cleanup(cleanup)
	return NewRepository(db.Conn(), zerolog.Nop())
}

func sampleRecord(uuid string, createdAt time.Time) Record {
	return Record{
		UUID:   uuid,
		Source: "notification",
		Text:   "nueva solicitud $14.000 12 min recogida a 0.8 km viaje de 4.5 km",
		Offer:  extraction.CandidateOffer{FareCOP: 14000, Minutes: 12, PickupKm: 0.8, TripKm: 4.5},
		Result: decision.Result{
			Verdict:       decision.VerdictAccept,
			Reason:        "Margen 11350 COP · 1167 COP/min · Recogida 0.8 km",
			NetCOP:        11350,
			RatePerMinCOP: 14000.0 / 12.0,
			TotalKm:       5.3,
		},
		CreatedAt: createdAt,
	}
}

func TestStoreAndRecent(t *testing.T) {
	repo := setupRepo(t)

	now := time.Now()
	require.NoError(t, repo.Store(sampleRecord("rec-1", now.Add(-2*time.Minute))))
	require.NoError(t, repo.Store(sampleRecord("rec-2", now.Add(-time.Minute))))
	require.NoError(t, repo.Store(sampleRecord("rec-3", now)))

	records, err := repo.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first.
	assert.Equal(t, "rec-3", records[0].UUID)
	assert.Equal(t, "rec-1", records[2].UUID)

	// The full record round-trips through the blob.
	assert.Equal(t, 14000, records[0].Offer.FareCOP)
	assert.Equal(t, decision.VerdictAccept, records[0].Result.Verdict)
	assert.Equal(t, "notification", records[0].Source)
}

func TestRecent_Limit(t *testing.T) {
	repo := setupRepo(t)

	now := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Store(sampleRecord(
			string(rune('a'+i)), now.Add(time.Duration(i)*time.Second))))
	}

	records, err := repo.Recent(2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestStore_Idempotent(t *testing.T) {
	repo := setupRepo(t)

	rec := sampleRecord("rec-1", time.Now())
	require.NoError(t, repo.Store(rec))
	require.NoError(t, repo.Store(rec))

	records, err := repo.Recent(10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestDeleteOlderThan(t *testing.T) {
	repo := setupRepo(t)

	now := time.Now()
	require.NoError(t, repo.Store(sampleRecord("old", now.Add(-48*time.Hour))))
	require.NoError(t, repo.Store(sampleRecord("fresh", now)))

	deleted, err := repo.DeleteOlderThan(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	records, err := repo.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "fresh", records[0].UUID)
}
