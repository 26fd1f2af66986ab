package pipeline

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/copilot/internal/events"
	"github.com/aristath/copilot/internal/modules/decision"
	"github.com/aristath/copilot/internal/modules/dedup"
	"github.com/aristath/copilot/internal/modules/ledger"
	"github.com/aristath/copilot/internal/modules/offers"
	"github.com/aristath/copilot/internal/modules/settings"
	testhelpers "github.com/aristath/copilot/internal/testing"
)

type fixture struct {
	service *Service
	ledger  *ledger.Repository
	offers  *offers.Repository
	bus     *events.Bus
}

func setup(t *testing.T) fixture {
	t.Helper()

	configDB, cleanupConfig := testhelpers.NewTestDB(t, "config")
	t.Cleanup(cleanupConfig)
	ledgerDB, cleanupLedger := testhelpers.NewTestDB(t, "ledger")
	t.Cleanup(cleanupLedger)
	cacheDB, cleanupCache := testhelpers.NewTestDB(t, "cache")
	t.Cleanup(cleanupCache)

	log := zerolog.Nop()
	settingsRepo := settings.NewRepository(configDB.Conn(), log)
	ledgerRepo := ledger.NewRepository(ledgerDB.Conn(), log)
	offersRepo := offers.NewRepository(cacheDB.Conn(), log)
	bus := events.NewBus()

	return fixture{
		service: NewService(settingsRepo, ledgerRepo, offersRepo, dedup.NewStore(16), bus, log),
		ledger:  ledgerRepo,
		offers:  offersRepo,
		bus:     bus,
	}
}

func TestIngest_Noise(t *testing.T) {
	f := setup(t)

	result, err := f.service.Ingest(context.Background(), Observation{
		Text:   testhelpers.NoiseText,
		Source: SourceTreeWalk,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusNoise, result.Status)
	assert.Nil(t, result.Offer)

	// Noise never reaches the ledger.
	stats, err := f.ledger.LoadToday()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Considered)
}

func TestIngest_PromoWithNumbersIsNoise(t *testing.T) {
	f := setup(t)

	result, err := f.service.Ingest(context.Background(), Observation{
		Text:   testhelpers.PromoNoiseText,
		Source: SourceNotification,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusNoise, result.Status)
}

func TestIngest_NoOffer(t *testing.T) {
	f := setup(t)

	result, err := f.service.Ingest(context.Background(), Observation{
		Text:   testhelpers.NoSignalText,
		Source: SourceOCR,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusNoOffer, result.Status)
	assert.Nil(t, result.Offer)
}

func TestIngest_Accepted(t *testing.T) {
	f := setup(t)

	var published []*events.Event
	f.bus.SubscribeAll(func(e *events.Event) { published = append(published, e) })

	result, err := f.service.Ingest(context.Background(), Observation{
		Text:   testhelpers.GoodOfferText,
		Source: SourceTreeWalk,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusEvaluated, result.Status)
	require.NotNil(t, result.Evaluation)
	assert.Equal(t, decision.VerdictAccept, result.Evaluation.Verdict)
	assert.InDelta(t, 11350, result.Evaluation.NetCOP, 1e-9)

	require.NotNil(t, result.Ledger)
	assert.Equal(t, 1, result.Ledger.Accepted)
	assert.Equal(t, 1, result.Ledger.Considered)
	assert.Equal(t, 11350.0, result.Ledger.TotalNetCOP)

	// The evaluated offer lands in the feed.
	records, err := f.offers.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, string(SourceTreeWalk), records[0].Source)

	// Verdict and ledger update both go out on the bus.
	require.Len(t, published, 2)
	assert.Equal(t, events.OfferEvaluated, published[0].Type)
	assert.Equal(t, events.LedgerUpdated, published[1].Type)
}

func TestIngest_Rejected(t *testing.T) {
	f := setup(t)

	result, err := f.service.Ingest(context.Background(), Observation{
		Text:   testhelpers.ShortTripOfferText,
		Source: SourceNotification,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusEvaluated, result.Status)
	require.NotNil(t, result.Evaluation)
	assert.Equal(t, decision.VerdictReject, result.Evaluation.Verdict)
	assert.Equal(t, "Viaje corto (0.5 km)", result.Evaluation.Reason)

	require.NotNil(t, result.Ledger)
	assert.Equal(t, 0, result.Ledger.Accepted)
	assert.Equal(t, 1, result.Ledger.Rejected)
	assert.Equal(t, 0.0, result.Ledger.TotalNetCOP)
}

func TestIngest_Duplicate(t *testing.T) {
	f := setup(t)

	obs := Observation{
		Text:        testhelpers.GoodOfferText,
		Source:      SourceNotification,
		IdentityKey: "notif-42",
		ObservedAt:  1700000000,
	}

	first, err := f.service.Ingest(context.Background(), obs)
	require.NoError(t, err)
	assert.Equal(t, StatusEvaluated, first.Status)

	second, err := f.service.Ingest(context.Background(), obs)
	require.NoError(t, err)
	assert.Equal(t, StatusDuplicate, second.Status)
	assert.Nil(t, second.Evaluation)

	// Suppressed repeats do not touch the ledger.
	stats, err := f.ledger.LoadToday()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Considered)

	// A re-post with a new timestamp is evaluated again.
	obs.ObservedAt = 1700000060
	third, err := f.service.Ingest(context.Background(), obs)
	require.NoError(t, err)
	assert.Equal(t, StatusEvaluated, third.Status)
}

func TestIngest_IdentitylessSourcesSkipDedup(t *testing.T) {
	f := setup(t)

	obs := Observation{Text: testhelpers.GoodOfferText, Source: SourceOCR}

	for i := 0; i < 2; i++ {
		result, err := f.service.Ingest(context.Background(), obs)
		require.NoError(t, err)
		assert.Equal(t, StatusEvaluated, result.Status)
	}

	stats, err := f.ledger.LoadToday()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Considered)
}

func TestIngest_ThresholdChangeApplies(t *testing.T) {
	f := setup(t)

	// Raise the trip gate above the sample offer's 4.5 km trip.
	require.NoError(t, f.service.settings.Set("min_trip_km", "5.0"))

	result, err := f.service.Ingest(context.Background(), Observation{
		Text:   testhelpers.GoodOfferText,
		Source: SourceTreeWalk,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Evaluation)
	assert.Equal(t, decision.VerdictReject, result.Evaluation.Verdict)
	assert.Equal(t, "Viaje corto (4.5 km)", result.Evaluation.Reason)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 2))

	// Multibyte text cuts on rune boundaries.
	assert.Equal(t, "más…", truncate("más largo", 3))
}
