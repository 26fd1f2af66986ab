// Package pipeline orchestrates the ingest path: raw text blob in, verdict
// and ledger update out. All three producers (tree-walk, notification, OCR)
// go through this single path; they differ only in how they obtained the
// text, never in how it is parsed.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/copilot/internal/events"
	"github.com/aristath/copilot/internal/modules/decision"
	"github.com/aristath/copilot/internal/modules/dedup"
	"github.com/aristath/copilot/internal/modules/extraction"
	"github.com/aristath/copilot/internal/modules/ledger"
	"github.com/aristath/copilot/internal/modules/offers"
	"github.com/aristath/copilot/internal/modules/settings"
)

// Source identifies which producer observed the text.
type Source string

const (
	SourceTreeWalk     Source = "tree_walk"
	SourceNotification Source = "notification"
	SourceOCR          Source = "ocr"
)

// Observation is one raw text blob handed in by a producer. IdentityKey is
// set only by identity-bearing sources (notification id); ObservedAt is the
// producer's timestamp for that identity (notification post time).
type Observation struct {
	Text        string `json:"text"`
	Source      Source `json:"source"`
	IdentityKey string `json:"identity_key,omitempty"`
	ObservedAt  int64  `json:"observed_at,omitempty"`
}

// Status classifies the outcome of one ingest call.
type Status string

const (
	StatusNoise     Status = "noise"
	StatusNoOffer   Status = "no_offer"
	StatusDuplicate Status = "duplicate"
	StatusEvaluated Status = "evaluated"
)

// Result is the outcome returned to the producer.
type Result struct {
	Status         Status                     `json:"status"`
	LooksLikeOffer bool                       `json:"looks_like_offer"`
	Offer          *extraction.CandidateOffer `json:"offer,omitempty"`
	Evaluation     *decision.Result           `json:"evaluation,omitempty"`
	Ledger         *ledger.DailyStats         `json:"ledger,omitempty"`
}

// maxStoredText bounds the raw text kept on feed records.
const maxStoredText = 500

// Service wires the extraction, dedup, decision and ledger stages together.
// Invocations are independent and safe to run concurrently; shared state
// (dedup set, ledger row) synchronizes internally.
type Service struct {
	settings *settings.Repository
	ledger   *ledger.Repository
	offers   *offers.Repository
	dedup    *dedup.Store
	bus      *events.Bus
	log      zerolog.Logger
}

// NewService creates the ingest pipeline.
func NewService(
	settingsRepo *settings.Repository,
	ledgerRepo *ledger.Repository,
	offersRepo *offers.Repository,
	dedupStore *dedup.Store,
	bus *events.Bus,
	log zerolog.Logger,
) *Service {
	return &Service{
		settings: settingsRepo,
		ledger:   ledgerRepo,
		offers:   offersRepo,
		dedup:    dedupStore,
		bus:      bus,
		log:      log.With().Str("component", "pipeline").Logger(),
	}
}

// Ingest runs one observation through the full pipeline.
//
// Identity-less sources may deliver the same real-world offer more than once
// (a poll and a notification firing together); evaluation is idempotent but
// ledger counters can double-count in that window. Accepted limitation.
func (s *Service) Ingest(ctx context.Context, obs Observation) (Result, error) {
	text := extraction.CleanText(obs.Text)

	if extraction.IsNoise(text) {
		s.log.Debug().Str("source", string(obs.Source)).Msg("Blob classified as noise")
		return Result{Status: StatusNoise}, nil
	}

	offer, hint := extraction.ExtractOffer(text)
	if offer == nil {
		if hint {
			s.log.Debug().
				Str("source", string(obs.Source)).
				Str("text", truncate(text, 250)).
				Msg("Blob looks like an offer but no field parsed")
		}
		return Result{Status: StatusNoOffer, LooksLikeOffer: hint}, nil
	}

	if obs.IdentityKey != "" && !s.dedup.ShouldProcess(obs.IdentityKey, obs.ObservedAt) {
		s.log.Debug().
			Str("source", string(obs.Source)).
			Str("identity", obs.IdentityKey).
			Msg("Repeated observation suppressed")
		return Result{Status: StatusDuplicate, LooksLikeOffer: hint, Offer: offer}, nil
	}

	cfg := s.settings.DecisionConfig()
	eval := decision.Evaluate(*offer, cfg)

	if _, err := s.ledger.AddConsidered(); err != nil {
		return Result{}, err
	}

	var stats ledger.DailyStats
	var err error
	if eval.Verdict == decision.VerdictAccept {
		stats, err = s.ledger.AddAccepted(eval.NetCOP, float64(offer.FareCOP))
	} else {
		stats, err = s.ledger.AddRejected()
	}
	if err != nil {
		return Result{}, err
	}

	rec := offers.Record{
		UUID:      uuid.NewString(),
		Source:    string(obs.Source),
		Text:      truncate(text, maxStoredText),
		Offer:     *offer,
		Result:    eval,
		CreatedAt: time.Now(),
	}
	if err := s.offers.Store(rec); err != nil {
		// The verdict already stands; a feed write failure is not fatal.
		s.log.Warn().Err(err).Msg("Failed to store offer record")
	}

	s.log.Info().
		Str("source", string(obs.Source)).
		Str("verdict", string(eval.Verdict)).
		Str("reason", eval.Reason).
		Int("fare_cop", offer.FareCOP).
		Int("minutes", offer.Minutes).
		Float64("pickup_km", offer.PickupKm).
		Float64("trip_km", offer.TripKm).
		Msg("Offer evaluated")

	s.bus.Publish(&events.OfferEvaluatedData{
		UUID:          rec.UUID,
		Source:        rec.Source,
		Verdict:       string(eval.Verdict),
		Reason:        eval.Reason,
		FareCOP:       offer.FareCOP,
		Minutes:       offer.Minutes,
		PickupKm:      offer.PickupKm,
		TripKm:        offer.TripKm,
		NetCOP:        eval.NetCOP,
		RatePerMinCOP: eval.RatePerMinCOP,
	})
	s.bus.Publish(&events.LedgerUpdatedData{
		Day:          stats.Day,
		TotalNetCOP:  stats.TotalNetCOP,
		TotalFareCOP: stats.TotalFareCOP,
		Accepted:     stats.Accepted,
		Rejected:     stats.Rejected,
		Considered:   stats.Considered,
	})

	return Result{
		Status:         StatusEvaluated,
		LooksLikeOffer: hint,
		Offer:          offer,
		Evaluation:     &eval,
		Ledger:         &stats,
	}, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
