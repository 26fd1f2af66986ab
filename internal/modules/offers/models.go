package offers

import (
	"time"

	"github.com/aristath/copilot/internal/modules/decision"
	"github.com/aristath/copilot/internal/modules/extraction"
)

// Record is one evaluated offer in the feed consumed by the overlay client.
// The full record is serialized as a msgpack blob; uuid, source, verdict and
// created_at are mirrored into columns for querying.
type Record struct {
	UUID      string                    `json:"uuid" msgpack:"uuid"`
	Source    string                    `json:"source" msgpack:"source"`
	Text      string                    `json:"text" msgpack:"text"` // Trimmed raw blob, kept for heuristic tuning
	Offer     extraction.CandidateOffer `json:"offer" msgpack:"offer"`
	Result    decision.Result           `json:"result" msgpack:"result"`
	CreatedAt time.Time                 `json:"created_at" msgpack:"created_at"`
}
