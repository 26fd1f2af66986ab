package server

import (
	"encoding/json"
	"net/http"

	"github.com/aristath/copilot/internal/pipeline"
)

// validSources guards the source tag on ingest requests.
var validSources = map[pipeline.Source]bool{
	pipeline.SourceTreeWalk:     true,
	pipeline.SourceNotification: true,
	pipeline.SourceOCR:          true,
}

// HandleIngestText handles POST /api/text.
// Body: a pipeline.Observation. Responds with the full ingest outcome so
// producers can log what became of their blob.
func (s *Server) HandleIngestText(w http.ResponseWriter, r *http.Request) {
	var obs pipeline.Observation
	if err := json.NewDecoder(r.Body).Decode(&obs); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if obs.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}
	if !validSources[obs.Source] {
		http.Error(w, "unknown source", http.StatusBadRequest)
		return
	}

	result, err := s.pipeline.Ingest(r.Context(), obs)
	if err != nil {
		s.log.Error().Err(err).Msg("Ingest failed")
		http.Error(w, "ingest failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}
