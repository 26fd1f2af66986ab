package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"nhooyr.io/websocket"

	"github.com/aristath/copilot/internal/pipeline"
)

// wsIngestTimeout bounds one read-ingest-respond cycle. The pipeline itself
// completes in microseconds; this covers slow clients.
const wsIngestTimeout = 30 * time.Second

// wsError is sent back for malformed frames instead of closing the socket:
// the OCR producer streams continuously and one bad frame should not drop
// the connection.
type wsError struct {
	Error string `json:"error"`
}

// HandleIngestWS handles GET /api/text/ws.
// Producers that emit continuously (OCR frames, tree-walk polls) hold one
// websocket open and send one JSON Observation per message; each message is
// answered with the ingest outcome.
func (s *Server) HandleIngestWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Same-device clients connect via localhost with arbitrary origins
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("Websocket accept failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "unexpected close")

	s.log.Info().Str("remote", r.RemoteAddr).Msg("Ingest websocket connected")

	for {
		var obs pipeline.Observation
		if err := readJSON(r.Context(), conn, &obs); err != nil {
			s.log.Info().Err(err).Msg("Ingest websocket closed")
			_ = conn.Close(websocket.StatusNormalClosure, "")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), wsIngestTimeout)

		var reply interface{}
		switch {
		case obs.Text == "":
			reply = wsError{Error: "text is required"}
		case !validSources[obs.Source]:
			reply = wsError{Error: "unknown source"}
		default:
			result, err := s.pipeline.Ingest(ctx, obs)
			if err != nil {
				s.log.Error().Err(err).Msg("Websocket ingest failed")
				reply = wsError{Error: "ingest failed"}
			} else {
				reply = result
			}
		}

		err := writeJSON(ctx, conn, reply)
		cancel()
		if err != nil {
			s.log.Info().Err(err).Msg("Ingest websocket write failed")
			_ = conn.Close(websocket.StatusNormalClosure, "")
			return
		}
	}
}

func readJSON(ctx context.Context, conn *websocket.Conn, v interface{}) error {
	_, data, err := conn.Read(ctx)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(ctx context.Context, conn *websocket.Conn, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}
