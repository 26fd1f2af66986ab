package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/aristath/copilot/internal/modules/dedup"
)

// SystemHandlers exposes process and host health for the ops surface.
type SystemHandlers struct {
	startedAt time.Time
	dedup     *dedup.Store
	log       zerolog.Logger
}

// NewSystemHandlers creates system handlers.
func NewSystemHandlers(dedupStore *dedup.Store, log zerolog.Logger) *SystemHandlers {
	return &SystemHandlers{
		startedAt: time.Now(),
		dedup:     dedupStore,
		log:       log.With().Str("handler", "system").Logger(),
	}
}

// systemStatus is the GET /api/system/status response.
type systemStatus struct {
	UptimeSeconds   int64   `json:"uptime_seconds"`
	CPUPercent      float64 `json:"cpu_percent"`
	MemUsedPercent  float64 `json:"mem_used_percent"`
	MemUsedMB       uint64  `json:"mem_used_mb"`
	TrackedIdentity int     `json:"tracked_identities"`
}

// HandleStatus handles GET /api/system/status
func (h *SystemHandlers) HandleStatus(w http.ResponseWriter, r *http.Request) {
	status := systemStatus{
		UptimeSeconds:   int64(time.Since(h.startedAt).Seconds()),
		TrackedIdentity: h.dedup.Len(),
	}

	if cpuPercent, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(cpuPercent) > 0 {
		status.CPUPercent = cpuPercent[0]
	} else if err != nil {
		h.log.Warn().Err(err).Msg("Failed to read CPU usage")
	}

	if memStat, err := mem.VirtualMemory(); err == nil {
		status.MemUsedPercent = memStat.UsedPercent
		status.MemUsedMB = memStat.Used / 1024 / 1024
	} else {
		h.log.Warn().Err(err).Msg("Failed to read memory usage")
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(status)
}
