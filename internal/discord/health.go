package discord

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	CachedResults    int       `json:"cached_results"`
}

// HandleHealth returns the bot's health status
func (s *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := s.bot.Connected()

	status := "healthy"
	code := http.StatusOK
	if !connected {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	health := HealthStatus{
		Status:    status,
		Uptime:    time.Since(s.started).Round(time.Second).String(),
		Connected: connected,
	}
	if s.bot.Registry != nil {
		health.CommandsReceived = s.bot.Registry.CommandsReceived()
		health.LastCommandTime = s.bot.Registry.LastCommandTime()
	}
	if s.bot.Calc != nil {
		health.CachedResults = s.bot.Calc.CachedEntries()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Debug("Failed to encode health status", "error", err)
	}
}
