package appstate

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type statusResponse struct {
	State     string           `json:"state"`
	Uptime    string           `json:"uptime"`
	StartTime time.Time        `json:"startTime"`
	UptimeSec float64          `json:"uptimeSeconds"`
	Pingers   []pingerResponse `json:"pingers"`
}

type pingerResponse struct {
	Name           string     `json:"name"`
	Healthy        bool       `json:"healthy"`
	Ready          bool       `json:"ready"`
	LastRun        *time.Time `json:"lastRun,omitempty"`
	LastError      string     `json:"lastError,omitempty"`
	SuccessCount   int        `json:"successCount"`
	ErrorCount     int        `json:"errorCount"`
	LatencyAverage string     `json:"latencyAverage"`
	LatencyMax     string     `json:"latencyMax"`
}

// HandleHealthz returns an http.HandlerFunc for the /-/healthz endpoint
func HandleHealthz(
	logger *slog.Logger,
	appState healthChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsHealthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			logger.DebugContext(ctx, "health check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
		logger.DebugContext(ctx, "health check passed")
	}
}

// HandleReadyz returns an http.HandlerFunc for the /-/readyz endpoint
func HandleReadyz(
	logger *slog.Logger,
	appState readyChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsReady() {
			w.WriteHeader(http.StatusServiceUnavailable)
			logger.DebugContext(ctx, "readiness check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
		logger.DebugContext(ctx, "readiness check passed")
	}
}

// HandleStatus returns an http.HandlerFunc for the /-/status endpoint
func HandleStatus(
	logger *slog.Logger,
	appState statusGetter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logger.With("traceID", middleware.GetReqID(ctx))

		state := appState.GetState()
		uptime := appState.GetUptime()

		response := statusResponse{
			State:     string(state),
			Uptime:    uptime.String(),
			StartTime: appState.GetStartTime(),
			UptimeSec: uptime.Seconds(),
			Pingers:   toPingerResponses(appState),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.ErrorContext(ctx, "failed to encode status response", "reason", err)

			return
		}

		logger.DebugContext(ctx, "status response sent",
			"state", string(state),
			"uptime", uptime.String(),
		)
	}
}

func toPingerResponses(appState pingerStatsGetter) []pingerResponse {
	all := appState.GetAllStats()
	responses := make([]pingerResponse, 0, len(all))

	for _, name := range slices.Sorted(maps.Keys(all)) {
		stats := all[name]

		response := pingerResponse{
			Name:           name,
			Healthy:        stats.IsHealthy,
			Ready:          stats.IsReady,
			SuccessCount:   stats.SuccessCount,
			ErrorCount:     stats.ErrorCount,
			LatencyAverage: stats.SuccessLatencies.Average.String(),
			LatencyMax:     stats.SuccessLatencies.Max.String(),
		}

		if !stats.LastRun.IsZero() {
			lastRun := stats.LastRun
			response.LastRun = &lastRun
		}

		if stats.LastError != nil {
			response.LastError = stats.LastError.Error()
		}

		responses = append(responses, response)
	}

	return responses
}
