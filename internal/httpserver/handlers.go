package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"

	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type targetsResponse struct {
	Targets []collector.CycleResult `json:"targets"`
}

func (s *Server) handleTargets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.logger.With("traceID", middleware.GetReqID(ctx))

	results := s.cycles.LastResults()
	if results == nil {
		results = []collector.CycleResult{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(targetsResponse{Targets: results}); err != nil {
		logger.ErrorContext(ctx, "failed to encode targets response", "reason", err)
	}
}
