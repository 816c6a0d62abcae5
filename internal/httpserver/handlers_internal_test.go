package httpserver

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/mesos-task-metrics/internal/infra/appstate"
	"github.com/skillcoder/mesos-task-metrics/internal/infra/pinger"
	"github.com/skillcoder/mesos-task-metrics/internal/logic/collector"
)

type staticCycles []collector.CycleResult

func (c staticCycles) LastResults() []collector.CycleResult { return c }

func TestHandleTargets(t *testing.T) {
	t.Parallel()

	giveStarted := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		give     staticCycles
		wantBody string
	}{
		{
			name:     "no cycles yet",
			give:     nil,
			wantBody: `{"targets":[]}`,
		},
		{
			name: "aborted and completed targets",
			give: staticCycles{
				{
					Target:     "10.0.0.1:5051",
					StartedAt:  giveStarted,
					FinishedAt: giveStarted,
					Error:      "get state: source unreachable",
				},
				{
					Target:       "10.0.0.2:5051",
					StartedAt:    giveStarted,
					FinishedAt:   giveStarted,
					Tasks:        2,
					Containers:   2,
					Measurements: 30,
					Unresolved:   []string{"task t9 of framework fw1 not found"},
				},
			},
			wantBody: `{"targets":[
				{"target":"10.0.0.1:5051","startedAt":"2025-03-01T12:00:00Z","finishedAt":"2025-03-01T12:00:00Z",
				 "tasks":0,"containers":0,"measurements":0,"error":"get state: source unreachable"},
				{"target":"10.0.0.2:5051","startedAt":"2025-03-01T12:00:00Z","finishedAt":"2025-03-01T12:00:00Z",
				 "tasks":2,"containers":2,"measurements":30,"unresolved":["task t9 of framework fw1 not found"]}
			]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			quit := make(chan os.Signal, 1)
			logger := slog.New(slog.DiscardHandler)
			appState := appstate.New(logger, time.Now(), "", quit, pinger.New(logger, time.Second))
			srv := New(logger, appState, tt.give, "")

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/-/targets", http.NoBody)

			srv.handleTargets(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
