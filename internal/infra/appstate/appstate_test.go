package appstate_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/mesos-task-metrics/internal/infra/appstate"
	"github.com/skillcoder/mesos-task-metrics/internal/infra/pinger"
	"github.com/skillcoder/mesos-task-metrics/internal/infra/shutdown/mocks"
)

var testLogger = slog.New(slog.DiscardHandler)

func newAppState(t *testing.T, startTime time.Time) *appstate.AppState {
	t.Helper()

	quit := make(chan os.Signal, 1)
	pingerService := pinger.New(testLogger, time.Second)

	return appstate.New(testLogger, startTime, "", quit, pingerService)
}

func TestAppState_StateTransitions(t *testing.T) {
	t.Parallel()

	t.Run("init to starting", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t, time.Now())
		require.NoError(t, s.SetStarting(t.Context()))
		require.Equal(t, appstate.StateStarting, s.GetState())
	})

	t.Run("starting to running", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t, time.Now())
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.Equal(t, appstate.StateRunning, s.GetState())
	})

	t.Run("running to terminating", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t, time.Now())
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.NoError(t, s.SetTerminating(t.Context()))
		require.Equal(t, appstate.StateTerminating, s.GetState())
	})

	t.Run("invalid: init to running", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t, time.Now())
		err := s.SetRunning(t.Context())
		require.ErrorIs(t, err, appstate.ErrInvalidStateTransition)
		require.Equal(t, appstate.StateInit, s.GetState())
	})

	t.Run("invalid: terminated cannot change", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t, time.Now())
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.NoError(t, s.Shutdown(t.Context()))
		require.Equal(t, appstate.StateTerminated, s.GetState())

		err := s.SetStarting(t.Context())
		require.Error(t, err)
		require.ErrorIs(t, s.SetTerminating(t.Context()), appstate.ErrAlreadyTerminated)
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})
}

func TestAppState_QueryMethods(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	startTime := time.Now()
	s := newAppState(t, startTime)

	require.Equal(t, appstate.StateInit, s.GetState())
	require.Equal(t, startTime, s.GetStartTime())
	require.False(t, s.IsHealthy())
	require.False(t, s.IsReady())

	require.NoError(t, s.SetStarting(ctx))
	require.False(t, s.IsReady())

	require.NoError(t, s.SetRunning(ctx))
	require.True(t, s.IsHealthy())
	require.True(t, s.IsReady())
}

func TestAppState_GetUptime(t *testing.T) {
	t.Parallel()

	s := newAppState(t, time.Now().Add(-time.Minute))

	uptime := s.GetUptime()
	require.GreaterOrEqual(t, uptime, time.Minute)
	require.Less(t, uptime, 2*time.Minute)
}

func TestAppState_Shutdown(t *testing.T) {
	t.Parallel()

	t.Run("stops registered components and is idempotent", func(t *testing.T) {
		t.Parallel()

		ctx := t.Context()
		s := newAppState(t, time.Now())

		m := mocks.NewMockShutdowner(t)
		m.EXPECT().Name().Return("collector").Maybe()
		m.EXPECT().Shutdown(mock.Anything).Return(nil).Once()

		require.NoError(t, s.RegisterShutdowner(m))
		require.NoError(t, s.SetStarting(ctx))
		require.NoError(t, s.SetRunning(ctx))

		require.NoError(t, s.Shutdown(ctx))
		require.Equal(t, appstate.StateTerminated, s.GetState())

		require.NoError(t, s.Shutdown(ctx))
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})

	t.Run("component failure still terminates", func(t *testing.T) {
		t.Parallel()

		ctx := t.Context()
		s := newAppState(t, time.Now())
		giveErr := errors.New("flush failed")

		m := mocks.NewMockShutdowner(t)
		m.EXPECT().Name().Return("statsd").Maybe()
		m.EXPECT().Shutdown(mock.Anything).Return(giveErr).Once()

		require.NoError(t, s.RegisterShutdowner(m))

		err := s.Shutdown(ctx)
		require.ErrorIs(t, err, giveErr)
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})

	t.Run("register after terminating is rejected", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t, time.Now())
		require.NoError(t, s.SetTerminating(t.Context()))

		m := mocks.NewMockShutdowner(t)
		m.EXPECT().Name().Return("late").Maybe()

		err := s.RegisterShutdowner(m)
		require.ErrorIs(t, err, appstate.ErrInvalidStateTransition)
	})

	t.Run("nil shutdowner is rejected", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t, time.Now())
		require.Error(t, s.RegisterShutdowner(nil))
	})
}

type failingPinger struct{}

func (failingPinger) Name() string                 { return "agent" }
func (failingPinger) Ping(_ context.Context) error { return errors.New("down") }

func TestAppState_PingerHealth(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	quit := make(chan os.Signal, 1)
	pingerService := pinger.New(testLogger, 10*time.Millisecond)
	s := appstate.New(testLogger, time.Now(), "", quit, pingerService)

	require.NoError(t, s.RegisterPinger(failingPinger{}))
	require.NoError(t, s.SetStarting(ctx))
	require.NoError(t, s.SetRunning(ctx))
	require.NoError(t, pingerService.Start(ctx))

	require.Eventually(t, func() bool {
		return !s.IsHealthy() && !s.IsReady()
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, pingerService.Shutdown(context.Background()))
}
