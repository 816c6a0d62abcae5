package pinger

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errPing = errors.New("ping failed")

type fakePinger struct {
	name    string
	err     error
	delay   time.Duration
	timeout time.Duration
}

func (p *fakePinger) Name() string {
	return p.name
}

func (p *fakePinger) Ping(ctx context.Context) error {
	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.delay):
		}
	}

	return p.err
}

type criticalPinger struct {
	fakePinger
	ready  bool
	health bool
}

func (p *criticalPinger) PingerReadyCritical() bool { return p.ready }
func (p *criticalPinger) PingerCritical() bool      { return p.health }

type slowPinger struct {
	fakePinger
}

func (p *slowPinger) PingerTimeout() time.Duration { return p.timeout }

func newTestService(interval time.Duration) *Service {
	return New(slog.New(slog.DiscardHandler), interval)
}

func startService(t *testing.T, service *Service) context.CancelFunc {
	t.Helper()

	ctx, cancel := context.WithCancel(t.Context())

	require.NoError(t, service.Start(ctx))

	select {
	case <-service.Ready():
	case <-time.After(time.Second):
		t.Fatal("service did not become ready")
	}

	t.Cleanup(func() {
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		require.NoError(t, service.Shutdown(shutdownCtx))
	})

	return cancel
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	t.Run("valid pinger", func(t *testing.T) {
		t.Parallel()

		service := newTestService(time.Second)
		require.NoError(t, service.Register(&fakePinger{name: "collector"}))
	})

	t.Run("nil pinger", func(t *testing.T) {
		t.Parallel()

		service := newTestService(time.Second)
		require.Error(t, service.Register(nil))
	})

	t.Run("duplicate pinger", func(t *testing.T) {
		t.Parallel()

		service := newTestService(time.Second)
		require.NoError(t, service.Register(&fakePinger{name: "docker"}))

		err := service.Register(&fakePinger{name: "docker"})
		require.ErrorIs(t, err, ErrPingerAlreadyRegistered)
	})
}

func TestService_GetStats(t *testing.T) {
	t.Parallel()

	service := newTestService(time.Second)
	require.NoError(t, service.Register(&fakePinger{name: "collector"}))

	stats, err := service.GetStats("collector")
	require.NoError(t, err)
	require.Zero(t, stats.SuccessCount)

	_, err = service.GetStats("nonexistent")
	require.ErrorIs(t, err, ErrPingerNotFound)

	require.Len(t, service.GetAllStats(), 1)
}

func TestService_StatisticsTracking(t *testing.T) {
	t.Parallel()

	service := newTestService(20 * time.Millisecond)
	require.NoError(t, service.Register(&fakePinger{name: "success", delay: time.Millisecond}))
	require.NoError(t, service.Register(&fakePinger{name: "error", err: errPing}))

	startService(t, service)

	require.Eventually(t, func() bool {
		stats, err := service.GetStats("success")

		return err == nil && stats.SuccessCount >= 3
	}, time.Second, 10*time.Millisecond)

	success, err := service.GetStats("success")
	require.NoError(t, err)
	require.Positive(t, success.SuccessLatencies.Average)
	require.GreaterOrEqual(t, success.SuccessLatencies.Max, success.SuccessLatencies.Last)
	require.NoError(t, success.LastError)

	failing, err := service.GetStats("error")
	require.NoError(t, err)
	require.Positive(t, failing.ErrorCount)
	require.ErrorIs(t, failing.LastError, errPing)
	require.NotNil(t, failing.LastErrorSnapshot)
	require.False(t, failing.IsHealthy)
	require.False(t, failing.IsReady)
}

func TestService_IsReady_IsHealthy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		givePinger    Pinger
		wantIsReady   bool
		wantIsHealthy bool
	}{
		{
			name:          "critical by default with error",
			givePinger:    &fakePinger{name: "a", err: errPing},
			wantIsReady:   false,
			wantIsHealthy: false,
		},
		{
			name:          "critical by default without error",
			givePinger:    &fakePinger{name: "b"},
			wantIsReady:   true,
			wantIsHealthy: true,
		},
		{
			name:          "non-critical with error",
			givePinger:    &criticalPinger{fakePinger: fakePinger{name: "c", err: errPing}},
			wantIsReady:   true,
			wantIsHealthy: true,
		},
		{
			name:          "ready critical with error",
			givePinger:    &criticalPinger{fakePinger: fakePinger{name: "d", err: errPing}, ready: true},
			wantIsReady:   false,
			wantIsHealthy: true,
		},
		{
			name:          "health critical with error",
			givePinger:    &criticalPinger{fakePinger: fakePinger{name: "e", err: errPing}, health: true},
			wantIsReady:   true,
			wantIsHealthy: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service := newTestService(time.Hour)
			require.NoError(t, service.Register(tt.givePinger))

			startService(t, service)

			stats, err := service.GetStats(tt.givePinger.Name())
			require.NoError(t, err)
			require.Equal(t, tt.wantIsReady, stats.IsReady)
			require.Equal(t, tt.wantIsHealthy, stats.IsHealthy)
		})
	}
}

func TestService_PingerTimeout(t *testing.T) {
	t.Parallel()

	service := newTestService(time.Hour)
	require.NoError(t, service.Register(&slowPinger{fakePinger{
		name:    "in-time",
		timeout: 200 * time.Millisecond,
		delay:   10 * time.Millisecond,
	}}))
	require.NoError(t, service.Register(&slowPinger{fakePinger{
		name:    "too-slow",
		timeout: 10 * time.Millisecond,
		delay:   200 * time.Millisecond,
	}}))

	startService(t, service)

	inTime, err := service.GetStats("in-time")
	require.NoError(t, err)
	require.Equal(t, 1, inTime.SuccessCount)

	tooSlow, err := service.GetStats("too-slow")
	require.NoError(t, err)
	require.Equal(t, 1, tooSlow.ErrorCount)
	require.ErrorIs(t, tooSlow.LastError, context.DeadlineExceeded)
}

func TestStats_Observe(t *testing.T) {
	t.Parallel()

	stats := NewStats("collector")
	now := time.Now()

	stats.Observe(now, 10*time.Millisecond, nil)
	stats.Observe(now, 30*time.Millisecond, nil)
	stats.Observe(now, 5*time.Millisecond, errPing)
	stats.Observe(now, 20*time.Millisecond, nil)

	got := stats.snapshot(&pingerInfo{readyCritical: true, healthCritical: true})
	require.Equal(t, 3, got.SuccessCount)
	require.Equal(t, 1, got.ErrorCount)
	require.Equal(t, 20*time.Millisecond, got.SuccessLatencies.Last)
	require.Equal(t, 30*time.Millisecond, got.SuccessLatencies.Max)
	require.Greater(t, got.SuccessLatencies.Average, 10*time.Millisecond)
	require.Less(t, got.SuccessLatencies.Average, 30*time.Millisecond)
	require.NoError(t, got.LastError)
	require.NotNil(t, got.LastErrorSnapshot)
	require.True(t, got.IsHealthy)
}
