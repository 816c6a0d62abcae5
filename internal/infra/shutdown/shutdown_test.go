package shutdown_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/mesos-task-metrics/internal/infra/shutdown"
	"github.com/skillcoder/mesos-task-metrics/internal/infra/shutdown/mocks"
)

func TestCheckTerminationFile(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)

	t.Run("empty path returns false", func(t *testing.T) {
		t.Parallel()

		require.False(t, shutdown.CheckTerminationFile(t.Context(), logger, ""))
	})

	t.Run("file missing returns false", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nonexistent")

		require.False(t, shutdown.CheckTerminationFile(t.Context(), logger, path))
	})

	t.Run("file exists returns true", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "terminating")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		require.True(t, shutdown.CheckTerminationFile(t.Context(), logger, path))
	})
}

func TestGracefulShutdown(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)

	t.Run("empty list returns nil", func(t *testing.T) {
		t.Parallel()

		err := shutdown.GracefulShutdown(t.Context(), logger, nil)
		require.NoError(t, err)
	})

	t.Run("failure does not stop other components", func(t *testing.T) {
		t.Parallel()

		first := mocks.NewMockShutdowner(t)
		first.EXPECT().Name().Return("first").Once()
		first.EXPECT().Shutdown(mock.Anything).Return(nil).Once()

		second := mocks.NewMockShutdowner(t)
		second.EXPECT().Name().Return("second").Once()
		second.EXPECT().Shutdown(mock.Anything).Return(context.DeadlineExceeded).Once()

		err := shutdown.GracefulShutdown(t.Context(), logger, []shutdown.Shutdowner{first, second})
		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.ErrorContains(t, err, "shutdown second")
	})

	t.Run("components shut down in reverse order", func(t *testing.T) {
		t.Parallel()

		var order []string

		first := mocks.NewMockShutdowner(t)
		first.EXPECT().Name().Return("first").Once()
		first.EXPECT().Shutdown(mock.Anything).
			Run(func(context.Context) { order = append(order, "first") }).
			Return(nil).
			Once()

		second := mocks.NewMockShutdowner(t)
		second.EXPECT().Name().Return("second").Once()
		second.EXPECT().Shutdown(mock.Anything).
			Run(func(context.Context) { order = append(order, "second") }).
			Return(nil).
			Once()

		err := shutdown.GracefulShutdown(t.Context(), logger, []shutdown.Shutdowner{first, second})
		require.NoError(t, err)
		require.Equal(t, []string{"second", "first"}, order)
	})

	t.Run("cancelled parent still shuts down", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		m := mocks.NewMockShutdowner(t)
		m.EXPECT().Name().Return("test").Once()
		m.EXPECT().Shutdown(mock.MatchedBy(func(ctx context.Context) bool {
			return ctx.Err() == nil
		})).Return(nil).Once()

		require.NoError(t, shutdown.GracefulShutdown(ctx, logger, []shutdown.Shutdowner{m}))
	})
}
