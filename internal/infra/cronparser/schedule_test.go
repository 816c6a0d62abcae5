package cronparser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/mesos-task-metrics/internal/infra/cronparser"
)

func TestParse(t *testing.T) {
	t.Parallel()

	after := time.Date(2026, 2, 15, 7, 0, 0, 0, time.UTC)

	t.Run("five field spec", func(t *testing.T) {
		t.Parallel()

		schedule, err := cronparser.Parse("40 7 * * *", "")
		require.NoError(t, err)

		next := schedule.Next(after)
		require.Equal(t, time.Date(2026, 2, 15, 7, 40, 0, 0, time.UTC), next.UTC())
	})

	t.Run("six field spec with seconds", func(t *testing.T) {
		t.Parallel()

		schedule, err := cronparser.Parse("*/15 * * * * *", "")
		require.NoError(t, err)

		first := schedule.Next(after)
		require.Equal(t, 15*time.Second, schedule.Next(first).Sub(first))
	})

	t.Run("every descriptor", func(t *testing.T) {
		t.Parallel()

		schedule, err := cronparser.Parse("@every 10s", "")
		require.NoError(t, err)
		require.Equal(t, after.Add(10*time.Second), schedule.Next(after))
	})

	t.Run("with tz uses timezone", func(t *testing.T) {
		t.Parallel()

		schedule, err := cronparser.Parse("0 8 * * *", "America/New_York")
		require.NoError(t, err)
		require.Equal(t, 13, schedule.Next(after).UTC().Hour())
	})

	t.Run("inline CRON_TZ ignores tz param", func(t *testing.T) {
		t.Parallel()

		schedule, err := cronparser.Parse("CRON_TZ=UTC 0 14 * * *", "America/New_York")
		require.NoError(t, err)
		require.Equal(t, 14, schedule.Next(after).Hour())
		require.Equal(t, "CRON_TZ=UTC 0 14 * * *", schedule.String())
	})

	t.Run("impossible date returns error", func(t *testing.T) {
		t.Parallel()

		_, err := cronparser.Parse("0 0 30 2 *", "")
		require.ErrorIs(t, err, cronparser.ErrNeverFires)
	})

	t.Run("malformed spec returns error", func(t *testing.T) {
		t.Parallel()

		_, err := cronparser.Parse("invalid", "")
		require.Error(t, err)
	})
}
