package cronparser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	cron "github.com/netresearch/go-cron"
)

const defaultTZ = "UTC"

// ErrNeverFires is returned for a spec without any future occurrence.
var ErrNeverFires = errors.New("cron spec never fires")

var _parser = cron.MustNewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Schedule yields collection times from a cron spec.
type Schedule struct {
	spec     string
	schedule cron.Schedule
}

// Parse parses spec. Five or six fields and descriptors such as
// "@every 15s" are accepted; specs without CRON_TZ=/TZ= run in tz, or UTC
// when tz is empty.
func Parse(spec, tz string) (*Schedule, error) {
	fullSpec := buildSpec(strings.TrimSpace(spec), tz)

	schedule, err := _parser.Parse(fullSpec)
	if err != nil {
		return nil, fmt.Errorf("parse cron spec %q: %w", spec, err)
	}

	if schedule.Next(time.Now()).IsZero() {
		return nil, fmt.Errorf("parse cron spec %q: %w", spec, ErrNeverFires)
	}

	return &Schedule{
		spec:     fullSpec,
		schedule: schedule,
	}, nil
}

// Next returns the next occurrence strictly after `after`.
func (s *Schedule) Next(after time.Time) time.Time {
	return s.schedule.Next(after)
}

func (s *Schedule) String() string {
	return s.spec
}

func buildSpec(spec, tz string) string {
	if strings.HasPrefix(spec, "@") {
		return spec
	}

	hasTZPrefix := strings.HasPrefix(spec, "CRON_TZ=") ||
		strings.HasPrefix(spec, "TZ=")
	if hasTZPrefix {
		return spec
	}

	if tz == "" {
		tz = defaultTZ
	}

	return "CRON_TZ=" + tz + " " + spec
}
