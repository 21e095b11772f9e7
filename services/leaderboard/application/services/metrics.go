package services

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/ghuser/scoreboard/services/leaderboard"

type metrics struct {
	submitted        metric.Int64Counter
	duplicates       metric.Int64Counter
	resolveConflicts metric.Int64Counter
}

// newMetrics registers the leaderboard counters on mp. A counter that fails to
// register is replaced by a no-op so instrumentation never blocks a request.
func newMetrics(mp metric.MeterProvider) *metrics {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)
	return &metrics{
		submitted: counter(meter, "leaderboard.scores.submitted",
			"Scores accepted and stored."),
		duplicates: counter(meter, "leaderboard.scores.duplicates",
			"Submissions rejected because the player already posted the same score at the same time."),
		resolveConflicts: counter(meter, "leaderboard.player.resolve_conflicts",
			"Lost races while creating a player for a new name."),
	}
}

func counter(meter metric.Meter, name, desc string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		return noop.Int64Counter{}
	}
	return c
}
