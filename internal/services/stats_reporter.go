package services

import (
	"context"

	"github.com/maxaizer/job-platform/internal/metrics"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type EntityCounter interface {
	Count(ctx context.Context) (int64, error)
}

// StatsReporter periodically exports row counts of the main entities as
// prometheus gauges.
type StatsReporter struct {
	cron     *cron.Cron
	counters map[string]EntityCounter
}

func NewStatsReporter(counters map[string]EntityCounter) (*StatsReporter, error) {

	sr := &StatsReporter{
		cron:     cron.New(),
		counters: counters,
	}

	_, err := sr.cron.AddFunc("@every 1m", sr.report)
	if err != nil {
		return nil, err
	}

	sr.cron.Start()
	log.Info("stats reporter started")
	return sr, nil
}

func (sr *StatsReporter) Stop() {
	sr.cron.Stop()
}

func (sr *StatsReporter) report() {
	for entity, counter := range sr.counters {
		count, err := counter.Count(context.Background())
		if err != nil {
			log.Errorf("Failed to count %v: %v", entity, err)
			continue
		}
		metrics.EntityCountGauge.WithLabelValues(entity).Set(float64(count))
	}
}
