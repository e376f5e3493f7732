package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PipelineMetrics records per-stage timings and outcomes for the offer
// evaluation pipeline.
type PipelineMetrics struct {
	stageDuration *prometheus.HistogramVec
	stageFailure  *prometheus.CounterVec
	outcome       *prometheus.CounterVec
}

// NewPipelineMetrics registers the pipeline metrics on the provided registerer.
func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	if reg == nil {
		return &PipelineMetrics{}
	}
	stageDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "offer_pipeline_stage_duration_seconds",
		Help:    "Duration of offer pipeline stages in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})
	stageFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "offer_pipeline_stage_failures",
		Help: "Offer pipeline stage failures.",
	}, []string{"stage"})
	outcome := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "offer_pipeline_outcomes",
		Help: "Offer pipeline results by offer status.",
	}, []string{"status"})
	reg.MustRegister(stageDuration, stageFailure, outcome)
	return &PipelineMetrics{
		stageDuration: stageDuration,
		stageFailure:  stageFailure,
		outcome:       outcome,
	}
}

// ObserveStage records the duration of one pipeline stage.
func (p *PipelineMetrics) ObserveStage(stage string, duration time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(normalizeLabel(stage)).Observe(duration.Seconds())
}

// IncStageFailure increments the failure counter for the named stage.
func (p *PipelineMetrics) IncStageFailure(stage string) {
	if p == nil || p.stageFailure == nil {
		return
	}
	p.stageFailure.WithLabelValues(normalizeLabel(stage)).Inc()
}

// IncOutcome increments the outcome counter for the final offer status.
func (p *PipelineMetrics) IncOutcome(status string) {
	if p == nil || p.outcome == nil {
		return
	}
	p.outcome.WithLabelValues(normalizeLabel(status)).Inc()
}
