package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the lifecycle and data-rights counters.
type Metrics struct {
	ParticipantsCreated prometheus.Counter
	AnswersSubmitted    *prometheus.CounterVec
	FlagsRaised         *prometheus.CounterVec
	Completions         prometheus.Counter
	ErasureStepFailures *prometheus.CounterVec
	Erasures            prometheus.Counter
	Exports             prometheus.Counter
	DecryptionFailures  prometheus.Counter
	RadarCacheLookups   *prometheus.CounterVec
}

// New registers all metrics on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ParticipantsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "radar_participants_created_total",
			Help: "Total number of participants created",
		}),
		AnswersSubmitted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "radar_answers_submitted_total",
			Help: "Answers submitted, by whether they were stored encrypted",
		}, []string{"encrypted"}),
		FlagsRaised: f.NewCounterVec(prometheus.CounterOpts{
			Name: "radar_flags_raised_total",
			Help: "Flags derived from answers, by severity",
		}, []string{"severity"}),
		Completions: f.NewCounter(prometheus.CounterOpts{
			Name: "radar_assessments_completed_total",
			Help: "Assessments completed for the first time",
		}),
		ErasureStepFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "radar_erasure_step_failures_total",
			Help: "Erasure steps that failed, by step",
		}, []string{"step"}),
		Erasures: f.NewCounter(prometheus.CounterOpts{
			Name: "radar_erasures_total",
			Help: "Participants fully erased",
		}),
		Exports: f.NewCounter(prometheus.CounterOpts{
			Name: "radar_exports_total",
			Help: "Data exports served",
		}),
		DecryptionFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "radar_decryption_failures_total",
			Help: "Answer ciphertexts that failed to decrypt",
		}),
		RadarCacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "radar_profile_cache_lookups_total",
			Help: "Radar profile cache lookups, by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) IncParticipantsCreated() {
	m.ParticipantsCreated.Inc()
}

func (m *Metrics) IncAnswersSubmitted(encrypted bool) {
	label := "false"
	if encrypted {
		label = "true"
	}
	m.AnswersSubmitted.WithLabelValues(label).Inc()
}

func (m *Metrics) IncFlagsRaised(severity string) {
	m.FlagsRaised.WithLabelValues(severity).Inc()
}

func (m *Metrics) IncCompletions() {
	m.Completions.Inc()
}

func (m *Metrics) IncErasureStepFailure(step string) {
	m.ErasureStepFailures.WithLabelValues(step).Inc()
}

func (m *Metrics) IncErasures() {
	m.Erasures.Inc()
}

func (m *Metrics) IncExports() {
	m.Exports.Inc()
}

func (m *Metrics) IncDecryptionFailures() {
	m.DecryptionFailures.Inc()
}

func (m *Metrics) ObserveCacheLookup(hit bool) {
	if hit {
		m.RadarCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	m.RadarCacheLookups.WithLabelValues("miss").Inc()
}
