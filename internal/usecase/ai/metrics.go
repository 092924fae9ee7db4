package ai

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SummariesTotal counts produced summaries.
	// Labels: source (provider name or local), mode (remote, section, keyword, empty)
	SummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "meeting_summarizer",
			Subsystem: "summary",
			Name:      "produced_total",
			Help:      "Total number of summaries produced by source and mode",
		},
		[]string{"source", "mode"},
	)

	// RemoteFailuresTotal counts remote summarizer failures that fell back locally.
	// Labels: provider, code
	RemoteFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "meeting_summarizer",
			Subsystem: "remote",
			Name:      "failures_total",
			Help:      "Total number of remote summarization failures by error code",
		},
		[]string{"provider", "code"},
	)

	// RemoteDuration tracks remote summarizer latency.
	RemoteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "meeting_summarizer",
			Subsystem: "remote",
			Name:      "duration_seconds",
			Help:      "Duration of remote summarization calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	// TranscriptionsTotal counts transcription attempts.
	// Labels: result (success, error)
	TranscriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "meeting_summarizer",
			Subsystem: "transcription",
			Name:      "requests_total",
			Help:      "Total number of transcription attempts by result",
		},
		[]string{"result"},
	)

	// CacheLookupsTotal counts summary cache lookups.
	// Labels: result (hit, miss, error)
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "meeting_summarizer",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Total number of summary cache lookups by result",
		},
		[]string{"result"},
	)

	// TruncatedInputsTotal counts inputs cut to the character budget.
	TruncatedInputsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "meeting_summarizer",
			Subsystem: "summary",
			Name:      "truncated_inputs_total",
			Help:      "Total number of inputs truncated before summarization",
		},
	)
)
