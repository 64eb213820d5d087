package metrics

import (
    "net/http"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
    RunsStarted = prometheus.NewCounter(
        prometheus.CounterOpts{Name: "campaign_runs_started_total", Help: "Campaign runs started"},
    )
    RunsCompleted = prometheus.NewCounter(
        prometheus.CounterOpts{Name: "campaign_runs_completed_total", Help: "Runs where call and follow-up both succeeded"},
    )
    RunsPartialFailure = prometheus.NewCounter(
        prometheus.CounterOpts{Name: "campaign_runs_partial_failure_total", Help: "Runs where the call succeeded but the follow-up failed"},
    )
    RunsFailed = prometheus.NewCounter(
        prometheus.CounterOpts{Name: "campaign_runs_failed_total", Help: "Runs that failed before or during the voice leg"},
    )
    TemplateFallbacks = prometheus.NewCounter(
        prometheus.CounterOpts{Name: "campaign_template_fallbacks_total", Help: "Renders that used the default template"},
    )

    VoiceInitiateDuration = prometheus.NewHistogram(
        prometheus.HistogramOpts{
            Name:    "campaign_voice_initiate_duration_seconds",
            Help:    "Time spent initiating the voice call",
            Buckets: prometheus.DefBuckets,
        },
    )
    FollowUpSendDuration = prometheus.NewHistogramVec(
        prometheus.HistogramOpts{
            Name:    "campaign_follow_up_send_duration_seconds",
            Help:    "Time spent sending the follow-up message",
            Buckets: prometheus.DefBuckets,
        },
        []string{"channel"},
    )

    PublishedJobsTotal = prometheus.NewCounter(
        prometheus.CounterOpts{Name: "campaign_published_jobs_total", Help: "Bulk jobs published to queue"},
    )
    WorkerJobsConsumed = prometheus.NewCounter(
        prometheus.CounterOpts{Name: "campaign_worker_jobs_consumed_total", Help: "Bulk jobs consumed"},
    )
)

func init() {
    prometheus.MustRegister(
        RunsStarted, RunsCompleted, RunsPartialFailure, RunsFailed, TemplateFallbacks,
        VoiceInitiateDuration, FollowUpSendDuration,
        PublishedJobsTotal, WorkerJobsConsumed,
    )
}

func Handler() http.Handler { return promhttp.Handler() }
