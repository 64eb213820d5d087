package queue

import (
    "context"
    "encoding/json"

    "github.com/streadway/amqp"

    "github.com/engagevox/campaign-backend/internal/logx"
    "github.com/engagevox/campaign-backend/internal/metrics"
    "github.com/engagevox/campaign-backend/internal/model"
    "github.com/engagevox/campaign-backend/internal/repository"
)

// CampaignRunner defines the method the worker needs
type CampaignRunner interface {
    RunCampaign(ctx context.Context, req model.CampaignRequest) model.CampaignResult
}

// Worker processes bulk campaign jobs from the queue
type Worker struct {
    Runner CampaignRunner
    Repo   repository.RunRepositoryInterface
}

func NewWorker(runner CampaignRunner, repo repository.RunRepositoryInterface) *Worker {
    return &Worker{Runner: runner, Repo: repo}
}

// Start consumes deliveries until the channel closes.
func (w *Worker) Start(msgs <-chan amqp.Delivery) {
    for d := range msgs {
        w.HandleDelivery(d)
    }
}

// HandleDelivery processes one queued job. Every delivery is acked, including
// malformed and failed ones, because a redelivery would place the voice call
// again.
func (w *Worker) HandleDelivery(d amqp.Delivery) {
    metrics.WorkerJobsConsumed.Inc()

    var job model.CampaignJob
    if err := json.Unmarshal(d.Body, &job); err != nil {
        logx.L().Warnw("invalid_job", "error", err)
        d.Ack(false)
        return
    }

    logx.L().Infow("job_started", "job_id", job.JobID, "phone", job.Request.DestinationPhone)

    result := w.Runner.RunCampaign(context.Background(), job.Request)

    if err := w.Repo.Create(model.NewRunRecord(job.Request, result)); err != nil {
        logx.L().Errorw("run_record_failed", "job_id", job.JobID, "error", err)
    }

    logx.L().Infow("job_finished",
        "job_id", job.JobID,
        "status", result.Status,
        "call_id", result.CallID,
    )
    d.Ack(false)
}
