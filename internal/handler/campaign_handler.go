// internal/handler/campaign_handler.go
package handler

import (
    "context"
    "encoding/json"
    "net/http"
    "strconv"

    "github.com/google/uuid"

    "github.com/engagevox/campaign-backend/internal/logx"
    "github.com/engagevox/campaign-backend/internal/model"
    "github.com/engagevox/campaign-backend/internal/report"
    "github.com/engagevox/campaign-backend/internal/repository"
)

// CampaignRunner executes one campaign run and always produces a result.
type CampaignRunner interface {
    RunCampaign(ctx context.Context, req model.CampaignRequest) model.CampaignResult
}

// JobPublisher queues bulk campaign jobs for the worker.
type JobPublisher interface {
    PublishJob(job model.CampaignJob) error
}

// CampaignHandler holds the dependencies for campaign-related HTTP handlers
type CampaignHandler struct {
    Runner             CampaignRunner
    Publisher          JobPublisher
    Repo               repository.RunRepositoryInterface
    DefaultCallbackURL string
}

// RunCampaignHandler executes a single campaign synchronously and returns the
// result report. Orchestration outcomes (including failures) are 200s; only an
// undecodable body is a 400.
func (h *CampaignHandler) RunCampaignHandler(w http.ResponseWriter, r *http.Request) {
    var req model.CampaignRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
        return
    }
    if req.CallbackBaseURL == "" {
        req.CallbackBaseURL = h.DefaultCallbackURL
    }

    result := h.Runner.RunCampaign(r.Context(), req)
    h.record(req, result)

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(report.Build(result))
}

type bulkTarget struct {
    DestinationPhone string `json:"phone_number"`
    CustomerName     string `json:"customer_name,omitempty"`
    Email            string `json:"email,omitempty"`
    Amount           string `json:"amount,omitempty"`
    DueDate          string `json:"due_date,omitempty"`
}

type bulkCampaignPayload struct {
    CampaignType    model.CampaignType `json:"campaign_type"`
    Sector          model.Sector       `json:"sector"`
    Language        model.Language     `json:"language"`
    FollowUpChannel model.Channel      `json:"follow_up_channel"`
    CallbackBaseURL string             `json:"callback_base_url,omitempty"`
    Targets         []bulkTarget       `json:"targets"`
}

// BulkCampaignHandler queues one campaign run per target.
func (h *CampaignHandler) BulkCampaignHandler(w http.ResponseWriter, r *http.Request) {
    var payload bulkCampaignPayload
    if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
        http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
        return
    }
    if len(payload.Targets) == 0 {
        http.Error(w, "targets must not be empty", http.StatusBadRequest)
        return
    }

    callback := payload.CallbackBaseURL
    if callback == "" {
        callback = h.DefaultCallbackURL
    }

    jobIDs := []string{}
    for _, t := range payload.Targets {
        job := model.CampaignJob{
            JobID: uuid.New().String(),
            Request: model.CampaignRequest{
                DestinationPhone: t.DestinationPhone,
                CustomerName:     t.CustomerName,
                CampaignType:     payload.CampaignType,
                Sector:           payload.Sector,
                Language:         payload.Language,
                FollowUpChannel:  payload.FollowUpChannel,
                Email:            t.Email,
                Amount:           t.Amount,
                DueDate:          t.DueDate,
                CallbackBaseURL:  callback,
            },
        }
        if err := h.Publisher.PublishJob(job); err != nil {
            logx.L().Errorw("job_publish_failed", "job_id", job.JobID, "error", err)
            continue
        }
        jobIDs = append(jobIDs, job.JobID)
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "queued":  len(jobIDs),
        "job_ids": jobIDs,
    })
}

// ListRunsHandler returns a paginated list of recorded runs
func (h *CampaignHandler) ListRunsHandler(w http.ResponseWriter, r *http.Request) {
    page := 1
    pageSize := 20

    if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
        page = p
    }
    if ps, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && ps > 0 {
        pageSize = ps
    }
    if pageSize > 100 {
        pageSize = 100
    }
    offset := (page - 1) * pageSize

    status := r.URL.Query().Get("status")
    channel := r.URL.Query().Get("channel")

    records, total, err := h.Repo.ListRuns(offset, pageSize, status, channel)
    if err != nil {
        http.Error(w, "failed to fetch runs: "+err.Error(), http.StatusInternalServerError)
        return
    }

    totalPages := (total + pageSize - 1) / pageSize
    response := map[string]interface{}{
        "data": records,
        "pagination": map[string]int{
            "page":        page,
            "page_size":   pageSize,
            "total_count": total,
            "total_pages": totalPages,
        },
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(response)
}

// StatsHandler returns run counts grouped by terminal status
func (h *CampaignHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
    stats, err := h.Repo.GetStats()
    if err != nil {
        http.Error(w, "failed to fetch stats: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{"stats": stats})
}

// record writes the run trace; failures are logged, never surfaced.
func (h *CampaignHandler) record(req model.CampaignRequest, res model.CampaignResult) {
    if h.Repo == nil {
        return
    }
    if err := h.Repo.Create(model.NewRunRecord(req, res)); err != nil {
        logx.L().Errorw("run_record_failed", "call_id", res.CallID, "error", err)
    }
}
