package model

// CampaignJob is the queue payload for one bulk-dispatched campaign run.
type CampaignJob struct {
    JobID   string          `json:"job_id"`
    Request CampaignRequest `json:"request"`
}
