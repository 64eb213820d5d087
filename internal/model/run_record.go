package model

import "time"

// RunRecord is the persisted trace of a completed orchestration run. The
// analytics/reporting store reads these later; this service only writes them.
type RunRecord struct {
    ID              string       `db:"id" json:"id"`
    Phone           string       `db:"phone" json:"phone"`
    CampaignType    CampaignType `db:"campaign_type" json:"campaign_type"`
    Sector          Sector       `db:"sector" json:"sector"`
    Language        Language     `db:"language" json:"language"`
    FollowUpChannel Channel      `db:"follow_up_channel" json:"follow_up_channel"`
    CallID          string       `db:"call_id" json:"call_id,omitempty"`
    Status          RunStatus    `db:"status" json:"status"`
    FollowUpSent    bool         `db:"follow_up_sent" json:"follow_up_sent"`
    ErrorDetail     string       `db:"error_detail" json:"error_detail,omitempty"`
    CreatedAt       time.Time    `db:"created_at" json:"created_at"`
}

// NewRunRecord builds the persisted trace for one finished run.
func NewRunRecord(req CampaignRequest, res CampaignResult) *RunRecord {
    return &RunRecord{
        Phone:           req.DestinationPhone,
        CampaignType:    req.CampaignType,
        Sector:          req.Sector,
        Language:        req.Language,
        FollowUpChannel: req.FollowUpChannel,
        CallID:          res.CallID,
        Status:          res.Status,
        FollowUpSent:    res.FollowUpSent,
        ErrorDetail:     res.ErrorDetail,
    }
}
