package repository

import (
    "database/sql"
    "fmt"
    "time"

    "github.com/google/uuid"

    "github.com/engagevox/campaign-backend/internal/model"
)

type RunRepositoryInterface interface {
    Create(rec *model.RunRecord) error
    ListRuns(offset, limit int, status, channel string) ([]*model.RunRecord, int, error)
    GetStats() (map[string]int, error)
}

// RunRepository writes completed campaign runs for the reporting store to
// read later.
type RunRepository struct {
    DB *sql.DB
}

func (r *RunRepository) Create(rec *model.RunRecord) error {
    if rec.ID == "" {
        rec.ID = uuid.New().String()
    }
    if rec.CreatedAt.IsZero() {
        rec.CreatedAt = time.Now()
    }
    query := `
        INSERT INTO campaign_runs
            (id, phone, campaign_type, sector, language, follow_up_channel,
             call_id, status, follow_up_sent, error_detail, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
    _, err := r.DB.Exec(query,
        rec.ID, rec.Phone, rec.CampaignType, rec.Sector, rec.Language,
        rec.FollowUpChannel, rec.CallID, rec.Status, rec.FollowUpSent,
        rec.ErrorDetail, rec.CreatedAt,
    )
    return err
}

func (r *RunRepository) ListRuns(offset, limit int, status, channel string) ([]*model.RunRecord, int, error) {
    records := []*model.RunRecord{}

    where := " WHERE 1=1"
    args := []interface{}{}
    argPos := 1

    if status != "" {
        where += fmt.Sprintf(" AND status=$%d", argPos)
        args = append(args, status)
        argPos++
    }
    if channel != "" {
        where += fmt.Sprintf(" AND follow_up_channel=$%d", argPos)
        args = append(args, channel)
        argPos++
    }

    var total int
    countQuery := "SELECT COUNT(*) FROM campaign_runs" + where
    if err := r.DB.QueryRow(countQuery, args...).Scan(&total); err != nil {
        return nil, 0, err
    }

    query := `SELECT id, phone, campaign_type, sector, language, follow_up_channel,
        call_id, status, follow_up_sent, error_detail, created_at
        FROM campaign_runs` + where
    query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
    args = append(args, limit, offset)

    rows, err := r.DB.Query(query, args...)
    if err != nil {
        return nil, 0, err
    }
    defer rows.Close()

    for rows.Next() {
        var rec model.RunRecord
        if err := rows.Scan(
            &rec.ID, &rec.Phone, &rec.CampaignType, &rec.Sector, &rec.Language,
            &rec.FollowUpChannel, &rec.CallID, &rec.Status, &rec.FollowUpSent,
            &rec.ErrorDetail, &rec.CreatedAt,
        ); err != nil {
            return nil, 0, err
        }
        records = append(records, &rec)
    }
    if err := rows.Err(); err != nil {
        return nil, 0, err
    }

    return records, total, nil
}

func (r *RunRepository) GetStats() (map[string]int, error) {
    stats := map[string]int{
        "total":           0,
        "completed":       0,
        "partial_failure": 0,
        "failed":          0,
    }

    rows, err := r.DB.Query(`SELECT status, COUNT(*) FROM campaign_runs GROUP BY status`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    for rows.Next() {
        var status string
        var count int
        if err := rows.Scan(&status, &count); err != nil {
            return nil, err
        }
        if _, ok := stats[status]; ok {
            stats[status] = count
        }
        stats["total"] += count
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }

    return stats, nil
}
