// cmd/migrate/main.go
package main

import (
    "database/sql"
    "fmt"
    "log"
    "os"

    _ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS campaign_runs (
    id                 UUID PRIMARY KEY,
    phone              TEXT NOT NULL,
    campaign_type      TEXT NOT NULL,
    sector             TEXT NOT NULL,
    language           TEXT NOT NULL,
    follow_up_channel  TEXT NOT NULL,
    call_id            TEXT NOT NULL DEFAULT '',
    status             TEXT NOT NULL,
    follow_up_sent     BOOLEAN NOT NULL DEFAULT FALSE,
    error_detail       TEXT NOT NULL DEFAULT '',
    created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_campaign_runs_status ON campaign_runs (status);
CREATE INDEX IF NOT EXISTS idx_campaign_runs_created_at ON campaign_runs (created_at DESC);
`

func main() {
    dsn := os.Getenv("DB_DSN")
    db, err := sql.Open("postgres", dsn)
    if err != nil {
        log.Fatal(err)
    }
    defer db.Close()

    if _, err := db.Exec(schema); err != nil {
        log.Fatalf("failed to apply schema: %v", err)
    }

    fmt.Println("Schema applied successfully!")
}
