// internal/db/db.go
package db

import (
    "database/sql"

    _ "github.com/lib/pq"

    "github.com/engagevox/campaign-backend/internal/logx"
)

// Connect opens and pings the Postgres database behind the run store.
func Connect(dsn string) (*sql.DB, error) {
    conn, err := sql.Open("postgres", dsn)
    if err != nil {
        return nil, err
    }
    if err := conn.Ping(); err != nil {
        return nil, err
    }
    logx.L().Infow("database_connected")
    return conn, nil
}
