package config

import (
    "os"
    "time"

    "github.com/engagevox/campaign-backend/internal/logx"
)

// Provider holds everything the sender adapters need to reach the outside world.
type Provider struct {
    VoiceBaseURL        string
    MessagingBaseURL    string
    ResendAPIKey        string
    FromEmail           string
    FromName            string
    CallbackBaseURL     string
    HTTPTimeout         time.Duration
    CallCompletionDelay time.Duration
}

type ServerConfig struct {
    Port     string
    DBDSN    string
    RMQURL   string
    Queue    string
    Provider Provider
}

type WorkerConfig struct {
    DBDSN    string
    RMQURL   string
    Queue    string
    Provider Provider
}

var (
    Server ServerConfig
    Worker WorkerConfig
)

func getenv(k, def string) string {
    if v := os.Getenv(k); v != "" {
        return v
    }
    return def
}

func mustEnv(k string) string {
    v := os.Getenv(k)
    if v == "" {
        logx.L().Fatalf("required env %s is not set", k)
    }
    return v
}

func getDuration(k, def string) time.Duration {
    raw := getenv(k, def)
    d, err := time.ParseDuration(raw)
    if err != nil {
        logx.L().Fatalf("env %s: invalid duration %q", k, raw)
    }
    return d
}

func loadProvider() Provider {
    return Provider{
        VoiceBaseURL:        mustEnv("VOICE_API_BASE_URL"),
        MessagingBaseURL:    mustEnv("MESSAGING_API_BASE_URL"),
        ResendAPIKey:        mustEnv("RESEND_API_KEY"),
        FromEmail:           getenv("FROM_EMAIL", "campaigns@engagevox.in"),
        FromName:            getenv("FROM_NAME", "EngageVox"),
        CallbackBaseURL:     getenv("CALLBACK_BASE_URL", ""),
        HTTPTimeout:         getDuration("HTTP_TIMEOUT", "10s"),
        CallCompletionDelay: getDuration("CALL_COMPLETION_DELAY", "8s"),
    }
}

func MustLoadServer() {
    Server = ServerConfig{
        Port:     getenv("PORT", "8080"),
        DBDSN:    mustEnv("DB_DSN"),
        RMQURL:   mustEnv("RMQ_URL"),
        Queue:    getenv("QUEUE", "campaign_runs"),
        Provider: loadProvider(),
    }
}

func MustLoadWorker() {
    Worker = WorkerConfig{
        DBDSN:    mustEnv("DB_DSN"),
        RMQURL:   mustEnv("RMQ_URL"),
        Queue:    getenv("QUEUE", "campaign_runs"),
        Provider: loadProvider(),
    }
}
