// cmd/server/main.go
package main

import (
    "net/http"

    "github.com/go-chi/chi/v5"
    "github.com/joho/godotenv"

    "github.com/engagevox/campaign-backend/internal/config"
    "github.com/engagevox/campaign-backend/internal/db"
    "github.com/engagevox/campaign-backend/internal/handler"
    "github.com/engagevox/campaign-backend/internal/logx"
    "github.com/engagevox/campaign-backend/internal/metrics"
    "github.com/engagevox/campaign-backend/internal/model"
    "github.com/engagevox/campaign-backend/internal/orchestrator"
    "github.com/engagevox/campaign-backend/internal/queue"
    "github.com/engagevox/campaign-backend/internal/repository"
    "github.com/engagevox/campaign-backend/internal/sender"
)

func main() {
    if err := godotenv.Load(); err != nil {
        logx.L().Warnw("no .env file found, relying on OS environment variables")
    }
    logx.Init()
    defer logx.Sync()

    config.MustLoadServer()
    cfg := config.Server

    conn, err := db.Connect(cfg.DBDSN)
    if err != nil {
        logx.L().Fatalw("db_connect_failed", "error", err)
    }
    defer conn.Close()
    runRepo := &repository.RunRepository{DB: conn}

    pub, err := queue.NewPublisher(cfg.RMQURL, cfg.Queue)
    if err != nil {
        logx.L().Fatalw("queue_connect_failed", "error", err)
    }
    defer pub.Close()

    orch := &orchestrator.Orchestrator{
        Voice: sender.NewVoiceClient(cfg.Provider.VoiceBaseURL, cfg.Provider.HTTPTimeout),
        Senders: map[model.Channel]sender.Deliverer{
            model.ChannelWhatsApp: sender.NewWhatsAppSender(cfg.Provider.MessagingBaseURL, cfg.Provider.HTTPTimeout),
            model.ChannelSMS:      sender.NewSMSSender(cfg.Provider.MessagingBaseURL, cfg.Provider.HTTPTimeout),
            model.ChannelEmail:    sender.NewEmailSender(cfg.Provider.ResendAPIKey, cfg.Provider.FromEmail, cfg.Provider.FromName),
        },
        CallDelay:       cfg.Provider.CallCompletionDelay,
        InitiateTimeout: cfg.Provider.HTTPTimeout,
        DeliverTimeout:  cfg.Provider.HTTPTimeout,
    }

    campaignHandler := &handler.CampaignHandler{
        Runner:             orch,
        Publisher:          pub,
        Repo:               runRepo,
        DefaultCallbackURL: cfg.Provider.CallbackBaseURL,
    }

    r := chi.NewRouter()

    // Campaign routes
    r.Post("/api/campaigns/run", campaignHandler.RunCampaignHandler)
    r.Post("/api/campaigns/bulk", campaignHandler.BulkCampaignHandler)
    r.Get("/api/campaigns/runs", campaignHandler.ListRunsHandler)
    r.Get("/api/campaigns/runs/stats", campaignHandler.StatsHandler)

    r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
        w.Write([]byte("ok"))
    })
    r.Handle("/metrics", metrics.Handler())

    logx.L().Infow("server_started", "port", cfg.Port)
    if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
        logx.L().Fatalw("server_stopped", "error", err)
    }
}
