package main

import (
    "github.com/joho/godotenv"
    "github.com/streadway/amqp"

    "github.com/engagevox/campaign-backend/internal/config"
    "github.com/engagevox/campaign-backend/internal/db"
    "github.com/engagevox/campaign-backend/internal/logx"
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

    config.MustLoadWorker()
    cfg := config.Worker

    conn, err := db.Connect(cfg.DBDSN)
    if err != nil {
        logx.L().Fatalw("db_connect_failed", "error", err)
    }
    defer conn.Close()
    runRepo := &repository.RunRepository{DB: conn}

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

    // Connect to RabbitMQ
    mq, err := amqp.Dial(cfg.RMQURL)
    if err != nil {
        logx.L().Fatalw("rabbitmq_connect_failed", "error", err)
    }
    defer mq.Close()

    ch, err := mq.Channel()
    if err != nil {
        logx.L().Fatalw("rabbitmq_channel_failed", "error", err)
    }
    defer ch.Close()

    q, err := ch.QueueDeclare(
        cfg.Queue, // name
        true,      // durable
        false,     // delete when unused
        false,     // exclusive
        false,     // no-wait
        nil,       // arguments
    )
    if err != nil {
        logx.L().Fatalw("queue_declare_failed", "error", err)
    }

    msgs, err := ch.Consume(
        q.Name,
        "",
        false, // autoAck = false for reliability
        false,
        false,
        false,
        nil,
    )
    if err != nil {
        logx.L().Fatalw("consumer_register_failed", "error", err)
    }

    forever := make(chan bool)

    worker := queue.NewWorker(orch, runRepo)
    go worker.Start(msgs)

    logx.L().Infow("worker_started", "queue", cfg.Queue)
    <-forever
}
