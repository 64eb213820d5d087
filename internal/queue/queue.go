package queue

import (
    "encoding/json"

    "github.com/streadway/amqp"

    "github.com/engagevox/campaign-backend/internal/logx"
    "github.com/engagevox/campaign-backend/internal/metrics"
    "github.com/engagevox/campaign-backend/internal/model"
)

// Publisher pushes bulk campaign jobs onto the durable RabbitMQ queue that
// cmd/worker consumes.
type Publisher struct {
    conn  *amqp.Connection
    ch    *amqp.Channel
    queue string
}

func NewPublisher(url, queueName string) (*Publisher, error) {
    conn, err := amqp.Dial(url)
    if err != nil {
        return nil, err
    }

    ch, err := conn.Channel()
    if err != nil {
        conn.Close()
        return nil, err
    }

    q, err := ch.QueueDeclare(
        queueName, // name
        true,      // durable
        false,     // delete when unused
        false,     // exclusive
        false,     // no-wait
        nil,       // arguments
    )
    if err != nil {
        ch.Close()
        conn.Close()
        return nil, err
    }

    return &Publisher{conn: conn, ch: ch, queue: q.Name}, nil
}

func (p *Publisher) PublishJob(job model.CampaignJob) error {
    body, err := json.Marshal(job)
    if err != nil {
        return err
    }

    err = p.ch.Publish(
        "",      // exchange
        p.queue, // routing key
        false,   // mandatory
        false,   // immediate
        amqp.Publishing{
            ContentType: "application/json",
            Body:        body,
        },
    )
    if err != nil {
        return err
    }

    metrics.PublishedJobsTotal.Inc()
    logx.L().Debugw("job_published", "job_id", job.JobID, "queue", p.queue)
    return nil
}

func (p *Publisher) Close() {
    if p.ch != nil {
        p.ch.Close()
    }
    if p.conn != nil {
        p.conn.Close()
    }
}
