package queue_test

import (
    "context"
    "encoding/json"
    "testing"

    "github.com/streadway/amqp"

    "github.com/engagevox/campaign-backend/internal/logx"
    "github.com/engagevox/campaign-backend/internal/model"
    "github.com/engagevox/campaign-backend/internal/queue"
)

func TestMain(m *testing.M) {
    logx.SetNop()
    m.Run()
}

type mockRunner struct {
    calls int
    last  model.CampaignRequest
    res   model.CampaignResult
}

func (m *mockRunner) RunCampaign(ctx context.Context, req model.CampaignRequest) model.CampaignResult {
    m.calls++
    m.last = req
    return m.res
}

type mockRunRepo struct {
    created []*model.RunRecord
}

func (m *mockRunRepo) Create(rec *model.RunRecord) error {
    m.created = append(m.created, rec)
    return nil
}

func (m *mockRunRepo) ListRuns(offset, limit int, status, channel string) ([]*model.RunRecord, int, error) {
    return nil, 0, nil
}

func (m *mockRunRepo) GetStats() (map[string]int, error) {
    return nil, nil
}

// mockAcknowledger counts acks so ack-always behavior is observable
type mockAcknowledger struct {
    acks  int
    nacks int
}

func (m *mockAcknowledger) Ack(tag uint64, multiple bool) error {
    m.acks++
    return nil
}

func (m *mockAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
    m.nacks++
    return nil
}

func (m *mockAcknowledger) Reject(tag uint64, requeue bool) error {
    m.nacks++
    return nil
}

func TestWorkerHandlesJob(t *testing.T) {
    runner := &mockRunner{res: model.CampaignResult{
        CallID:       "call-3",
        FollowUpSent: true,
        Status:       model.RunCompleted,
    }}
    repo := &mockRunRepo{}
    w := queue.NewWorker(runner, repo)

    job := model.CampaignJob{
        JobID: "job-1",
        Request: model.CampaignRequest{
            DestinationPhone: "+919876543210",
            CampaignType:     model.CampaignEMIReminder,
            Sector:           model.SectorBanking,
            Language:         model.LanguageEnglish,
            FollowUpChannel:  model.ChannelSMS,
        },
    }
    body, _ := json.Marshal(job)

    ack := &mockAcknowledger{}
    w.HandleDelivery(amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body})

    if runner.calls != 1 {
        t.Fatalf("expected 1 campaign run, got %d", runner.calls)
    }
    if runner.last.DestinationPhone != "+919876543210" {
        t.Errorf("unexpected request phone %q", runner.last.DestinationPhone)
    }
    if len(repo.created) != 1 {
        t.Fatalf("expected 1 run record, got %d", len(repo.created))
    }
    if repo.created[0].CallID != "call-3" {
        t.Errorf("expected recorded call id call-3, got %q", repo.created[0].CallID)
    }
    if ack.acks != 1 {
        t.Errorf("expected 1 ack, got %d", ack.acks)
    }
    if ack.nacks != 0 {
        t.Errorf("expected no nacks, got %d", ack.nacks)
    }
}

func TestWorkerAcksMalformedPayload(t *testing.T) {
    runner := &mockRunner{}
    repo := &mockRunRepo{}
    w := queue.NewWorker(runner, repo)

    ack := &mockAcknowledger{}
    w.HandleDelivery(amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: []byte(`{not json`)})

    if runner.calls != 0 {
        t.Errorf("expected no campaign runs for a malformed job, got %d", runner.calls)
    }
    if len(repo.created) != 0 {
        t.Errorf("expected no run records, got %d", len(repo.created))
    }
    if ack.acks != 1 {
        t.Errorf("malformed jobs must still be acked, got %d acks", ack.acks)
    }
}

func TestWorkerStartDrainsChannel(t *testing.T) {
    runner := &mockRunner{res: model.CampaignResult{Status: model.RunCompleted}}
    repo := &mockRunRepo{}
    w := queue.NewWorker(runner, repo)
    ack := &mockAcknowledger{}

    msgs := make(chan amqp.Delivery, 2)
    for i := uint64(1); i <= 2; i++ {
        body, _ := json.Marshal(model.CampaignJob{JobID: "job", Request: model.CampaignRequest{
            DestinationPhone: "+919876543210",
            FollowUpChannel:  model.ChannelSMS,
        }})
        msgs <- amqp.Delivery{Acknowledger: ack, DeliveryTag: i, Body: body}
    }
    close(msgs)

    w.Start(msgs)

    if runner.calls != 2 {
        t.Errorf("expected 2 campaign runs, got %d", runner.calls)
    }
    if ack.acks != 2 {
        t.Errorf("expected 2 acks, got %d", ack.acks)
    }
}
