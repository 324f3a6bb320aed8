package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
)

const (
	TypeTaskReminder = "reminder:task"
	TypeWebhook      = "webhook:emit"
)

// taskReminderPayload is the JSON carried by a reminder:task job.
type taskReminderPayload struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	PlanID    string `json:"plan_id"`
	PlanTitle string `json:"plan_title"`
	TaskID    string `json:"task_id"`
	TaskTitle string `json:"task_title"`
	StartsAt  string `json:"starts_at"`
}

// Enqueuer implements ports.ReminderEnqueuer on Asynq.
type Enqueuer struct {
	client *asynq.Client
	log    zerolog.Logger
}

func NewAsynqEnqueuer(redisOpt asynq.RedisClientOpt, log zerolog.Logger) (*Enqueuer, error) {
	client := asynq.NewClient(redisOpt)
	return &Enqueuer{client: client, log: log}, nil
}

func (q *Enqueuer) Close() error {
	return q.client.Close()
}

// EnqueueTaskReminders schedules one reminder per task, delivered when the
// task starts.
func (q *Enqueuer) EnqueueTaskReminders(ctx context.Context, identity domain.Identity, plan *domain.Plan) error {
	for _, t := range plan.Tasks {
		payload, _ := json.Marshal(taskReminderPayload{
			UserID:    identity.UserID.String(),
			UserName:  identity.Name,
			PlanID:    plan.ID.String(),
			PlanTitle: plan.Title,
			TaskID:    t.ID.String(),
			TaskTitle: t.Title,
			StartsAt:  t.StartDate.Format("2006-01-02 15:04"),
		})
		task := asynq.NewTask(TypeTaskReminder, payload)
		if _, err := q.client.EnqueueContext(ctx, task, asynq.ProcessAt(t.StartDate)); err != nil {
			q.log.Warn().Err(err).Str("task_id", t.ID.String()).Msg("enqueue task reminder failed")
			return err
		}
	}
	return nil
}

func (q *Enqueuer) EnqueueEvent(ctx context.Context, event ports.PlanEvent) error {
	body, _ := json.Marshal(event)
	task := asynq.NewTask(TypeWebhook, body)
	_, err := q.client.EnqueueContext(ctx, task)
	if err != nil {
		q.log.Warn().Err(err).Str("event", event.Event).Msg("enqueue webhook failed")
		return err
	}
	return nil
}

var _ ports.ReminderEnqueuer = (*Enqueuer)(nil)
