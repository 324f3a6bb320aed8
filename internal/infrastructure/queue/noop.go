package queue

import (
	"context"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
)

// NoopEnqueuer is a no-op enqueuer when Redis/Asynq is not configured.
type NoopEnqueuer struct{}

func NewNoopEnqueuer() *NoopEnqueuer {
	return &NoopEnqueuer{}
}

func (q *NoopEnqueuer) EnqueueTaskReminders(ctx context.Context, identity domain.Identity, plan *domain.Plan) error {
	return nil
}

func (q *NoopEnqueuer) EnqueueEvent(ctx context.Context, event ports.PlanEvent) error {
	return nil
}

var _ ports.ReminderEnqueuer = (*NoopEnqueuer)(nil)
