package ports

import (
	"context"

	"github.com/SahithiKaruparthi/planPro/internal/domain"
)

// ReminderEnqueuer schedules async work (task reminders, webhook emits).
type ReminderEnqueuer interface {
	// EnqueueTaskReminders schedules one reminder per task, delivered at the
	// task's start time.
	EnqueueTaskReminders(ctx context.Context, identity domain.Identity, plan *domain.Plan) error
	// EnqueueEvent queues an event for webhook delivery.
	EnqueueEvent(ctx context.Context, event PlanEvent) error
}
