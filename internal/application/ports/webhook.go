package ports

import "context"

// PlanEvent is a single domain event for logging or webhooks.
type PlanEvent struct {
	Event  string `json:"event"` // plan.created, task.completed
	UserID string `json:"user_id"`
	PlanID string `json:"plan_id"`
	TaskID string `json:"task_id,omitempty"`
	Title  string `json:"title,omitempty"`
}

// WebhookEmitter sends plan events to an external endpoint.
type WebhookEmitter interface {
	Emit(ctx context.Context, event PlanEvent) error
}
