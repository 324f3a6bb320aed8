package plans

import (
	"context"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
	domerrors "github.com/SahithiKaruparthi/planPro/internal/domain/errors"
)

type UpdateTaskInput struct {
	Identity domain.Identity
	PlanID   domain.PlanID
	TaskID   domain.TaskID
	Patch    domain.TaskPatch
}

type UpdateTaskResult struct {
	Task *domain.Task
}

// UpdateTask applies a partial patch to one task inside a plan the caller
// owns. This is the only mutation path for tasks; the plan is loaded and
// saved as a whole so the task never leaves its aggregate.
//
// Date fields in the patch are stored as given. A partial patch that touches
// only one of start/end is not re-checked against the other, matching the
// behavior clients already rely on for multi-step rescheduling.
type UpdateTask struct {
	plans     ports.PlanRepository
	reminders ports.ReminderEnqueuer
}

func NewUpdateTask(plans ports.PlanRepository, reminders ports.ReminderEnqueuer) *UpdateTask {
	return &UpdateTask{plans: plans, reminders: reminders}
}

func (uc *UpdateTask) Execute(ctx context.Context, input UpdateTaskInput) (*UpdateTaskResult, error) {
	plan, err := uc.plans.GetByID(ctx, input.Identity.UserID, input.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domerrors.ErrPlanNotFound
	}
	task, ok := plan.PatchTask(input.TaskID, input.Patch)
	if !ok {
		return nil, domerrors.ErrTaskNotFound
	}
	if err := uc.plans.SaveTasks(ctx, plan); err != nil {
		return nil, err
	}
	if uc.reminders != nil && input.Patch.Completed != nil && *input.Patch.Completed {
		_ = uc.reminders.EnqueueEvent(ctx, ports.PlanEvent{
			Event:  "task.completed",
			UserID: plan.UserID.String(),
			PlanID: plan.ID.String(),
			TaskID: task.ID.String(),
			Title:  task.Title,
		})
	}
	updated := *task
	return &UpdateTaskResult{Task: &updated}, nil
}
