package plans

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SahithiKaruparthi/planPro/internal/application/planner"
	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
	domerrors "github.com/SahithiKaruparthi/planPro/internal/domain/errors"
)

type CreatePlanInput struct {
	Identity    domain.Identity
	Title       string
	Description string
	Goals       []string
}

type CreatePlanResult struct {
	Plan *domain.Plan
}

// CreatePlan generates a task schedule from the submitted goals and persists
// the new plan under the caller's identity. Plan creation time is the anchor
// for every generated task date.
type CreatePlan struct {
	plans     ports.PlanRepository
	reminders ports.ReminderEnqueuer
	now       func() time.Time
}

func NewCreatePlan(plans ports.PlanRepository, reminders ports.ReminderEnqueuer) *CreatePlan {
	return &CreatePlan{plans: plans, reminders: reminders, now: time.Now}
}

func (uc *CreatePlan) Execute(ctx context.Context, input CreatePlanInput) (*CreatePlanResult, error) {
	title := strings.TrimSpace(input.Title)
	goals := trimGoals(input.Goals)
	if title == "" || len(goals) == 0 {
		return nil, domerrors.ErrInvalidPlanInput
	}
	anchor := uc.now()
	plan := &domain.Plan{
		ID:          domain.NewPlanID(uuid.New()),
		UserID:      input.Identity.UserID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Goals:       goals,
		Tasks:       planner.Generate(goals, anchor),
		CreatedAt:   anchor,
	}
	if err := uc.plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	if uc.reminders != nil {
		// Best effort: a failed enqueue never fails plan creation.
		_ = uc.reminders.EnqueueTaskReminders(ctx, input.Identity, plan)
		_ = uc.reminders.EnqueueEvent(ctx, ports.PlanEvent{
			Event:  "plan.created",
			UserID: plan.UserID.String(),
			PlanID: plan.ID.String(),
			Title:  plan.Title,
		})
	}
	return &CreatePlanResult{Plan: plan}, nil
}

// trimGoals drops blank goals and trims the rest, preserving order.
func trimGoals(goals []string) []string {
	out := make([]string, 0, len(goals))
	for _, g := range goals {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
