// Package calendar flattens a user's plans into a single task view.
package calendar

import (
	"context"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
)

type ListItemsResult struct {
	Items []domain.CalendarItem
}

// ListItems projects every task of every plan the caller owns into one flat
// sequence, each item tagged with its source plan. Pure read: plans iterate
// in storage order, tasks in plan order; any chronological sort is up to the
// presentation layer.
type ListItems struct {
	plans ports.PlanRepository
}

func NewListItems(plans ports.PlanRepository) *ListItems {
	return &ListItems{plans: plans}
}

func (uc *ListItems) Execute(ctx context.Context, identity domain.Identity) (*ListItemsResult, error) {
	list, err := uc.plans.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	items := make([]domain.CalendarItem, 0)
	for _, plan := range list {
		for _, task := range plan.Tasks {
			items = append(items, domain.CalendarItem{
				TaskID:      task.ID,
				PlanID:      plan.ID,
				PlanTitle:   plan.Title,
				Title:       task.Title,
				Description: task.Description,
				Start:       task.StartDate,
				End:         task.EndDate,
				Completed:   task.Completed,
				Priority:    task.Priority,
			})
		}
	}
	return &ListItemsResult{Items: items}, nil
}
