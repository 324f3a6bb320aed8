package plans

import (
	"context"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
)

type ListPlansResult struct {
	Plans []*domain.Plan
}

// ListPlans returns every plan owned by the caller, in storage order.
type ListPlans struct {
	plans ports.PlanRepository
}

func NewListPlans(plans ports.PlanRepository) *ListPlans {
	return &ListPlans{plans: plans}
}

func (uc *ListPlans) Execute(ctx context.Context, identity domain.Identity) (*ListPlansResult, error) {
	list, err := uc.plans.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	return &ListPlansResult{Plans: list}, nil
}
