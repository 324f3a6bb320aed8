package plans

import (
	"context"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
	domerrors "github.com/SahithiKaruparthi/planPro/internal/domain/errors"
)

type GetPlanResult struct {
	Plan *domain.Plan
}

// GetPlan resolves one plan under the caller's ownership. A plan that exists
// under a different owner surfaces as ErrPlanNotFound, same as one that does
// not exist at all.
type GetPlan struct {
	plans ports.PlanRepository
}

func NewGetPlan(plans ports.PlanRepository) *GetPlan {
	return &GetPlan{plans: plans}
}

func (uc *GetPlan) Execute(ctx context.Context, identity domain.Identity, planID domain.PlanID) (*GetPlanResult, error) {
	plan, err := uc.plans.GetByID(ctx, identity.UserID, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domerrors.ErrPlanNotFound
	}
	return &GetPlanResult{Plan: plan}, nil
}
