package calendar

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/SahithiKaruparthi/planPro/internal/application/plans"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
	"github.com/SahithiKaruparthi/planPro/internal/infrastructure/persistence/memory"
)

func TestListItemsFlattensOwnPlans(t *testing.T) {
	repo := memory.NewPlanRepository()
	owner := domain.Identity{UserID: domain.NewUserID(uuid.New()), Name: "Dana"}
	other := domain.Identity{UserID: domain.NewUserID(uuid.New()), Name: "Eve"}

	create := plans.NewCreatePlan(repo, nil)
	first, err := create.Execute(context.Background(), plans.CreatePlanInput{
		Identity: owner, Title: "Math", Goals: []string{"Algebra", "Geometry"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := create.Execute(context.Background(), plans.CreatePlanInput{
		Identity: owner, Title: "Physics", Goals: []string{"Mechanics"},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := create.Execute(context.Background(), plans.CreatePlanInput{
		Identity: other, Title: "Secret", Goals: []string{"Hidden"},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	result, err := NewListItems(repo).Execute(context.Background(), owner)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	// Two goals + one goal, three tasks each.
	if got := len(result.Items); got != 9 {
		t.Fatalf("item count = %d, want 9", got)
	}
	for _, item := range result.Items {
		if item.PlanTitle == "Secret" {
			t.Fatal("foreign plan leaked into calendar")
		}
	}
	// Items keep plan order, tasks in plan order; the first item mirrors the
	// first task of the first plan.
	want := first.Plan.Tasks[0]
	got := result.Items[0]
	if got.TaskID != want.ID || got.PlanID != first.Plan.ID || got.PlanTitle != "Math" ||
		got.Title != want.Title || !got.Start.Equal(want.StartDate) ||
		!got.End.Equal(want.EndDate) || got.Priority != want.Priority {
		t.Errorf("first item %+v does not mirror source task %+v", got, want)
	}
}

func TestListItemsEmptyWithoutPlans(t *testing.T) {
	repo := memory.NewPlanRepository()
	owner := domain.Identity{UserID: domain.NewUserID(uuid.New())}
	result, err := NewListItems(repo).Execute(context.Background(), owner)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Items == nil || len(result.Items) != 0 {
		t.Fatalf("items = %#v, want empty non-nil slice", result.Items)
	}
}
