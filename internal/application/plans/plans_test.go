package plans

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
	domerrors "github.com/SahithiKaruparthi/planPro/internal/domain/errors"
	"github.com/SahithiKaruparthi/planPro/internal/infrastructure/persistence/memory"
)

type recordingEnqueuer struct {
	reminderPlans []*domain.Plan
	events        []ports.PlanEvent
}

func (r *recordingEnqueuer) EnqueueTaskReminders(ctx context.Context, identity domain.Identity, plan *domain.Plan) error {
	r.reminderPlans = append(r.reminderPlans, plan)
	return nil
}

func (r *recordingEnqueuer) EnqueueEvent(ctx context.Context, event ports.PlanEvent) error {
	r.events = append(r.events, event)
	return nil
}

func testIdentity() domain.Identity {
	return domain.Identity{UserID: domain.NewUserID(uuid.New()), Name: "Dana"}
}

func TestCreatePlanGeneratesSchedule(t *testing.T) {
	repo := memory.NewPlanRepository()
	enq := &recordingEnqueuer{}
	uc := NewCreatePlan(repo, enq)
	anchor := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return anchor }

	identity := testIdentity()
	result, err := uc.Execute(context.Background(), CreatePlanInput{
		Identity: identity,
		Title:    "Finals prep",
		Goals:    []string{"Algebra", "Geometry"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	plan := result.Plan
	if plan.UserID != identity.UserID {
		t.Errorf("plan owner = %s, want %s", plan.UserID, identity.UserID)
	}
	if got := len(plan.Tasks); got != 6 {
		t.Fatalf("task count = %d, want 6", got)
	}
	if !plan.Tasks[0].StartDate.Equal(anchor) {
		t.Errorf("first task starts %v, want anchor %v", plan.Tasks[0].StartDate, anchor)
	}
	// Second goal's first task lands three days after the first goal's.
	if !plan.Tasks[3].StartDate.Equal(anchor.AddDate(0, 0, 3)) {
		t.Errorf("second goal starts %v, want %v", plan.Tasks[3].StartDate, anchor.AddDate(0, 0, 3))
	}
	if len(enq.reminderPlans) != 1 {
		t.Errorf("reminder enqueues = %d, want 1", len(enq.reminderPlans))
	}
	if len(enq.events) != 1 || enq.events[0].Event != "plan.created" {
		t.Errorf("events = %+v, want one plan.created", enq.events)
	}

	stored, err := repo.GetByID(context.Background(), identity.UserID, plan.ID)
	if err != nil || stored == nil {
		t.Fatalf("GetByID after create: plan=%v err=%v", stored, err)
	}
}

func TestCreatePlanDeterministicForSameAnchor(t *testing.T) {
	anchor := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	run := func() *domain.Plan {
		uc := NewCreatePlan(memory.NewPlanRepository(), nil)
		uc.now = func() time.Time { return anchor }
		result, err := uc.Execute(context.Background(), CreatePlanInput{
			Identity: testIdentity(),
			Title:    "Repeatable",
			Goals:    []string{"Algebra"},
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		return result.Plan
	}
	a, b := run(), run()
	for i := range a.Tasks {
		if a.Tasks[i].Title != b.Tasks[i].Title ||
			!a.Tasks[i].StartDate.Equal(b.Tasks[i].StartDate) ||
			!a.Tasks[i].EndDate.Equal(b.Tasks[i].EndDate) ||
			a.Tasks[i].Priority != b.Tasks[i].Priority {
			t.Errorf("task %d differs between identical runs", i)
		}
	}
}

func TestCreatePlanRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		title string
		goals []string
	}{
		{"empty title", "", []string{"Algebra"}},
		{"whitespace title", "   ", []string{"Algebra"}},
		{"no goals", "Plan", nil},
		{"blank goals only", "Plan", []string{"", "  "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := memory.NewPlanRepository()
			uc := NewCreatePlan(repo, nil)
			_, err := uc.Execute(context.Background(), CreatePlanInput{
				Identity: testIdentity(),
				Title:    tc.title,
				Goals:    tc.goals,
			})
			if !errors.Is(err, domerrors.ErrInvalidPlanInput) {
				t.Fatalf("err = %v, want ErrInvalidPlanInput", err)
			}
			list, _ := repo.ListByUser(context.Background(), domain.UserID{})
			if len(list) != 0 {
				t.Error("rejected input must persist nothing")
			}
		})
	}
}

func TestGetPlanHidesForeignPlans(t *testing.T) {
	repo := memory.NewPlanRepository()
	owner := testIdentity()
	other := testIdentity()

	create := NewCreatePlan(repo, nil)
	created, err := create.Execute(context.Background(), CreatePlanInput{
		Identity: owner,
		Title:    "Mine",
		Goals:    []string{"Algebra"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	get := NewGetPlan(repo)
	if _, err := get.Execute(context.Background(), owner, created.Plan.ID); err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
	_, err = get.Execute(context.Background(), other, created.Plan.ID)
	if !errors.Is(err, domerrors.ErrPlanNotFound) {
		t.Fatalf("foreign lookup err = %v, want ErrPlanNotFound", err)
	}
	// Same error as a plan that never existed.
	_, missErr := get.Execute(context.Background(), owner, domain.NewPlanID(uuid.New()))
	if !errors.Is(missErr, domerrors.ErrPlanNotFound) {
		t.Fatalf("missing lookup err = %v, want ErrPlanNotFound", missErr)
	}
}

func TestListPlansScopedToCaller(t *testing.T) {
	repo := memory.NewPlanRepository()
	alice, bob := testIdentity(), testIdentity()
	create := NewCreatePlan(repo, nil)
	for _, id := range []domain.Identity{alice, alice, bob} {
		if _, err := create.Execute(context.Background(), CreatePlanInput{
			Identity: id, Title: "P", Goals: []string{"G"},
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	list := NewListPlans(repo)
	result, err := list.Execute(context.Background(), alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Plans) != 2 {
		t.Fatalf("alice sees %d plans, want 2", len(result.Plans))
	}
	for _, p := range result.Plans {
		if p.UserID != alice.UserID {
			t.Errorf("plan %s not owned by caller", p.ID)
		}
	}
}

func TestUpdateTaskPartialPatch(t *testing.T) {
	repo := memory.NewPlanRepository()
	owner := testIdentity()
	created, err := NewCreatePlan(repo, nil).Execute(context.Background(), CreatePlanInput{
		Identity: owner, Title: "Plan", Goals: []string{"Algebra"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	target := created.Plan.Tasks[1]

	enq := &recordingEnqueuer{}
	update := NewUpdateTask(repo, enq)
	done := true
	result, err := update.Execute(context.Background(), UpdateTaskInput{
		Identity: owner,
		PlanID:   created.Plan.ID,
		TaskID:   target.ID,
		Patch:    domain.TaskPatch{Completed: &done},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !result.Task.Completed {
		t.Error("completed not applied")
	}
	// Omitted fields keep their values.
	if !result.Task.StartDate.Equal(target.StartDate) || !result.Task.EndDate.Equal(target.EndDate) {
		t.Error("dates changed by a completion-only patch")
	}
	if result.Task.Title != target.Title || result.Task.Priority != target.Priority {
		t.Error("immutable fields changed by patch")
	}
	if len(enq.events) != 1 || enq.events[0].Event != "task.completed" {
		t.Errorf("events = %+v, want one task.completed", enq.events)
	}

	// Siblings untouched, change persisted.
	stored, _ := repo.GetByID(context.Background(), owner.UserID, created.Plan.ID)
	for i, task := range stored.Tasks {
		if task.ID == target.ID {
			if !task.Completed {
				t.Error("patch not persisted")
			}
			continue
		}
		if task.Completed != created.Plan.Tasks[i].Completed {
			t.Errorf("sibling task %d mutated", i)
		}
	}
}

func TestUpdateTaskIdempotentPatch(t *testing.T) {
	repo := memory.NewPlanRepository()
	owner := testIdentity()
	created, err := NewCreatePlan(repo, nil).Execute(context.Background(), CreatePlanInput{
		Identity: owner, Title: "Plan", Goals: []string{"Algebra"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	target := created.Plan.Tasks[0]
	update := NewUpdateTask(repo, nil)
	done := true
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	patch := domain.TaskPatch{Completed: &done, StartDate: &start}

	first, err := update.Execute(context.Background(), UpdateTaskInput{
		Identity: owner, PlanID: created.Plan.ID, TaskID: target.ID, Patch: patch,
	})
	if err != nil {
		t.Fatalf("first patch: %v", err)
	}
	second, err := update.Execute(context.Background(), UpdateTaskInput{
		Identity: owner, PlanID: created.Plan.ID, TaskID: target.ID, Patch: patch,
	})
	if err != nil {
		t.Fatalf("second patch: %v", err)
	}
	if first.Task.Completed != second.Task.Completed ||
		!first.Task.StartDate.Equal(second.Task.StartDate) ||
		!first.Task.EndDate.Equal(second.Task.EndDate) {
		t.Error("repeating the same patch changed the task")
	}
}

func TestUpdateTaskOwnershipAndMisses(t *testing.T) {
	repo := memory.NewPlanRepository()
	owner, other := testIdentity(), testIdentity()
	created, err := NewCreatePlan(repo, nil).Execute(context.Background(), CreatePlanInput{
		Identity: owner, Title: "Plan", Goals: []string{"Algebra"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	update := NewUpdateTask(repo, nil)
	done := true

	_, err = update.Execute(context.Background(), UpdateTaskInput{
		Identity: other,
		PlanID:   created.Plan.ID,
		TaskID:   created.Plan.Tasks[0].ID,
		Patch:    domain.TaskPatch{Completed: &done},
	})
	if !errors.Is(err, domerrors.ErrPlanNotFound) {
		t.Fatalf("foreign patch err = %v, want ErrPlanNotFound", err)
	}

	_, err = update.Execute(context.Background(), UpdateTaskInput{
		Identity: owner,
		PlanID:   created.Plan.ID,
		TaskID:   domain.NewTaskID(uuid.New()),
		Patch:    domain.TaskPatch{Completed: &done},
	})
	if !errors.Is(err, domerrors.ErrTaskNotFound) {
		t.Fatalf("unknown task err = %v, want ErrTaskNotFound", err)
	}

	// Failed attempts leave the plan unchanged.
	stored, _ := repo.GetByID(context.Background(), owner.UserID, created.Plan.ID)
	for _, task := range stored.Tasks {
		if task.Completed {
			t.Error("failed patch mutated a task")
		}
	}
}
