package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SahithiKaruparthi/planPro/internal/application/calendar"
	"github.com/SahithiKaruparthi/planPro/internal/application/plans"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
	"github.com/SahithiKaruparthi/planPro/internal/infrastructure/http/middleware"
	"github.com/SahithiKaruparthi/planPro/internal/infrastructure/persistence/memory"
)

// newTestServer mounts the plan and calendar routes behind a stub auth
// middleware that injects the given identity.
func newTestServer(t *testing.T, repo *memory.PlanRepository, identity domain.Identity) http.Handler {
	t.Helper()
	log := zerolog.Nop()
	plansHandler := NewPlansHandler(
		plans.NewCreatePlan(repo, nil),
		plans.NewListPlans(repo),
		plans.NewGetPlan(repo),
		log,
	)
	calendarHandler := NewCalendarHandler(
		calendar.NewListItems(repo),
		plans.NewUpdateTask(repo, nil),
		log,
	)
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithIdentity(r.Context(), identity)))
		})
	})
	r.Post("/studyplans", plansHandler.Create)
	r.Get("/studyplans", plansHandler.List)
	r.Get("/studyplans/{id}", plansHandler.Get)
	r.Get("/calendar/tasks", calendarHandler.ListTasks)
	r.Patch("/calendar/tasks/{studyPlanID}/{taskID}", calendarHandler.UpdateTask)
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndGetPlanHTTP(t *testing.T) {
	repo := memory.NewPlanRepository()
	identity := domain.Identity{UserID: domain.NewUserID(uuid.New()), Name: "Dana"}
	srv := newTestServer(t, repo, identity)

	rec := doJSON(t, srv, http.MethodPost, "/studyplans", `{"title":"Finals","goals":["Algebra"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body)
	}
	var created struct {
		StudyPlan struct {
			ID    string `json:"id"`
			Tasks []struct {
				ID       string `json:"id"`
				Priority string `json:"priority"`
			} `json:"tasks"`
		} `json:"study_plan"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if len(created.StudyPlan.Tasks) != 3 {
		t.Fatalf("task count = %d, want 3", len(created.StudyPlan.Tasks))
	}
	if created.StudyPlan.Tasks[0].Priority != "high" {
		t.Errorf("first task priority = %s, want high", created.StudyPlan.Tasks[0].Priority)
	}

	rec = doJSON(t, srv, http.MethodGet, "/studyplans/"+created.StudyPlan.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, body %s", rec.Code, rec.Body)
	}
}

func TestCreatePlanValidationHTTP(t *testing.T) {
	repo := memory.NewPlanRepository()
	identity := domain.Identity{UserID: domain.NewUserID(uuid.New())}
	srv := newTestServer(t, repo, identity)

	for _, body := range []string{
		`{"title":"","goals":["Algebra"]}`,
		`{"title":"Plan","goals":[]}`,
		`not json`,
	} {
		rec := doJSON(t, srv, http.MethodPost, "/studyplans", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q status = %d, want 400", body, rec.Code)
		}
	}
}

func TestGetPlanMissesLookIdentical(t *testing.T) {
	repo := memory.NewPlanRepository()
	owner := domain.Identity{UserID: domain.NewUserID(uuid.New())}
	stranger := domain.Identity{UserID: domain.NewUserID(uuid.New())}

	ownerSrv := newTestServer(t, repo, owner)
	rec := doJSON(t, ownerSrv, http.MethodPost, "/studyplans", `{"title":"Mine","goals":["Algebra"]}`)
	var created struct {
		StudyPlan struct {
			ID string `json:"id"`
		} `json:"study_plan"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	strangerSrv := newTestServer(t, repo, stranger)
	foreign := doJSON(t, strangerSrv, http.MethodGet, "/studyplans/"+created.StudyPlan.ID, "")
	missing := doJSON(t, strangerSrv, http.MethodGet, "/studyplans/"+uuid.NewString(), "")
	garbage := doJSON(t, strangerSrv, http.MethodGet, "/studyplans/not-a-uuid", "")

	for name, got := range map[string]*httptest.ResponseRecorder{
		"foreign": foreign, "missing": missing, "garbage": garbage,
	} {
		if got.Code != http.StatusNotFound {
			t.Errorf("%s status = %d, want 404", name, got.Code)
		}
	}
	// The three misses are indistinguishable bodies.
	if foreign.Body.String() != missing.Body.String() || missing.Body.String() != garbage.Body.String() {
		t.Errorf("miss bodies differ: %q / %q / %q", foreign.Body, missing.Body, garbage.Body)
	}
}

func TestPatchTaskHTTP(t *testing.T) {
	repo := memory.NewPlanRepository()
	identity := domain.Identity{UserID: domain.NewUserID(uuid.New())}
	srv := newTestServer(t, repo, identity)

	rec := doJSON(t, srv, http.MethodPost, "/studyplans", `{"title":"Plan","goals":["Algebra"]}`)
	var created struct {
		StudyPlan struct {
			ID    string `json:"id"`
			Tasks []struct {
				ID        string `json:"id"`
				StartDate string `json:"start_date"`
			} `json:"tasks"`
		} `json:"study_plan"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	path := "/calendar/tasks/" + created.StudyPlan.ID + "/" + created.StudyPlan.Tasks[0].ID

	rec = doJSON(t, srv, http.MethodPatch, path, `{"completed":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d, body %s", rec.Code, rec.Body)
	}
	var patched struct {
		Task struct {
			Completed bool   `json:"completed"`
			StartDate string `json:"start_date"`
		} `json:"task"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &patched); err != nil {
		t.Fatalf("decode patch response: %v", err)
	}
	if !patched.Task.Completed {
		t.Error("completed not set")
	}
	if patched.Task.StartDate != created.StudyPlan.Tasks[0].StartDate {
		t.Error("start_date changed by a completion-only patch")
	}

	rec = doJSON(t, srv, http.MethodPatch, path, `{"start_date":"yesterday"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad date status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPatch, "/calendar/tasks/"+created.StudyPlan.ID+"/"+uuid.NewString(), `{"completed":true}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown task status = %d, want 404", rec.Code)
	}
}

func TestCalendarListHTTP(t *testing.T) {
	repo := memory.NewPlanRepository()
	identity := domain.Identity{UserID: domain.NewUserID(uuid.New())}
	srv := newTestServer(t, repo, identity)

	doJSON(t, srv, http.MethodPost, "/studyplans", `{"title":"A","goals":["Algebra","Sets"]}`)
	rec := doJSON(t, srv, http.MethodGet, "/calendar/tasks", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var listed struct {
		Tasks []struct {
			StudyPlanID    string `json:"study_plan_id"`
			StudyPlanTitle string `json:"study_plan_title"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed.Tasks) != 6 {
		t.Fatalf("task count = %d, want 6", len(listed.Tasks))
	}
	if listed.Tasks[0].StudyPlanTitle != "A" {
		t.Errorf("study_plan_title = %q, want A", listed.Tasks[0].StudyPlanTitle)
	}
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	repo := memory.NewPlanRepository()
	log := zerolog.Nop()
	plansHandler := NewPlansHandler(plans.NewCreatePlan(repo, nil), plans.NewListPlans(repo), plans.NewGetPlan(repo), log)
	r := chi.NewRouter()
	r.Get("/studyplans", plansHandler.List)

	rec := doJSON(t, r, http.MethodGet, "/studyplans", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
