package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SahithiKaruparthi/planPro/internal/application/plans"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
	domerrors "github.com/SahithiKaruparthi/planPro/internal/domain/errors"
	"github.com/SahithiKaruparthi/planPro/internal/infrastructure/http/middleware"
)

// PlansHandler serves plan creation and reads. All routes sit behind the JWT
// middleware; the identity is read from context and handed to use cases
// explicitly.
type PlansHandler struct {
	create   *plans.CreatePlan
	list     *plans.ListPlans
	get      *plans.GetPlan
	validate *validator.Validate
	log      zerolog.Logger
}

func NewPlansHandler(create *plans.CreatePlan, list *plans.ListPlans, get *plans.GetPlan, log zerolog.Logger) *PlansHandler {
	return &PlansHandler{
		create:   create,
		list:     list,
		get:      get,
		validate: validator.New(),
		log:      log,
	}
}

type taskView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Completed   bool      `json:"completed"`
	Priority    string    `json:"priority"`
}

type planView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Goals       []string   `json:"goals"`
	Tasks       []taskView `json:"tasks"`
	CreatedAt   time.Time  `json:"created_at"`
}

func viewTask(t *domain.Task) taskView {
	return taskView{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
	}
}

func viewPlan(p *domain.Plan) planView {
	tasks := make([]taskView, len(p.Tasks))
	for i := range p.Tasks {
		tasks[i] = viewTask(&p.Tasks[i])
	}
	return planView{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Goals:       p.Goals,
		Tasks:       tasks,
		CreatedAt:   p.CreatedAt,
	}
}

func (h *PlansHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	var body struct {
		Title       string   `json:"title" validate:"required,max=100"`
		Description string   `json:"description" validate:"max=500"`
		Goals       []string `json:"goals" validate:"required,min=1,max=20,dive,max=200"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	result, err := h.create.Execute(r.Context(), plans.CreatePlanInput{
		Identity:    identity,
		Title:       body.Title,
		Description: body.Description,
		Goals:       body.Goals,
	})
	if err != nil {
		middleware.RecordPlanOperation("create", false)
		if err == domerrors.ErrInvalidPlanInput {
			writeErr(w, http.StatusBadRequest, "", err.Error())
			return
		}
		h.log.Error().Err(err).Msg("create plan failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	AuditLog(h.log, r, "plan.create", identity.UserID.String(), true, "")
	middleware.RecordPlanOperation("create", true)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"study_plan": viewPlan(result.Plan),
	})
}

func (h *PlansHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	result, err := h.list.Execute(r.Context(), identity)
	if err != nil {
		middleware.RecordPlanOperation("list", false)
		h.log.Error().Err(err).Msg("list plans failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	middleware.RecordPlanOperation("list", true)
	views := make([]planView, len(result.Plans))
	for i, p := range result.Plans {
		views[i] = viewPlan(p)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"study_plans": views,
	})
}

func (h *PlansHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	planID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// An unparseable id cannot belong to the caller; report it the same
		// as any other miss.
		writeErr(w, http.StatusNotFound, "", domerrors.ErrPlanNotFound.Error())
		return
	}
	result, err := h.get.Execute(r.Context(), identity, domain.NewPlanID(planID))
	if err != nil {
		middleware.RecordPlanOperation("get", false)
		if err == domerrors.ErrPlanNotFound {
			writeErr(w, http.StatusNotFound, "", err.Error())
			return
		}
		h.log.Error().Err(err).Msg("get plan failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	middleware.RecordPlanOperation("get", true)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"study_plan": viewPlan(result.Plan),
	})
}
