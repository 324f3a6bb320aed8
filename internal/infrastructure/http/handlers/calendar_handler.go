package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SahithiKaruparthi/planPro/internal/application/calendar"
	"github.com/SahithiKaruparthi/planPro/internal/application/plans"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
	domerrors "github.com/SahithiKaruparthi/planPro/internal/domain/errors"
	"github.com/SahithiKaruparthi/planPro/internal/infrastructure/http/middleware"
)

// CalendarHandler serves the flattened task view and the task patch route.
type CalendarHandler struct {
	items  *calendar.ListItems
	update *plans.UpdateTask
	log    zerolog.Logger
}

func NewCalendarHandler(items *calendar.ListItems, update *plans.UpdateTask, log zerolog.Logger) *CalendarHandler {
	return &CalendarHandler{items: items, update: update, log: log}
}

type calendarItemView struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Completed     bool      `json:"completed"`
	Priority      string    `json:"priority"`
	StudyPlanID   string    `json:"study_plan_id"`
	StudyPlanName string    `json:"study_plan_title"`
}

func (h *CalendarHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	result, err := h.items.Execute(r.Context(), identity)
	if err != nil {
		middleware.RecordPlanOperation("calendar", false)
		h.log.Error().Err(err).Msg("list calendar tasks failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	middleware.RecordPlanOperation("calendar", true)
	views := make([]calendarItemView, len(result.Items))
	for i, item := range result.Items {
		views[i] = calendarItemView{
			ID:            item.TaskID.String(),
			Title:         item.Title,
			Description:   item.Description,
			Start:         item.Start,
			End:           item.End,
			Completed:     item.Completed,
			Priority:      string(item.Priority),
			StudyPlanID:   item.PlanID.String(),
			StudyPlanName: item.PlanTitle,
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tasks": views,
	})
}

func (h *CalendarHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	planID, err := uuid.Parse(chi.URLParam(r, "studyPlanID"))
	if err != nil {
		writeErr(w, http.StatusNotFound, "", domerrors.ErrPlanNotFound.Error())
		return
	}
	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		writeErr(w, http.StatusNotFound, "", domerrors.ErrTaskNotFound.Error())
		return
	}
	var body struct {
		Completed *bool   `json:"completed"`
		StartDate *string `json:"start_date"`
		EndDate   *string `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	patch := domain.TaskPatch{Completed: body.Completed}
	if body.StartDate != nil {
		t, err := time.Parse(time.RFC3339, *body.StartDate)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "", "start_date must be RFC 3339")
			return
		}
		patch.StartDate = &t
	}
	if body.EndDate != nil {
		t, err := time.Parse(time.RFC3339, *body.EndDate)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "", "end_date must be RFC 3339")
			return
		}
		patch.EndDate = &t
	}
	result, err := h.update.Execute(r.Context(), plans.UpdateTaskInput{
		Identity: identity,
		PlanID:   domain.NewPlanID(planID),
		TaskID:   domain.NewTaskID(taskID),
		Patch:    patch,
	})
	if err != nil {
		middleware.RecordPlanOperation("update_task", false)
		switch err {
		case domerrors.ErrPlanNotFound, domerrors.ErrTaskNotFound:
			writeErr(w, http.StatusNotFound, "", err.Error())
		default:
			h.log.Error().Err(err).Msg("update task failed")
			writeErr(w, http.StatusInternalServerError, "", "internal error")
		}
		return
	}
	AuditLog(h.log, r, "task.update", identity.UserID.String(), true, "")
	middleware.RecordPlanOperation("update_task", true)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"task": viewTask(result.Task),
	})
}
