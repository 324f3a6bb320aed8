package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlanID is a value object for study plan identity.
type PlanID struct{ uuid.UUID }

// NewPlanID creates a new PlanID from uuid.
func NewPlanID(id uuid.UUID) PlanID { return PlanID{UUID: id} }

// String returns the canonical string form.
func (p PlanID) String() string { return p.UUID.String() }

// TaskID is a value object for task identity, unique within its plan.
type TaskID struct{ uuid.UUID }

// NewTaskID creates a new TaskID from uuid.
func NewTaskID(id uuid.UUID) TaskID { return TaskID{UUID: id} }

// String returns the canonical string form.
func (t TaskID) String() string { return t.UUID.String() }

// Priority is the urgency tier assigned to a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known tiers.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a single dated unit of study work. Tasks live only inside their
// owning Plan and are addressed through it.
type Task struct {
	ID          TaskID
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Completed   bool
	Priority    Priority
}

// TaskPatch carries the mutable task fields for a partial update. Nil fields
// are left untouched.
type TaskPatch struct {
	Completed *bool
	StartDate *time.Time
	EndDate   *time.Time
}

// Plan is the aggregate root for one study plan: its goals and the tasks
// generated from them. UserID is set at creation and never changes; it is
// the ownership boundary for every read and mutation.
type Plan struct {
	ID          PlanID
	UserID      UserID
	Title       string
	Description string
	Goals       []string
	Tasks       []Task
	CreatedAt   time.Time
}

// Task returns a pointer to the task with the given id, or false if the plan
// holds no such task.
func (p *Plan) Task(id TaskID) (*Task, bool) {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i], true
		}
	}
	return nil, false
}

// PatchTask applies patch to the task with the given id and returns the
// updated task. Fields absent from the patch keep their current values.
func (p *Plan) PatchTask(id TaskID, patch TaskPatch) (*Task, bool) {
	task, ok := p.Task(id)
	if !ok {
		return nil, false
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	if patch.StartDate != nil {
		task.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		task.EndDate = *patch.EndDate
	}
	return task, true
}
