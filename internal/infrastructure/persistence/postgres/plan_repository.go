package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
)

const (
	insertPlanSQL = `
INSERT INTO plans (id, user_id, title, description, goals, tasks, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	listPlansByUserSQL = `
SELECT id, user_id, title, description, goals, tasks, created_at
FROM plans WHERE user_id = $1 ORDER BY created_at, id`

	getPlanByIDSQL = `
SELECT id, user_id, title, description, goals, tasks, created_at
FROM plans WHERE id = $1 AND user_id = $2`

	updatePlanTasksSQL = `
UPDATE plans SET tasks = $1 WHERE id = $2 AND user_id = $3`
)

// taskRecord is the JSONB shape of one embedded task. Tasks are persisted
// inside their plan row; there is no separate tasks table.
type taskRecord struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Completed   bool      `json:"completed"`
	Priority    string    `json:"priority"`
}

// PlanRepository implements ports.PlanRepository on Postgres. Every query
// filters by user_id, so a foreign plan id reads the same as a missing one.
type PlanRepository struct {
	pool *pgxpool.Pool
}

func NewPlanRepository(pool *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{pool: pool}
}

func (r *PlanRepository) Create(ctx context.Context, plan *domain.Plan) error {
	tasks, err := encodeTasks(plan.Tasks)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, insertPlanSQL,
		plan.ID.UUID, plan.UserID.UUID, plan.Title, plan.Description,
		plan.Goals, tasks, plan.CreatedAt)
	return err
}

func (r *PlanRepository) ListByUser(ctx context.Context, userID domain.UserID) ([]*domain.Plan, error) {
	rows, err := r.pool.Query(ctx, listPlansByUserSQL, userID.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var plans []*domain.Plan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func (r *PlanRepository) GetByID(ctx context.Context, userID domain.UserID, planID domain.PlanID) (*domain.Plan, error) {
	row := r.pool.QueryRow(ctx, getPlanByIDSQL, planID.UUID, userID.UUID)
	plan, err := scanPlan(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return plan, nil
}

func (r *PlanRepository) SaveTasks(ctx context.Context, plan *domain.Plan) error {
	tasks, err := encodeTasks(plan.Tasks)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, updatePlanTasksSQL, tasks, plan.ID.UUID, plan.UserID.UUID)
	return err
}

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	var (
		id, userID uuid.UUID
		plan       domain.Plan
		rawTasks   []byte
	)
	err := row.Scan(&id, &userID, &plan.Title, &plan.Description, &plan.Goals, &rawTasks, &plan.CreatedAt)
	if err != nil {
		return nil, err
	}
	plan.ID = domain.NewPlanID(id)
	plan.UserID = domain.NewUserID(userID)
	var records []taskRecord
	if err := json.Unmarshal(rawTasks, &records); err != nil {
		return nil, err
	}
	plan.Tasks = make([]domain.Task, len(records))
	for i, rec := range records {
		plan.Tasks[i] = domain.Task{
			ID:          domain.NewTaskID(rec.ID),
			Title:       rec.Title,
			Description: rec.Description,
			StartDate:   rec.StartDate,
			EndDate:     rec.EndDate,
			Completed:   rec.Completed,
			Priority:    domain.Priority(rec.Priority),
		}
	}
	return &plan, nil
}

func encodeTasks(tasks []domain.Task) ([]byte, error) {
	records := make([]taskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = taskRecord{
			ID:          task.ID.UUID,
			Title:       task.Title,
			Description: task.Description,
			StartDate:   task.StartDate,
			EndDate:     task.EndDate,
			Completed:   task.Completed,
			Priority:    string(task.Priority),
		}
	}
	return json.Marshal(records)
}

var _ ports.PlanRepository = (*PlanRepository)(nil)
