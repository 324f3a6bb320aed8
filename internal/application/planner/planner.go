// Package planner expands study goals into a dated task schedule. The
// expansion is a fixed-cadence fan-out, fully determined by the goal list and
// the anchor time: it never consults a calendar or balances workload.
package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SahithiKaruparthi/planPro/internal/domain"
)

// tasksPerGoal is the number of tasks fanned out for each goal.
const tasksPerGoal = 3

// taskDuration is the fixed length of every generated study session.
const taskDuration = 2 * time.Hour

// priorityTiers maps the sub-task index within a goal to its priority.
var priorityTiers = [tasksPerGoal]domain.Priority{
	domain.PriorityHigh,
	domain.PriorityMedium,
	domain.PriorityLow,
}

// Generate expands goals into tasks, three per goal. The task for goal i,
// sub-index j starts at anchor + (3i+j) days and runs for two hours, so start
// dates advance one day per task across the whole sequence. Output order
// follows the goal order, then the sub-task index. Task ids are fresh UUIDs;
// everything else is reproducible from (goals, anchor).
//
// Goals are taken as given: callers validate and trim before calling.
func Generate(goals []string, anchor time.Time) []domain.Task {
	tasks := make([]domain.Task, 0, len(goals)*tasksPerGoal)
	for i, goal := range goals {
		for j := 0; j < tasksPerGoal; j++ {
			start := anchor.AddDate(0, 0, i*tasksPerGoal+j)
			tasks = append(tasks, domain.Task{
				ID:          domain.NewTaskID(uuid.New()),
				Title:       fmt.Sprintf("Task %d for %s", j+1, goal),
				Description: fmt.Sprintf("Complete task %d to achieve %s", j+1, goal),
				StartDate:   start,
				EndDate:     start.Add(taskDuration),
				Completed:   false,
				Priority:    priorityTiers[j],
			})
		}
	}
	return tasks
}
