package domain

import "time"

// CalendarItem is a read-only projection of one task annotated with its
// source plan, so a calendar entry can always be traced back to its owner
// via the (PlanID, TaskID) pair.
type CalendarItem struct {
	TaskID      TaskID
	PlanID      PlanID
	PlanTitle   string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Completed   bool
	Priority    Priority
}
