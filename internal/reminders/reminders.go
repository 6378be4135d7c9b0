// Package reminders derives dashboard statistics and follow-up reminders
// from a task collection. Every function is a pure read over its inputs and
// may be called concurrently.
package reminders

import (
	"fmt"
	"sort"
	"time"

	"github.com/ridaofranco/eventdesk/internal/dates"
	"github.com/ridaofranco/eventdesk/internal/models"
)

// DefaultStaleAfter is how long an automated task may sit untouched before
// it produces a reminder.
const DefaultStaleAfter = 48 * time.Hour

// Urgency ranks a reminder.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Markers prefixed to high-urgency messages.
const (
	MarkerOverdue = "VENCIDA"
	MarkerUrgent  = "URGENTE"
)

// Stats aggregates a task collection.
type Stats struct {
	Total           int     `json:"total"`
	Pending         int     `json:"pending"`
	InProgress      int     `json:"in_progress"`
	Completed       int     `json:"completed"`
	Cancelled       int     `json:"cancelled"`
	Overdue         int     `json:"overdue"`
	CriticalPending int     `json:"critical_pending"`
	Compliance      float64 `json:"sla_compliance"`
}

// Reminder is a follow-up message for one stale task.
type Reminder struct {
	TaskID       string     `json:"task_id"`
	EventID      string     `json:"event_id"`
	Title        string     `json:"title"`
	Assignee     string     `json:"assignee,omitempty"`
	DueDate      dates.Date `json:"due_date"`
	DaysUntilDue int        `json:"days_until_due"`
	Urgency      Urgency    `json:"urgency"`
	Message      string     `json:"message"`
}

// ForEvent returns the tasks that belong to eventID. An empty id returns
// tasks unchanged.
func ForEvent(tasks []models.Task, eventID string) []models.Task {
	if eventID == "" {
		return tasks
	}
	var out []models.Task
	for _, t := range tasks {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out
}

// IsOverdue reports whether a pending task's due date is before today.
func IsOverdue(t models.Task, today dates.Date) bool {
	return t.IsPending() && !t.DueDate.IsZero() && t.DueDate.Before(today)
}

// Summarize counts tasks by status and computes SLA compliance.
func Summarize(tasks []models.Task, now time.Time) Stats {
	today := dates.Today(now)
	var s Stats
	s.Total = len(tasks)

	for _, t := range tasks {
		switch t.Status {
		case models.TaskStatusPending:
			s.Pending++
			if t.Priority == models.PriorityHigh {
				s.CriticalPending++
			}
		case models.TaskStatusInProgress:
			s.InProgress++
		case models.TaskStatusCompleted:
			s.Completed++
		case models.TaskStatusCancelled:
			s.Cancelled++
		}
		if IsOverdue(t, today) {
			s.Overdue++
		}
	}

	s.Compliance = 100
	if s.Total > 0 {
		s.Compliance = float64(s.Total-s.Overdue) * 100 / float64(s.Total)
	}
	return s
}

// Classify maps days until due to an urgency.
func Classify(daysUntilDue int) Urgency {
	switch {
	case daysUntilDue <= 3:
		return UrgencyHigh
	case daysUntilDue <= 7:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// Scan emits a reminder for every pending automated task that has not been
// updated for at least staleAfter. Results are ordered most urgent first.
func Scan(tasks []models.Task, now time.Time, staleAfter time.Duration) []Reminder {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	today := dates.Today(now)
	cutoff := now.Add(-staleAfter)

	var out []Reminder
	for _, t := range tasks {
		if !t.IsPending() || !t.Automated || t.DueDate.IsZero() {
			continue
		}
		if t.UpdatedAt.After(cutoff) {
			continue
		}

		days := today.DaysUntil(t.DueDate)
		out = append(out, Reminder{
			TaskID:       t.ID,
			EventID:      t.EventID,
			Title:        t.Title,
			Assignee:     t.Assignee,
			DueDate:      t.DueDate,
			DaysUntilDue: days,
			Urgency:      Classify(days),
			Message:      message(t.Title, days),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysUntilDue < out[j].DaysUntilDue
	})
	return out
}

func message(title string, days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%s: \"%s\" venció hace %s", MarkerOverdue, title, dayCount(-days))
	case days == 0:
		return fmt.Sprintf("%s: \"%s\" vence hoy", MarkerUrgent, title)
	case days <= 3:
		return fmt.Sprintf("%s: \"%s\" vence en %s", MarkerUrgent, title, dayCount(days))
	default:
		return fmt.Sprintf("Recordatorio: \"%s\" vence en %s", title, dayCount(days))
	}
}

func dayCount(n int) string {
	if n == 1 {
		return "1 día"
	}
	return fmt.Sprintf("%d días", n)
}
