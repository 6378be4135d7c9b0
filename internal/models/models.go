// Package models defines the core domain types for eventdesk.
package models

import (
	"time"

	"github.com/ridaofranco/eventdesk/internal/dates"
)

// EventStatus represents where an event is in its production lifecycle.
type EventStatus string

const (
	EventStatusPlanning   EventStatus = "planning"
	EventStatusConfirmed  EventStatus = "confirmed"
	EventStatusInProgress EventStatus = "in-progress"
	EventStatusCompleted  EventStatus = "completed"
	EventStatusCancelled  EventStatus = "cancelled"
)

// Valid reports whether s is a known event status.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPlanning, EventStatusConfirmed, EventStatusInProgress, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// TaskStatus represents the current state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// Priority ranks a task for the production team.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Criticality is a coarse class that only selects a lead time for
// catalog-generated tasks. Unknown values are tolerated and get the
// shortest lead.
type Criticality string

const (
	CriticalityCritical  Criticality = "critical"
	CriticalityImportant Criticality = "important"
	CriticalityNormal    Criticality = "normal"
)

// Event is a show or production date at a venue.
type Event struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Venue string      `json:"venue"`
	// Country is an explicit jurisdiction. When empty the venue string is
	// classified by substring matching.
	Country   string      `json:"country,omitempty"`
	Date      dates.Date  `json:"date"`
	Status    EventStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Task represents a unit of production work tied to one event.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	Assignee    string     `json:"assignee,omitempty"`
	DueDate     dates.Date `json:"due_date"`
	EventID     string     `json:"event_id"`
	Category    string     `json:"category"`
	Automated   bool       `json:"automated"`
	Questions   []string   `json:"questions,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsPending reports whether the task still awaits work.
func (t Task) IsPending() bool {
	return t.Status == TaskStatusPending
}

// TaskFilter narrows task listings. Empty fields match everything.
type TaskFilter struct {
	EventID string
	Status  TaskStatus
}

// TaskPatch carries a partial task update; nil fields are left untouched.
type TaskPatch struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
	Priority    *Priority   `json:"priority,omitempty"`
	Assignee    *string     `json:"assignee,omitempty"`
	DueDate     *dates.Date `json:"due_date,omitempty"`
	Category    *string     `json:"category,omitempty"`
}

// AuditEntry records a state-mutating decision for later review.
type AuditEntry struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	InputsHash string    `json:"inputs_hash"`
	Outcome    string    `json:"outcome"`
	EventID    string    `json:"event_id,omitempty"`
	TaskID     string    `json:"task_id,omitempty"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
